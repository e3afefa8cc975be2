package promote

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shipcut/shipcut/internal/gitrepo"
	promotesvc "github.com/shipcut/shipcut/internal/promote"
	"github.com/shipcut/shipcut/internal/utils"
	flagutils "github.com/shipcut/shipcut/internal/utils/flags"
)

const (
	commandUseNameConstant          = "promote"
	commandUsageTemplateConstant    = commandUseNameConstant + " <start-commit> <tag-name>"
	commandExampleConstant          = "  shipcut promote 4f2d1c9 v1.4.0\n  shipcut promote --continue v1.4.0\n  shipcut promote --no-push 4f2d1c9 v1.4.0"
	commandShortDescriptionConstant = "Promote development commits to the delivery branch"
	commandLongDescriptionConstant  = "promote squashes every commit from the start commit to the development tip into one signed commit with the ignore-listed paths stripped, cherry-picks it onto a local mirror of the delivery branch, signs release tags on both branches, and pushes the result. When a cherry-pick conflict stops the run, resolve the conflicted files and re-run with --continue."

	missingArgumentsMessageConstant       = "start commit and tag name are required; provide both as positional arguments"
	missingTagMessageConstant             = "tag name is required; provide it as a positional argument"
	tooManyArgumentsMessageConstant       = "expected at most two positional arguments"
	promotedMessageTemplateConstant       = "PROMOTED: %s tagged %s, %s tagged %s"
	pushedSuffixTemplateConstant          = " (pushed to %s)"
	localOnlySuffixTemplateConstant       = " (local only, %s retained)"
	workingDirectoryErrorTemplateConstant = "unable to resolve working directory: %w"
)

// LoggerProvider yields a zap logger instance.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the promote command.
type CommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  gitrepo.GitExecutor
	Prompter                     promotesvc.CommitMessagePrompter
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	WorkingDirectory             string
}

// Build constructs the promote command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplateConstant,
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Example: commandExampleConstant,
		Args:    cobra.MaximumNArgs(2),
		RunE:    builder.run,
	}

	flagutils.BindExecutionFlags(command, flagutils.ExecutionDefaults{Remote: DefaultCommandConfiguration().Remote})

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	executionFlags, _ := flagutils.ResolveExecutionFlags(command)

	runMode := promotesvc.RunModeFresh
	if executionFlags.Continue {
		runMode = promotesvc.RunModeResume
	}

	startCommit, tagName, argumentError := resolveReleaseArguments(arguments, runMode)
	if argumentError != nil {
		if command != nil {
			_ = command.Help()
		}
		return argumentError
	}

	remoteName := configuration.Remote
	if executionFlags.RemoteSet {
		overriddenRemote := strings.TrimSpace(executionFlags.Remote)
		if len(overriddenRemote) > 0 {
			remoteName = overriddenRemote
		}
	}

	repositoryPath, repositoryPathError := builder.resolveWorkingDirectory()
	if repositoryPathError != nil {
		return repositoryPathError
	}

	logger := builder.resolveLogger()
	repository, repositoryError := builder.resolveRepository(logger)
	if repositoryError != nil {
		return repositoryError
	}

	service, serviceError := promotesvc.NewService(promotesvc.ServiceDependencies{
		Logger:     logger,
		Repository: repository,
		Prompter:   builder.resolvePrompter(command),
		Output:     command.ErrOrStderr(),
	})
	if serviceError != nil {
		return serviceError
	}

	promotionResult, promoteError := service.Promote(command.Context(), promotesvc.Options{
		RepositoryPath:    repositoryPath,
		StartCommit:       startCommit,
		TagName:           tagName,
		CommitMessage:     executionFlags.Message,
		DevelopmentBranch: configuration.DevelopmentBranch,
		DeliveryBranch:    configuration.DeliveryBranch,
		RemoteName:        remoteName,
		IgnoreFileName:    configuration.IgnoreFile,
		Mode:              runMode,
		PushEnabled:       !executionFlags.NoPush,
	})
	if promoteError != nil {
		return promoteError
	}

	summaryMessage := fmt.Sprintf(promotedMessageTemplateConstant,
		configuration.DeliveryBranch, promotionResult.ReleaseTagName,
		configuration.DevelopmentBranch, promotionResult.DevelopmentTagName)
	if promotionResult.Pushed {
		summaryMessage += fmt.Sprintf(pushedSuffixTemplateConstant, remoteName)
	} else {
		summaryMessage += fmt.Sprintf(localOnlySuffixTemplateConstant, promotionResult.MirrorBranchName)
	}
	fmt.Fprintln(command.OutOrStdout(), summaryMessage)

	return nil
}

func resolveReleaseArguments(arguments []string, runMode promotesvc.RunMode) (string, string, error) {
	trimmedArguments := make([]string, 0, len(arguments))
	for _, argument := range arguments {
		trimmedArgument := strings.TrimSpace(argument)
		if len(trimmedArgument) > 0 {
			trimmedArguments = append(trimmedArguments, trimmedArgument)
		}
	}

	switch {
	case len(trimmedArguments) > 2:
		return "", "", errors.New(tooManyArgumentsMessageConstant)
	case len(trimmedArguments) == 2:
		return trimmedArguments[0], trimmedArguments[1], nil
	case len(trimmedArguments) == 1 && runMode == promotesvc.RunModeResume:
		// A resume run no longer needs the start commit; a single
		// positional argument is the tag name.
		return "", trimmedArguments[0], nil
	case runMode == promotesvc.RunModeResume:
		return "", "", errors.New(missingTagMessageConstant)
	default:
		return "", "", errors.New(missingArgumentsMessageConstant)
	}
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CommandBuilder) resolveWorkingDirectory() (string, error) {
	return resolveWorkingDirectoryValue(builder.WorkingDirectory)
}

func resolveWorkingDirectoryValue(configuredDirectory string) (string, error) {
	trimmedDirectory := strings.TrimSpace(configuredDirectory)
	if len(trimmedDirectory) > 0 {
		return trimmedDirectory, nil
	}
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return "", fmt.Errorf(workingDirectoryErrorTemplateConstant, workingDirectoryError)
	}
	return workingDirectory, nil
}

func (builder *CommandBuilder) resolvePrompter(command *cobra.Command) promotesvc.CommitMessagePrompter {
	if builder.Prompter != nil {
		return builder.Prompter
	}
	return utils.NewIOCommitMessagePrompter(command.InOrStdin(), command.ErrOrStderr())
}
