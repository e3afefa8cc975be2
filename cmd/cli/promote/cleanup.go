package promote

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shipcut/shipcut/internal/gitrepo"
	promotesvc "github.com/shipcut/shipcut/internal/promote"
)

const (
	cleanupUseNameConstant             = "cleanup"
	cleanupShortDescriptionConstant    = "Remove transient branches left by interrupted promotions"
	cleanupLongDescriptionConstant     = "cleanup aborts an unfinished cherry-pick, returns the repository to the development branch, and deletes the transient squash and delivery-mirror branches left behind when a promotion run was interrupted or abandoned."
	cleanupExampleConstant             = "  shipcut cleanup"
	cleanupNothingToDoMessageConstant  = "CLEAN: no transient branches found"
	cleanupDeletedMessageTemplate      = "DELETED: %s"
	cleanupAbortedCherryPickConstant   = "ABORTED: unfinished cherry-pick"
	cleanupBranchListSeparatorConstant = ", "
)

// CleanupCommandBuilder assembles the cleanup command.
type CleanupCommandBuilder struct {
	LoggerProvider               LoggerProvider
	GitExecutor                  gitrepo.GitExecutor
	HumanReadableLoggingProvider func() bool
	ConfigurationProvider        func() CommandConfiguration
	WorkingDirectory             string
}

// Build constructs the cleanup command.
func (builder *CleanupCommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     cleanupUseNameConstant,
		Short:   cleanupShortDescriptionConstant,
		Long:    cleanupLongDescriptionConstant,
		Example: cleanupExampleConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.run,
	}

	return command, nil
}

func (builder *CleanupCommandBuilder) run(command *cobra.Command, _ []string) error {
	configuration := builder.resolveConfiguration()

	repositoryPath, repositoryPathError := builder.resolveWorkingDirectory()
	if repositoryPathError != nil {
		return repositoryPathError
	}

	logger := builder.resolveLogger()
	executor, executorError := resolveObservedGitExecutor(builder.GitExecutor, logger, builder.humanReadableLoggingEnabled())
	if executorError != nil {
		return executorError
	}
	repository, repositoryError := gitrepo.NewRepositoryManager(executor)
	if repositoryError != nil {
		return repositoryError
	}

	cleanupService, serviceError := promotesvc.NewCleanupService(logger, repository)
	if serviceError != nil {
		return serviceError
	}

	cleanupResult, cleanupError := cleanupService.Cleanup(command.Context(), promotesvc.CleanupOptions{
		RepositoryPath:    repositoryPath,
		DevelopmentBranch: configuration.DevelopmentBranch,
		DeliveryBranch:    configuration.DeliveryBranch,
	})
	if cleanupError != nil {
		return cleanupError
	}

	if cleanupResult.AbortedCherryPick {
		fmt.Fprintln(command.OutOrStdout(), cleanupAbortedCherryPickConstant)
	}
	if len(cleanupResult.DeletedBranches) == 0 {
		fmt.Fprintln(command.OutOrStdout(), cleanupNothingToDoMessageConstant)
		return nil
	}
	fmt.Fprintln(command.OutOrStdout(), fmt.Sprintf(cleanupDeletedMessageTemplate, strings.Join(cleanupResult.DeletedBranches, cleanupBranchListSeparatorConstant)))

	return nil
}

func (builder *CleanupCommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func (builder *CleanupCommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CleanupCommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

func (builder *CleanupCommandBuilder) resolveWorkingDirectory() (string, error) {
	return resolveWorkingDirectoryValue(builder.WorkingDirectory)
}
