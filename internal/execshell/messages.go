package execshell

import (
	"fmt"
	"strings"
)

type messageStage int

const (
	messageStageStart messageStage = iota
	messageStageSuccess
	messageStageFailure
	messageStageExecutionFailure
)

const (
	genericStartTemplateConstant            = "Running %s"
	genericSuccessTemplateConstant          = "Completed %s"
	genericFailureTemplateConstant          = "%s failed with exit code %d%s"
	genericExecutionFailureTemplateConstant = "%s failed: %s"
	workingDirectorySuffixTemplateConstant  = " (in %s)"
	standardErrorSuffixTemplateConstant     = ": %s"
	unknownFailureMessageConstant           = "unknown error"
	emptyStringConstant                     = ""
	defaultWorkingDirectoryLabelConstant    = "current directory"
	fallbackUnknownValueLabelConstant       = "unknown"
)

const (
	gitRevParseSubcommandNameConstant   = "rev-parse"
	gitStatusSubcommandNameConstant     = "status"
	gitCheckoutSubcommandNameConstant   = "checkout"
	gitBranchSubcommandNameConstant     = "branch"
	gitRemoveSubcommandNameConstant     = "rm"
	gitResetSubcommandNameConstant      = "reset"
	gitCommitSubcommandNameConstant     = "commit"
	gitCherryPickSubcommandNameConstant = "cherry-pick"
	gitTagSubcommandNameConstant        = "tag"
	gitPushSubcommandNameConstant       = "push"
	gitFetchSubcommandNameConstant      = "fetch"
	gitAbbrevRefFlagConstant            = "--abbrev-ref"
	gitDeleteFlagConstant               = "--delete"
	gitCachedFlagConstant               = "--cached"
	gitSoftFlagConstant                 = "--soft"
	gitAmendFlagConstant                = "--amend"
	gitContinueFlagConstant             = "--continue"
	gitMessageFlagConstant              = "--message"
	gitPathSeparatorArgumentConstant    = "--"
	gitHeadReferenceConstant            = "HEAD"
)

const (
	gitCurrentBranchStartTemplateConstant    = "Reading current branch in %s"
	gitCurrentBranchSuccessTemplateConstant  = "Current branch in %s is %s"
	gitCurrentBranchDetachedTemplateConstant = "%s has a detached HEAD"
	gitRevisionStartTemplateConstant         = "Resolving %s in %s"
	gitRevisionSuccessTemplateConstant       = "%s in %s is %s"
	gitRevisionEmptyTemplateConstant         = "%s in %s did not resolve"
	gitRevisionFailureTemplateConstant       = "Could not resolve %s in %s (exit code %d%s)"
	gitStatusStartTemplateConstant           = "Inspecting working tree in %s"
	gitStatusSuccessTemplateConstant         = "Inspected working tree in %s"
	gitStatusFailureTemplateConstant         = "Could not inspect working tree in %s (exit code %d%s)"
	gitCheckoutStartTemplateConstant         = "Checking out %s in %s"
	gitCheckoutSuccessTemplateConstant       = "Checked out %s in %s"
	gitCheckoutFailureTemplateConstant       = "Could not check out %s in %s (exit code %d%s)"
	gitRestoreStartTemplateConstant          = "Restoring %s from %s in %s"
	gitRestoreSuccessTemplateConstant        = "Restored %s from %s in %s"
	gitRestoreFailureTemplateConstant        = "Could not restore %s from %s in %s (exit code %d%s)"
	gitBranchCreateStartTemplateConstant     = "Creating branch %s in %s"
	gitBranchCreateSuccessTemplateConstant   = "Created branch %s in %s"
	gitBranchCreateFailureTemplateConstant   = "Could not create branch %s in %s (exit code %d%s)"
	gitBranchDeleteStartTemplateConstant     = "Deleting branch %s in %s"
	gitBranchDeleteSuccessTemplateConstant   = "Deleted branch %s in %s"
	gitBranchDeleteFailureTemplateConstant   = "Could not delete branch %s in %s (exit code %d%s)"
	gitRemoveStartTemplateConstant           = "Removing %s in %s"
	gitRemoveSuccessTemplateConstant         = "Removed %s in %s"
	gitRemoveFailureTemplateConstant         = "Could not remove %s in %s (exit code %d%s)"
	gitUnstageStartTemplateConstant          = "Unstaging %s in %s"
	gitUnstageSuccessTemplateConstant        = "Unstaged %s in %s"
	gitUnstageFailureTemplateConstant        = "Could not unstage %s in %s (exit code %d%s)"
	gitSoftResetStartTemplateConstant        = "Soft resetting %s to %s"
	gitSoftResetSuccessTemplateConstant      = "Soft reset %s to %s"
	gitSoftResetFailureTemplateConstant      = "Could not soft reset %s to %s (exit code %d%s)"
	gitCommitStartTemplateConstant           = "Creating commit in %s"
	gitCommitSuccessTemplateConstant         = "Created commit in %s"
	gitCommitFailureTemplateConstant         = "Could not create commit in %s (exit code %d%s)"
	gitAmendStartTemplateConstant            = "Amending commit in %s"
	gitAmendSuccessTemplateConstant          = "Amended commit in %s"
	gitAmendFailureTemplateConstant          = "Could not amend commit in %s (exit code %d%s)"
	gitCherryPickStartTemplateConstant       = "Cherry-picking %s in %s"
	gitCherryPickSuccessTemplateConstant     = "Cherry-picked %s in %s"
	gitCherryPickFailureTemplateConstant     = "Cherry-pick of %s in %s failed (exit code %d%s)"
	gitCherryPickResumeStartTemplate         = "Resuming cherry-pick in %s"
	gitCherryPickResumeSuccessTemplate       = "Resumed cherry-pick in %s"
	gitCherryPickResumeFailureTemplate       = "Could not resume cherry-pick in %s (exit code %d%s)"
	gitTagStartTemplateConstant              = "Tagging %s in %s"
	gitTagSuccessTemplateConstant            = "Tagged %s in %s"
	gitTagFailureTemplateConstant            = "Could not create tag %s in %s (exit code %d%s)"
	gitPushStartTemplateConstant             = "Pushing %s to %s from %s"
	gitPushSuccessTemplateConstant           = "Pushed %s to %s from %s"
	gitPushFailureTemplateConstant           = "Could not push %s to %s from %s (exit code %d%s)"
	gitFetchStartTemplateConstant            = "Fetching %s from %s in %s"
	gitFetchSuccessTemplateConstant          = "Fetched %s from %s in %s"
	gitFetchFailureTemplateConstant          = "Could not fetch %s from %s in %s (exit code %d%s)"
)

// CommandMessageFormatter builds human-readable messages for command lifecycle events.
type CommandMessageFormatter struct{}

// BuildStartedMessage formats the message describing a command about to run.
func (formatter CommandMessageFormatter) BuildStartedMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageStart)
}

// BuildSuccessMessage formats the message describing a command that exited cleanly.
func (formatter CommandMessageFormatter) BuildSuccessMessage(command ShellCommand) string {
	return formatter.buildMessage(command, ExecutionResult{}, nil, messageStageSuccess)
}

// BuildFailureMessage formats the message describing a command that returned a non-zero exit code.
func (formatter CommandMessageFormatter) BuildFailureMessage(command ShellCommand, result ExecutionResult) string {
	return formatter.buildMessage(command, result, nil, messageStageFailure)
}

// BuildExecutionFailureMessage formats the message describing an unexpected execution failure.
func (formatter CommandMessageFormatter) BuildExecutionFailureMessage(command ShellCommand, failure error) string {
	return formatter.buildMessage(command, ExecutionResult{}, failure, messageStageExecutionFailure)
}

func (formatter CommandMessageFormatter) buildMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	if command.Name != CommandGit || len(command.Details.Arguments) == 0 || stage == messageStageExecutionFailure {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	subcommand := strings.TrimSpace(command.Details.Arguments[0])
	switch subcommand {
	case gitRevParseSubcommandNameConstant:
		return formatter.describeRevParse(command, result, failure, stage)
	case gitStatusSubcommandNameConstant:
		return formatter.describeStatus(command, result, failure, stage)
	case gitCheckoutSubcommandNameConstant:
		return formatter.describeCheckout(command, result, failure, stage)
	case gitBranchSubcommandNameConstant:
		return formatter.describeBranch(command, result, failure, stage)
	case gitRemoveSubcommandNameConstant:
		return formatter.describeRemove(command, result, failure, stage)
	case gitResetSubcommandNameConstant:
		return formatter.describeReset(command, result, failure, stage)
	case gitCommitSubcommandNameConstant:
		return formatter.describeCommit(command, result, failure, stage)
	case gitCherryPickSubcommandNameConstant:
		return formatter.describeCherryPick(command, result, failure, stage)
	case gitTagSubcommandNameConstant:
		return formatter.describeTag(command, result, failure, stage)
	case gitPushSubcommandNameConstant:
		return formatter.describePush(command, result, failure, stage)
	case gitFetchSubcommandNameConstant:
		return formatter.describeFetch(command, result, failure, stage)
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRevParse(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitAbbrevRefFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCurrentBranchStartTemplateConstant, workingDirectory)
		case messageStageSuccess:
			trimmed := strings.TrimSpace(result.StandardOutput)
			if len(trimmed) == 0 || strings.EqualFold(trimmed, gitHeadReferenceConstant) {
				return fmt.Sprintf(gitCurrentBranchDetachedTemplateConstant, workingDirectory)
			}
			return fmt.Sprintf(gitCurrentBranchSuccessTemplateConstant, workingDirectory, trimmed)
		}
	}

	reference := formatter.lastNonFlagArgument(arguments)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitRevisionStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		trimmed := strings.TrimSpace(result.StandardOutput)
		if len(trimmed) == 0 {
			return fmt.Sprintf(gitRevisionEmptyTemplateConstant, reference, workingDirectory)
		}
		return fmt.Sprintf(gitRevisionSuccessTemplateConstant, reference, workingDirectory, trimmed)
	case messageStageFailure:
		return fmt.Sprintf(gitRevisionFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeStatus(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitStatusStartTemplateConstant, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitStatusSuccessTemplateConstant, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitStatusFailureTemplateConstant, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeCheckout(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	target := formatter.ensureValue(formatter.argumentAtIndex(arguments, 1))

	if containsArgument(arguments, gitPathSeparatorArgumentConstant) {
		paths := formatter.ensureValue(formatter.joinArgumentsAfter(arguments, gitPathSeparatorArgumentConstant))
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitRestoreStartTemplateConstant, paths, target, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitRestoreSuccessTemplateConstant, paths, target, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitRestoreFailureTemplateConstant, paths, target, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCheckoutStartTemplateConstant, target, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitCheckoutSuccessTemplateConstant, target, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitCheckoutFailureTemplateConstant, target, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeBranch(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	branchName := formatter.ensureValue(formatter.firstNonFlagArgument(arguments[1:]))

	if containsArgument(arguments, gitDeleteFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitBranchDeleteStartTemplateConstant, branchName, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitBranchDeleteSuccessTemplateConstant, branchName, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitBranchDeleteFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitBranchCreateStartTemplateConstant, branchName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitBranchCreateSuccessTemplateConstant, branchName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitBranchCreateFailureTemplateConstant, branchName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeRemove(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	paths := formatter.ensureValue(formatter.joinArgumentsAfter(arguments, gitPathSeparatorArgumentConstant))

	startTemplate := gitRemoveStartTemplateConstant
	successTemplate := gitRemoveSuccessTemplateConstant
	failureTemplate := gitRemoveFailureTemplateConstant
	if containsArgument(arguments, gitCachedFlagConstant) {
		startTemplate = gitUnstageStartTemplateConstant
		successTemplate = gitUnstageSuccessTemplateConstant
		failureTemplate = gitUnstageFailureTemplateConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, paths, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, paths, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, paths, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeReset(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	if !containsArgument(arguments, gitSoftFlagConstant) {
		return formatter.buildGenericMessage(command, result, failure, stage)
	}

	target := formatter.ensureValue(formatter.lastNonFlagArgument(arguments))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitSoftResetStartTemplateConstant, workingDirectory, target)
	case messageStageSuccess:
		return fmt.Sprintf(gitSoftResetSuccessTemplateConstant, workingDirectory, target)
	case messageStageFailure:
		return fmt.Sprintf(gitSoftResetFailureTemplateConstant, workingDirectory, target, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeCommit(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	startTemplate := gitCommitStartTemplateConstant
	successTemplate := gitCommitSuccessTemplateConstant
	failureTemplate := gitCommitFailureTemplateConstant
	if containsArgument(arguments, gitAmendFlagConstant) {
		startTemplate = gitAmendStartTemplateConstant
		successTemplate = gitAmendSuccessTemplateConstant
		failureTemplate = gitAmendFailureTemplateConstant
	}

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(startTemplate, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(successTemplate, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(failureTemplate, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeCherryPick(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)

	if containsArgument(arguments, gitContinueFlagConstant) {
		switch stage {
		case messageStageStart:
			return fmt.Sprintf(gitCherryPickResumeStartTemplate, workingDirectory)
		case messageStageSuccess:
			return fmt.Sprintf(gitCherryPickResumeSuccessTemplate, workingDirectory)
		case messageStageFailure:
			return fmt.Sprintf(gitCherryPickResumeFailureTemplate, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
		}
	}

	reference := formatter.ensureValue(formatter.lastNonFlagArgument(arguments))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitCherryPickStartTemplateConstant, reference, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitCherryPickSuccessTemplateConstant, reference, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitCherryPickFailureTemplateConstant, reference, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeTag(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	workingDirectory := formatter.describeWorkingDirectory(command)
	tagName := formatter.ensureValue(formatter.tagNameArgument(command.Details.Arguments))
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitTagStartTemplateConstant, tagName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitTagSuccessTemplateConstant, tagName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitTagFailureTemplateConstant, tagName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describePush(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 1))
	reference := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitPushStartTemplateConstant, reference, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitPushSuccessTemplateConstant, reference, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitPushFailureTemplateConstant, reference, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) describeFetch(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	arguments := command.Details.Arguments
	workingDirectory := formatter.describeWorkingDirectory(command)
	remoteName := formatter.ensureValue(formatter.argumentAtIndex(arguments, 1))
	reference := formatter.ensureValue(formatter.argumentAtIndex(arguments, 2))

	switch stage {
	case messageStageStart:
		return fmt.Sprintf(gitFetchStartTemplateConstant, reference, remoteName, workingDirectory)
	case messageStageSuccess:
		return fmt.Sprintf(gitFetchSuccessTemplateConstant, reference, remoteName, workingDirectory)
	case messageStageFailure:
		return fmt.Sprintf(gitFetchFailureTemplateConstant, reference, remoteName, workingDirectory, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	default:
		return formatter.buildGenericMessage(command, result, failure, stage)
	}
}

func (formatter CommandMessageFormatter) buildGenericMessage(command ShellCommand, result ExecutionResult, failure error, stage messageStage) string {
	commandLabel := formatCommandLabel(command) + formatter.formatWorkingDirectorySuffix(command)
	switch stage {
	case messageStageStart:
		return fmt.Sprintf(genericStartTemplateConstant, commandLabel)
	case messageStageSuccess:
		return fmt.Sprintf(genericSuccessTemplateConstant, commandLabel)
	case messageStageFailure:
		return fmt.Sprintf(genericFailureTemplateConstant, commandLabel, result.ExitCode, formatter.formatStandardErrorSuffix(result.StandardError))
	case messageStageExecutionFailure:
		return fmt.Sprintf(genericExecutionFailureTemplateConstant, commandLabel, formatter.describeFailure(failure))
	default:
		return emptyStringConstant
	}
}

func (formatter CommandMessageFormatter) formatWorkingDirectorySuffix(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(workingDirectorySuffixTemplateConstant, trimmedWorkingDirectory)
}

func (formatter CommandMessageFormatter) formatStandardErrorSuffix(standardError string) string {
	trimmedStandardError := strings.TrimSpace(standardError)
	if len(trimmedStandardError) == 0 {
		return emptyStringConstant
	}
	return fmt.Sprintf(standardErrorSuffixTemplateConstant, trimmedStandardError)
}

func (formatter CommandMessageFormatter) describeWorkingDirectory(command ShellCommand) string {
	trimmedWorkingDirectory := strings.TrimSpace(command.Details.WorkingDirectory)
	if len(trimmedWorkingDirectory) == 0 {
		return defaultWorkingDirectoryLabelConstant
	}
	return trimmedWorkingDirectory
}

func (formatter CommandMessageFormatter) describeFailure(failure error) string {
	if failure == nil {
		return unknownFailureMessageConstant
	}
	return failure.Error()
}

func (formatter CommandMessageFormatter) argumentAtIndex(arguments []string, index int) string {
	if index >= 0 && index < len(arguments) {
		return strings.TrimSpace(arguments[index])
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) ensureValue(value string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallbackUnknownValueLabelConstant
	}
	return trimmed
}

func (formatter CommandMessageFormatter) firstNonFlagArgument(arguments []string) string {
	for _, argument := range arguments {
		trimmed := strings.TrimSpace(argument)
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) lastNonFlagArgument(arguments []string) string {
	for index := len(arguments) - 1; index > 0; index-- {
		trimmed := strings.TrimSpace(arguments[index])
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return fallbackUnknownValueLabelConstant
}

func (formatter CommandMessageFormatter) joinArgumentsAfter(arguments []string, marker string) string {
	for index, argument := range arguments {
		if strings.TrimSpace(argument) == marker {
			return strings.Join(arguments[index+1:], ", ")
		}
	}
	return emptyStringConstant
}

func (formatter CommandMessageFormatter) tagNameArgument(arguments []string) string {
	skipNext := false
	for _, argument := range arguments[1:] {
		trimmed := strings.TrimSpace(argument)
		if skipNext {
			skipNext = false
			continue
		}
		if trimmed == gitMessageFlagConstant {
			skipNext = true
			continue
		}
		if len(trimmed) == 0 || strings.HasPrefix(trimmed, "-") {
			continue
		}
		return trimmed
	}
	return emptyStringConstant
}

func containsArgument(arguments []string, value string) bool {
	for _, argument := range arguments {
		if strings.TrimSpace(argument) == value {
			return true
		}
	}
	return false
}
