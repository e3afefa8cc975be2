package gitrepo

import (
	"context"
	"errors"
	"strings"

	"github.com/shipcut/shipcut/internal/execshell"
)

const (
	executorNotConfiguredMessageConstant     = "git executor not configured"
	repositoryPathRequiredMessageConstant    = "repository path must be provided"
	referenceRequiredMessageConstant         = "git reference must be provided"
	branchNameRequiredMessageConstant        = "branch name must be provided"
	commitMessageRequiredMessageConstant     = "commit message must be provided"
	tagNameRequiredMessageConstant           = "tag name must be provided"
	remoteNameRequiredMessageConstant        = "remote name must be provided"
	pathsRequiredMessageConstant             = "at least one path must be provided"
	gitRevParseSubcommandConstant            = "rev-parse"
	gitStatusSubcommandConstant              = "status"
	gitCheckoutSubcommandConstant            = "checkout"
	gitBranchSubcommandConstant              = "branch"
	gitRemoveSubcommandConstant              = "rm"
	gitResetSubcommandConstant               = "reset"
	gitCommitSubcommandConstant              = "commit"
	gitCherryPickSubcommandConstant          = "cherry-pick"
	gitTagSubcommandConstant                 = "tag"
	gitPushSubcommandConstant                = "push"
	gitFetchSubcommandConstant               = "fetch"
	gitAbbrevRefFlagConstant                 = "--abbrev-ref"
	gitVerifyFlagConstant                    = "--verify"
	gitQuietFlagConstant                     = "--quiet"
	gitPorcelainFlagConstant                 = "--porcelain"
	gitDeleteFlagConstant                    = "--delete"
	gitForceFlagConstant                     = "--force"
	gitRecursiveFlagConstant                 = "-r"
	gitCachedFlagConstant                    = "--cached"
	gitIgnoreUnmatchFlagConstant             = "--ignore-unmatch"
	gitSoftFlagConstant                      = "--soft"
	gitGPGSignFlagConstant                   = "--gpg-sign"
	gitSignoffFlagConstant                   = "--signoff"
	gitSignFlagConstant                      = "--sign"
	gitMessageFlagConstant                   = "--message"
	gitAmendFlagConstant                     = "--amend"
	gitNoEditFlagConstant                    = "--no-edit"
	gitContinueFlagConstant                  = "--continue"
	gitAbortFlagConstant                     = "--abort"
	gitPathSeparatorArgumentConstant         = "--"
	gitHeadReferenceConstant                 = "HEAD"
	gitCherryPickHeadReferenceConstant       = "CHERRY_PICK_HEAD"
	gitLocalBranchReferencePrefixConstant    = "refs/heads/"
	gitTagReferencePrefixConstant            = "refs/tags/"
	gitTerminalPromptEnvironmentNameConstant = "GIT_TERMINAL_PROMPT"
	gitTerminalPromptDisabledValueConstant   = "0"
	gitEditorEnvironmentNameConstant         = "GIT_EDITOR"
	gitEditorDisabledValueConstant           = "true"
)

// ErrExecutorNotConfigured indicates the repository manager was built without an executor.
var ErrExecutorNotConfigured = errors.New(executorNotConfiguredMessageConstant)

// ErrRepositoryPathRequired indicates an operation received an empty repository path.
var ErrRepositoryPathRequired = errors.New(repositoryPathRequiredMessageConstant)

// ErrReferenceRequired indicates an operation received an empty git reference.
var ErrReferenceRequired = errors.New(referenceRequiredMessageConstant)

// ErrBranchNameRequired indicates an operation received an empty branch name.
var ErrBranchNameRequired = errors.New(branchNameRequiredMessageConstant)

// ErrCommitMessageRequired indicates a commit was requested without a message.
var ErrCommitMessageRequired = errors.New(commitMessageRequiredMessageConstant)

// ErrTagNameRequired indicates a tag was requested without a name.
var ErrTagNameRequired = errors.New(tagNameRequiredMessageConstant)

// ErrRemoteNameRequired indicates a network operation received an empty remote name.
var ErrRemoteNameRequired = errors.New(remoteNameRequiredMessageConstant)

// ErrPathsRequired indicates a path operation received no paths.
var ErrPathsRequired = errors.New(pathsRequiredMessageConstant)

// GitExecutor exposes the subset of shell execution used by the repository manager.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// RepositoryManager wraps the git executor with typed repository operations.
type RepositoryManager struct {
	executor GitExecutor
}

// NewRepositoryManager constructs a RepositoryManager from the provided executor.
func NewRepositoryManager(executor GitExecutor) (*RepositoryManager, error) {
	if executor == nil {
		return nil, ErrExecutorNotConfigured
	}
	return &RepositoryManager{executor: executor}, nil
}

// CheckCleanWorktree reports whether the repository has no uncommitted changes.
func (manager *RepositoryManager) CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error) {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return false, pathError
	}

	statusResult, statusError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitStatusSubcommandConstant, gitPorcelainFlagConstant},
		WorkingDirectory: trimmedPath,
	})
	if statusError != nil {
		return false, statusError
	}

	return len(strings.TrimSpace(statusResult.StandardOutput)) == 0, nil
}

// CurrentBranch returns the symbolic name of the checked-out branch.
func (manager *RepositoryManager) CurrentBranch(executionContext context.Context, repositoryPath string) (string, error) {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return "", pathError
	}

	branchResult, branchError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitAbbrevRefFlagConstant, gitHeadReferenceConstant},
		WorkingDirectory: trimmedPath,
	})
	if branchError != nil {
		return "", branchError
	}

	return strings.TrimSpace(branchResult.StandardOutput), nil
}

// ResolveCommit resolves a reference to a full commit identifier.
func (manager *RepositoryManager) ResolveCommit(executionContext context.Context, repositoryPath string, reference string) (string, error) {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return "", pathError
	}
	trimmedReference, referenceError := requireValue(reference, ErrReferenceRequired)
	if referenceError != nil {
		return "", referenceError
	}

	resolveResult, resolveError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitVerifyFlagConstant, trimmedReference},
		WorkingDirectory: trimmedPath,
	})
	if resolveError != nil {
		return "", resolveError
	}

	return strings.TrimSpace(resolveResult.StandardOutput), nil
}

// CherryPickInProgress reports whether an unfinished cherry-pick exists in the repository.
func (manager *RepositoryManager) CherryPickInProgress(executionContext context.Context, repositoryPath string) (bool, error) {
	return manager.referenceExists(executionContext, repositoryPath, gitCherryPickHeadReferenceConstant)
}

// BranchExists reports whether a local branch with the given name exists.
func (manager *RepositoryManager) BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error) {
	trimmedBranch, branchError := requireValue(branchName, ErrBranchNameRequired)
	if branchError != nil {
		return false, branchError
	}
	return manager.referenceExists(executionContext, repositoryPath, gitLocalBranchReferencePrefixConstant+trimmedBranch)
}

func (manager *RepositoryManager) referenceExists(executionContext context.Context, repositoryPath string, reference string) (bool, error) {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return false, pathError
	}

	_, verifyError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitRevParseSubcommandConstant, gitQuietFlagConstant, gitVerifyFlagConstant, reference},
		WorkingDirectory: trimmedPath,
	})
	if verifyError != nil {
		failedCommand := execshell.CommandFailedError{}
		if errors.As(verifyError, &failedCommand) {
			return false, nil
		}
		return false, verifyError
	}

	return true, nil
}

// CreateBranch creates a branch pointing at the provided start point.
func (manager *RepositoryManager) CreateBranch(executionContext context.Context, repositoryPath string, branchName string, startPoint string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedBranch, branchError := requireValue(branchName, ErrBranchNameRequired)
	if branchError != nil {
		return branchError
	}
	trimmedStartPoint, startPointError := requireValue(startPoint, ErrReferenceRequired)
	if startPointError != nil {
		return startPointError
	}

	_, creationError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitBranchSubcommandConstant, trimmedBranch, trimmedStartPoint},
		WorkingDirectory: trimmedPath,
	})
	return creationError
}

// DeleteBranch removes a local branch, forcing deletion of unmerged branches when requested.
func (manager *RepositoryManager) DeleteBranch(executionContext context.Context, repositoryPath string, branchName string, force bool) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedBranch, branchError := requireValue(branchName, ErrBranchNameRequired)
	if branchError != nil {
		return branchError
	}

	arguments := []string{gitBranchSubcommandConstant, gitDeleteFlagConstant}
	if force {
		arguments = append(arguments, gitForceFlagConstant)
	}
	arguments = append(arguments, trimmedBranch)

	_, deletionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: trimmedPath,
	})
	return deletionError
}

// Checkout switches the repository to the named branch.
func (manager *RepositoryManager) Checkout(executionContext context.Context, repositoryPath string, branchName string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedBranch, branchError := requireValue(branchName, ErrBranchNameRequired)
	if branchError != nil {
		return branchError
	}

	_, checkoutError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCheckoutSubcommandConstant, trimmedBranch},
		WorkingDirectory: trimmedPath,
	})
	return checkoutError
}

// RestorePathsFromBranch copies the named paths from another branch into the working tree and index.
func (manager *RepositoryManager) RestorePathsFromBranch(executionContext context.Context, repositoryPath string, branchName string, paths []string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedBranch, branchError := requireValue(branchName, ErrBranchNameRequired)
	if branchError != nil {
		return branchError
	}
	trimmedPaths, pathsError := requirePaths(paths)
	if pathsError != nil {
		return pathsError
	}

	arguments := []string{gitCheckoutSubcommandConstant, trimmedBranch, gitPathSeparatorArgumentConstant}
	arguments = append(arguments, trimmedPaths...)

	_, restoreError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: trimmedPath,
	})
	return restoreError
}

// RemovePaths deletes the named paths from the working tree and index, ignoring missing entries.
func (manager *RepositoryManager) RemovePaths(executionContext context.Context, repositoryPath string, paths []string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedPaths, pathsError := requirePaths(paths)
	if pathsError != nil {
		return pathsError
	}

	arguments := []string{gitRemoveSubcommandConstant, gitRecursiveFlagConstant, gitForceFlagConstant, gitIgnoreUnmatchFlagConstant, gitPathSeparatorArgumentConstant}
	arguments = append(arguments, trimmedPaths...)

	_, removalError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: trimmedPath,
	})
	return removalError
}

// UnstagePaths removes the named paths from the index while leaving the working tree untouched.
func (manager *RepositoryManager) UnstagePaths(executionContext context.Context, repositoryPath string, paths []string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedPaths, pathsError := requirePaths(paths)
	if pathsError != nil {
		return pathsError
	}

	arguments := []string{gitRemoveSubcommandConstant, gitCachedFlagConstant, gitIgnoreUnmatchFlagConstant, gitPathSeparatorArgumentConstant}
	arguments = append(arguments, trimmedPaths...)

	_, removalError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: trimmedPath,
	})
	return removalError
}

// SoftReset moves HEAD to the provided reference while keeping the combined changes staged.
func (manager *RepositoryManager) SoftReset(executionContext context.Context, repositoryPath string, reference string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedReference, referenceError := requireValue(reference, ErrReferenceRequired)
	if referenceError != nil {
		return referenceError
	}

	_, resetError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitResetSubcommandConstant, gitSoftFlagConstant, trimmedReference},
		WorkingDirectory: trimmedPath,
	})
	return resetError
}

// CreateSignedCommit records the staged changes as a GPG-signed, signed-off commit.
func (manager *RepositoryManager) CreateSignedCommit(executionContext context.Context, repositoryPath string, message string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedMessage, messageError := requireValue(message, ErrCommitMessageRequired)
	if messageError != nil {
		return messageError
	}

	_, commitError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitGPGSignFlagConstant, gitSignoffFlagConstant, gitMessageFlagConstant, trimmedMessage},
		WorkingDirectory: trimmedPath,
	})
	return commitError
}

// AmendCommitKeepMessage re-signs the current HEAD commit with the staged changes, keeping its message.
func (manager *RepositoryManager) AmendCommitKeepMessage(executionContext context.Context, repositoryPath string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}

	_, amendError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCommitSubcommandConstant, gitAmendFlagConstant, gitNoEditFlagConstant, gitGPGSignFlagConstant},
		WorkingDirectory: trimmedPath,
	})
	return amendError
}

// CherryPick applies the changes of the referenced commit onto the current branch.
// The captured execution result is returned alongside any failure so callers can
// surface git's conflict report.
func (manager *RepositoryManager) CherryPick(executionContext context.Context, repositoryPath string, reference string) (execshell.ExecutionResult, error) {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return execshell.ExecutionResult{}, pathError
	}
	trimmedReference, referenceError := requireValue(reference, ErrReferenceRequired)
	if referenceError != nil {
		return execshell.ExecutionResult{}, referenceError
	}

	return manager.executeCherryPick(executionContext, trimmedPath, []string{gitCherryPickSubcommandConstant, trimmedReference}, nil)
}

// ContinueCherryPick finalizes an in-progress cherry-pick after the operator resolved its conflicts.
func (manager *RepositoryManager) ContinueCherryPick(executionContext context.Context, repositoryPath string) (execshell.ExecutionResult, error) {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return execshell.ExecutionResult{}, pathError
	}

	// GIT_EDITOR is disabled so the continuation keeps the recorded message
	// instead of blocking on an interactive editor.
	environment := map[string]string{gitEditorEnvironmentNameConstant: gitEditorDisabledValueConstant}
	return manager.executeCherryPick(executionContext, trimmedPath, []string{gitCherryPickSubcommandConstant, gitContinueFlagConstant}, environment)
}

// AbortCherryPick cancels an in-progress cherry-pick and restores the pre-pick state.
func (manager *RepositoryManager) AbortCherryPick(executionContext context.Context, repositoryPath string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}

	_, abortError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitCherryPickSubcommandConstant, gitAbortFlagConstant},
		WorkingDirectory: trimmedPath,
	})
	return abortError
}

func (manager *RepositoryManager) executeCherryPick(executionContext context.Context, repositoryPath string, arguments []string, environment map[string]string) (execshell.ExecutionResult, error) {
	executionResult, executionError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            arguments,
		WorkingDirectory:     repositoryPath,
		EnvironmentVariables: environment,
	})
	if executionError != nil {
		failedCommand := execshell.CommandFailedError{}
		if errors.As(executionError, &failedCommand) {
			return failedCommand.Result, executionError
		}
		return execshell.ExecutionResult{}, executionError
	}
	return executionResult, nil
}

// CreateSignedTag records a GPG-signed annotated tag pointing at the provided reference.
func (manager *RepositoryManager) CreateSignedTag(executionContext context.Context, repositoryPath string, tagName string, message string, reference string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedTag, tagError := requireValue(tagName, ErrTagNameRequired)
	if tagError != nil {
		return tagError
	}
	trimmedMessage, messageError := requireValue(message, ErrCommitMessageRequired)
	if messageError != nil {
		return messageError
	}
	trimmedReference, referenceError := requireValue(reference, ErrReferenceRequired)
	if referenceError != nil {
		return referenceError
	}

	_, tagCreationError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        []string{gitTagSubcommandConstant, gitSignFlagConstant, gitMessageFlagConstant, trimmedMessage, trimmedTag, trimmedReference},
		WorkingDirectory: trimmedPath,
	})
	return tagCreationError
}

// PushRefspec pushes the provided refspec to the named remote.
func (manager *RepositoryManager) PushRefspec(executionContext context.Context, repositoryPath string, remoteName string, refspec string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedRemote, remoteError := requireValue(remoteName, ErrRemoteNameRequired)
	if remoteError != nil {
		return remoteError
	}
	trimmedRefspec, refspecError := requireValue(refspec, ErrReferenceRequired)
	if refspecError != nil {
		return refspecError
	}

	_, pushError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitPushSubcommandConstant, trimmedRemote, trimmedRefspec},
		WorkingDirectory:     trimmedPath,
		EnvironmentVariables: nonInteractiveEnvironment(),
	})
	return pushError
}

// PushTag pushes the named tag to the remote.
func (manager *RepositoryManager) PushTag(executionContext context.Context, repositoryPath string, remoteName string, tagName string) error {
	trimmedTag, tagError := requireValue(tagName, ErrTagNameRequired)
	if tagError != nil {
		return tagError
	}
	return manager.PushRefspec(executionContext, repositoryPath, remoteName, gitTagReferencePrefixConstant+trimmedTag)
}

// Fetch retrieves the named reference from the remote.
func (manager *RepositoryManager) Fetch(executionContext context.Context, repositoryPath string, remoteName string, reference string) error {
	trimmedPath, pathError := requireValue(repositoryPath, ErrRepositoryPathRequired)
	if pathError != nil {
		return pathError
	}
	trimmedRemote, remoteError := requireValue(remoteName, ErrRemoteNameRequired)
	if remoteError != nil {
		return remoteError
	}
	trimmedReference, referenceError := requireValue(reference, ErrReferenceRequired)
	if referenceError != nil {
		return referenceError
	}

	_, fetchError := manager.executor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:            []string{gitFetchSubcommandConstant, trimmedRemote, trimmedReference},
		WorkingDirectory:     trimmedPath,
		EnvironmentVariables: nonInteractiveEnvironment(),
	})
	return fetchError
}

func nonInteractiveEnvironment() map[string]string {
	return map[string]string{gitTerminalPromptEnvironmentNameConstant: gitTerminalPromptDisabledValueConstant}
}

func requireValue(value string, missingError error) (string, error) {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return "", missingError
	}
	return trimmed, nil
}

func requirePaths(paths []string) ([]string, error) {
	trimmedPaths := make([]string, 0, len(paths))
	for _, candidate := range paths {
		trimmed := strings.TrimSpace(candidate)
		if len(trimmed) == 0 {
			continue
		}
		trimmedPaths = append(trimmedPaths, trimmed)
	}
	if len(trimmedPaths) == 0 {
		return nil, ErrPathsRequired
	}
	return trimmedPaths, nil
}
