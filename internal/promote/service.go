package promote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/shipcut/shipcut/internal/execshell"
)

// RunMode distinguishes a fresh promotion run from the resumption of a run
// that stopped on cherry-pick conflicts.
type RunMode string

const (
	// RunModeFresh starts a new promotion from the configured start commit.
	RunModeFresh RunMode = "fresh"
	// RunModeResume finalizes a promotion after the operator resolved conflicts.
	RunModeResume RunMode = "resume"
)

const (
	loggerNotConfiguredMessageConstant     = "logger not configured"
	repositoryNotConfiguredMessageConstant = "git repository not configured"
	startCommitRequiredMessageConstant     = "start commit must be provided"
	tagNameRequiredMessageConstant         = "tag name must be provided"
	commitMessageUnavailableMessage        = "commit message not provided and no prompter configured"
	unknownRunModeMessageConstant          = "unknown run mode"
	worktreeDirtyMessageConstant           = "working tree has uncommitted changes"
	wrongBranchMessageConstant             = "promotion must start from the development branch"
	cherryPickInProgressMessageConstant    = "a cherry-pick is already in progress"
	transientBranchExistsMessageConstant   = "transient branch from a previous run still exists"
	cherryPickConflictMessageConstant      = "cherry-pick stopped on conflicts"

	defaultDevelopmentBranchConstant = "main"
	defaultDeliveryBranchConstant    = "delivery"
	defaultRemoteNameConstant        = "origin"
	defaultIgnoreFileNameConstant    = ".shipcut-ignore"

	squashBranchSuffixConstant       = "-squash"
	mirrorBranchSuffixConstant       = "-local"
	developmentTagSuffixConstant     = "-dev"
	remoteReferenceTemplateConstant  = "%s/%s"
	parentReferenceSuffixConstant    = "^"
	headReferenceConstant            = "HEAD"
	pushRefspecTemplateConstant      = "%s:%s"
	releaseMessageTemplateConstant   = "Release %s"
	developmentTagMessageTemplate    = "Release %s (development)"
	wrongBranchDetailTemplate        = "%w: expected %s, currently on %s"
	transientBranchDetailTemplate    = "%w: %s"
	cherryPickConflictDetailTemplate = "%w: %s"
)

// ErrLoggerNotConfigured indicates the service was built without a logger.
var ErrLoggerNotConfigured = errors.New(loggerNotConfiguredMessageConstant)

// ErrRepositoryNotConfigured indicates the service was built without a repository.
var ErrRepositoryNotConfigured = errors.New(repositoryNotConfiguredMessageConstant)

// ErrStartCommitRequired indicates a fresh run was requested without a start commit.
var ErrStartCommitRequired = errors.New(startCommitRequiredMessageConstant)

// ErrTagNameRequired indicates a run was requested without a tag name.
var ErrTagNameRequired = errors.New(tagNameRequiredMessageConstant)

// ErrCommitMessageUnavailable indicates no commit message could be obtained.
var ErrCommitMessageUnavailable = errors.New(commitMessageUnavailableMessage)

// ErrUnknownRunMode indicates an unsupported run mode value.
var ErrUnknownRunMode = errors.New(unknownRunModeMessageConstant)

// ErrWorktreeDirty indicates the repository has uncommitted changes.
var ErrWorktreeDirty = errors.New(worktreeDirtyMessageConstant)

// ErrWrongBranch indicates the repository is not on the development branch.
var ErrWrongBranch = errors.New(wrongBranchMessageConstant)

// ErrCherryPickInProgress indicates a fresh run found an unfinished cherry-pick.
var ErrCherryPickInProgress = errors.New(cherryPickInProgressMessageConstant)

// ErrTransientBranchExists indicates a leftover branch from an earlier run.
var ErrTransientBranchExists = errors.New(transientBranchExistsMessageConstant)

// ErrCherryPickConflict indicates the promotion stopped on cherry-pick conflicts.
var ErrCherryPickConflict = errors.New(cherryPickConflictMessageConstant)

// GitRepository exposes the repository operations the promotion workflow performs.
type GitRepository interface {
	CheckCleanWorktree(executionContext context.Context, repositoryPath string) (bool, error)
	CurrentBranch(executionContext context.Context, repositoryPath string) (string, error)
	ResolveCommit(executionContext context.Context, repositoryPath string, reference string) (string, error)
	CherryPickInProgress(executionContext context.Context, repositoryPath string) (bool, error)
	BranchExists(executionContext context.Context, repositoryPath string, branchName string) (bool, error)
	CreateBranch(executionContext context.Context, repositoryPath string, branchName string, startPoint string) error
	DeleteBranch(executionContext context.Context, repositoryPath string, branchName string, force bool) error
	Checkout(executionContext context.Context, repositoryPath string, branchName string) error
	RestorePathsFromBranch(executionContext context.Context, repositoryPath string, branchName string, paths []string) error
	RemovePaths(executionContext context.Context, repositoryPath string, paths []string) error
	UnstagePaths(executionContext context.Context, repositoryPath string, paths []string) error
	SoftReset(executionContext context.Context, repositoryPath string, reference string) error
	CreateSignedCommit(executionContext context.Context, repositoryPath string, message string) error
	AmendCommitKeepMessage(executionContext context.Context, repositoryPath string) error
	CherryPick(executionContext context.Context, repositoryPath string, reference string) (execshell.ExecutionResult, error)
	ContinueCherryPick(executionContext context.Context, repositoryPath string) (execshell.ExecutionResult, error)
	AbortCherryPick(executionContext context.Context, repositoryPath string) error
	CreateSignedTag(executionContext context.Context, repositoryPath string, tagName string, message string, reference string) error
	PushRefspec(executionContext context.Context, repositoryPath string, remoteName string, refspec string) error
	PushTag(executionContext context.Context, repositoryPath string, remoteName string, tagName string) error
	Fetch(executionContext context.Context, repositoryPath string, remoteName string, reference string) error
}

// CommitMessagePrompter obtains a squash commit message from the operator.
type CommitMessagePrompter interface {
	PromptCommitMessage(defaultMessage string) (string, error)
}

// Options configures a single promotion run.
type Options struct {
	RepositoryPath    string
	StartCommit       string
	TagName           string
	CommitMessage     string
	DevelopmentBranch string
	DeliveryBranch    string
	RemoteName        string
	IgnoreFileName    string
	Mode              RunMode
	PushEnabled       bool
}

func (options Options) sanitized() Options {
	sanitized := options
	sanitized.RepositoryPath = strings.TrimSpace(options.RepositoryPath)
	sanitized.StartCommit = strings.TrimSpace(options.StartCommit)
	sanitized.TagName = strings.TrimSpace(options.TagName)
	sanitized.CommitMessage = strings.TrimSpace(options.CommitMessage)
	sanitized.DevelopmentBranch = valueOrDefault(options.DevelopmentBranch, defaultDevelopmentBranchConstant)
	sanitized.DeliveryBranch = valueOrDefault(options.DeliveryBranch, defaultDeliveryBranchConstant)
	sanitized.RemoteName = valueOrDefault(options.RemoteName, defaultRemoteNameConstant)
	sanitized.IgnoreFileName = valueOrDefault(options.IgnoreFileName, defaultIgnoreFileNameConstant)
	if len(sanitized.RepositoryPath) == 0 {
		sanitized.RepositoryPath = "."
	}
	if len(sanitized.Mode) == 0 {
		sanitized.Mode = RunModeFresh
	}
	return sanitized
}

func (options Options) squashBranchName() string {
	return options.DevelopmentBranch + squashBranchSuffixConstant
}

func (options Options) mirrorBranchName() string {
	return options.DeliveryBranch + mirrorBranchSuffixConstant
}

func (options Options) developmentTagName() string {
	return options.TagName + developmentTagSuffixConstant
}

// mirrorStartPoint names the commit the delivery mirror is created from. A
// pushing run fetches first and mirrors the remote delivery branch so the
// cherry-pick lands on the current remote state; a local-only run has nothing
// fetched and mirrors the local delivery branch instead.
func (options Options) mirrorStartPoint() string {
	if options.PushEnabled {
		return fmt.Sprintf(remoteReferenceTemplateConstant, options.RemoteName, options.DeliveryBranch)
	}
	return options.DeliveryBranch
}

// Result captures the outcome of a completed promotion run.
type Result struct {
	ReleaseTagName       string
	DevelopmentTagName   string
	DeliveryCommit       string
	MirrorBranchName     string
	Pushed               bool
	MirrorBranchRetained bool
}

// ServiceDependencies enumerates the collaborators required by the Service.
type ServiceDependencies struct {
	Logger     *zap.Logger
	Repository GitRepository
	Prompter   CommitMessagePrompter
	Output     io.Writer
}

// Service sequences the git operations that promote development commits to
// the delivery branch.
type Service struct {
	logger     *zap.Logger
	repository GitRepository
	prompter   CommitMessagePrompter
	output     io.Writer
}

// NewService validates the dependencies and constructs a promotion Service.
func NewService(dependencies ServiceDependencies) (*Service, error) {
	if dependencies.Logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if dependencies.Repository == nil {
		return nil, ErrRepositoryNotConfigured
	}
	output := dependencies.Output
	if output == nil {
		output = os.Stderr
	}
	return &Service{
		logger:     dependencies.Logger,
		repository: dependencies.Repository,
		prompter:   dependencies.Prompter,
		output:     output,
	}, nil
}

// Promote runs the promotion workflow in the requested mode.
func (service *Service) Promote(executionContext context.Context, options Options) (Result, error) {
	sanitizedOptions := options.sanitized()
	switch sanitizedOptions.Mode {
	case RunModeFresh:
		return service.runFresh(executionContext, sanitizedOptions)
	case RunModeResume:
		return service.runResume(executionContext, sanitizedOptions)
	default:
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownRunMode, sanitizedOptions.Mode)
	}
}

func (service *Service) runFresh(executionContext context.Context, options Options) (Result, error) {
	if len(options.StartCommit) == 0 {
		return Result{}, ErrStartCommitRequired
	}
	if len(options.TagName) == 0 {
		return Result{}, ErrTagNameRequired
	}

	ignoreEntries, ignoreError := LoadIgnoreList(filepath.Join(options.RepositoryPath, options.IgnoreFileName))
	if ignoreError != nil {
		return Result{}, ignoreError
	}

	if preconditionError := service.checkFreshPreconditions(executionContext, options); preconditionError != nil {
		return Result{}, preconditionError
	}

	startCommit, resolveError := service.repository.ResolveCommit(executionContext, options.RepositoryPath, options.StartCommit)
	if resolveError != nil {
		return Result{}, resolveError
	}

	commitMessage, messageError := service.resolveCommitMessage(options)
	if messageError != nil {
		return Result{}, messageError
	}

	if options.PushEnabled {
		if fetchError := service.repository.Fetch(executionContext, options.RepositoryPath, options.RemoteName, options.DeliveryBranch); fetchError != nil {
			return Result{}, fetchError
		}
	}

	squashCommit, squashError := service.buildSquashCommit(executionContext, options, ignoreEntries, startCommit, commitMessage)
	if squashError != nil {
		return Result{}, squashError
	}

	if mirrorError := service.prepareDeliveryMirror(executionContext, options); mirrorError != nil {
		return Result{}, mirrorError
	}

	cherryPickResult, cherryPickError := service.repository.CherryPick(executionContext, options.RepositoryPath, squashCommit)
	if cherryPickError != nil {
		return Result{}, service.handleConflict(executionContext, options, cherryPickResult, cherryPickError)
	}

	service.logger.Info("cherry-pick applied cleanly",
		zap.String("squash_commit", squashCommit),
		zap.String("mirror_branch", options.mirrorBranchName()))
	return service.finalize(executionContext, options)
}

func (service *Service) runResume(executionContext context.Context, options Options) (Result, error) {
	if len(options.TagName) == 0 {
		return Result{}, ErrTagNameRequired
	}

	if unstageError := service.repository.UnstagePaths(executionContext, options.RepositoryPath, []string{options.IgnoreFileName}); unstageError != nil {
		return Result{}, unstageError
	}

	continueResult, continueError := service.repository.ContinueCherryPick(executionContext, options.RepositoryPath)
	if continueError != nil {
		return Result{}, service.handleConflict(executionContext, options, continueResult, continueError)
	}

	service.logger.Info("cherry-pick continuation succeeded",
		zap.String("mirror_branch", options.mirrorBranchName()))
	return service.finalize(executionContext, options)
}

func (service *Service) checkFreshPreconditions(executionContext context.Context, options Options) error {
	clean, worktreeError := service.repository.CheckCleanWorktree(executionContext, options.RepositoryPath)
	if worktreeError != nil {
		return worktreeError
	}
	if !clean {
		return ErrWorktreeDirty
	}

	currentBranch, branchError := service.repository.CurrentBranch(executionContext, options.RepositoryPath)
	if branchError != nil {
		return branchError
	}
	if currentBranch != options.DevelopmentBranch {
		return fmt.Errorf(wrongBranchDetailTemplate, ErrWrongBranch, options.DevelopmentBranch, currentBranch)
	}

	inProgress, progressError := service.repository.CherryPickInProgress(executionContext, options.RepositoryPath)
	if progressError != nil {
		return progressError
	}
	if inProgress {
		return ErrCherryPickInProgress
	}

	for _, transientBranch := range []string{options.squashBranchName(), options.mirrorBranchName()} {
		exists, existsError := service.repository.BranchExists(executionContext, options.RepositoryPath, transientBranch)
		if existsError != nil {
			return existsError
		}
		if exists {
			return fmt.Errorf(transientBranchDetailTemplate, ErrTransientBranchExists, transientBranch)
		}
	}
	return nil
}

func (service *Service) resolveCommitMessage(options Options) (string, error) {
	if len(options.CommitMessage) > 0 {
		return options.CommitMessage, nil
	}
	defaultMessage := fmt.Sprintf(releaseMessageTemplateConstant, options.TagName)
	if service.prompter == nil {
		return "", ErrCommitMessageUnavailable
	}
	promptedMessage, promptError := service.prompter.PromptCommitMessage(defaultMessage)
	if promptError != nil {
		return "", promptError
	}
	trimmedMessage := strings.TrimSpace(promptedMessage)
	if len(trimmedMessage) == 0 {
		return defaultMessage, nil
	}
	return trimmedMessage, nil
}

// buildSquashCommit collapses everything from the start commit to the
// development tip into one signed commit on the transient squash branch,
// with the ignored paths removed.
func (service *Service) buildSquashCommit(executionContext context.Context, options Options, ignoreEntries []string, startCommit string, commitMessage string) (string, error) {
	squashBranch := options.squashBranchName()
	if createError := service.repository.CreateBranch(executionContext, options.RepositoryPath, squashBranch, options.DevelopmentBranch); createError != nil {
		return "", createError
	}
	if checkoutError := service.repository.Checkout(executionContext, options.RepositoryPath, squashBranch); checkoutError != nil {
		return "", checkoutError
	}
	if len(ignoreEntries) > 0 {
		if removeError := service.repository.RemovePaths(executionContext, options.RepositoryPath, ignoreEntries); removeError != nil {
			return "", removeError
		}
	}
	if resetError := service.repository.SoftReset(executionContext, options.RepositoryPath, startCommit+parentReferenceSuffixConstant); resetError != nil {
		return "", resetError
	}
	if commitError := service.repository.CreateSignedCommit(executionContext, options.RepositoryPath, commitMessage); commitError != nil {
		return "", commitError
	}

	squashCommit, resolveError := service.repository.ResolveCommit(executionContext, options.RepositoryPath, headReferenceConstant)
	if resolveError != nil {
		return "", resolveError
	}
	service.logger.Info("squash commit created",
		zap.String("branch", squashBranch),
		zap.String("commit", squashCommit))
	return squashCommit, nil
}

func (service *Service) prepareDeliveryMirror(executionContext context.Context, options Options) error {
	mirrorBranch := options.mirrorBranchName()
	if createError := service.repository.CreateBranch(executionContext, options.RepositoryPath, mirrorBranch, options.mirrorStartPoint()); createError != nil {
		return createError
	}
	return service.repository.Checkout(executionContext, options.RepositoryPath, mirrorBranch)
}

// handleConflict preserves the run state for a later resume: the ignore file
// is restored from the squash branch, the captured git output and resolution
// guidance are written for the operator, and the transient branches stay.
func (service *Service) handleConflict(executionContext context.Context, options Options, cherryPickResult execshell.ExecutionResult, cherryPickError error) error {
	failedCommand := execshell.CommandFailedError{}
	if !errors.As(cherryPickError, &failedCommand) {
		return cherryPickError
	}

	if restoreError := service.repository.RestorePathsFromBranch(executionContext, options.RepositoryPath, options.squashBranchName(), []string{options.IgnoreFileName}); restoreError != nil {
		service.logger.Warn("ignore file restore failed after conflict", zap.Error(restoreError))
	}

	capturedOutput := strings.TrimSpace(cherryPickResult.StandardError)
	if len(capturedOutput) == 0 {
		capturedOutput = strings.TrimSpace(cherryPickResult.StandardOutput)
	}
	fmt.Fprint(service.output, conflictGuidance(options.mirrorBranchName(), capturedOutput))

	service.logger.Warn("promotion stopped on cherry-pick conflicts",
		zap.String("mirror_branch", options.mirrorBranchName()))
	return fmt.Errorf(cherryPickConflictDetailTemplate, ErrCherryPickConflict, options.mirrorBranchName())
}

// finalize amends the delivery commit to drop the ignore file, signs the
// release tags, pushes when enabled, and removes the transient branches.
func (service *Service) finalize(executionContext context.Context, options Options) (Result, error) {
	if unstageError := service.repository.UnstagePaths(executionContext, options.RepositoryPath, []string{options.IgnoreFileName}); unstageError != nil {
		return Result{}, unstageError
	}
	if amendError := service.repository.AmendCommitKeepMessage(executionContext, options.RepositoryPath); amendError != nil {
		return Result{}, amendError
	}

	deliveryCommit, resolveError := service.repository.ResolveCommit(executionContext, options.RepositoryPath, headReferenceConstant)
	if resolveError != nil {
		return Result{}, resolveError
	}

	releaseTag := options.TagName
	developmentTag := options.developmentTagName()
	releaseTagMessage := fmt.Sprintf(releaseMessageTemplateConstant, releaseTag)
	developmentTagMessage := fmt.Sprintf(developmentTagMessageTemplate, releaseTag)

	if tagError := service.repository.CreateSignedTag(executionContext, options.RepositoryPath, releaseTag, releaseTagMessage, headReferenceConstant); tagError != nil {
		return Result{}, tagError
	}
	if tagError := service.repository.CreateSignedTag(executionContext, options.RepositoryPath, developmentTag, developmentTagMessage, options.DevelopmentBranch); tagError != nil {
		return Result{}, tagError
	}

	if options.PushEnabled {
		refspec := fmt.Sprintf(pushRefspecTemplateConstant, options.mirrorBranchName(), options.DeliveryBranch)
		if pushError := service.repository.PushRefspec(executionContext, options.RepositoryPath, options.RemoteName, refspec); pushError != nil {
			return Result{}, pushError
		}
		if pushError := service.repository.PushTag(executionContext, options.RepositoryPath, options.RemoteName, releaseTag); pushError != nil {
			return Result{}, pushError
		}
		if pushError := service.repository.PushTag(executionContext, options.RepositoryPath, options.RemoteName, developmentTag); pushError != nil {
			return Result{}, pushError
		}
	}

	if checkoutError := service.repository.Checkout(executionContext, options.RepositoryPath, options.DevelopmentBranch); checkoutError != nil {
		return Result{}, checkoutError
	}
	if deleteError := service.repository.DeleteBranch(executionContext, options.RepositoryPath, options.squashBranchName(), true); deleteError != nil {
		return Result{}, deleteError
	}
	mirrorRetained := !options.PushEnabled
	if options.PushEnabled {
		if deleteError := service.repository.DeleteBranch(executionContext, options.RepositoryPath, options.mirrorBranchName(), true); deleteError != nil {
			return Result{}, deleteError
		}
	}

	service.logger.Info("promotion completed",
		zap.String("release_tag", releaseTag),
		zap.String("development_tag", developmentTag),
		zap.String("delivery_commit", deliveryCommit),
		zap.Bool("pushed", options.PushEnabled))

	return Result{
		ReleaseTagName:       releaseTag,
		DevelopmentTagName:   developmentTag,
		DeliveryCommit:       deliveryCommit,
		MirrorBranchName:     options.mirrorBranchName(),
		Pushed:               options.PushEnabled,
		MirrorBranchRetained: mirrorRetained,
	}, nil
}

func valueOrDefault(candidate string, defaultValue string) string {
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) == 0 {
		return defaultValue
	}
	return trimmed
}
