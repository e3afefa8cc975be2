package promote

import (
	"context"

	"go.uber.org/zap"
)

// CleanupOptions configures the removal of leftover transient branches.
type CleanupOptions struct {
	RepositoryPath    string
	DevelopmentBranch string
	DeliveryBranch    string
}

func (options CleanupOptions) sanitized() CleanupOptions {
	sanitized := options
	sanitized.DevelopmentBranch = valueOrDefault(options.DevelopmentBranch, defaultDevelopmentBranchConstant)
	sanitized.DeliveryBranch = valueOrDefault(options.DeliveryBranch, defaultDeliveryBranchConstant)
	if len(valueOrDefault(options.RepositoryPath, "")) == 0 {
		sanitized.RepositoryPath = "."
	}
	return sanitized
}

// CleanupResult lists what the cleanup run removed.
type CleanupResult struct {
	AbortedCherryPick bool
	DeletedBranches   []string
}

// CleanupService removes transient branches left behind by interrupted
// promotion runs, aborting an unfinished cherry-pick first when one exists.
type CleanupService struct {
	logger     *zap.Logger
	repository GitRepository
}

// NewCleanupService validates the dependencies and constructs a CleanupService.
func NewCleanupService(logger *zap.Logger, repository GitRepository) (*CleanupService, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if repository == nil {
		return nil, ErrRepositoryNotConfigured
	}
	return &CleanupService{logger: logger, repository: repository}, nil
}

// Cleanup returns the repository to the development branch and deletes any
// transient promotion branches that still exist.
func (service *CleanupService) Cleanup(executionContext context.Context, options CleanupOptions) (CleanupResult, error) {
	sanitizedOptions := options.sanitized()
	cleanupResult := CleanupResult{}

	inProgress, progressError := service.repository.CherryPickInProgress(executionContext, sanitizedOptions.RepositoryPath)
	if progressError != nil {
		return CleanupResult{}, progressError
	}
	if inProgress {
		if abortError := service.repository.AbortCherryPick(executionContext, sanitizedOptions.RepositoryPath); abortError != nil {
			return CleanupResult{}, abortError
		}
		cleanupResult.AbortedCherryPick = true
	}

	transientBranches := []string{
		sanitizedOptions.DevelopmentBranch + squashBranchSuffixConstant,
		sanitizedOptions.DeliveryBranch + mirrorBranchSuffixConstant,
	}

	currentBranch, branchError := service.repository.CurrentBranch(executionContext, sanitizedOptions.RepositoryPath)
	if branchError != nil {
		return CleanupResult{}, branchError
	}
	for _, transientBranch := range transientBranches {
		if currentBranch != transientBranch {
			continue
		}
		if checkoutError := service.repository.Checkout(executionContext, sanitizedOptions.RepositoryPath, sanitizedOptions.DevelopmentBranch); checkoutError != nil {
			return CleanupResult{}, checkoutError
		}
		break
	}

	for _, transientBranch := range transientBranches {
		exists, existsError := service.repository.BranchExists(executionContext, sanitizedOptions.RepositoryPath, transientBranch)
		if existsError != nil {
			return CleanupResult{}, existsError
		}
		if !exists {
			continue
		}
		if deleteError := service.repository.DeleteBranch(executionContext, sanitizedOptions.RepositoryPath, transientBranch, true); deleteError != nil {
			return CleanupResult{}, deleteError
		}
		cleanupResult.DeletedBranches = append(cleanupResult.DeletedBranches, transientBranch)
	}

	service.logger.Info("transient branch cleanup finished",
		zap.Strings("deleted_branches", cleanupResult.DeletedBranches),
		zap.Bool("aborted_cherry_pick", cleanupResult.AbortedCherryPick))
	return cleanupResult, nil
}
