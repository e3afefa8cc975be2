package promote

import (
	"go.uber.org/zap"

	"github.com/shipcut/shipcut/internal/execshell"
	"github.com/shipcut/shipcut/internal/gitrepo"
	promotesvc "github.com/shipcut/shipcut/internal/promote"
	"github.com/shipcut/shipcut/internal/ui"
)

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveRepository(logger *zap.Logger) (promotesvc.GitRepository, error) {
	executor, executorError := resolveGitExecutor(builder.GitExecutor, logger, builder.humanReadableLoggingEnabled())
	if executorError != nil {
		return nil, executorError
	}
	return gitrepo.NewRepositoryManager(executor)
}

func (builder *CommandBuilder) humanReadableLoggingEnabled() bool {
	if builder.HumanReadableLoggingProvider == nil {
		return false
	}
	return builder.HumanReadableLoggingProvider()
}

// resolveGitExecutor returns the provided executor or constructs a shell-backed default.
func resolveGitExecutor(existing gitrepo.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (gitrepo.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	return execshell.NewShellExecutor(logger, commandRunner, humanReadableLogging)
}

// resolveObservedGitExecutor constructs a shell-backed executor that reports
// command lifecycle events through the console observer. The executor itself
// stays on structured diagnostics so messages are not emitted twice.
func resolveObservedGitExecutor(existing gitrepo.GitExecutor, logger *zap.Logger, humanReadableLogging bool) (gitrepo.GitExecutor, error) {
	if existing != nil {
		return existing, nil
	}

	commandRunner := execshell.NewOSCommandRunner()
	shellExecutor, creationError := execshell.NewShellExecutor(logger, commandRunner, false)
	if creationError != nil {
		return nil, creationError
	}
	if humanReadableLogging {
		shellExecutor.SetCommandEventObserver(ui.NewConsoleCommandEventLogger(logger))
	}
	return shellExecutor, nil
}
