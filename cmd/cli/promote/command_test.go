package promote_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	promotecmd "github.com/shipcut/shipcut/cmd/cli/promote"
	"github.com/shipcut/shipcut/internal/execshell"
)

type scriptedGitExecutor struct {
	executed      [][]string
	currentBranch string
	existingRefs  map[string]bool
}

func newScriptedGitExecutor() *scriptedGitExecutor {
	return &scriptedGitExecutor{
		currentBranch: "main",
		existingRefs:  map[string]bool{},
	}
}

func (executor *scriptedGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	arguments := append([]string(nil), details.Arguments...)
	executor.executed = append(executor.executed, arguments)

	switch arguments[0] {
	case "status":
		return execshell.ExecutionResult{}, nil
	case "rev-parse":
		if arguments[1] == "--abbrev-ref" {
			return execshell.ExecutionResult{StandardOutput: executor.currentBranch + "\n"}, nil
		}
		if arguments[1] == "--quiet" {
			reference := arguments[len(arguments)-1]
			if executor.existingRefs[reference] {
				return execshell.ExecutionResult{StandardOutput: reference + "\n"}, nil
			}
			failedResult := execshell.ExecutionResult{ExitCode: 1}
			return failedResult, execshell.CommandFailedError{
				Command: execshell.ShellCommand{Name: execshell.CommandGit, Details: details},
				Result:  failedResult,
			}
		}
		return execshell.ExecutionResult{StandardOutput: "abc1234def\n"}, nil
	default:
		return execshell.ExecutionResult{}, nil
	}
}

func (executor *scriptedGitExecutor) recordedSubcommands() []string {
	subcommands := make([]string, 0, len(executor.executed))
	for _, arguments := range executor.executed {
		subcommands = append(subcommands, arguments[0])
	}
	return subcommands
}

func prepareRepositoryDirectory(testInstance *testing.T) string {
	repositoryPath := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryPath, ".shipcut-ignore"), []byte("secrets.txt\n"), 0o644))
	return repositoryPath
}

func buildPromoteCommand(testInstance *testing.T, executor *scriptedGitExecutor, repositoryPath string) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	builder := promotecmd.CommandBuilder{
		GitExecutor:      executor,
		WorkingDirectory: repositoryPath,
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	standardOutput := &bytes.Buffer{}
	standardError := &bytes.Buffer{}
	command.SetOut(standardOutput)
	command.SetErr(standardError)
	command.SetContext(context.Background())
	return command, standardOutput, standardError
}

func TestPromoteCommandCompletesLocalRun(testInstance *testing.T) {
	executor := newScriptedGitExecutor()
	command, standardOutput, _ := buildPromoteCommand(testInstance, executor, prepareRepositoryDirectory(testInstance))
	command.SetArgs([]string{"c1", "v1.0", "--no-push", "--message", "Release v1.0"})

	require.NoError(testInstance, command.Execute())

	recordedSubcommands := executor.recordedSubcommands()
	require.Contains(testInstance, recordedSubcommands, "cherry-pick")
	require.Contains(testInstance, recordedSubcommands, "tag")
	require.NotContains(testInstance, recordedSubcommands, "push")
	require.NotContains(testInstance, recordedSubcommands, "fetch")
	require.Contains(testInstance, standardOutput.String(), "PROMOTED: delivery tagged v1.0, main tagged v1.0-dev (local only, delivery-local retained)")
}

func TestPromoteCommandPushesByDefault(testInstance *testing.T) {
	executor := newScriptedGitExecutor()
	command, standardOutput, _ := buildPromoteCommand(testInstance, executor, prepareRepositoryDirectory(testInstance))
	command.SetArgs([]string{"c1", "v1.0", "--message", "Release v1.0"})

	require.NoError(testInstance, command.Execute())

	pushCount := 0
	for _, arguments := range executor.executed {
		if arguments[0] == "push" {
			pushCount++
		}
	}
	require.Equal(testInstance, 3, pushCount)
	require.Contains(testInstance, executor.recordedSubcommands(), "fetch")
	require.Contains(testInstance, standardOutput.String(), "(pushed to origin)")
}

func TestPromoteCommandHonorsRemoteOverride(testInstance *testing.T) {
	executor := newScriptedGitExecutor()
	command, standardOutput, _ := buildPromoteCommand(testInstance, executor, prepareRepositoryDirectory(testInstance))
	command.SetArgs([]string{"c1", "v1.0", "--remote", "upstream", "--message", "Release v1.0"})

	require.NoError(testInstance, command.Execute())

	for _, arguments := range executor.executed {
		if arguments[0] == "push" || arguments[0] == "fetch" {
			require.Equal(testInstance, "upstream", arguments[1])
		}
	}
	require.Contains(testInstance, executor.executed, []string{"branch", "delivery-local", "upstream/delivery"})
	require.Contains(testInstance, standardOutput.String(), "(pushed to upstream)")
}

func TestPromoteCommandContinueRunFinalizes(testInstance *testing.T) {
	executor := newScriptedGitExecutor()
	command, standardOutput, _ := buildPromoteCommand(testInstance, executor, prepareRepositoryDirectory(testInstance))
	command.SetArgs([]string{"--continue", "v1.0"})

	require.NoError(testInstance, command.Execute())

	cherryPickArguments := [][]string{}
	for _, arguments := range executor.executed {
		if arguments[0] == "cherry-pick" {
			cherryPickArguments = append(cherryPickArguments, arguments)
		}
	}
	require.Equal(testInstance, [][]string{{"cherry-pick", "--continue"}}, cherryPickArguments)
	require.Contains(testInstance, standardOutput.String(), "PROMOTED: delivery tagged v1.0, main tagged v1.0-dev")
}

func TestPromoteCommandArgumentValidation(testInstance *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedMessage string
	}{
		{name: "no_arguments", arguments: []string{}, expectedMessage: "start commit and tag name are required"},
		{name: "single_argument", arguments: []string{"c1"}, expectedMessage: "start commit and tag name are required"},
		{name: "continue_without_tag", arguments: []string{"--continue"}, expectedMessage: "tag name is required"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			executor := newScriptedGitExecutor()
			command, _, _ := buildPromoteCommand(subtest, executor, prepareRepositoryDirectory(subtest))
			command.SetArgs(testCase.arguments)

			executionError := command.Execute()
			require.Error(subtest, executionError)
			require.Contains(subtest, executionError.Error(), testCase.expectedMessage)
			require.Empty(subtest, executor.executed)
		})
	}
}

func TestPromoteCommandRejectsUnknownFlag(testInstance *testing.T) {
	executor := newScriptedGitExecutor()
	command, _, _ := buildPromoteCommand(testInstance, executor, prepareRepositoryDirectory(testInstance))
	command.SetArgs([]string{"c1", "v1.0", "--force-push"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unknown flag")
	require.Empty(testInstance, executor.executed)
}

func TestPromoteCommandSurfacesConflictGuidance(testInstance *testing.T) {
	conflictExecutor := &conflictingGitExecutor{scriptedGitExecutor: newScriptedGitExecutor()}

	builder := promotecmd.CommandBuilder{
		GitExecutor:      conflictExecutor,
		WorkingDirectory: prepareRepositoryDirectory(testInstance),
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	standardOutput := &bytes.Buffer{}
	standardError := &bytes.Buffer{}
	command.SetOut(standardOutput)
	command.SetErr(standardError)
	command.SetContext(context.Background())
	command.SetArgs([]string{"c1", "v1.0", "--no-push", "--message", "Release v1.0"})

	executionError := command.Execute()
	require.Error(testInstance, executionError)
	require.Contains(testInstance, standardError.String(), "--continue")
	require.Contains(testInstance, standardError.String(), "could not apply")
}

type conflictingGitExecutor struct {
	*scriptedGitExecutor
}

func (executor *conflictingGitExecutor) ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	if len(details.Arguments) > 0 && details.Arguments[0] == "cherry-pick" && !strings.Contains(strings.Join(details.Arguments, " "), "--continue") {
		failedResult := execshell.ExecutionResult{ExitCode: 1, StandardError: "error: could not apply abc1234def\n"}
		executor.executed = append(executor.executed, details.Arguments)
		return failedResult, execshell.CommandFailedError{
			Command: execshell.ShellCommand{Name: execshell.CommandGit, Details: details},
			Result:  failedResult,
		}
	}
	return executor.scriptedGitExecutor.ExecuteGit(executionContext, details)
}

func TestCleanupCommandDeletesLeftovers(testInstance *testing.T) {
	executor := newScriptedGitExecutor()
	executor.existingRefs["refs/heads/main-squash"] = true
	executor.existingRefs["refs/heads/delivery-local"] = true

	builder := promotecmd.CleanupCommandBuilder{
		GitExecutor:      executor,
		WorkingDirectory: testInstance.TempDir(),
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	standardOutput := &bytes.Buffer{}
	command.SetOut(standardOutput)
	command.SetErr(&bytes.Buffer{})
	command.SetContext(context.Background())
	command.SetArgs([]string{})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, standardOutput.String(), "DELETED: main-squash, delivery-local")
}

func TestCleanupCommandReportsCleanRepository(testInstance *testing.T) {
	executor := newScriptedGitExecutor()

	builder := promotecmd.CleanupCommandBuilder{
		GitExecutor:      executor,
		WorkingDirectory: testInstance.TempDir(),
	}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	standardOutput := &bytes.Buffer{}
	command.SetOut(standardOutput)
	command.SetErr(&bytes.Buffer{})
	command.SetContext(context.Background())
	command.SetArgs([]string{})

	require.NoError(testInstance, command.Execute())
	require.Contains(testInstance, standardOutput.String(), "CLEAN: no transient branches found")
}
