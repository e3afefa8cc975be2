// Package flags provides helpers for binding the shared promotion flags to
// Cobra commands and reading back their resolved values.
package flags

import (
	"strings"

	"github.com/spf13/cobra"
)

const (
	// ContinueFlagName resumes a promotion after conflict resolution.
	ContinueFlagName = "continue"
	// NoPushFlagName skips the network pushes at the end of a run.
	NoPushFlagName = "no-push"
	// RemoteFlagName overrides the configured remote name.
	RemoteFlagName = "remote"
	// MessageFlagName supplies the squash commit message up front.
	MessageFlagName = "message"

	continueFlagUsageConstant = "Resume the promotion after resolving cherry-pick conflicts."
	noPushFlagUsageConstant   = "Complete the promotion locally without pushing branches or tags."
	remoteFlagUsageConstant   = "Name of the remote that receives the delivery branch and tags."
	messageFlagUsageConstant  = "Commit message for the squash commit; prompts when omitted."
	messageFlagShorthand      = "m"
)

// ExecutionDefaults describes default promotion flag values.
type ExecutionDefaults struct {
	Remote string
}

// ExecutionFlagValues captures the resolved promotion flags along with
// whether each one was set explicitly on the command line.
type ExecutionFlagValues struct {
	Continue    bool
	ContinueSet bool
	NoPush      bool
	NoPushSet   bool
	Remote      string
	RemoteSet   bool
	Message     string
	MessageSet  bool
}

// BindExecutionFlags attaches the shared promotion flags to the provided command.
func BindExecutionFlags(command *cobra.Command, defaults ExecutionDefaults) {
	if command == nil {
		return
	}

	flagSet := command.Flags()
	flagSet.Bool(ContinueFlagName, false, continueFlagUsageConstant)
	flagSet.Bool(NoPushFlagName, false, noPushFlagUsageConstant)
	flagSet.String(RemoteFlagName, strings.TrimSpace(defaults.Remote), remoteFlagUsageConstant)
	flagSet.StringP(MessageFlagName, messageFlagShorthand, "", messageFlagUsageConstant)
}

// ResolveExecutionFlags reads the promotion flag values from the command.
// The boolean result reports whether the command carried the flags at all.
func ResolveExecutionFlags(command *cobra.Command) (ExecutionFlagValues, bool) {
	if command == nil {
		return ExecutionFlagValues{}, false
	}

	flagSet := command.Flags()
	if flagSet.Lookup(ContinueFlagName) == nil {
		return ExecutionFlagValues{}, false
	}

	resolvedValues := ExecutionFlagValues{}
	resolvedValues.Continue, _ = flagSet.GetBool(ContinueFlagName)
	resolvedValues.ContinueSet = flagSet.Changed(ContinueFlagName)
	resolvedValues.NoPush, _ = flagSet.GetBool(NoPushFlagName)
	resolvedValues.NoPushSet = flagSet.Changed(NoPushFlagName)
	resolvedValues.Remote, _ = flagSet.GetString(RemoteFlagName)
	resolvedValues.RemoteSet = flagSet.Changed(RemoteFlagName)
	resolvedValues.Message, _ = flagSet.GetString(MessageFlagName)
	resolvedValues.MessageSet = flagSet.Changed(MessageFlagName)
	return resolvedValues, true
}
