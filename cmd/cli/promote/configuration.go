package promote

import "strings"

const (
	defaultDevelopmentBranchConstant = "main"
	defaultDeliveryBranchConstant    = "delivery"
	defaultRemoteNameConstant        = "origin"
	defaultIgnoreFileNameConstant    = ".shipcut-ignore"

	developmentBranchConfigurationKeyConstant = "development_branch"
	deliveryBranchConfigurationKeyConstant    = "delivery_branch"
	remoteConfigurationKeyConstant            = "remote"
	ignoreFileConfigurationKeyConstant        = "ignore_file"
	configurationKeySeparatorConstant         = "."
)

// CommandConfiguration captures configuration values for the promote command.
type CommandConfiguration struct {
	DevelopmentBranch string `mapstructure:"development_branch"`
	DeliveryBranch    string `mapstructure:"delivery_branch"`
	Remote            string `mapstructure:"remote"`
	IgnoreFile        string `mapstructure:"ignore_file"`
}

// DefaultCommandConfiguration provides baseline promote command settings.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		DevelopmentBranch: defaultDevelopmentBranchConstant,
		DeliveryBranch:    defaultDeliveryBranchConstant,
		Remote:            defaultRemoteNameConstant,
		IgnoreFile:        defaultIgnoreFileNameConstant,
	}
}

// DefaultConfigurationValues exposes the promote defaults keyed under the provided prefix.
func DefaultConfigurationValues(configurationPrefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	return map[string]any{
		configurationPrefix + configurationKeySeparatorConstant + developmentBranchConfigurationKeyConstant: defaults.DevelopmentBranch,
		configurationPrefix + configurationKeySeparatorConstant + deliveryBranchConfigurationKeyConstant:    defaults.DeliveryBranch,
		configurationPrefix + configurationKeySeparatorConstant + remoteConfigurationKeyConstant:            defaults.Remote,
		configurationPrefix + configurationKeySeparatorConstant + ignoreFileConfigurationKeyConstant:        defaults.IgnoreFile,
	}
}

// Sanitize trims configuration values and fills in missing defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	sanitized := configuration
	sanitized.DevelopmentBranch = valueOrDefault(configuration.DevelopmentBranch, defaults.DevelopmentBranch)
	sanitized.DeliveryBranch = valueOrDefault(configuration.DeliveryBranch, defaults.DeliveryBranch)
	sanitized.Remote = valueOrDefault(configuration.Remote, defaults.Remote)
	sanitized.IgnoreFile = valueOrDefault(configuration.IgnoreFile, defaults.IgnoreFile)
	return sanitized
}

func valueOrDefault(candidate string, defaultValue string) string {
	trimmed := strings.TrimSpace(candidate)
	if len(trimmed) == 0 {
		return defaultValue
	}
	return trimmed
}
