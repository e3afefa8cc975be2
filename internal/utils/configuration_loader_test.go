package utils_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shipcut/shipcut/internal/utils"
)

type loaderTestConfiguration struct {
	Common struct {
		LogLevel  string `mapstructure:"log_level"`
		LogFormat string `mapstructure:"log_format"`
	} `mapstructure:"common"`
	Promote struct {
		DevelopmentBranch string `mapstructure:"development_branch"`
		DeliveryBranch    string `mapstructure:"delivery_branch"`
		Remote            string `mapstructure:"remote"`
	} `mapstructure:"promote"`
}

func TestLoadConfigurationLayersSources(testInstance *testing.T) {
	embeddedConfiguration := []byte("common:\n  log_level: info\npromote:\n  development_branch: main\n  remote: origin\n")
	fileConfiguration := "promote:\n  development_branch: trunk\n  delivery_branch: delivery\n"

	configurationDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(configurationDirectory, "config.yaml")
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte(fileConfiguration), 0o644))

	loader := utils.NewConfigurationLoader("config", "yaml", "SHIPCUT", []string{configurationDirectory})
	loader.SetEmbeddedConfiguration(embeddedConfiguration)

	var loadedTarget loaderTestConfiguration
	loadedMetadata, loadError := loader.LoadConfiguration(configurationFilePath, map[string]any{"common.log_format": "structured"}, &loadedTarget)
	require.NoError(testInstance, loadError)

	require.Equal(testInstance, configurationFilePath, loadedMetadata.ConfigFileUsed)
	require.Equal(testInstance, "info", loadedTarget.Common.LogLevel)
	require.Equal(testInstance, "structured", loadedTarget.Common.LogFormat)
	require.Equal(testInstance, "trunk", loadedTarget.Promote.DevelopmentBranch)
	require.Equal(testInstance, "delivery", loadedTarget.Promote.DeliveryBranch)
	require.Equal(testInstance, "origin", loadedTarget.Promote.Remote)
}

func TestLoadConfigurationWithoutFileUsesDefaults(testInstance *testing.T) {
	loader := utils.NewConfigurationLoader("config", "yaml", "SHIPCUT", []string{testInstance.TempDir()})

	var loadedTarget loaderTestConfiguration
	_, loadError := loader.LoadConfiguration("", map[string]any{
		"common.log_level":           "warn",
		"promote.development_branch": "main",
	}, &loadedTarget)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "warn", loadedTarget.Common.LogLevel)
	require.Equal(testInstance, "main", loadedTarget.Promote.DevelopmentBranch)
}

func TestLoadConfigurationAppliesEnvironmentOverride(testInstance *testing.T) {
	testInstance.Setenv("SHIPCUT_PROMOTE_REMOTE", "upstream")

	loader := utils.NewConfigurationLoader("config", "yaml", "SHIPCUT", []string{testInstance.TempDir()})
	loader.SetEmbeddedConfiguration([]byte("promote:\n  remote: origin\n"))

	var loadedTarget loaderTestConfiguration
	_, loadError := loader.LoadConfiguration("", nil, &loadedTarget)
	require.NoError(testInstance, loadError)
	require.Equal(testInstance, "upstream", loadedTarget.Promote.Remote)
}

func TestLoadConfigurationRejectsMalformedFile(testInstance *testing.T) {
	configurationDirectory := testInstance.TempDir()
	configurationFilePath := filepath.Join(configurationDirectory, "config.yaml")
	require.NoError(testInstance, os.WriteFile(configurationFilePath, []byte("promote: ["), 0o644))

	loader := utils.NewConfigurationLoader("config", "yaml", "SHIPCUT", []string{configurationDirectory})

	var loadedTarget loaderTestConfiguration
	_, loadError := loader.LoadConfiguration(configurationFilePath, nil, &loadedTarget)
	require.Error(testInstance, loadError)
}
