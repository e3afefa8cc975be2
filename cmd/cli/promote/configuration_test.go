package promote_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	promotecmd "github.com/shipcut/shipcut/cmd/cli/promote"
)

func TestDefaultCommandConfiguration(testInstance *testing.T) {
	defaults := promotecmd.DefaultCommandConfiguration()
	require.Equal(testInstance, "main", defaults.DevelopmentBranch)
	require.Equal(testInstance, "delivery", defaults.DeliveryBranch)
	require.Equal(testInstance, "origin", defaults.Remote)
	require.Equal(testInstance, ".shipcut-ignore", defaults.IgnoreFile)
}

func TestDefaultConfigurationValuesUsePrefix(testInstance *testing.T) {
	defaultValues := promotecmd.DefaultConfigurationValues("promote")
	require.Equal(testInstance, "main", defaultValues["promote.development_branch"])
	require.Equal(testInstance, "delivery", defaultValues["promote.delivery_branch"])
	require.Equal(testInstance, "origin", defaultValues["promote.remote"])
	require.Equal(testInstance, ".shipcut-ignore", defaultValues["promote.ignore_file"])
}

func TestSanitizeFillsMissingValues(testInstance *testing.T) {
	testCases := []struct {
		name          string
		configuration promotecmd.CommandConfiguration
		expected      promotecmd.CommandConfiguration
	}{
		{
			name:          "empty_configuration_gets_defaults",
			configuration: promotecmd.CommandConfiguration{},
			expected:      promotecmd.DefaultCommandConfiguration(),
		},
		{
			name: "whitespace_values_replaced",
			configuration: promotecmd.CommandConfiguration{
				DevelopmentBranch: "  trunk  ",
				DeliveryBranch:    "   ",
				Remote:            "upstream",
				IgnoreFile:        "",
			},
			expected: promotecmd.CommandConfiguration{
				DevelopmentBranch: "trunk",
				DeliveryBranch:    "delivery",
				Remote:            "upstream",
				IgnoreFile:        ".shipcut-ignore",
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			require.Equal(subtest, testCase.expected, testCase.configuration.Sanitize())
		})
	}
}
