// Package cli assembles the shipcut command hierarchy, loading configuration
// through Viper and constructing the shared zap logger before subcommands run.
package cli
