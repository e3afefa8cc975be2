// Package utils hosts shared infrastructure for the CLI: the Viper-backed
// configuration loader, the zap logger factory, command context helpers, and
// the interactive commit message prompter.
package utils
