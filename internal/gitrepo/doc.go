// Package gitrepo provides typed git repository operations built on the
// shared shell executor. The RepositoryManager hides argument construction
// for the subcommands the promotion workflow relies on.
package gitrepo
