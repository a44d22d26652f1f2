// Package git initializes repositories and applies git configuration for
// devboot.
//
// All git invocations go through the CommandExecutor interface. The default
// ExecExecutor runs the git binary; DryRunExecutor prints the command lines
// instead, and tests substitute a recording mock.
//
// # Core Components
//
// - Repository: re-initializes the repository, writes .gitignore and applies configuration
// - Defaults: the baseline configuration map, with OS-dependent line endings and credential helper
// - CommandExecutor: interface for executing git commands
// - UserInteractor: confirms removal of existing repository metadata
//
// # Usage
//
//	repo := git.NewRepository(env, git.RepositoryConfig{AssumeYes: true}, log, fetcher)
//	err := repo.Configure(ctx, git.Options{
//	    Scope:    platform.ScopeLocal,
//	    Language: "go",
//	    Identity: git.Identity{Name: "Jane Doe", Email: "jane@example.com"},
//	})
//
// At local scope Configure removes .git (a missing directory is fine), runs
// git init on the main branch and, when a language is given, rewrites
// .gitignore. At every scope it then runs one git config invocation per
// merged key, in order. Failures are returned unchanged and nothing is retried.
package git
