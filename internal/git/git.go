package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/bashhack/devboot/internal/common"
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/platform"
	"github.com/bashhack/devboot/internal/workspace"
)

// IgnoreSource produces the full contents of an ignore file for a language.
type IgnoreSource interface {
	IgnoreFile(ctx context.Context, language string) ([]byte, error)
}

// RepositoryConfig controls how a Repository performs its side effects.
type RepositoryConfig struct {
	// DryRun prints commands and file writes instead of performing them.
	DryRun bool

	// AssumeYes skips the confirmation before removing existing repository
	// metadata.
	AssumeYes bool
}

// Options describes one ConfigureGit request.
type Options struct {
	// Scope is the configuration store written to. Only ScopeLocal
	// re-initializes the repository and writes the ignore file.
	Scope platform.Scope

	// Language selects the ignore template. Empty skips the ignore file.
	Language string

	// Identity fills user.name and user.email in the defaults.
	Identity Identity

	// Overrides replace defaults key by key.
	Overrides *confmap.Map
}

// Repository (re)initializes the git repository in the working directory and
// applies configuration profiles to it.
type Repository struct {
	env        *platform.Environment
	config     RepositoryConfig
	logger     common.Logger
	executor   CommandExecutor
	interactor UserInteractor
	ignore     IgnoreSource
}

// NewRepository creates a Repository with default dependencies.
// ignore may be nil when no ignore file will be requested.
func NewRepository(env *platform.Environment, config RepositoryConfig, logger common.Logger, ignore IgnoreSource) *Repository {
	if logger == nil {
		logger = common.NopLogger{}
	}

	var executor CommandExecutor
	if config.DryRun {
		executor = NewDryRunExecutor(logger)
	} else {
		executor = NewExecExecutor()
	}

	var interactor UserInteractor
	if config.AssumeYes || config.DryRun {
		interactor = NewAssumeYesInteractor()
	} else {
		interactor = NewConsoleInteractor(logger)
	}

	return NewRepositoryWithDeps(env, config, logger, executor, interactor, ignore)
}

// NewRepositoryWithDeps creates a Repository with custom dependencies
func NewRepositoryWithDeps(
	env *platform.Environment,
	config RepositoryConfig,
	logger common.Logger,
	executor CommandExecutor,
	interactor UserInteractor,
	ignore IgnoreSource,
) *Repository {
	if logger == nil {
		logger = common.NopLogger{}
	}
	return &Repository{
		env:        env,
		config:     config,
		logger:     logger,
		executor:   executor,
		interactor: interactor,
		ignore:     ignore,
	}
}

// Configure runs the full git bootstrap for opts.Scope. At local scope the
// repository is re-initialized and, when a language is given, the ignore
// file is rewritten. At every scope the merged configuration is applied.
func (r *Repository) Configure(ctx context.Context, opts Options) error {
	scope := opts.Scope
	if scope == "" {
		scope = platform.ScopeLocal
	}

	if scope == platform.ScopeLocal {
		if err := r.Reinitialize(ctx); err != nil {
			return err
		}
		if opts.Language != "" {
			if err := r.WriteIgnore(ctx, opts.Language); err != nil {
				return err
			}
		}
	}

	merged := confmap.Merge(Defaults(r.env, opts.Identity), opts.Overrides)
	return r.Apply(ctx, scope, merged)
}

// Reinitialize removes any existing .git directory in the working directory
// and runs git init on the default branch. A missing .git is not an error.
func (r *Repository) Reinitialize(ctx context.Context) error {
	gitDir := filepath.Join(r.env.WorkDir(), ".git")

	if _, err := os.Lstat(gitDir); err == nil {
		if !r.interactor.PromptYesNo("Remove existing repository metadata at " + gitDir + "?") {
			return errors.Wrapf(errors.ErrAborted, "kept existing repository at %s", gitDir)
		}
		if r.config.DryRun {
			r.logger.StatusMessage("  would remove %s", gitDir)
		} else {
			if err := os.RemoveAll(gitDir); err != nil {
				return errors.Wrapf(err, "failed to remove %s", gitDir)
			}
			r.logger.Info("Removed existing repository metadata at %s", gitDir)
		}
	}

	if err := r.runGitCommand(ctx, "init", "--initial-branch="+DefaultBranch); err != nil {
		return err
	}

	r.logger.Success("Initialized git repository in %s on branch %s", r.env.WorkDir(), DefaultBranch)
	return nil
}

// WriteIgnore fetches the ignore template for language and overwrites
// .gitignore in the working directory.
func (r *Repository) WriteIgnore(ctx context.Context, language string) error {
	if r.ignore == nil {
		return errors.Wrap(errors.ErrInvalidConfiguration, "no ignore template source configured")
	}

	content, err := r.ignore.IgnoreFile(ctx, language)
	if err != nil {
		return err
	}

	path := filepath.Join(r.env.WorkDir(), ".gitignore")
	if r.config.DryRun {
		r.logger.StatusMessage("  would write %s (%d bytes)", path, len(content))
		return nil
	}

	if err := workspace.WriteFile(path, content); err != nil {
		return err
	}

	r.logger.Success("Wrote %s for %s", path, language)
	return nil
}

// Apply writes every key of m to the git configuration store at scope, in
// map order. Null values are skipped, which lets a profile drop a default.
//
// A key that git rejects with a non-zero exit is reported as a warning and
// the remaining keys are still applied. Failing to start git, or a canceled
// context, stops immediately.
func (r *Repository) Apply(ctx context.Context, scope platform.Scope, m *confmap.Map) error {
	applied, rejected := 0, 0
	for key, value := range m.All() {
		if value.IsNull() {
			r.logger.Info("Skipping git config %s: null value", key)
			continue
		}
		if err := r.runGitCommand(ctx, "config", scope.Flag(), key, value.Text()); err != nil {
			if ctx.Err() != nil || !isExitError(err) {
				return err
			}
			r.logger.WarningToUser("git rejected %s: %v", key, err)
			rejected++
			continue
		}
		r.logger.Info("Set git config %s %s", scope.Flag(), key)
		applied++
	}

	if rejected > 0 {
		r.logger.WarningToUser("Applied %d git settings at %s scope, %d rejected", applied, scope, rejected)
		return nil
	}
	r.logger.Success("Applied %d git settings at %s scope", applied, scope)
	return nil
}

// isExitError reports whether err records git running and exiting non-zero.
func isExitError(err error) bool {
	var exitErr *exec.ExitError
	return errors.As(err, &exitErr)
}

// runGitCommand executes a git command in the working directory.
func (r *Repository) runGitCommand(ctx context.Context, args ...string) error {
	baseArgs := []string{"-C", r.env.WorkDir()}
	cmd := exec.CommandContext(ctx, "git", append(baseArgs, args...)...)
	cmd.Dir = r.env.WorkDir()
	return r.executor.Execute(ctx, cmd)
}
