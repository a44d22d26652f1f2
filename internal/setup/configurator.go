package setup

import (
	"context"

	"github.com/bashhack/devboot/internal/common"
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/editor"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/git"
	"github.com/bashhack/devboot/internal/platform"
	"github.com/bashhack/devboot/internal/workspace"
)

// GitConfigurer applies the git bootstrap.
type GitConfigurer interface {
	Configure(ctx context.Context, opts git.Options) error
}

// EditorWriter writes editor settings and keybindings.
type EditorWriter interface {
	WriteSettings(scope platform.Scope, overrides *confmap.Map) (string, error)
	WriteKeybindings(extra []editor.Keybinding) (string, error)
}

// Plan is the full set of inputs for Bootstrap.
type Plan struct {
	Folders       []string
	GitScope      platform.Scope
	Language      string
	Identity      git.Identity
	GitConfig     *confmap.Map
	SettingsScope platform.Scope
	Settings      *confmap.Map
	Keybindings   []editor.Keybinding
}

// Configurator owns the Environment and runs each bootstrap step against it.
type Configurator struct {
	env    *platform.Environment
	git    GitConfigurer
	editor EditorWriter
	logger common.Logger
	dryRun bool
}

// Options configures a Configurator built by New.
type Options struct {
	DryRun bool
}

// New creates a Configurator for env from its collaborators.
func New(env *platform.Environment, gitConfigurer GitConfigurer, editorWriter EditorWriter, logger common.Logger, opts Options) *Configurator {
	if logger == nil {
		logger = common.NopLogger{}
	}
	return &Configurator{
		env:    env,
		git:    gitConfigurer,
		editor: editorWriter,
		logger: logger,
		dryRun: opts.DryRun,
	}
}

// Environment returns the host facts the Configurator was built with.
func (c *Configurator) Environment() *platform.Environment {
	return c.env
}

// MakeFolders creates each named folder under the working directory.
func (c *Configurator) MakeFolders(names ...string) error {
	if len(names) == 0 {
		return nil
	}
	if c.dryRun {
		for _, name := range names {
			c.logger.StatusMessage("  would create folder %s", name)
		}
		return nil
	}
	if err := workspace.MakeFolders(c.env.WorkDir(), names...); err != nil {
		return err
	}
	c.logger.Success("Created %d folders in %s", len(names), c.env.WorkDir())
	return nil
}

// ConfigureGit (re)initializes the repository and applies git settings.
func (c *Configurator) ConfigureGit(ctx context.Context, opts git.Options) error {
	return c.git.Configure(ctx, opts)
}

// WriteSettings writes the editor settings for scope.
func (c *Configurator) WriteSettings(scope platform.Scope, overrides *confmap.Map) (string, error) {
	return c.editor.WriteSettings(scope, overrides)
}

// WriteKeybindings writes the global editor keybindings.
func (c *Configurator) WriteKeybindings(extra []editor.Keybinding) (string, error) {
	return c.editor.WriteKeybindings(extra)
}

// Bootstrap runs every step of plan in order and stops at the first error.
func (c *Configurator) Bootstrap(ctx context.Context, plan Plan) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"folders", func() error { return c.MakeFolders(plan.Folders...) }},
		{"git", func() error {
			return c.ConfigureGit(ctx, git.Options{
				Scope:     plan.GitScope,
				Language:  plan.Language,
				Identity:  plan.Identity,
				Overrides: plan.GitConfig,
			})
		}},
		{"settings", func() error {
			_, err := c.WriteSettings(plan.SettingsScope, plan.Settings)
			return err
		}},
		{"keybindings", func() error {
			_, err := c.WriteKeybindings(plan.Keybindings)
			return err
		}},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.logger.Info("Running bootstrap step %s", step.name)
		if err := step.run(); err != nil {
			return errors.Wrapf(err, "%s step failed", step.name)
		}
	}

	c.logger.Success("Workspace ready in %s", c.env.WorkDir())
	return nil
}
