package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/git"
	"github.com/bashhack/devboot/internal/platform"
	"github.com/bashhack/devboot/internal/setup"
)

// skipInit marks commands that run without a finalized configuration
const skipInit = "devboot/skip-init"

func newRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "devboot",
		Short: "Bootstrap a development workspace",
		Long: `devboot creates project folders, (re)initializes a git repository with a
fetched .gitignore, applies git configuration, and writes VS Code settings
and keybindings.

Every subcommand can be driven by a YAML profile (--profile). Flags override
DEVBOOT_* environment variables, which override the profile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Annotations:   map[string]string{skipInit: "true"},
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.Config.ShowLogo {
				app.ShowLogo()
				return nil
			}
			return cmd.Help()
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsInit(cmd) {
				return nil
			}
			if err := app.Initialize(); err != nil {
				return err
			}
			if app.Config.ShowLogo {
				app.ShowLogo()
			}
			return nil
		},
	}

	app.Config.SetupFlags(root.PersistentFlags())

	root.AddCommand(
		newFoldersCommand(app),
		newGitCommand(app),
		newSettingsCommand(app),
		newKeybindingsCommand(app),
		newAllCommand(app),
		newVersionCommand(app),
	)
	return root
}

// needsInit reports whether cmd runs against the finalized configuration.
// Help, completion and version output do not.
func needsInit(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "help" || c.Name() == "completion" {
			return false
		}
	}
	return cmd.Annotations[skipInit] != "true"
}

func newFoldersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "folders [NAME...]",
		Short: "Create folders under the working directory",
		Long:  "Create each named folder, including missing parents. Without arguments the profile's folders are used.",
		RunE: func(_ *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = app.Profile.Folders
			}
			if len(names) == 0 {
				return errors.NewConfigError("folders", nil,
					errors.Wrap(errors.ErrInvalidConfiguration, "no folder names given on the command line or in the profile"))
			}
			return app.Bootstrapper.MakeFolders(names...)
		},
	}
}

func newGitCommand(app *App) *cobra.Command {
	var sets []string

	cmd := &cobra.Command{
		Use:   "git",
		Short: "Initialize the repository and apply git configuration",
		Long: `At local scope, remove any existing .git, run git init on main and, when a
language is given, write .gitignore from the template source. At every scope,
apply the default git configuration merged with profile and --set overrides.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.checkRequiredCommands(); err != nil {
				return err
			}
			opts, err := app.gitOptions(sets)
			if err != nil {
				return err
			}
			return app.Bootstrapper.ConfigureGit(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP((*string)(&app.Config.Scope), "scope", "s", string(app.Config.Scope), "Configuration scope: local, global or system")
	cmd.Flags().StringVarP(&app.Config.Language, "language", "l", app.Config.Language, "Ignore template language, e.g. go or python,macos")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override a git setting as key=value (repeatable)")
	return cmd
}

func newSettingsCommand(app *App) *cobra.Command {
	var (
		scope string
		sets  []string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Write editor settings",
		Long:  "Write the default VS Code settings merged with profile and --set overrides to the project (local) or user profile (global).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resolved, err := app.settingsScope(scope, cmd.Flags().Changed("scope"))
			if err != nil {
				return err
			}
			overrides, err := mergeSets(app.Profile.Settings, sets, confmap.ParseValue)
			if err != nil {
				return err
			}
			_, err = app.Bootstrapper.WriteSettings(resolved, overrides)
			return err
		},
	}

	cmd.Flags().StringVarP(&scope, "scope", "s", "", "Settings scope: local or global (default: profile settings_scope, else local)")
	cmd.Flags().StringArrayVar(&sets, "set", nil, "Override a setting as key=value; values are parsed as YAML (repeatable)")
	return cmd
}

func newKeybindingsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "keybindings",
		Short: "Write global editor keybindings",
		Long:  "Write the default keybindings followed by the profile's keybindings to the user profile.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := app.Bootstrapper.WriteKeybindings(app.Profile.Keybindings)
			return err
		},
	}
}

func newAllCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Run folders, git, settings and keybindings from the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.checkRequiredCommands(); err != nil {
				return err
			}
			gitOpts, err := app.gitOptions(nil)
			if err != nil {
				return err
			}
			settingsScope, err := app.settingsScope("", false)
			if err != nil {
				return err
			}
			return app.Bootstrapper.Bootstrap(cmd.Context(), setup.Plan{
				Folders:       app.Profile.Folders,
				GitScope:      gitOpts.Scope,
				Language:      gitOpts.Language,
				Identity:      gitOpts.Identity,
				GitConfig:     gitOpts.Overrides,
				SettingsScope: settingsScope,
				Settings:      app.Profile.Settings,
				Keybindings:   app.Profile.Keybindings,
			})
		},
	}

	cmd.Flags().StringVarP((*string)(&app.Config.Scope), "scope", "s", string(app.Config.Scope), "Git configuration scope: local, global or system")
	cmd.Flags().StringVarP(&app.Config.Language, "language", "l", app.Config.Language, "Ignore template language")
	return cmd
}

func newVersionCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Print version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipInit: "true"},
		Run: func(_ *cobra.Command, _ []string) {
			app.ShowVersion()
		},
	}
}

// gitOptions builds the git request from the finalized config, the profile
// and --set overrides.
func (a *App) gitOptions(sets []string) (git.Options, error) {
	overrides, err := mergeSets(a.Profile.Git.Config, sets, literalValue)
	if err != nil {
		return git.Options{}, err
	}
	return git.Options{
		Scope:    a.Config.Scope,
		Language: a.Config.Language,
		Identity: git.Identity{
			Name:  a.Config.GitName,
			Email: a.Config.GitEmail,
		},
		Overrides: overrides,
	}, nil
}

// settingsScope resolves the editor settings scope: an explicit flag, then
// the profile's settings_scope, then local.
func (a *App) settingsScope(flagValue string, flagSet bool) (platform.Scope, error) {
	raw := string(a.Profile.SettingsScope)
	if flagSet {
		raw = flagValue
	}
	scope, err := platform.ParseScope(raw)
	if err != nil {
		return "", errors.NewConfigError("scope", raw, err)
	}
	return scope, nil
}

// literalValue keeps the text after '=' as-is. Git config values are
// strings, so "0660" and "Jane: Doe" must reach git unchanged.
func literalValue(raw string) (confmap.Value, error) {
	return confmap.String(raw), nil
}

// mergeSets overlays key=value pairs onto base, turning each value into a
// confmap.Value with parse.
func mergeSets(base *confmap.Map, sets []string, parse func(string) (confmap.Value, error)) (*confmap.Map, error) {
	overrides := confmap.NewMap()
	for _, kv := range sets {
		key, raw, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, errors.NewConfigError("set", kv,
				errors.Wrap(errors.ErrInvalidConfiguration, "expected key=value"))
		}
		value, err := parse(raw)
		if err != nil {
			return nil, errors.NewConfigError("set", kv, errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
		}
		overrides.Set(key, value)
	}
	return confmap.Merge(base, overrides), nil
}
