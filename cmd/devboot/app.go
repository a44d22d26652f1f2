package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/bashhack/devboot/internal/config"
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/constants"
	"github.com/bashhack/devboot/internal/editor"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/git"
	"github.com/bashhack/devboot/internal/gitignore"
	"github.com/bashhack/devboot/internal/logger"
	"github.com/bashhack/devboot/internal/platform"
	"github.com/bashhack/devboot/internal/setup"
)

// Bootstrapper runs the individual bootstrap steps
type Bootstrapper interface {
	MakeFolders(names ...string) error
	ConfigureGit(ctx context.Context, opts git.Options) error
	WriteSettings(scope platform.Scope, overrides *confmap.Map) (string, error)
	WriteKeybindings(extra []editor.Keybinding) (string, error)
	Bootstrap(ctx context.Context, plan setup.Plan) error
}

// AppOptions contains app configuration and dependencies.
// This struct allows injection of both required and optional dependencies,
// enabling flexible configuration and easier testing.
type AppOptions struct {
	// Config holds the application configuration settings (required).
	// The application will panic if this field is nil.
	Config *config.Config

	// Optional components

	// Logger provides logging functionality (optional, a default will be created if nil).
	Logger logger.Logger

	// Bootstrapper runs the bootstrap steps (optional, a setup.Configurator
	// is created if nil).
	Bootstrapper Bootstrapper

	// HTTPClient fetches ignore templates (optional, defaults to http.DefaultClient).
	HTTPClient gitignore.HTTPDoer

	// I/O dependencies

	// Stdout is the writer for standard output (optional, defaults to os.Stdout).
	Stdout io.Writer

	// Stderr is the writer for error output (optional, defaults to os.Stderr).
	Stderr io.Writer

	// System dependencies

	// Exit is the function to terminate the application (optional, defaults to os.Exit).
	Exit func(code int)

	// ExecLookPath is used to find executables in PATH (optional, defaults to exec.LookPath).
	ExecLookPath func(file string) (string, error)

	// UserHomeDir locates the home directory (optional, defaults to os.UserHomeDir).
	UserHomeDir func() (string, error)
}

// App is the main devboot application.
// It wires the configuration, logger and Configurator together and exposes
// them to the cobra commands.
type App struct {
	// Config holds the application configuration and settings.
	Config *config.Config

	// Profile is the decoded profile, or an empty Profile when none is set.
	Profile *config.Profile

	// Logger provides logging functionality for both internal and user-facing messages.
	Logger logger.Logger

	// Bootstrapper runs the bootstrap steps.
	Bootstrapper Bootstrapper

	// I/O streams

	// Stdout is the writer for standard output messages.
	Stdout io.Writer

	// Stderr is the writer for error messages and warnings.
	Stderr io.Writer

	// System dependencies

	httpClient   gitignore.HTTPDoer
	exit         func(code int)
	execLookPath func(file string) (string, error)
	userHomeDir  func() (string, error)

	initialized bool
}

// NewDefaultApp creates an App with standard dependencies.
// It initializes a new Config with the provided version information
// and loads environment variables.
func NewDefaultApp(versionInfo config.VersionInfo) *App {
	cfg := config.New()
	cfg.VersionInfo = versionInfo
	cfg.LoadFromEnvironment()

	return NewApp(AppOptions{
		Config:       cfg,
		Stdout:       os.Stdout,
		Stderr:       os.Stderr,
		Exit:         os.Exit,
		ExecLookPath: exec.LookPath,
	})
}

// NewApp creates an App with custom dependencies specified in opts.
// It panics if Config is nil. Other nil dependencies are replaced with
// defaults here or during Initialize.
func NewApp(opts AppOptions) *App {
	if opts.Config == nil {
		panic("Config is required in AppOptions")
	}

	app := &App{
		Config:       opts.Config,
		Logger:       opts.Logger,
		Bootstrapper: opts.Bootstrapper,
		Stdout:       opts.Stdout,
		Stderr:       opts.Stderr,
		httpClient:   opts.HTTPClient,
		exit:         opts.Exit,
		execLookPath: opts.ExecLookPath,
		userHomeDir:  opts.UserHomeDir,
	}

	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.httpClient == nil {
		app.httpClient = http.DefaultClient
	}
	if app.exit == nil {
		app.exit = os.Exit
	}
	if app.execLookPath == nil {
		app.execLookPath = exec.LookPath
	}
	if app.userHomeDir == nil {
		app.userHomeDir = os.UserHomeDir
	}

	return app
}

// Initialize loads the profile, finalizes the configuration and builds the
// components not provided during construction. It is safe to call twice.
func (a *App) Initialize() error {
	if a.initialized {
		return nil
	}

	a.Profile = &config.Profile{}
	if a.Config.ProfilePath != "" {
		profile, err := config.LoadProfile(a.Config.ProfilePath)
		if err != nil {
			return err
		}
		a.Profile = profile
		a.Config.ApplyProfile(profile)
	}

	if err := a.Config.Finalize(); err != nil {
		// Config.Finalize already returns a ConfigError; only wrap foreign errors
		if errors.Is(err, errors.ErrInvalidConfiguration) || errors.Is(err, errors.ErrInvalidScope) {
			return err
		}
		return errors.Wrap(errors.ErrInvalidConfiguration, err.Error())
	}

	if a.Logger == nil {
		a.Logger = logger.NewWithOutput(a.Config.Debug, a.Config.LogFile, a.Config.Verbose, a.Stdout, a.Stderr)
	}

	if a.Bootstrapper == nil {
		homeDir, err := a.userHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get home directory")
		}
		env, err := platform.New(runtime.GOOS, a.Config.WorkDir, homeDir)
		if err != nil {
			return err
		}

		fetcher := gitignore.NewFetcherWithDeps(a.httpClient, gitignore.DefaultURLTemplate, a.Logger)
		repo := git.NewRepository(env, git.RepositoryConfig{
			DryRun:    a.Config.DryRun,
			AssumeYes: a.Config.AssumeYes,
		}, a.Logger, fetcher)
		writer := editor.NewWriter(env, editor.WriterConfig{DryRun: a.Config.DryRun}, a.Logger)

		a.Bootstrapper = setup.New(env, repo, writer, a.Logger, setup.Options{DryRun: a.Config.DryRun})
	}

	a.Logger.Info("Initialized for %s (scope=%s, dry-run=%t)", a.Config.WorkDir, a.Config.Scope, a.Config.DryRun)
	if a.Config.DryRun {
		a.Logger.InfoToUser("Dry run: nothing will be written")
	}

	a.initialized = true
	return nil
}

// Execute runs the command line in args and returns the process exit code.
func (a *App) Execute(ctx context.Context, args []string) int {
	root := newRootCommand(a)
	root.SetArgs(args)
	root.SetOut(a.Stdout)
	root.SetErr(a.Stderr)

	err := root.ExecuteContext(ctx)

	if closeErr := a.Close(); closeErr != nil {
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error during cleanup: %v\n", closeErr)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			_, _ = fmt.Fprintln(a.Stderr, "\nInterrupted, stopping devboot...")
			return 130
		}
		_, _ = fmt.Fprintf(a.Stderr, "❌ Error: %v\n", err)
		return 1
	}
	return 0
}

// ShowVersion displays version information
func (a *App) ShowVersion() {
	_, _ = fmt.Fprintf(a.Stdout, "devboot %s (%s) built on %s\n",
		a.Config.VersionInfo.Version,
		a.Config.VersionInfo.Commit,
		a.Config.VersionInfo.Date)
}

// ShowLogo displays ASCII art logo
func (a *App) ShowLogo() {
	_, _ = fmt.Fprint(a.Stdout, constants.Logo)

	asciiArtWidth := 44
	padding := (asciiArtWidth - len(constants.Tagline)) / 2
	if padding < 0 {
		padding = 0
	}
	_, _ = fmt.Fprintf(a.Stdout, "%s%s\n\n", strings.Repeat(" ", padding), constants.Tagline)
}

// checkRequiredCommands verifies git is available in PATH
func (a *App) checkRequiredCommands() error {
	if a.Config.DryRun {
		return nil
	}
	if _, err := a.execLookPath("git"); err != nil {
		return errors.Wrap(errors.ErrGitOperationFailed, "git is not found in PATH, please install it and try again")
	}
	return nil
}

// Close releases resources held by the App
func (a *App) Close() error {
	if a.Logger == nil {
		return nil
	}
	if err := a.Logger.Close(); err != nil {
		return errors.Wrap(err, "failed to close logger")
	}
	a.Logger = nil
	return nil
}
