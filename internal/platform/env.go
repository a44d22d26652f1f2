package platform

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/bashhack/devboot/internal/errors"
)

// Environment captures the host facts that OS-dependent defaults and paths
// are derived from. It is computed once and never mutated afterwards.
type Environment struct {
	onUnix    bool
	workDir   string
	homeDir   string
	editorDir string
}

// Detect builds an Environment for the running process.
func Detect() (*Environment, error) {
	workDir, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get current directory")
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get home directory")
	}

	return New(runtime.GOOS, workDir, homeDir)
}

// New builds an Environment for the given GOOS value, working directory and
// home directory. Any GOOS other than "windows" is treated as unix-like.
func New(goos, workDir, homeDir string) (*Environment, error) {
	absWorkDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve absolute path for %s", workDir)
	}

	env := &Environment{
		onUnix:  goos != "windows",
		workDir: absWorkDir,
		homeDir: homeDir,
	}
	env.editorDir = filepath.Join(homeDir, OSValue(env,
		filepath.Join(".config", "Code", "User"),
		filepath.Join("AppData", "Roaming", "Code", "User"),
	))

	return env, nil
}

// OSValue returns unixCase on unix-like systems and windowsCase otherwise.
func OSValue[T any](env *Environment, unixCase, windowsCase T) T {
	if env.onUnix {
		return unixCase
	}
	return windowsCase
}

// OnUnix reports whether the environment is unix-like.
func (e *Environment) OnUnix() bool { return e.onUnix }

// WorkDir is the absolute working directory.
func (e *Environment) WorkDir() string { return e.workDir }

// HomeDir is the user's home directory.
func (e *Environment) HomeDir() string { return e.homeDir }

// EditorDir is the editor's per-user configuration directory.
func (e *Environment) EditorDir() string { return e.editorDir }
