package editor

import (
	"path/filepath"

	"github.com/bashhack/devboot/internal/common"
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/platform"
	"github.com/bashhack/devboot/internal/workspace"
)

const (
	settingsFile    = "settings.json"
	keybindingsFile = "keybindings.json"
	localDir        = ".vscode"
)

// DefaultSettings returns the baseline editor settings for env.
func DefaultSettings(env *platform.Environment) *confmap.Map {
	python := platform.OSValue(env, "python3 -u", "python -u")

	executorMap := confmap.NewMap().
		Set("python", confmap.String(python)).
		Set("go", confmap.String("go run")).
		Set("javascript", confmap.String("node")).
		Set("shellscript", confmap.String(platform.OSValue(env, "bash", "powershell -File")))

	pythonLang := confmap.NewMap().
		Set("editor.tabSize", confmap.Int(4)).
		Set("editor.defaultFormatter", confmap.String("ms-python.black-formatter"))

	return confmap.NewMap().
		Set("window.zoomLevel", confmap.Int(0)).
		Set("workbench.colorTheme", confmap.String("Default Dark Modern")).
		Set("workbench.startupEditor", confmap.String("none")).
		Set("editor.fontSize", confmap.Int(platform.OSValue(env, 14, 12))).
		Set("editor.fontFamily", confmap.String(platform.OSValue(env,
			"'JetBrains Mono', 'Droid Sans Mono', monospace",
			"Consolas, 'Courier New', monospace",
		))).
		Set("terminal.integrated.fontSize", confmap.Int(platform.OSValue(env, 13, 12))).
		Set("editor.formatOnSave", confmap.Bool(true)).
		Set("editor.rulers", confmap.List(confmap.Int(80), confmap.Int(120))).
		Set("editor.minimap.enabled", confmap.Bool(false)).
		Set("files.trimTrailingWhitespace", confmap.Bool(true)).
		Set("files.insertFinalNewline", confmap.Bool(true)).
		Set("files.eol", confmap.String("\n")).
		Set("code-runner.runInTerminal", confmap.Bool(true)).
		Set("code-runner.saveFileBeforeRun", confmap.Bool(true)).
		Set("code-runner.executorMap", confmap.Object(executorMap)).
		Set("[python]", confmap.Object(pythonLang))
}

// WriterConfig controls how a Writer performs its side effects.
type WriterConfig struct {
	// DryRun reports the target path and size instead of writing.
	DryRun bool
}

// Writer renders and writes editor configuration files.
type Writer struct {
	env    *platform.Environment
	config WriterConfig
	logger common.Logger
}

// NewWriter creates a Writer for env.
func NewWriter(env *platform.Environment, config WriterConfig, logger common.Logger) *Writer {
	if logger == nil {
		logger = common.NopLogger{}
	}
	return &Writer{env: env, config: config, logger: logger}
}

// SettingsPath returns the settings file for scope. Only local and global
// scopes have a settings file.
func (w *Writer) SettingsPath(scope platform.Scope) (string, error) {
	switch scope {
	case platform.ScopeLocal, "":
		return filepath.Join(w.env.WorkDir(), localDir, settingsFile), nil
	case platform.ScopeGlobal:
		return filepath.Join(w.env.EditorDir(), settingsFile), nil
	default:
		return "", errors.NewConfigError("scope", string(scope),
			errors.Wrap(errors.ErrInvalidScope, "editor settings support local and global scope only"))
	}
}

// KeybindingsPath returns the global keybindings file.
func (w *Writer) KeybindingsPath() string {
	return filepath.Join(w.env.EditorDir(), keybindingsFile)
}

// RenderSettings merges overrides onto the defaults and returns the indented
// JSON document.
func (w *Writer) RenderSettings(overrides *confmap.Map) ([]byte, error) {
	merged := confmap.Merge(DefaultSettings(w.env), overrides)
	data, err := confmap.Pretty(merged)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode editor settings")
	}
	return data, nil
}

// WriteSettings renders the settings and overwrites the file for scope.
// It returns the path written.
func (w *Writer) WriteSettings(scope platform.Scope, overrides *confmap.Map) (string, error) {
	path, err := w.SettingsPath(scope)
	if err != nil {
		return "", err
	}

	data, err := w.RenderSettings(overrides)
	if err != nil {
		return "", err
	}

	if err := w.write(path, data); err != nil {
		return "", err
	}
	w.logger.Info("Editor settings at %s carry %d overrides", path, overrides.Len())
	return path, nil
}

func (w *Writer) write(path string, data []byte) error {
	if w.config.DryRun {
		w.logger.StatusMessage("  would write %s (%d bytes)", path, len(data))
		return nil
	}
	if err := workspace.WriteFile(path, data); err != nil {
		return err
	}
	w.logger.Success("Wrote %s", path)
	return nil
}
