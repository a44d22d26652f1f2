package editor

import (
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/platform"
)

// Keybinding is one entry of the editor's keybindings file.
type Keybinding struct {
	Key     string         `json:"key" yaml:"key"`
	Command string         `json:"command" yaml:"command"`
	When    string         `json:"when,omitempty" yaml:"when,omitempty"`
	Args    *confmap.Value `json:"args,omitempty" yaml:"args,omitempty"`
}

// DefaultKeybindings returns the baseline bindings. The primary modifier is
// cmd on unix-like hosts and ctrl on windows.
func DefaultKeybindings(env *platform.Environment) []Keybinding {
	mod := platform.OSValue(env, "cmd", "ctrl")

	runArgs := confmap.Object(confmap.NewMap().
		Set("text", confmap.String("clear\r")))

	return []Keybinding{
		{Key: mod + "+shift+enter", Command: "code-runner.run", When: "editorTextFocus"},
		{Key: mod + "+k " + mod + "+t", Command: "workbench.action.selectTheme"},
		{Key: "ctrl+`", Command: "workbench.action.terminal.toggleTerminal"},
		{Key: mod + "+shift+r", Command: "workbench.action.terminal.sendSequence", When: "terminalFocus", Args: &runArgs},
		{Key: "alt+up", Command: "editor.action.moveLinesUpAction", When: "editorTextFocus && !editorReadonly"},
		{Key: "alt+down", Command: "editor.action.moveLinesDownAction", When: "editorTextFocus && !editorReadonly"},
	}
}

// RenderKeybindings returns the defaults followed by extra as an indented
// JSON array.
func (w *Writer) RenderKeybindings(extra []Keybinding) ([]byte, error) {
	bindings := append(DefaultKeybindings(w.env), extra...)
	data, err := confmap.Pretty(bindings)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode keybindings")
	}
	return data, nil
}

// WriteKeybindings overwrites the global keybindings file with the defaults
// followed by extra. It returns the path written.
func (w *Writer) WriteKeybindings(extra []Keybinding) (string, error) {
	for i, kb := range extra {
		if kb.Key == "" || kb.Command == "" {
			return "", errors.NewConfigError("keybindings", i,
				errors.Wrap(errors.ErrInvalidConfiguration, "key and command are required"))
		}
	}

	data, err := w.RenderKeybindings(extra)
	if err != nil {
		return "", err
	}

	path := w.KeybindingsPath()
	if err := w.write(path, data); err != nil {
		return "", err
	}
	w.logger.Info("Keybindings at %s carry %d extra entries", path, len(extra))
	return path, nil
}
