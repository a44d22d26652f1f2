// Package editor writes VS Code settings and keybindings.
//
// Settings are the DefaultSettings map shallowly merged with caller
// overrides and written either to the project (.vscode/settings.json) or to
// the user profile. Keybindings are always written to the user profile, the
// defaults first and caller entries after them. Both files are serialized
// with two-space indentation and fully overwritten on every write.
package editor
