// Package confmap implements the ordered configuration map shared by the git
// and editor writers.
//
// A Map associates string keys with a Value, a tagged union of string, bool,
// number, nested map, list and null. Maps remember insertion order so the
// documents devboot writes keep a stable, readable layout.
//
// Defaults and caller overrides are combined with Merge, a shallow
// override-wins replace by key:
//
//	defaults := confmap.NewMap().
//	    Set("window.zoomLevel", confmap.Int(0)).
//	    Set("editor.formatOnSave", confmap.Bool(true))
//	overrides := confmap.NewMap().Set("window.zoomLevel", confmap.Number(3))
//	merged := confmap.Merge(defaults, overrides)
//
// Maps and Values unmarshal from YAML (preserving mapping order) and marshal
// to JSON; Pretty renders any JSON-marshalable value with two-space
// indentation.
package confmap
