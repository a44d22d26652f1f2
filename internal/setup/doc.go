// Package setup provides the Configurator, which ties the bootstrap steps
// together around a single platform.Environment.
//
// Each step is independent and can be run on its own: MakeFolders,
// ConfigureGit, WriteSettings and WriteKeybindings. Bootstrap runs them in
// that order from a Plan and stops at the first failure.
package setup
