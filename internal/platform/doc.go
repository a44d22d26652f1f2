// Package platform detects the host environment devboot runs in.
//
// An Environment records whether the host is unix-like, the absolute working
// directory, the user's home directory and the editor configuration
// directory derived from them. OS-dependent values are selected through the
// single OSValue query:
//
//	fontSize := platform.OSValue(env, 14, 12)
//
// The package also defines Scope, the configuration-store level shared by the
// git and editor writers.
package platform
