// Package workspace provisions folders and writes files on behalf of the
// other devboot components.
//
// MakeFolders is idempotent: it creates any missing folders (and their
// parents) and silently accepts folders that already exist. WriteFile fully
// replaces a file's contents; on unix-like systems the write is atomic and
// durable.
package workspace
