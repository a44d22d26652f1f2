// Package devboot bootstraps a personal development workspace.
//
// devboot creates project folders, (re)initializes a git repository with a
// .gitignore fetched from gitignore.io plus a personal exclusion block,
// applies a git configuration profile, and writes VS Code settings and
// keybindings as JSON.
//
// # Quick Start
//
//	# Create folders and a fresh repository with a Go .gitignore
//	devboot folders src docs
//	devboot git --language go --git-name "Jane Doe" --git-email jane@example.com
//
//	# Write project settings and global keybindings
//	devboot settings --set window.zoomLevel=2
//	devboot keybindings
//
//	# Or run everything from a profile
//	devboot --profile ~/devboot.yaml all
//
// # Key Features
//
//   - Ordered configuration: settings keep the order of the defaults and the profile
//   - OS-aware defaults: line endings, credential helper, font sizes and run commands
//   - Dry run: --dry-run prints every git command and file write without performing it
//   - Safe re-initialization: an existing .git is only removed after confirmation
//
// # Architecture
//
// The command in cmd/devboot wires the internal packages together:
//
//   - internal/platform: the Environment (OS family, directories) and Scope
//   - internal/confmap: the ordered configuration map and JSON/YAML codecs
//   - internal/workspace: folder creation and atomic file writes
//   - internal/git: repository initialization and git config application
//   - internal/gitignore: ignore template fetching
//   - internal/editor: VS Code settings and keybindings
//   - internal/setup: the Configurator running the steps
//   - internal/config: flags, environment variables and YAML profiles
//   - internal/logger: structured debug logs and styled user messages
//
// For command-line usage, see the documentation in cmd/devboot.
package devboot
