/*
Command devboot bootstraps a development workspace.

Usage:

	devboot [flags] <command>

Commands:

	folders NAME...   create folders under the working directory
	git               (re)initialize the repository and apply git config
	settings          write VS Code settings (local or global)
	keybindings       write global VS Code keybindings
	all               run every step from the profile
	version           print version information

Persistent flags:

	-C, --dir string        working directory (default: current directory)
	-p, --profile string    YAML profile
	    --git-name string   git user.name
	    --git-email string  git user.email
	-y, --yes               answer yes to confirmation prompts
	-n, --dry-run           print commands and writes without performing them
	-q, --quiet             hide informational messages
	    --debug             enable debug logging
	    --log-file string   debug log path
	    --logo              print the logo before running

Examples:

	devboot folders src docs tests
	devboot git --language go --set pull.rebase=true
	devboot git --scope global --git-name "Jane Doe" --git-email jane@example.com
	devboot settings --set window.zoomLevel=2 --set 'editor.rulers=[100]'
	devboot --profile ~/devboot.yaml --yes all

Local git configuration removes an existing .git directory after a
confirmation prompt; --yes skips the prompt and --dry-run removes nothing.
*/
package main
