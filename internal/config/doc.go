// Package config provides the configuration layer for devboot.
//
// A Config is built in layers. New supplies defaults, LoadFromEnvironment
// applies DEVBOOT_* variables, SetupFlags binds the persistent command-line
// flags, ApplyProfile fills any field still unset from a YAML Profile, and
// Finalize resolves the working directory, parses the scope, validates the
// identity and derives the debug log path.
//
// # Environment Variables
//
//	DEVBOOT_DIR        working directory
//	DEVBOOT_PROFILE    path to a YAML profile
//	DEVBOOT_LANGUAGE   ignore template language
//	DEVBOOT_SCOPE      local, global or system
//	DEVBOOT_GIT_NAME   git user.name
//	DEVBOOT_GIT_EMAIL  git user.email
//	DEVBOOT_YES        answer yes to prompts (true/false)
//	DEVBOOT_DRY_RUN    print actions without performing them (true/false)
//	DEVBOOT_VERBOSE    show informational messages (true/false)
//	DEVBOOT_DEBUG      enable the debug log file (true/false)
//	DEVBOOT_LOG_FILE   debug log path
//
// # Profiles
//
// Profiles are decoded with gopkg.in/yaml.v3. Mapping order in the
// document is preserved into the resulting confmap.Map values, so settings
// appear in the written JSON in the order they were listed. Unknown keys
// are rejected.
package config
