package git

import (
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/platform"
)

// DefaultBranch is the branch name new repositories start on.
const DefaultBranch = "main"

// Identity is the author identity written to user.name and user.email.
type Identity struct {
	Name  string
	Email string
}

// Defaults returns the baseline git configuration in the order it is applied.
// Identity keys are only included when known.
func Defaults(env *platform.Environment, id Identity) *confmap.Map {
	m := confmap.NewMap()

	if id.Name != "" {
		m.Set("user.name", confmap.String(id.Name))
	}
	if id.Email != "" {
		m.Set("user.email", confmap.String(id.Email))
	}

	m.Set("core.editor", confmap.String("code --wait"))
	m.Set("core.autocrlf", confmap.String(platform.OSValue(env, "input", "true")))
	m.Set("init.defaultBranch", confmap.String(DefaultBranch))
	m.Set("credential.helper", confmap.String(platform.OSValue(env, "cache", "manager")))
	m.Set("diff.tool", confmap.String("vscode"))
	m.Set("difftool.vscode.cmd", confmap.String("code --wait --diff $LOCAL $REMOTE"))
	m.Set("alias.zip", confmap.String("archive --format=zip --output=archive.zip HEAD"))

	return m
}
