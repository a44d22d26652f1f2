package platform

import (
	"strings"

	"github.com/bashhack/devboot/internal/errors"
)

// Scope selects which configuration store an operation targets.
type Scope string

const (
	// ScopeLocal targets the project in the working directory.
	ScopeLocal Scope = "local"

	// ScopeGlobal targets the current user's profile.
	ScopeGlobal Scope = "global"

	// ScopeSystem targets the machine-wide store (git only).
	ScopeSystem Scope = "system"
)

// ParseScope converts a user-supplied string into a Scope.
// An empty string selects ScopeLocal.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case "", ScopeLocal:
		return ScopeLocal, nil
	case ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeSystem:
		return ScopeSystem, nil
	}
	return "", errors.Wrapf(errors.ErrInvalidScope, "unknown scope %q", s)
}

// Flag renders the scope as a git config option, e.g. "--global".
func (s Scope) Flag() string {
	return "--" + string(s)
}

func (s Scope) String() string {
	return string(s)
}
