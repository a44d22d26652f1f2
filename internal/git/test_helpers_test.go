package git

import (
	"fmt"
	"testing"

	"github.com/bashhack/devboot/internal/platform"
	"github.com/stretchr/testify/require"
)

func sprintf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}

// newTestEnv creates a unix-like environment rooted in a temp directory
func newTestEnv(t *testing.T, goos string) *platform.Environment {
	t.Helper()

	env, err := platform.New(goos, t.TempDir(), t.TempDir())
	require.NoError(t, err)
	return env
}
