package editor

import (
	"fmt"
	"testing"

	"github.com/bashhack/devboot/internal/platform"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type recordingLogger struct {
	messages []string
}

func (l *recordingLogger) add(format string, args ...interface{}) {
	l.messages = append(l.messages, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{})          { l.add(format, args...) }
func (l *recordingLogger) Warning(format string, args ...interface{})       { l.add(format, args...) }
func (l *recordingLogger) Error(format string, args ...interface{})         { l.add(format, args...) }
func (l *recordingLogger) InfoToUser(format string, args ...interface{})    { l.add(format, args...) }
func (l *recordingLogger) WarningToUser(format string, args ...interface{}) { l.add(format, args...) }
func (l *recordingLogger) Success(format string, args ...interface{})       { l.add(format, args...) }
func (l *recordingLogger) StatusMessage(format string, args ...interface{}) { l.add(format, args...) }

func newTestEnv(t *testing.T, goos string) *platform.Environment {
	t.Helper()

	env, err := platform.New(goos, t.TempDir(), t.TempDir())
	require.NoError(t, err)
	return env
}

// keysOf returns the top-level keys of a JSON object in document order
func keysOf(t *testing.T, data []byte) []string {
	t.Helper()

	var keys []string
	parsedObject(t, data).ForEach(func(key, _ gjson.Result) bool {
		keys = append(keys, key.String())
		return true
	})
	return keys
}

func parsedObject(t *testing.T, data []byte) gjson.Result {
	t.Helper()

	require.True(t, gjson.ValidBytes(data), "invalid JSON: %s", data)
	parsed := gjson.ParseBytes(data)
	require.True(t, parsed.IsObject())
	return parsed
}

// field looks up a top-level key verbatim; keys like "window.zoomLevel"
// would otherwise be read as gjson paths.
func field(parsed gjson.Result, name string) gjson.Result {
	var found gjson.Result
	parsed.ForEach(func(key, value gjson.Result) bool {
		if key.String() == name {
			found = value
			return false
		}
		return true
	})
	return found
}
