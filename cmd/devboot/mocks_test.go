package main

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/bashhack/devboot/internal/config"
	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/editor"
	"github.com/bashhack/devboot/internal/git"
	"github.com/bashhack/devboot/internal/platform"
	"github.com/bashhack/devboot/internal/setup"
)

// MockBootstrapper records every step it is asked to run
type MockBootstrapper struct {
	Folders       []string
	GitOptions    *git.Options
	SettingsScope platform.Scope
	Settings      *confmap.Map
	SettingsRun   bool
	Keybindings   []editor.Keybinding
	KeybindingRun bool
	Plan          *setup.Plan

	Err error
}

func (m *MockBootstrapper) MakeFolders(names ...string) error {
	m.Folders = append(m.Folders, names...)
	return m.Err
}

func (m *MockBootstrapper) ConfigureGit(ctx context.Context, opts git.Options) error {
	m.GitOptions = &opts
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Err
}

func (m *MockBootstrapper) WriteSettings(scope platform.Scope, overrides *confmap.Map) (string, error) {
	m.SettingsRun = true
	m.SettingsScope = scope
	m.Settings = overrides
	return "settings.json", m.Err
}

func (m *MockBootstrapper) WriteKeybindings(extra []editor.Keybinding) (string, error) {
	m.KeybindingRun = true
	m.Keybindings = extra
	return "keybindings.json", m.Err
}

func (m *MockBootstrapper) Bootstrap(ctx context.Context, plan setup.Plan) error {
	m.Plan = &plan
	if err := ctx.Err(); err != nil {
		return err
	}
	return m.Err
}

// MockLogger implements the Logger interface for testing
type MockLogger struct {
	Messages    []string
	CloseCalled bool
	CloseErr    error
}

func (m *MockLogger) add(format string, args ...interface{}) {
	m.Messages = append(m.Messages, fmt.Sprintf(format, args...))
}

func (m *MockLogger) Info(format string, args ...interface{})          { m.add(format, args...) }
func (m *MockLogger) Warning(format string, args ...interface{})       { m.add(format, args...) }
func (m *MockLogger) Error(format string, args ...interface{})         { m.add(format, args...) }
func (m *MockLogger) InfoToUser(format string, args ...interface{})    { m.add(format, args...) }
func (m *MockLogger) WarningToUser(format string, args ...interface{}) { m.add(format, args...) }
func (m *MockLogger) Success(format string, args ...interface{})       { m.add(format, args...) }
func (m *MockLogger) StatusMessage(format string, args ...interface{}) { m.add(format, args...) }

// Close records the call and returns CloseErr
func (m *MockLogger) Close() error {
	m.CloseCalled = true
	return m.CloseErr
}

// testApp bundles an App with the buffers and mocks it was built with
type testApp struct {
	*App
	stdout       *bytes.Buffer
	stderr       *bytes.Buffer
	bootstrapper *MockBootstrapper
	logger       *MockLogger
}

// newTestApp creates an App rooted in a temp directory with mock
// collaborators and a git binary that is always found.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	cfg := config.New()
	cfg.WorkDir = t.TempDir()
	cfg.VersionInfo = config.VersionInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}

	ta := &testApp{
		stdout:       &bytes.Buffer{},
		stderr:       &bytes.Buffer{},
		bootstrapper: &MockBootstrapper{},
		logger:       &MockLogger{},
	}
	ta.App = NewApp(AppOptions{
		Config:       cfg,
		Logger:       ta.logger,
		Bootstrapper: ta.bootstrapper,
		Stdout:       ta.stdout,
		Stderr:       ta.stderr,
		Exit:         func(int) {},
		ExecLookPath: func(file string) (string, error) { return "/usr/bin/" + file, nil },
		UserHomeDir:  func() (string, error) { return t.TempDir(), nil },
	})
	return ta
}
