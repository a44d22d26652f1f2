package git

import (
	"context"
	"os/exec"
	"sync"
)

// MockCommandExecutor is a simple mock of the CommandExecutor interface
// that doesn't actually execute anything but just records calls.
type MockCommandExecutor struct {
	mu                  sync.Mutex
	Output              string
	LastCmd             *exec.Cmd
	Commands            []*exec.Cmd
	ExecuteFn           func(ctx context.Context, cmd *exec.Cmd) error
	ExecuteWithOutputFn func(ctx context.Context, cmd *exec.Cmd) (string, error)
}

// Execute implements the CommandExecutor interface
func (m *MockCommandExecutor) Execute(ctx context.Context, cmd *exec.Cmd) error {
	m.record(cmd)

	if m.ExecuteFn != nil {
		return m.ExecuteFn(ctx, cmd)
	}

	return nil
}

// ExecuteWithOutput implements the CommandExecutor interface
func (m *MockCommandExecutor) ExecuteWithOutput(ctx context.Context, cmd *exec.Cmd) (string, error) {
	m.record(cmd)

	if m.ExecuteWithOutputFn != nil {
		return m.ExecuteWithOutputFn(ctx, cmd)
	}

	return m.Output, nil
}

func (m *MockCommandExecutor) record(cmd *exec.Cmd) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.LastCmd = cmd
	m.Commands = append(m.Commands, cmd)
}

// GitArgs returns the recorded commands' arguments without "git -C <dir>".
func (m *MockCommandExecutor) GitArgs() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([][]string, 0, len(m.Commands))
	for _, cmd := range m.Commands {
		op, args := splitArgs(cmd)
		out = append(out, append([]string{op}, args...))
	}
	return out
}

// NewMockCommandExecutor creates a new mock executor
func NewMockCommandExecutor() *MockCommandExecutor {
	return &MockCommandExecutor{
		Commands: make([]*exec.Cmd, 0),
	}
}

// MockInteractor records prompts and returns a fixed answer
type MockInteractor struct {
	Response bool
	Prompts  []string
}

// PromptYesNo implements the UserInteractor interface
func (m *MockInteractor) PromptYesNo(question string) bool {
	m.Prompts = append(m.Prompts, question)
	return m.Response
}

// fakeIgnoreSource returns canned ignore-file content
type fakeIgnoreSource struct {
	content   []byte
	err       error
	languages []string
}

func (f *fakeIgnoreSource) IgnoreFile(_ context.Context, language string) ([]byte, error) {
	f.languages = append(f.languages, language)
	return f.content, f.err
}

// recordingLogger captures messages for assertions
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
}

func (l *recordingLogger) add(format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.messages = append(l.messages, sprintf(format, args...))
}

func (l *recordingLogger) Info(format string, args ...interface{})          { l.add(format, args...) }
func (l *recordingLogger) Warning(format string, args ...interface{})       { l.add(format, args...) }
func (l *recordingLogger) Error(format string, args ...interface{})         { l.add(format, args...) }
func (l *recordingLogger) InfoToUser(format string, args ...interface{})    { l.add(format, args...) }
func (l *recordingLogger) WarningToUser(format string, args ...interface{}) { l.add(format, args...) }
func (l *recordingLogger) Success(format string, args ...interface{})       { l.add(format, args...) }
func (l *recordingLogger) StatusMessage(format string, args ...interface{}) { l.add(format, args...) }
