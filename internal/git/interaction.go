package git

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bashhack/devboot/internal/common"
)

// UserInteractor asks the user before a destructive step. Reinitialize uses
// it to confirm removal of an existing .git directory.
type UserInteractor interface {
	// PromptYesNo shows question and reports whether the user agreed.
	// Anything other than an explicit yes counts as no.
	PromptYesNo(question string) bool
}

// ConsoleInteractor prompts through the logger and reads answers line by
// line from In, normally os.Stdin.
type ConsoleInteractor struct {
	In     io.Reader
	Logger common.Logger

	reader *bufio.Reader
}

// NewConsoleInteractor creates a ConsoleInteractor reading from os.Stdin.
func NewConsoleInteractor(logger common.Logger) *ConsoleInteractor {
	return &ConsoleInteractor{
		In:     os.Stdin,
		Logger: logger,
	}
}

// PromptYesNo accepts "y" or "yes" in any case. A closed or failing input
// answers no.
func (i *ConsoleInteractor) PromptYesNo(question string) bool {
	i.Logger.StatusMessage("%s (y/n): ", question)

	// One buffered reader for the life of the interactor, so a second prompt
	// sees input that the first one read ahead.
	if i.reader == nil {
		i.reader = bufio.NewReader(i.In)
	}

	answer, err := i.reader.ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

// AssumeYesInteractor agrees to every question without prompting. It backs
// --yes and dry runs.
type AssumeYesInteractor struct{}

// NewAssumeYesInteractor creates a new AssumeYesInteractor
func NewAssumeYesInteractor() *AssumeYesInteractor {
	return &AssumeYesInteractor{}
}

// PromptYesNo always returns true
func (i *AssumeYesInteractor) PromptYesNo(string) bool {
	return true
}
