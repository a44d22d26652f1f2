package config

import (
	"crypto/sha256"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"

	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/platform"
)

// EnvPrefix is prepended to every environment variable devboot reads.
const EnvPrefix = "DEVBOOT_"

// Config holds all devboot settings.
// Values are layered: defaults, then environment variables, then the
// profile file for fields still unset, then command-line flags.
type Config struct {
	// Target configuration

	// WorkDir is the directory that folders, the repository and the local
	// editor settings are created in. If empty, the current directory is used.
	WorkDir string

	// ProfilePath points to an optional YAML profile.
	ProfilePath string

	// Language selects the ignore template fetched at local scope.
	// Empty skips the ignore file.
	Language string

	// Scope is the configuration store for git and editor settings.
	// Empty means local.
	Scope platform.Scope

	// Identity

	// GitName is written as user.name when non-empty.
	GitName string

	// GitEmail is written as user.email when non-empty.
	GitEmail string

	// Behavior

	// AssumeYes answers yes to every confirmation prompt.
	AssumeYes bool

	// DryRun prints commands and file writes without performing them.
	DryRun bool

	// User experience options

	// Verbose controls informational output. Quiet mode sets it to false.
	Verbose bool

	// Debug enables the structured log file.
	Debug bool

	// LogFile is where debug logs go. Defaults to a per-directory file under
	// the XDG data home.
	LogFile string

	// ShowLogo prints the ASCII logo before running.
	ShowLogo bool

	// Build metadata

	// VersionInfo contains version, commit, and build date information.
	// This is injected at build time.
	VersionInfo VersionInfo

	// parsedQuiet tracks the inverted --quiet flag until Finalize.
	parsedQuiet *bool
}

// VersionInfo contains build-time version metadata.
type VersionInfo struct {
	// Version is the semantic version number (e.g., "v1.2.3").
	Version string

	// Commit is the Git commit hash from which the binary was built.
	Commit string

	// Date is the build timestamp in human-readable format.
	Date string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		Verbose: true,

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromEnvironment updates config from DEVBOOT_* environment variables
func (c *Config) LoadFromEnvironment() {
	c.WorkDir = getEnvString("DIR", c.WorkDir)
	c.ProfilePath = getEnvString("PROFILE", c.ProfilePath)
	c.Language = getEnvString("LANGUAGE", c.Language)
	c.Scope = platform.Scope(getEnvString("SCOPE", string(c.Scope)))
	c.GitName = getEnvString("GIT_NAME", c.GitName)
	c.GitEmail = getEnvString("GIT_EMAIL", c.GitEmail)
	c.AssumeYes = getEnvBool("YES", c.AssumeYes)
	c.DryRun = getEnvBool("DRY_RUN", c.DryRun)
	c.Verbose = getEnvBool("VERBOSE", c.Verbose)
	c.Debug = getEnvBool("DEBUG", c.Debug)
	c.LogFile = getEnvString("LOG_FILE", c.LogFile)
}

// SetupFlags registers the persistent command-line flags on fs
func (c *Config) SetupFlags(fs *pflag.FlagSet) {
	quiet := !c.Verbose

	fs.StringVarP(&c.WorkDir, "dir", "C", c.WorkDir, "Working directory (default: current directory)")
	fs.StringVarP(&c.ProfilePath, "profile", "p", c.ProfilePath, "Path to a YAML profile")
	fs.StringVar(&c.GitName, "git-name", c.GitName, "Value for git user.name")
	fs.StringVar(&c.GitEmail, "git-email", c.GitEmail, "Value for git user.email")
	fs.BoolVarP(&c.AssumeYes, "yes", "y", c.AssumeYes, "Answer yes to confirmation prompts")
	fs.BoolVarP(&c.DryRun, "dry-run", "n", c.DryRun, "Print commands and writes without performing them")
	fs.BoolVarP(&quiet, "quiet", "q", quiet, "Hide informational messages")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "Enable debug logging")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "Path to log file (default: ~/.local/share/devboot/logs/devboot-{dir-hash}.log)")
	fs.BoolVar(&c.ShowLogo, "logo", c.ShowLogo, "Display the ASCII logo before running")

	c.parsedQuiet = &quiet
}

// ApplyProfile fills fields that neither the environment nor a flag has set.
func (c *Config) ApplyProfile(p *Profile) {
	if p == nil {
		return
	}
	if c.Language == "" {
		c.Language = p.Git.Language
	}
	if c.Scope == "" {
		c.Scope = p.Git.Scope
	}
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.parsedQuiet != nil {
		c.Verbose = !*c.parsedQuiet
		c.parsedQuiet = nil
	}

	if c.WorkDir == "" {
		var err error
		c.WorkDir, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("workDir", "", errors.Wrap(err, "failed to get current directory"))
		}
	}

	absWorkDir, err := filepath.Abs(c.WorkDir)
	if err != nil {
		return errors.NewConfigError("workDir", c.WorkDir, errors.Wrap(err, "failed to resolve absolute path"))
	}
	c.WorkDir = absWorkDir

	info, err := os.Stat(c.WorkDir)
	if err != nil || !info.IsDir() {
		return errors.NewConfigError("workDir", c.WorkDir,
			errors.Wrap(errors.ErrInvalidConfiguration, "working directory does not exist"))
	}

	scope, err := platform.ParseScope(string(c.Scope))
	if err != nil {
		return errors.NewConfigError("scope", string(c.Scope), err)
	}
	c.Scope = scope

	c.Language = strings.TrimSpace(c.Language)

	if c.GitEmail != "" {
		if _, err := mail.ParseAddress(c.GitEmail); err != nil {
			return errors.NewConfigError("gitEmail", c.GitEmail,
				errors.Wrap(errors.ErrInvalidConfiguration, "not a valid email address"))
		}
	}

	if c.LogFile == "" {
		// Follow XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				logDir = os.TempDir()
			}
		}

		dirHash := fmt.Sprintf("%x", sha256OfString(c.WorkDir)[:8])
		c.LogFile = filepath.Join(logDir, "devboot", "logs", fmt.Sprintf("devboot-%s.log", dirHash))
	}

	if c.Debug {
		if err := os.MkdirAll(filepath.Dir(c.LogFile), 0o700); err != nil {
			return errors.NewConfigError("logFile", c.LogFile, errors.Wrap(err, "cannot create log directory"))
		}
	}

	return nil
}

// getEnvString returns a DEVBOOT_ environment variable or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(EnvPrefix + key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool returns a DEVBOOT_ environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(EnvPrefix + key); exists {
		valueLower := strings.ToLower(valueStr)
		if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
			return true
		}
		if valueLower == "false" || valueLower == "0" || valueLower == "no" {
			return false
		}
		// For any other value, fall back to default
	}
	return defaultValue
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
