package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/platform"
)

func TestNewConfig(t *testing.T) {
	c := New()

	if !c.Verbose {
		t.Errorf("Expected Verbose=true, got false")
	}
	if c.DryRun || c.AssumeYes || c.Debug {
		t.Errorf("Expected DryRun, AssumeYes and Debug to default to false")
	}
	if c.Scope != "" {
		t.Errorf("Expected empty Scope before Finalize, got %q", c.Scope)
	}
	if c.VersionInfo.Version != "dev" {
		t.Errorf("Expected Version=dev, got %s", c.VersionInfo.Version)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DEVBOOT_DIR", "/tmp/devboot-project")
	t.Setenv("DEVBOOT_PROFILE", "/tmp/profile.yaml")
	t.Setenv("DEVBOOT_LANGUAGE", "go")
	t.Setenv("DEVBOOT_SCOPE", "global")
	t.Setenv("DEVBOOT_GIT_NAME", "Jane Doe")
	t.Setenv("DEVBOOT_GIT_EMAIL", "jane@example.com")
	t.Setenv("DEVBOOT_YES", "yes")
	t.Setenv("DEVBOOT_DRY_RUN", "1")
	t.Setenv("DEVBOOT_VERBOSE", "false")
	t.Setenv("DEVBOOT_DEBUG", "true")
	t.Setenv("DEVBOOT_LOG_FILE", "/tmp/devboot.log")

	c := New()
	c.LoadFromEnvironment()

	if c.WorkDir != "/tmp/devboot-project" {
		t.Errorf("Expected WorkDir=/tmp/devboot-project, got %s", c.WorkDir)
	}
	if c.ProfilePath != "/tmp/profile.yaml" {
		t.Errorf("Expected ProfilePath=/tmp/profile.yaml, got %s", c.ProfilePath)
	}
	if c.Language != "go" {
		t.Errorf("Expected Language=go, got %s", c.Language)
	}
	if c.Scope != platform.ScopeGlobal {
		t.Errorf("Expected Scope=global, got %s", c.Scope)
	}
	if c.GitName != "Jane Doe" || c.GitEmail != "jane@example.com" {
		t.Errorf("Expected identity Jane Doe <jane@example.com>, got %s <%s>", c.GitName, c.GitEmail)
	}
	if !c.AssumeYes || !c.DryRun || !c.Debug {
		t.Errorf("Expected AssumeYes, DryRun and Debug to be true")
	}
	if c.Verbose {
		t.Errorf("Expected Verbose=false, got true")
	}
	if c.LogFile != "/tmp/devboot.log" {
		t.Errorf("Expected LogFile=/tmp/devboot.log, got %s", c.LogFile)
	}
}

func TestLoadFromEnvironmentIgnoresUnparseableBools(t *testing.T) {
	t.Setenv("DEVBOOT_DRY_RUN", "sometimes")

	c := New()
	c.LoadFromEnvironment()

	if c.DryRun {
		t.Errorf("Expected DryRun to keep its default for an unparseable value")
	}
}

func TestSetupFlags(t *testing.T) {
	tests := map[string]struct {
		args   []string
		verify func(t *testing.T, c *Config)
	}{
		"long flags": {
			args: []string{"--dir", "/tmp/x", "--profile", "p.yaml", "--git-name", "Jane", "--git-email", "j@example.com", "--yes", "--dry-run", "--debug", "--log-file", "/tmp/l.log", "--logo"},
			verify: func(t *testing.T, c *Config) {
				if c.WorkDir != "/tmp/x" || c.ProfilePath != "p.yaml" {
					t.Errorf("Unexpected paths: %s %s", c.WorkDir, c.ProfilePath)
				}
				if c.GitName != "Jane" || c.GitEmail != "j@example.com" {
					t.Errorf("Unexpected identity: %s <%s>", c.GitName, c.GitEmail)
				}
				if !c.AssumeYes || !c.DryRun || !c.Debug || !c.ShowLogo {
					t.Errorf("Expected boolean flags to be set")
				}
				if c.LogFile != "/tmp/l.log" {
					t.Errorf("Expected LogFile=/tmp/l.log, got %s", c.LogFile)
				}
			},
		},
		"short flags": {
			args: []string{"-C", "/tmp/y", "-p", "q.yaml", "-y", "-n"},
			verify: func(t *testing.T, c *Config) {
				if c.WorkDir != "/tmp/y" || c.ProfilePath != "q.yaml" {
					t.Errorf("Unexpected paths: %s %s", c.WorkDir, c.ProfilePath)
				}
				if !c.AssumeYes || !c.DryRun {
					t.Errorf("Expected -y and -n to be set")
				}
			},
		},
		"quiet": {
			args: []string{"--quiet"},
			verify: func(t *testing.T, c *Config) {
				if c.parsedQuiet == nil || !*c.parsedQuiet {
					t.Fatalf("Expected parsedQuiet to be true")
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			c := New()
			fs := pflag.NewFlagSet("devboot", pflag.ContinueOnError)
			c.SetupFlags(fs)

			if err := fs.Parse(tc.args); err != nil {
				t.Fatalf("Failed to parse flags: %v", err)
			}
			tc.verify(t, c)
		})
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("DEVBOOT_DIR", "/from/env")

	c := New()
	c.LoadFromEnvironment()

	fs := pflag.NewFlagSet("devboot", pflag.ContinueOnError)
	c.SetupFlags(fs)
	if err := fs.Parse([]string{"--dir", "/from/flag"}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	if c.WorkDir != "/from/flag" {
		t.Errorf("Expected flag to win, got %s", c.WorkDir)
	}
}

func TestApplyProfile(t *testing.T) {
	profile := &Profile{Git: GitProfile{Language: "python", Scope: platform.ScopeGlobal}}

	t.Run("fills unset fields", func(t *testing.T) {
		c := New()
		c.ApplyProfile(profile)
		if c.Language != "python" || c.Scope != platform.ScopeGlobal {
			t.Errorf("Expected profile values, got %s %s", c.Language, c.Scope)
		}
	})

	t.Run("keeps explicit fields", func(t *testing.T) {
		c := New()
		c.Language = "go"
		c.Scope = platform.ScopeLocal
		c.ApplyProfile(profile)
		if c.Language != "go" || c.Scope != platform.ScopeLocal {
			t.Errorf("Expected explicit values to win, got %s %s", c.Language, c.Scope)
		}
	})

	t.Run("nil profile", func(t *testing.T) {
		c := New()
		c.ApplyProfile(nil)
		if c.Language != "" {
			t.Errorf("Expected no change, got %s", c.Language)
		}
	})
}

func TestFinalize(t *testing.T) {
	tests := map[string]struct {
		setup       func(t *testing.T, c *Config)
		expectErr   error
		expectParam string
		verify      func(t *testing.T, c *Config)
	}{
		"defaults": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = t.TempDir()
			},
			verify: func(t *testing.T, c *Config) {
				if c.Scope != platform.ScopeLocal {
					t.Errorf("Expected Scope=local, got %s", c.Scope)
				}
				if !filepath.IsAbs(c.WorkDir) {
					t.Errorf("Expected absolute WorkDir, got %s", c.WorkDir)
				}
			},
		},
		"relative workdir": {
			setup: func(t *testing.T, c *Config) {
				dir := t.TempDir()
				t.Chdir(dir)
				if err := os.Mkdir("project", 0o755); err != nil {
					t.Fatal(err)
				}
				c.WorkDir = "project"
			},
			verify: func(t *testing.T, c *Config) {
				if !filepath.IsAbs(c.WorkDir) || filepath.Base(c.WorkDir) != "project" {
					t.Errorf("Expected absolute project path, got %s", c.WorkDir)
				}
			},
		},
		"missing workdir": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = filepath.Join(t.TempDir(), "does-not-exist")
			},
			expectErr:   errors.ErrInvalidConfiguration,
			expectParam: "workDir",
		},
		"invalid scope": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = t.TempDir()
				c.Scope = "worktree"
			},
			expectErr:   errors.ErrInvalidScope,
			expectParam: "scope",
		},
		"uppercase scope": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = t.TempDir()
				c.Scope = "GLOBAL"
			},
			verify: func(t *testing.T, c *Config) {
				if c.Scope != platform.ScopeGlobal {
					t.Errorf("Expected Scope=global, got %s", c.Scope)
				}
			},
		},
		"invalid email": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = t.TempDir()
				c.GitEmail = "not an email"
			},
			expectErr:   errors.ErrInvalidConfiguration,
			expectParam: "gitEmail",
		},
		"quiet flag applied": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = t.TempDir()
				quiet := true
				c.parsedQuiet = &quiet
			},
			verify: func(t *testing.T, c *Config) {
				if c.Verbose {
					t.Errorf("Expected Verbose=false after --quiet")
				}
			},
		},
		"language trimmed": {
			setup: func(t *testing.T, c *Config) {
				c.WorkDir = t.TempDir()
				c.Language = "  go \n"
			},
			verify: func(t *testing.T, c *Config) {
				if c.Language != "go" {
					t.Errorf("Expected Language=go, got %q", c.Language)
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("XDG_DATA_HOME", t.TempDir())

			c := New()
			tc.setup(t, c)

			err := c.Finalize()
			if tc.expectErr != nil {
				if err == nil {
					t.Fatalf("Expected error, got nil")
				}
				if !errors.Is(err, tc.expectErr) {
					t.Errorf("Expected %v in chain, got %v", tc.expectErr, err)
				}
				var configErr *errors.ConfigError
				if !errors.As(err, &configErr) || configErr.Parameter != tc.expectParam {
					t.Errorf("Expected ConfigError for %s, got %v", tc.expectParam, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.verify != nil {
				tc.verify(t, c)
			}
		})
	}
}

func TestFinalizeLogFile(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	workDir := t.TempDir()

	c := New()
	c.WorkDir = workDir
	c.Debug = true
	if err := c.Finalize(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	logDir := filepath.Join(dataHome, "devboot", "logs")
	if filepath.Dir(c.LogFile) != logDir {
		t.Errorf("Expected log file under %s, got %s", logDir, c.LogFile)
	}
	base := filepath.Base(c.LogFile)
	if !strings.HasPrefix(base, "devboot-") || !strings.HasSuffix(base, ".log") {
		t.Errorf("Unexpected log file name %s", base)
	}
	if info, err := os.Stat(logDir); err != nil || !info.IsDir() {
		t.Errorf("Expected log directory to be created: %v", err)
	}

	// Same directory, same log file
	other := New()
	other.WorkDir = workDir
	if err := other.Finalize(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if other.LogFile != c.LogFile {
		t.Errorf("Expected stable log path %s, got %s", c.LogFile, other.LogFile)
	}
}

func TestFinalizeWithoutDebugCreatesNothing(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	c := New()
	c.WorkDir = t.TempDir()
	if err := c.Finalize(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dataHome, "devboot")); !os.IsNotExist(err) {
		t.Errorf("Expected no log directory without --debug, got %v", err)
	}
}
