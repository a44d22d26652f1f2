package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bashhack/devboot/internal/confmap"
	"github.com/bashhack/devboot/internal/editor"
	"github.com/bashhack/devboot/internal/errors"
	"github.com/bashhack/devboot/internal/platform"
)

// Profile is the YAML document describing a full bootstrap.
//
//	folders: [src, docs]
//	git:
//	  language: go
//	  scope: local
//	  config:
//	    user.name: Jane
//	settings_scope: local
//	settings:
//	  window.zoomLevel: 3
//	keybindings:
//	  - {key: ctrl+k ctrl+t, command: workbench.action.selectTheme}
type Profile struct {
	Folders       []string            `yaml:"folders"`
	Git           GitProfile          `yaml:"git"`
	SettingsScope platform.Scope      `yaml:"settings_scope"`
	Settings      *confmap.Map        `yaml:"settings"`
	Keybindings   []editor.Keybinding `yaml:"keybindings"`
}

// GitProfile holds the git section of a Profile.
type GitProfile struct {
	Language string         `yaml:"language"`
	Scope    platform.Scope `yaml:"scope"`
	Config   *confmap.Map   `yaml:"config"`
}

// LoadProfile reads and decodes the profile at path.
func LoadProfile(path string) (*Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewConfigError("profile", path, errors.Wrap(errors.ErrInvalidProfile, err.Error()))
	}
	defer func() { _ = f.Close() }()

	p, err := DecodeProfile(f)
	if err != nil {
		return nil, errors.NewConfigError("profile", path, err)
	}
	return p, nil
}

// DecodeProfile decodes a single YAML profile document from r. Unknown keys
// are rejected so typos surface instead of being ignored. An empty document
// yields an empty Profile.
func DecodeProfile(r io.Reader) (*Profile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidProfile, err.Error())
	}

	p := &Profile{}
	if len(bytes.TrimSpace(data)) == 0 {
		return p, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.ErrInvalidProfile, err.Error())
	}

	if _, err := platform.ParseScope(string(p.Git.Scope)); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidProfile, err.Error())
	}
	if _, err := platform.ParseScope(string(p.SettingsScope)); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidProfile, err.Error())
	}

	return p, nil
}
