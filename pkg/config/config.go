// Package config loads and validates the TOML run configuration that
// selects the root package and the dependency source for a graph build.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"

	apperrors "github.com/HIlight3R/package-manager/pkg/errors"
)

// Mode selects where dependency information comes from.
type Mode string

const (
	// ModeReal resolves dependencies against a live package index.
	ModeReal Mode = "real"
	// ModeTest resolves dependencies from a local fixture file.
	ModeTest Mode = "test"
)

// versionRE accepts X.Y or X.Y.Z with numeric parts.
var versionRE = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)

// Config is the [app] table of the configuration file.
type Config struct {
	PackageName  string `toml:"package_name"`
	Version      string `toml:"version"`
	Mode         Mode   `toml:"mode"`
	RepoURL      string `toml:"repo_url"`
	TestRepoPath string `toml:"test_repo_path"`
	ASCIITree    bool   `toml:"ascii_tree"`
}

type file struct {
	App Config `toml:"app"`
}

// Load reads and validates the configuration at path. All failures carry
// the INVALID_CONFIG code.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var f file
	meta, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if !meta.IsDefined("app") {
		return nil, apperrors.New(apperrors.ErrCodeInvalidConfig, "config %s: missing [app] table", path)
	}

	cfg := f.App
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.PackageName == "" {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "package_name must not be empty")
	}
	if !versionRE.MatchString(c.Version) {
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "version %q must be X.Y or X.Y.Z with numeric parts", c.Version)
	}

	switch c.Mode {
	case ModeReal:
		if !strings.HasPrefix(c.RepoURL, "http://") && !strings.HasPrefix(c.RepoURL, "https://") {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "repo_url %q must start with http:// or https://", c.RepoURL)
		}
	case ModeTest:
		if c.TestRepoPath == "" {
			return apperrors.New(apperrors.ErrCodeInvalidConfig, "test_repo_path must be set in test mode")
		}
		if _, err := os.Stat(c.TestRepoPath); err != nil {
			return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "test_repo_path %q", c.TestRepoPath)
		}
	default:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "mode %q must be %q or %q", c.Mode, ModeReal, ModeTest)
	}
	return nil
}

// Echo returns the loaded settings as "key = value" lines in declaration
// order, for printing back to the user.
func (c *Config) Echo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "package_name = %s\n", c.PackageName)
	fmt.Fprintf(&b, "version = %s\n", c.Version)
	fmt.Fprintf(&b, "mode = %s\n", c.Mode)
	if c.Mode == ModeReal {
		fmt.Fprintf(&b, "repo_url = %s\n", c.RepoURL)
	} else {
		fmt.Fprintf(&b, "test_repo_path = %s\n", c.TestRepoPath)
	}
	fmt.Fprintf(&b, "ascii_tree = %t\n", c.ASCIITree)
	return b.String()
}
