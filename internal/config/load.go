package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/nvtrim/internal/messages"
)

// ErrConfigValidation wraps config validation failures, as opposed to
// TOML syntax or filesystem errors.
var ErrConfigValidation = errors.New("config validation failed")

// fileConfig mirrors Config with optional fields so that keys absent from
// the override file keep their defaults.
type fileConfig struct {
	AppName         *string        `toml:"app_name"`
	FailureExitCode *int           `toml:"failure_exit_code"`
	Allow           *fileAllowList `toml:"allow"`
	Placeholders    *[]Placeholder `toml:"placeholders"`
	Manifest        *struct {
		File *string `toml:"file"`
	} `toml:"manifest"`
	Installer *struct {
		Executable *string   `toml:"executable"`
		Flags      *[]string `toml:"flags"`
	} `toml:"installer"`
	Extractor *struct {
		Path   *string `toml:"path"`
		Lookup *string `toml:"lookup"`
	} `toml:"extractor"`
}

type fileAllowList struct {
	Folders *[]string `toml:"folders"`
	Files   *[]string `toml:"files"`
}

// Load returns the defaults when path is empty, otherwise the defaults
// overridden by the TOML file at path.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(messages.ConfigReadFileFmt, path, err)
	}
	return Parse(data, path)
}

// Parse overlays TOML data on the defaults and validates the result.
// source is used in error messages.
func Parse(data []byte, source string) (*Config, error) {
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidFmt, source, err)
	}
	if err := decodeStrict(data); err != nil {
		return nil, fmt.Errorf("%w: "+messages.ConfigUnknownKeyFmt, ErrConfigValidation, source, err)
	}
	cfg := Default()
	fc.apply(cfg)
	if err := cfg.Validate(source); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigValidation, err)
	}
	return cfg, nil
}

// decodeStrict rejects keys that fileConfig does not declare.
func decodeStrict(data []byte) error {
	var fc fileConfig
	decoder := toml.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	return decoder.Decode(&fc)
}

func (fc fileConfig) apply(cfg *Config) {
	setString(&cfg.AppName, fc.AppName)
	if fc.FailureExitCode != nil {
		cfg.FailureExitCode = *fc.FailureExitCode
	}
	if fc.Allow != nil {
		setStrings(&cfg.Allow.Folders, fc.Allow.Folders)
		setStrings(&cfg.Allow.Files, fc.Allow.Files)
	}
	if fc.Placeholders != nil {
		cfg.Placeholders = append([]Placeholder(nil), (*fc.Placeholders)...)
	}
	if fc.Manifest != nil {
		setString(&cfg.Manifest.File, fc.Manifest.File)
	}
	if fc.Installer != nil {
		setString(&cfg.Installer.Executable, fc.Installer.Executable)
		setStrings(&cfg.Installer.Flags, fc.Installer.Flags)
	}
	if fc.Extractor != nil {
		setString(&cfg.Extractor.Path, fc.Extractor.Path)
		setString(&cfg.Extractor.Lookup, fc.Extractor.Lookup)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setStrings(dst *[]string, src *[]string) {
	if src != nil {
		*dst = append([]string(nil), (*src)...)
	}
}
