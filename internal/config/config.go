package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/channel-inspector/internal/domain/channel"
	"github.com/oshokin/channel-inspector/internal/logger"
)

// Config holds the settings shared by every front-end.
type Config struct {
	// Threshold is the initial suspicion threshold.
	Threshold int `yaml:"threshold" toml:"threshold"`
	// Seed makes the generated readings reproducible when set.
	Seed *uint64 `yaml:"seed,omitempty" toml:"seed,omitempty"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" toml:"log_level"`
	// LogFile receives logs while an interactive front-end owns the terminal.
	LogFile string `yaml:"log_file,omitempty" toml:"log_file,omitempty"`
	// FrontEnd is the front-end started when no subcommand is given.
	FrontEnd string `yaml:"front_end" toml:"front_end"`
}

const (
	// DefaultConfigFilename is the default filename for settings.
	DefaultConfigFilename = "channel-inspector.yaml"

	// DefaultLogLevel is used when no level is configured.
	DefaultLogLevel = "info"

	// DefaultFilePermissions is the default file permission for config files.
	DefaultFilePermissions = 0o600
)

// Front-end names accepted in FrontEnd.
const (
	FrontEndRetained  = "retained"
	FrontEndImmediate = "immediate"
	FrontEndReplay    = "replay"
)

var (
	// errConfigIsNotSet is returned when a nil configuration is provided.
	errConfigIsNotSet = errors.New("configuration is not set")
	// errUnknownFrontEnd is returned for a FrontEnd outside the known names.
	errUnknownFrontEnd = errors.New("unknown front-end")
	// errUnknownLogLevel is returned for an unparsable LogLevel.
	errUnknownLogLevel = errors.New("unknown log level")
)

// Default returns the settings used when no file exists.
func Default() *Config {
	return &Config{
		Threshold: channel.DefaultThreshold,
		LogLevel:  DefaultLogLevel,
		FrontEnd:  FrontEndRetained,
	}
}

// Load reads settings from path. A missing file yields Default().
// Files ending in .toml are decoded as TOML, anything else as YAML.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigFilename
	}

	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}

		return nil, fmt.Errorf("read settings: %w", err)
	}

	cfg := Default()

	if isTOML(path) {
		if _, err = toml.Decode(string(contents), cfg); err != nil {
			return nil, fmt.Errorf("decode toml settings: %w", err)
		}
	} else if err = yaml.Unmarshal(contents, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal settings: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes settings to path in the format implied by its extension.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return errConfigIsNotSet
	}

	if path == "" {
		path = DefaultConfigFilename
	}

	if err := Validate(cfg); err != nil {
		return err
	}

	var (
		data []byte
		err  error
	)

	if isTOML(path) {
		var buf bytes.Buffer

		err = toml.NewEncoder(&buf).Encode(cfg)
		data = buf.Bytes()
	} else {
		data, err = yaml.Marshal(cfg)
	}

	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	// Restrict permissions.
	if err := os.WriteFile(filepath.Clean(path), data, DefaultFilePermissions); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}

	return nil
}

// Validate fills defaults for empty fields and checks the rest.
func Validate(settings *Config) error {
	if settings == nil {
		return errConfigIsNotSet
	}

	if settings.Threshold == 0 {
		settings.Threshold = channel.DefaultThreshold
	}

	if settings.Threshold < channel.LowLimit || settings.Threshold > channel.HighLimit {
		return fmt.Errorf("threshold %d: %w", settings.Threshold, channel.ErrValueOutOfRange)
	}

	if settings.LogLevel == "" {
		settings.LogLevel = DefaultLogLevel
	}

	if _, ok := logger.ParseLogLevel(settings.LogLevel); !ok {
		return fmt.Errorf("%w: %q", errUnknownLogLevel, settings.LogLevel)
	}

	if settings.FrontEnd == "" {
		settings.FrontEnd = FrontEndRetained
	}

	switch settings.FrontEnd {
	case FrontEndRetained, FrontEndImmediate, FrontEndReplay:
	default:
		return fmt.Errorf("%w: %q", errUnknownFrontEnd, settings.FrontEnd)
	}

	return nil
}

// isTOML reports whether path names a TOML file.
func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
