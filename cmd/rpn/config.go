package main

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	defaultFormat   = "%g"
	defaultLogLevel = "warn"

	outputText = "text"
	outputYAML = "yaml"
)

// config holds the settings that can come from either a TOML file or flags.
type config struct {
	// Format is the fmt verb used for results in text output.
	Format string `toml:"format"`
	// Output is the output format, text or yaml.
	Output string `toml:"output"`
	// Lines makes each input line a separate expression.
	Lines bool `toml:"lines"`
	// Echo prints the postfix form of each expression.
	Echo bool `toml:"echo"`
	// LogLevel is the zerolog level for diagnostics.
	LogLevel string `toml:"log_level"`
}

func defaultConfig() config {
	return config{
		Format:   defaultFormat,
		Output:   outputText,
		LogLevel: defaultLogLevel,
	}
}

// loadConfig reads a TOML configuration file. Settings missing from the file
// keep their defaults. An empty path gives the default configuration.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return config{}, errors.Wrapf(err, "decoding %s", path)
	}
	if und := md.Undecoded(); len(und) > 0 {
		return config{}, errors.Errorf("unknown settings in %s: %v", path, und)
	}
	return cfg, nil
}

// override copies the setting for the named flag from flags.
func (c *config) override(name string, flags config) {
	switch name {
	case "fmt":
		c.Format = flags.Format
	case "o":
		c.Output = flags.Output
	case "n":
		c.Lines = flags.Lines
	case "echo":
		c.Echo = flags.Echo
	case "log-level":
		c.LogLevel = flags.LogLevel
	}
}

// check reports whether the configuration is usable.
func (c config) check() error {
	switch c.Output {
	case outputText, outputYAML:
	default:
		return errors.Errorf("unknown output format %q", c.Output)
	}
	if c.Format == "" {
		return errors.New("empty result format")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}
