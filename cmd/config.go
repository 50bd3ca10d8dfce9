package cmd

import (
	"strconv"

	"routebook/internal/adapters/in/cli"
	"routebook/internal/pkg/logger"
)

// Config holds settings read from the environment (ROUTEBOOK_*). None of
// them change how manifests are parsed.
type Config struct {
	LogLevel string
	LogFile  string
	NoClear  bool
}

// ParseConfig builds a Config from raw environment values. Empty values take
// defaults.
func ParseConfig(logLevel, logFile, noClear string) (Config, error) {
	if _, err := logger.ParseLevel(logLevel); err != nil {
		return Config{}, err
	}

	config := Config{
		LogLevel: logLevel,
		LogFile:  logFile,
	}
	if noClear != "" {
		v, err := strconv.ParseBool(noClear)
		if err != nil {
			return Config{}, err
		}
		config.NoClear = v
	}

	return config, nil
}

// CLIOptions returns the command line defaults for this config.
func (c Config) CLIOptions() cli.Options {
	return cli.Options{
		LogLevel: c.LogLevel,
		LogFile:  c.LogFile,
		NoClear:  c.NoClear,
	}
}
