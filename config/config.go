// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

var ErrConfigNotValid = errors.New("environment variables not valid")

var logLevels = []string{"debug", "info", "warn", "error"}

// logLevelAliases maps spellings the logger also accepts onto logLevels
var logLevelAliases = map[string]string{"warning": "warn"}

type Config struct {
	Address  string `env:"SERVERSENTRY_ADDR" envDefault:":8090"`
	LogLevel string `env:"SERVERSENTRY_LOG_LEVEL" envDefault:"info"`
	Verbose  bool   `env:"SERVERSENTRY_VERBOSE" envDefault:"false"`
}

// Load parses and validates the configuration from the environment
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotValid, err.Error())
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if lvl, ok := logLevelAliases[cfg.LogLevel]; ok {
		cfg.LogLevel = lvl
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	problems := make([]string, 0)

	_, port, err := net.SplitHostPort(c.Address)
	if err != nil {
		problems = append(problems, "SERVERSENTRY_ADDR must be host:port")
	} else if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		problems = append(problems, "SERVERSENTRY_ADDR port is out of valid range (1-65535)")
	}

	validLevel := false
	for _, lvl := range logLevels {
		if c.LogLevel == lvl {
			validLevel = true
			break
		}
	}
	if !validLevel {
		problems = append(problems, "SERVERSENTRY_LOG_LEVEL must be one of "+strings.Join(logLevels, ", "))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigNotValid, strings.Join(problems, ", "))
	}
	return nil
}
