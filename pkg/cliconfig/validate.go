package cliconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	maxTimeout     = 3600
	maxSessionTTL  = 7 * 24 * 3600
	maxMaxSessions = 1_000_000
)

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	var errs []error

	if c.Host == "" {
		errs = append(errs, errors.New("host must not be empty"))
	}
	if c.Port < 0 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d is out of range (0-65535)", c.Port))
	}
	if c.ReadTimeout < 1 || c.ReadTimeout > maxTimeout {
		errs = append(errs, fmt.Errorf("readTimeout %d is out of range (1-%d)", c.ReadTimeout, maxTimeout))
	}
	if c.WriteTimeout < 1 || c.WriteTimeout > maxTimeout {
		errs = append(errs, fmt.Errorf("writeTimeout %d is out of range (1-%d)", c.WriteTimeout, maxTimeout))
	}
	if c.SessionTTL < 1 || c.SessionTTL > maxSessionTTL {
		errs = append(errs, fmt.Errorf("sessionTTL %d is out of range (1-%d)", c.SessionTTL, maxSessionTTL))
	}
	if c.MaxSessions < 1 || c.MaxSessions > maxMaxSessions {
		errs = append(errs, fmt.Errorf("maxSessions %d is out of range (1-%d)", c.MaxSessions, maxMaxSessions))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}

	return errors.Join(errs...)
}

// SessionTTLDuration returns SessionTTL as a time.Duration.
func (c *Config) SessionTTLDuration() time.Duration {
	return time.Duration(c.SessionTTL) * time.Second
}

// ReadTimeoutDuration returns ReadTimeout as a time.Duration.
func (c *Config) ReadTimeoutDuration() time.Duration {
	return time.Duration(c.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns WriteTimeout as a time.Duration.
func (c *Config) WriteTimeoutDuration() time.Duration {
	return time.Duration(c.WriteTimeout) * time.Second
}
