package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names
const (
	EnvHost         = "UUIDGEN_HOST"
	EnvPort         = "UUIDGEN_PORT"
	EnvReadTimeout  = "UUIDGEN_READ_TIMEOUT"
	EnvWriteTimeout = "UUIDGEN_WRITE_TIMEOUT"
	EnvSessionTTL   = "UUIDGEN_SESSION_TTL"
	EnvMaxSessions  = "UUIDGEN_MAX_SESSIONS"
	EnvLogLevel     = "UUIDGEN_LOG_LEVEL"
	EnvLogFormat    = "UUIDGEN_LOG_FORMAT"
	EnvJSON         = "UUIDGEN_JSON"
	EnvConfig       = "UUIDGEN_CONFIG"
)

// LoadEnvConfig applies environment variables to cfg. Only variables that
// are present are applied; a malformed number is an error.
func LoadEnvConfig(cfg *Config) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	if v := os.Getenv(EnvHost); v != "" {
		cfg.Host = v
		cfg.Sources["host"] = SourceEnv
	}

	ints := []struct {
		env string
		key string
		dst *int
	}{
		{EnvPort, "port", &cfg.Port},
		{EnvReadTimeout, "readTimeout", &cfg.ReadTimeout},
		{EnvWriteTimeout, "writeTimeout", &cfg.WriteTimeout},
		{EnvSessionTTL, "sessionTTL", &cfg.SessionTTL},
		{EnvMaxSessions, "maxSessions", &cfg.MaxSessions},
	}
	for _, f := range ints {
		v := os.Getenv(f.env)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid number %q", f.env, v)
		}
		*f.dst = n
		cfg.Sources[f.key] = SourceEnv
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
		cfg.Sources["logLevel"] = SourceEnv
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = v
		cfg.Sources["logFormat"] = SourceEnv
	}
	if v := os.Getenv(EnvJSON); v != "" {
		switch strings.ToLower(v) {
		case "1", "true", "yes":
			cfg.JSON = true
		default:
			cfg.JSON = false
		}
		cfg.Sources["json"] = SourceEnv
	}
	return nil
}
