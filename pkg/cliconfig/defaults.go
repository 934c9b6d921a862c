package cliconfig

import (
	"net"
	"strconv"
)

// DefaultHost is the default listen address.
const DefaultHost = "127.0.0.1"

// DefaultPort is the default web server port.
const DefaultPort = 4380

// DefaultReadTimeout is the default read timeout in seconds.
const DefaultReadTimeout = 30

// DefaultWriteTimeout is the default write timeout in seconds.
const DefaultWriteTimeout = 30

// DefaultSessionTTL is the default idle session lifetime in seconds.
const DefaultSessionTTL = 30 * 60

// DefaultMaxSessions is the default cap on live browser sessions.
const DefaultMaxSessions = 10000

// DefaultLogLevel is the default log level.
const DefaultLogLevel = "info"

// DefaultLogFormat is the default log format.
const DefaultLogFormat = "text"

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Host:         DefaultHost,
		Port:         DefaultPort,
		ReadTimeout:  DefaultReadTimeout,
		WriteTimeout: DefaultWriteTimeout,
		SessionTTL:   DefaultSessionTTL,
		MaxSessions:  DefaultMaxSessions,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Sources:      make(map[string]string),
	}
	for _, key := range Keys {
		cfg.Sources[key] = SourceDefault
	}
	return cfg
}

// Addr returns host:port for the web server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
