// Package cliconfig provides configuration types and loading for uuidgen.
package cliconfig

// Config represents the complete configuration for uuidgen.
// Values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.uuidgenrc.yaml in current directory), or the file
//    named by --config / UUIDGEN_CONFIG
// 4. Global config file (~/.config/uuidgen/config.yaml)
// 5. Default values (lowest priority)
type Config struct {
	// Server settings
	Host         string `yaml:"host" json:"host"`
	Port         int    `yaml:"port" json:"port"`
	ReadTimeout  int    `yaml:"readTimeout" json:"readTimeout"`
	WriteTimeout int    `yaml:"writeTimeout" json:"writeTimeout"`

	// Session settings (SessionTTL in seconds)
	SessionTTL  int `yaml:"sessionTTL" json:"sessionTTL"`
	MaxSessions int `yaml:"maxSessions" json:"maxSessions"`

	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`

	// Output settings
	JSON bool `yaml:"json" json:"json"`

	// ConfigFile is the file that was loaded in place of the local config.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from (for debugging)
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which keys were present in a loaded file, so an
	// explicit false can override a true.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Keys lists every configuration key in display order.
var Keys = []string{
	"host", "port", "readTimeout", "writeTimeout",
	"sessionTTL", "maxSessions", "logLevel", "logFormat", "json",
}
