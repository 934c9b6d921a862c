package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Keys recorded in source.SetFields are applied even when zero, so an
// explicit 0 in a file reaches Validate. Without SetFields only non-zero
// values are applied.
func MergeConfig(target, source *Config, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if isSet(source, "host", source.Host != "") {
		target.Host = source.Host
		target.Sources["host"] = sourceType
	}
	if isSet(source, "port", source.Port != 0) {
		target.Port = source.Port
		target.Sources["port"] = sourceType
	}
	if isSet(source, "readTimeout", source.ReadTimeout != 0) {
		target.ReadTimeout = source.ReadTimeout
		target.Sources["readTimeout"] = sourceType
	}
	if isSet(source, "writeTimeout", source.WriteTimeout != 0) {
		target.WriteTimeout = source.WriteTimeout
		target.Sources["writeTimeout"] = sourceType
	}
	if isSet(source, "sessionTTL", source.SessionTTL != 0) {
		target.SessionTTL = source.SessionTTL
		target.Sources["sessionTTL"] = sourceType
	}
	if isSet(source, "maxSessions", source.MaxSessions != 0) {
		target.MaxSessions = source.MaxSessions
		target.Sources["maxSessions"] = sourceType
	}
	if isSet(source, "logLevel", source.LogLevel != "") {
		target.LogLevel = source.LogLevel
		target.Sources["logLevel"] = sourceType
	}
	if isSet(source, "logFormat", source.LogFormat != "") {
		target.LogFormat = source.LogFormat
		target.Sources["logFormat"] = sourceType
	}
	// A boolean's zero value is ambiguous; SetFields says whether the file
	// actually contained the key.
	if isSet(source, "json", source.JSON) {
		target.JSON = source.JSON
		target.Sources["json"] = sourceType
	}
}

// isSet reports whether the field identified by its YAML key was explicitly
// set in the source config. Without SetFields, nonZero decides.
func isSet(cfg *Config, yamlKey string, nonZero bool) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	return nonZero
}
