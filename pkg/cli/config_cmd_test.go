package cli

import (
	"testing"

	"github.com/shamikhz/UUID-Generator/pkg/cliconfig"
	"github.com/stretchr/testify/assert"
)

func TestConfigValue(t *testing.T) {
	c := cliconfig.NewDefault()
	c.JSON = true

	want := map[string]string{
		"host":         "127.0.0.1",
		"port":         "4380",
		"readTimeout":  "30s",
		"writeTimeout": "30s",
		"sessionTTL":   "30m0s",
		"maxSessions":  "10000",
		"logLevel":     "info",
		"logFormat":    "text",
		"json":         "true",
	}
	for _, key := range cliconfig.Keys {
		assert.Equal(t, want[key], configValue(c, key), key)
	}
	assert.Empty(t, configValue(c, "nope"))
}
