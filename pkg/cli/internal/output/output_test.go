package output

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, JSON(&buf, map[string]string{"version": "v2"}))
	assert.Equal(t, "{\n  \"version\": \"v2\"\n}\n", buf.String())
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	tw := Table(&buf)
	fmt.Fprintln(tw, "KEY\tVALUE")
	fmt.Fprintln(tw, "port\t4380")
	require.NoError(t, tw.Flush())
	assert.Equal(t, "KEY   VALUE\nport  4380\n", buf.String())
}

func TestLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Lines(&buf, []string{"a", "b"}))
	assert.Equal(t, "a\nb\n", buf.String())
}
