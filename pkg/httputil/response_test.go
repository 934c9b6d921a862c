package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	t.Run("writes JSON with correct content type", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteJSON(rec, http.StatusOK, map[string]string{"version": "v4"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var result map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, "v4", result["version"])
	})

	t.Run("handles nil data", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()

		WriteJSON(rec, http.StatusNoContent, nil)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func TestWriteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		write  func(http.ResponseWriter)
		status int
		code   string
	}{
		{"bad request", func(w http.ResponseWriter) { WriteBadRequest(w, CodeInvalidVersion, "bad") }, http.StatusBadRequest, CodeInvalidVersion},
		{"not found", func(w http.ResponseWriter) { WriteNotFound(w, CodeNotFound, "gone") }, http.StatusNotFound, CodeNotFound},
		{"conflict", func(w http.ResponseWriter) { WriteConflict(w, CodeNoSelection, "pick one") }, http.StatusConflict, CodeNoSelection},
		{"internal", func(w http.ResponseWriter) { WriteInternalError(w, CodeInternal, "boom") }, http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.status, rec.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.code, body.Error)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	type payload struct {
		Version string `json:"version"`
	}

	decode := func(body string) (payload, error) {
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		var p payload
		err := DecodeJSON(httptest.NewRecorder(), req, &p)
		return p, err
	}

	t.Run("valid", func(t *testing.T) {
		t.Parallel()
		p, err := decode(`{"version":"v2"}`)
		require.NoError(t, err)
		assert.Equal(t, "v2", p.Version)
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()
		_, err := decode("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "empty")
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()
		_, err := decode(`{"version":"v2","extra":1}`)
		require.Error(t, err)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()
		_, err := decode(`{"version":"v2"}{"version":"v3"}`)
		require.Error(t, err)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		_, err := decode(`{"version":"` + strings.Repeat("a", MaxBodyBytes) + `"}`)
		require.Error(t, err)
	})
}
