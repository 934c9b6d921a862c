package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnv struct {
	srv    *Server
	ts     *httptest.Server
	client *http.Client
}

func newTestEnv(t *testing.T, opts ...Option) *testEnv {
	t.Helper()
	srv, err := NewServer("127.0.0.1:0", opts...)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	return &testEnv{srv: srv, ts: ts, client: newClient(t)}
}

func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &http.Client{Jar: jar}
}

func (e *testEnv) do(t *testing.T, client *http.Client, method, path, contentType, body string) (*http.Response, []byte) {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.ts.URL+path, rdr)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, data
}

func (e *testEnv) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()
	return e.do(t, e.client, http.MethodGet, path, "", "")
}

func (e *testEnv) postJSON(t *testing.T, path, body string) (*http.Response, []byte) {
	t.Helper()
	return e.do(t, e.client, http.MethodPost, path, "application/json", body)
}

func (e *testEnv) postForm(t *testing.T, path string, form url.Values) (*http.Response, []byte) {
	t.Helper()
	return e.do(t, e.client, http.MethodPost, path, "application/x-www-form-urlencoded", form.Encode())
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(data, &v), string(data))
	return v
}
