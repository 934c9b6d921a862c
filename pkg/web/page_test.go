package web

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/shamikhz/UUID-Generator/pkg/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var uuidDiv = regexp.MustCompile(`<div class="uuid">([^<]+)</div>`)

func identifiersIn(body []byte) []string {
	var out []string
	for _, m := range uuidDiv.FindAllSubmatch(body, -1) {
		out = append(out, string(m[1]))
	}
	return out
}

func TestPage_Unset(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, body := env.get(t, "/")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))

	page := string(body)
	for _, v := range generator.Versions() {
		assert.Contains(t, page, ">"+v.Label()+"</button>")
	}
	assert.Contains(t, page, generator.Prompt)
	assert.NotContains(t, page, "generate-btn")
	assert.NotContains(t, page, "nav-btn active")
	assert.Empty(t, identifiersIn(body))

	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, SessionCookie, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestPage_SelectThenGenerate(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, body := env.postForm(t, "/select", url.Values{"version": {"v2"}})
	require.Equal(t, http.StatusOK, resp.StatusCode, "redirect should land on the page")

	page := string(body)
	assert.Contains(t, page, `class="nav-btn active">UUID V2</button>`)
	assert.Contains(t, page, ">Generate UUID V2</button>")
	assert.Contains(t, page, "DCE Security")

	first := identifiersIn(body)
	require.Len(t, first, generator.BatchSize)
	for _, s := range first {
		assert.Regexp(t, `^v2-[0-9a-f]{8}$`, s)
	}

	resp, body = env.postForm(t, "/generate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	second := identifiersIn(body)
	require.Len(t, second, generator.BatchSize)
	for _, s := range second {
		assert.Regexp(t, `^v2-[0-9a-f]{8}$`, s)
	}
	assert.NotEqual(t, first, second)
}

func TestPage_SwitchVersionNeverMixes(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, _ = env.postForm(t, "/select", url.Values{"version": {"v1"}})
	_, body := env.postForm(t, "/select", url.Values{"version": {"v3"}})

	ids := identifiersIn(body)
	require.Len(t, ids, generator.BatchSize)
	for _, s := range ids {
		assert.True(t, strings.HasPrefix(s, "v3-"), s)
	}
}

func TestPage_SelectInvalid(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, body := env.postForm(t, "/select", url.Values{"version": {"v7"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(body), "unknown UUID version")
}

func TestPage_GenerateWithoutSelection(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, body := env.postForm(t, "/generate", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, identifiersIn(body))
	assert.Contains(t, string(body), generator.Prompt)
}

func TestPage_SessionsIsolated(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	_, _ = env.postForm(t, "/select", url.Values{"version": {"v1"}})

	other := newClient(t)
	resp, body := env.do(t, other, http.MethodGet, "/", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, identifiersIn(body))
	assert.Equal(t, 2, env.srv.Sessions().Len())
}

func TestPage_StaleCookieGetsNewSession(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	req, err := http.NewRequest(http.MethodGet, env.ts.URL+"/", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "expired-session"})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	cookies := resp.Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "expired-session", cookies[0].Value)
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, _ := env.get(t, "/")
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", resp.Header.Get("X-Frame-Options"))
	assert.Equal(t, "default-src 'self'", resp.Header.Get("Content-Security-Policy"))
	assert.Equal(t, "no-store", resp.Header.Get("Cache-Control"))
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t)

	resp, _ := env.get(t, "/nope")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	_, body := env.get(t, "/metrics")
	assert.Contains(t, string(body), `uuidgen_http_requests_total{method="GET",route="unmatched",status="404"} 1`)
}
