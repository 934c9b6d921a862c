package web

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/shamikhz/UUID-Generator/pkg/metrics"
	"github.com/shamikhz/UUID-Generator/pkg/panel"
	"github.com/shamikhz/UUID-Generator/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServeAndShutdown(t *testing.T) {
	t.Parallel()
	srv, err := NewServer("127.0.0.1:0")
	require.NoError(t, err)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/health")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunListenError(t *testing.T) {
	t.Parallel()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	srv, err := NewServer(ln.Addr().String())
	require.NoError(t, err)

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen on")
}

func TestServer_SessionOptions(t *testing.T) {
	t.Parallel()
	env := newTestEnv(t, WithSessionOptions(session.WithMaxSessions(1)))

	_, _ = env.get(t, "/")
	_, _ = env.do(t, newClient(t), http.MethodGet, "/", "", "")
	assert.Equal(t, 1, env.srv.Sessions().Len())
}

func TestServer_SharedRegistryRejectsSecondServer(t *testing.T) {
	t.Parallel()
	reg := metrics.New()
	_, err := NewServer("127.0.0.1:0", WithMetrics(reg))
	require.NoError(t, err)

	_, err = NewServer("127.0.0.1:0", WithMetrics(reg))
	assert.Error(t, err)
}

func TestServer_UptimeBeforeServe(t *testing.T) {
	t.Parallel()
	srv, err := NewServer("127.0.0.1:0")
	require.NoError(t, err)
	assert.Zero(t, srv.Uptime())
	assert.NotNil(t, srv.openapi)
}

func TestBatchTriggers(t *testing.T) {
	t.Parallel()
	assert.Equal(t, metrics.TriggerSelect, batchTriggers[panel.TriggerSelect])
	assert.Equal(t, metrics.TriggerGenerate, batchTriggers[panel.TriggerGenerate])
}
