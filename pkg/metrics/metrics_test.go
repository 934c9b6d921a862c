package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveBatch(t *testing.T) {
	t.Parallel()

	r := New()
	r.ObserveBatch("v2", TriggerSelect, 5)
	r.ObserveBatch("v2", TriggerGenerate, 5)
	r.ObserveBatch("", TriggerAPI, 5)

	assert.Equal(t, 10.0, testutil.ToFloat64(r.IdentifiersTotal.WithLabelValues("v2")))
	assert.Equal(t, 5.0, testutil.ToFloat64(r.IdentifiersTotal.WithLabelValues("unset")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BatchesTotal.WithLabelValues("v2", TriggerSelect)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BatchesTotal.WithLabelValues("v2", TriggerGenerate)))
}

func TestObserveRequest(t *testing.T) {
	t.Parallel()

	r := New()
	r.ObserveRequest(http.MethodGet, "GET /api/versions", http.StatusOK, 3*time.Millisecond)
	r.ObserveRequest(http.MethodGet, "GET /api/versions", http.StatusOK, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.HTTPRequestsTotal.WithLabelValues("GET", "GET /api/versions", "200")))
	assert.Equal(t, 1, testutil.CollectAndCount(r.HTTPRequestDuration))
}

func TestTrackSessions(t *testing.T) {
	t.Parallel()

	r := New()
	n := 3
	require.NoError(t, r.TrackSessions(func() int { return n }))
	require.Error(t, r.TrackSessions(func() int { return 0 }), "duplicate registration")

	n = 7
	body := scrape(t, r)
	assert.Contains(t, body, "uuidgen_sessions 7")
}

func TestHandler(t *testing.T) {
	t.Parallel()

	r := New()
	r.ActiveStreams.Inc()
	r.ObserveBatch("v4", TriggerAPI, 5)

	body := scrape(t, r)
	assert.Contains(t, body, "uuidgen_active_streams 1")
	assert.Contains(t, body, `uuidgen_identifiers_generated_total{version="v4"} 5`)
	assert.Contains(t, body, "go_goroutines")
}

func scrape(t *testing.T, r *Registry) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	b, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(b)
}

func TestGatherer(t *testing.T) {
	t.Parallel()

	r := New()
	r.ObserveBatch("v1", TriggerSelect, 5)
	r.ObserveBatch("v3", TriggerSelect, 5)

	n, err := testutil.GatherAndCount(r.Gatherer(), "uuidgen_batches_generated_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
