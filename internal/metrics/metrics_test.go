package metrics

import (
	"net"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveIteration(t *testing.T) {
	m := New()

	m.ObserveIteration("sort.Ints", time.Millisecond, false)
	m.ObserveIteration("sort.Ints", 2*time.Millisecond, true)
	m.ObserveIteration("slices.Sort", time.Millisecond, false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.IterationsTotal.WithLabelValues("sort.Ints")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GCAffectedTotal.WithLabelValues("sort.Ints")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.IterationsTotal.WithLabelValues("slices.Sort")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GCAffectedTotal.WithLabelValues("slices.Sort")))
}

func TestGridPointGauges(t *testing.T) {
	m := New()

	m.GridPointsTotal.Set(6)
	m.GridPointIndex.Set(2)

	assert.Equal(t, 6.0, testutil.ToFloat64(m.GridPointsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GridPointIndex))
}

func TestHandlerExposition(t *testing.T) {
	m := New()
	m.ObserveIteration("a", time.Millisecond, false)

	req := httptest.NewRequest("GET", "/metrics", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "benchpress_iterations_total")
	assert.Contains(t, body, "benchpress_iteration_duration_seconds")
}

func TestServePortInUse(t *testing.T) {
	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	m := New()
	err = m.Serve(port)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "metrics port")
}

func TestPrivateRegistryIsolated(t *testing.T) {
	// Two instances must not collide on registration.
	m1 := New()
	m2 := New()
	m1.ObserveIteration("a", time.Millisecond, false)
	m2.ObserveIteration("a", time.Millisecond, false)

	assert.Equal(t, 1.0, testutil.ToFloat64(m1.IterationsTotal.WithLabelValues("a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m2.IterationsTotal.WithLabelValues("a")))
}
