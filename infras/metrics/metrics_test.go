package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"spa/config"
	"spa/infras/metrics"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ExposesDecisions(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "spa-booking"

	m := metrics.New(cfg)

	m.RecordDecision("request", metrics.OutcomeAccepted, "")
	m.RecordDecision("request", metrics.OutcomeRejected, "THERAPIST_NOT_AVAILABLE")
	m.ObserveDuration("request", time.Now().Add(-time.Second))
	m.RecordLockContention("therapist")
	m.RecordRetry("request")

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	resp, err := http.Get(server.URL)
	require.NoError(t, err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := string(body)

	assert.True(t, strings.Contains(out, `spa_booking_decisions_total{app="spa-booking",operation="request",outcome="rejected",reason="THERAPIST_NOT_AVAILABLE"} 1`))
	assert.True(t, strings.Contains(out, `spa_booking_lock_contention_total{app="spa-booking",resource="therapist"} 1`))
	assert.True(t, strings.Contains(out, "spa_booking_decision_duration_seconds_count"))
	assert.True(t, strings.Contains(out, "spa_booking_concurrent_write_retries_total"))
}

func TestMetrics_NewIsRepeatable(t *testing.T) {
	cfg := &config.Config{}

	assert.NotPanics(t, func() {
		metrics.New(cfg)
		metrics.New(cfg)
	})
}
