package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err      error
	delay    time.Duration
	deadline bool
}

func (p *stubPinger) Ping(ctx context.Context) error {
	_, p.deadline = ctx.Deadline()
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.err
}

func serve(t *testing.T, h http.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	w := httptest.NewRecorder()
	h(w, httptest.NewRequest(http.MethodGet, "/", nil))
	return w
}

func TestHandler_OverallStatus(t *testing.T) {
	tests := []struct {
		name     string
		checkers map[string]Checker
		want     Status
		wantCode int
	}{
		{
			name:     "no checkers",
			want:     StatusHealthy,
			wantCode: http.StatusOK,
		},
		{
			name: "healthy storage",
			checkers: map[string]Checker{
				"storage": NewStorageChecker("postgres", &stubPinger{}, time.Second),
			},
			want:     StatusHealthy,
			wantCode: http.StatusOK,
		},
		{
			name: "slow storage is degraded but serving",
			checkers: map[string]Checker{
				"storage": NewStorageChecker("mysql", &stubPinger{delay: 30 * time.Millisecond}, 40*time.Millisecond),
			},
			want:     StatusDegraded,
			wantCode: http.StatusOK,
		},
		{
			name: "unreachable storage",
			checkers: map[string]Checker{
				"storage": NewStorageChecker("postgres", &stubPinger{err: errors.New("connection refused")}, time.Second),
				"other":   NewSimpleChecker("other", func() error { return nil }),
			},
			want:     StatusUnhealthy,
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler("v1.2.3")
			for name, checker := range tt.checkers {
				handler.RegisterChecker(name, checker)
			}

			w := serve(t, handler.ServeHTTP)
			require.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

			var resp Response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
			assert.Equal(t, tt.want, resp.Status)
			assert.Equal(t, "v1.2.3", resp.Version)
			assert.Len(t, resp.Checks, len(tt.checkers))
		})
	}
}

func TestLivenessHandler(t *testing.T) {
	w := serve(t, LivenessHandler)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}

func TestReadinessHandler(t *testing.T) {
	handler := NewHandler("test")
	handler.RegisterChecker("cache", NewSimpleChecker("cache", func() error { return nil }))

	w := serve(t, handler.ReadinessHandler)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ReadinessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Ready)
	assert.Empty(t, resp.Failed)
}

func TestReadinessHandler_ListsFailedComponents(t *testing.T) {
	handler := NewHandler("test")
	handler.RegisterChecker("storage", NewStorageChecker("mysql", &stubPinger{err: errors.New("connection refused")}, time.Second))
	handler.RegisterChecker("replica", NewSimpleChecker("replica", func() error { return errors.New("lagging") }))

	w := serve(t, handler.ReadinessHandler)
	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp ReadinessResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.False(t, resp.Ready)
	assert.Equal(t, []string{"replica", "storage"}, resp.Failed)
}

func TestSimpleChecker(t *testing.T) {
	ok := NewSimpleChecker("ok", func() error { return nil }).Check()
	assert.Equal(t, StatusHealthy, ok.Status)
	assert.Empty(t, ok.Message)

	failed := NewSimpleChecker("broken", func() error { return errors.New("boom") }).Check()
	assert.Equal(t, "broken", failed.Name)
	assert.Equal(t, StatusUnhealthy, failed.Status)
	assert.Equal(t, "boom", failed.Message)
}

func TestStorageChecker_PingHasDeadline(t *testing.T) {
	pinger := &stubPinger{}
	check := NewStorageChecker("postgres", pinger, time.Second).Check()

	assert.Equal(t, StatusHealthy, check.Status)
	assert.Equal(t, "postgres", check.Name)
	assert.True(t, pinger.deadline, "ping context must carry a deadline")
}
