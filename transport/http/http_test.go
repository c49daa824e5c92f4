package http

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"luxeroom/config"
)

func TestHealthCheckReflectsServerState(t *testing.T) {
	tests := []struct {
		name     string
		state    ServerState
		wantCode int
	}{
		{name: "ready", state: ServerStateReady, wantCode: http.StatusOK},
		{name: "grace period", state: ServerStateInGracePeriod, wantCode: http.StatusServiceUnavailable},
		{name: "cleanup period", state: ServerStateInCleanupPeriod, wantCode: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &HTTP{Config: &config.Config{}}
			h.setServerState(tt.state)

			recorder := httptest.NewRecorder()
			h.HealthCheck(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Equal(t, tt.state, h.ServerState())
		})
	}
}

// Shutdown flips the state from its own goroutine while health checks keep
// reading it; both sides must go through the atomic.
func TestServerStateConcurrentAccess(t *testing.T) {
	h := &HTTP{Config: &config.Config{}}
	h.setServerState(ServerStateReady)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()

		h.setServerState(ServerStateInGracePeriod)
		h.setServerState(ServerStateInCleanupPeriod)
	}()

	for i := 0; i < 100; i++ {
		recorder := httptest.NewRecorder()
		h.HealthCheck(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Contains(t, []int{http.StatusOK, http.StatusServiceUnavailable}, recorder.Code)
	}

	wg.Wait()

	assert.Equal(t, ServerStateInCleanupPeriod, h.ServerState())
}
