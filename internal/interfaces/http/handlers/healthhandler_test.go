package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pawpath/pawpath/internal/interfaces/http/handlers/testutil"
)

func okPinger() Pinger { return PingFunc(func(context.Context) error { return nil }) }

func failingPinger() Pinger {
	return PingFunc(func(context.Context) error { return fmt.Errorf("connection refused") })
}

func TestHealthHandler_HealthCheck(t *testing.T) {
	tests := []struct {
		name     string
		db       Pinger
		redis    Pinger
		wantCode int
		want     HealthResponse
	}{
		{
			name:     "database up, redis disabled",
			db:       okPinger(),
			wantCode: http.StatusOK,
			want:     HealthResponse{Status: "ok", Database: "up", Redis: "disabled"},
		},
		{
			name:     "all up",
			db:       okPinger(),
			redis:    okPinger(),
			wantCode: http.StatusOK,
			want:     HealthResponse{Status: "ok", Database: "up", Redis: "up"},
		},
		{
			name:     "database down",
			db:       failingPinger(),
			wantCode: http.StatusServiceUnavailable,
			want:     HealthResponse{Status: "degraded", Database: "down", Redis: "disabled"},
		},
		{
			name:     "redis down",
			db:       okPinger(),
			redis:    failingPinger(),
			wantCode: http.StatusServiceUnavailable,
			want:     HealthResponse{Status: "degraded", Database: "up", Redis: "down"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHealthHandler(tt.db, tt.redis, testutil.NewMockLogger())

			c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
			handler.HealthCheck(c)

			assert.Equal(t, tt.wantCode, w.Code)
			var got HealthResponse
			require.NoError(t, testutil.ParseResponse(w, &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
