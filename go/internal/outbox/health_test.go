package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type fakePinger struct{ err error }

func (p fakePinger) PingContext(context.Context) error { return p.err }

type fakeNATS bool

func (n fakeNATS) Connected() bool { return bool(n) }

func TestHealthChecker(t *testing.T) {
	tests := []struct {
		name        string
		pingErr     error
		nats        bool
		backlog     int
		wantHealthy bool
		wantCode    int
	}{
		{"healthy", nil, true, 0, true, http.StatusOK},
		{"database down", errors.New("connection refused"), true, 0, false, http.StatusServiceUnavailable},
		{"nats down", nil, false, 0, false, http.StatusServiceUnavailable},
		{"backlog", nil, true, 3, false, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := newFakeQuerier()
			for i := 0; i < tt.backlog; i++ {
				q.rows = append(q.rows, outboxRow("ContractSigned"))
			}
			l := newListener(q, &fakePublisher{}, testConfig(), &fakeSource{})
			h := NewHealthChecker(l, fakePinger{tt.pingErr}, q, fakeNATS(tt.nats), 3)

			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			var status HealthStatus
			if err := json.NewDecoder(rec.Body).Decode(&status); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if status.Healthy != tt.wantHealthy {
				t.Errorf("Healthy = %v, errors %v", status.Healthy, status.Errors)
			}
		})
	}
}
