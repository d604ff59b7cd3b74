package outbox

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

type HealthStatus struct {
	Healthy           bool      `json:"healthy"`
	EventsPublished   uint64    `json:"events_published"`
	LastEventTime     time.Time `json:"last_event_time,omitzero"`
	PendingEvents     int       `json:"pending_events"`
	DatabaseConnected bool      `json:"database_connected"`
	NATSConnected     bool      `json:"nats_connected"`
	Errors            []string  `json:"errors"`
}

type pinger interface {
	PingContext(ctx context.Context) error
}

type connectedChecker interface {
	Connected() bool
}

// HealthChecker reports whether the relay can read the outbox and reach
// NATS. A backlog of maxPending or more unsent events is unhealthy.
type HealthChecker struct {
	listener   *Listener
	db         pinger
	queries    Querier
	nats       connectedChecker
	maxPending int
}

func NewHealthChecker(listener *Listener, db pinger, queries Querier, nats connectedChecker, maxPending int) *HealthChecker {
	return &HealthChecker{
		listener:   listener,
		db:         db,
		queries:    queries,
		nats:       nats,
		maxPending: maxPending,
	}
}

func (h *HealthChecker) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Healthy: true,
		Errors:  []string{},
	}
	status.EventsPublished, status.LastEventTime = h.listener.Stats()

	if err := h.db.PingContext(ctx); err != nil {
		status.Healthy = false
		status.Errors = append(status.Errors, "database: "+err.Error())
	} else {
		status.DatabaseConnected = true
		unsent, err := h.queries.FetchUnsentOutbox(ctx, int32(h.maxPending))
		if err != nil {
			status.Healthy = false
			status.Errors = append(status.Errors, "outbox: "+err.Error())
		}
		status.PendingEvents = len(unsent)
		if h.maxPending > 0 && status.PendingEvents >= h.maxPending {
			status.Healthy = false
			status.Errors = append(status.Errors, "outbox backlog is not draining")
		}
	}

	status.NATSConnected = h.nats.Connected()
	if !status.NATSConnected {
		status.Healthy = false
		status.Errors = append(status.Errors, "nats: not connected")
	}
	return status
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := h.Check(ctx)
	w.Header().Set("Content-Type", "application/json")
	if !status.Healthy {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(status)
}
