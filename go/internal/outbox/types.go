package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/db"
)

// Event is one row of the contract outbox
type Event struct {
	ID        uuid.UUID       `json:"id"`
	LeagueID  uuid.UUID       `json:"league_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Publisher delivers an outbox event downstream.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// Querier is the part of the database layer the relay reads and marks.
type Querier interface {
	FetchOutboxByID(ctx context.Context, id uuid.UUID) (db.FetchOutboxByIDRow, error)
	FetchUnsentOutbox(ctx context.Context, limit int32) ([]db.FetchUnsentOutboxRow, error)
	MarkOutboxSent(ctx context.Context, id uuid.UUID) error
}
