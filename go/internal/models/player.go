package models

import (
	"time"

	"github.com/google/uuid"
)

// Player represents a football player. Players are shared across leagues and
// teams; contracts only reference them.
type Player struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	FullName   string    `json:"full_name"`
	Position   string    `json:"position"` // 'QB', 'RB', 'WR', etc.
	NFLTeam    *string   `json:"nfl_team,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
