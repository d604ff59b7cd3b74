package models

import (
	"github.com/google/uuid"
	"time"
)

// FantasyTeam owns contracts and dead money within a league.
// CurrentSalaryCap and CurrentDeadMoney are derived snapshots.
type FantasyTeam struct {
	ID               uuid.UUID `json:"id"`
	LeagueID         uuid.UUID `json:"league_id"`
	OwnerID          uuid.UUID `json:"owner_id"`
	Name             string    `json:"name"`
	LogoURL          string    `json:"logo_url"`
	CurrentSalaryCap int64     `json:"current_salary_cap"`
	CurrentDeadMoney int64     `json:"current_dead_money"`
	CreatedAt        time.Time `json:"created_at"`
}
