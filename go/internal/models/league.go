package models

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type LeagueStatus string

const (
	LeagueStatusPending   LeagueStatus = "PENDING"
	LeagueStatusActive    LeagueStatus = "ACTIVE"
	LeagueStatusCompleted LeagueStatus = "COMPLETED"
	LeagueStatusCancelled LeagueStatus = "CANCELLED"
)

// League represents a dynasty league and the economics its teams play under
type League struct {
	ID             uuid.UUID           `json:"id"`
	Name           string              `json:"name"`
	CommissionerID uuid.UUID           `json:"commissioner_id"`
	Status         LeagueStatus        `json:"league_status"`
	Season         int                 `json:"season"`
	Settings       LeagueConfiguration `json:"league_settings"`
	CreatedAt      time.Time           `json:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at"`
}

// LeagueConfiguration holds the per-league economic parameters.
type LeagueConfiguration struct {
	SalaryCap                int64           `json:"salary_cap"`
	AnnualIncreasePercentage float64         `json:"annual_increase_percentage"`
	MaxFranchiseTags         int             `json:"max_franchise_tags"`
	MinimumSalary            int64           `json:"minimum_salary"`
	SeasonTurnoverDate       string          `json:"season_turnover_date"` // MM-DD
	DeadMoneyConfig          DeadMoneyConfig `json:"dead_money_config"`
}

// SeasonTurnoverDateLayout is the time layout of SeasonTurnoverDate.
const SeasonTurnoverDateLayout = "01-02"

// DeadMoneyBuckets is the number of future-season buckets a config carries.
const DeadMoneyBuckets = 4

// DeadMoneyConfig is a validated dead-money percentage table. FutureSeasons[i]
// holds the rate for bucket "i+1".
type DeadMoneyConfig struct {
	CurrentSeason float64
	FutureSeasons [DeadMoneyBuckets]float64
}

// FutureRate returns the per-year rate for a contract with yearsRemaining
// left, using bucket min(yearsRemaining, 4). Zero years has no future charge.
func (c DeadMoneyConfig) FutureRate(yearsRemaining int) float64 {
	if yearsRemaining <= 0 {
		return 0
	}
	if yearsRemaining > DeadMoneyBuckets {
		yearsRemaining = DeadMoneyBuckets
	}
	return c.FutureSeasons[yearsRemaining-1]
}

type deadMoneyConfigJSON struct {
	CurrentSeason float64            `json:"currentSeason"`
	FutureSeasons map[string]float64 `json:"futureSeasons"`
}

// MarshalJSON writes the stored shape: {"currentSeason":..,"futureSeasons":{"1":..}}
func (c DeadMoneyConfig) MarshalJSON() ([]byte, error) {
	out := deadMoneyConfigJSON{
		CurrentSeason: c.CurrentSeason,
		FutureSeasons: make(map[string]float64, DeadMoneyBuckets),
	}
	for i, v := range c.FutureSeasons {
		out.FutureSeasons[strconv.Itoa(i+1)] = v
	}
	return json.Marshal(out)
}
