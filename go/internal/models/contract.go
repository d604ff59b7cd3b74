package models

import (
	"time"

	"github.com/google/uuid"
)

// ContractStatus represents where a contract is in its lifecycle
type ContractStatus string

const (
	ContractStatusActive  ContractStatus = "ACTIVE"
	ContractStatusExpired ContractStatus = "EXPIRED"
	ContractStatusCut     ContractStatus = "CUT"
)

// AcquisitionType represents how the contract was signed
type AcquisitionType string

const (
	AcquisitionTypeRookieDraft AcquisitionType = "ROOKIE_DRAFT"
	AcquisitionTypeAuction     AcquisitionType = "AUCTION"
	AcquisitionTypeFreeAgency  AcquisitionType = "FREE_AGENCY"
	AcquisitionTypeTrade       AcquisitionType = "TRADE"
	AcquisitionTypeWaiver      AcquisitionType = "WAIVER"
)

// MaxContractYears is the longest contract a team may sign.
const MaxContractYears = 4

// Contract is one player's financial agreement with one team in one league.
// Salaries are whole currency units.
type Contract struct {
	ID                        uuid.UUID       `json:"id"`
	PlayerID                  uuid.UUID       `json:"player_id"`
	TeamID                    uuid.UUID       `json:"team_id"`
	LeagueID                  uuid.UUID       `json:"league_id"`
	OriginalSalary            int64           `json:"original_salary"`
	CurrentSalary             int64           `json:"current_salary"`
	OriginalYears             int             `json:"original_years"`
	YearsRemaining            int             `json:"years_remaining"`
	AcquisitionType           AcquisitionType `json:"acquisition_type"`
	Status                    ContractStatus  `json:"status"`
	HasFourthYearOption       bool            `json:"has_fourth_year_option"`
	FourthYearOptionActivated bool            `json:"fourth_year_option_activated"`
	HasBeenTagged             bool            `json:"has_been_tagged"`
	HasBeenExtended           bool            `json:"has_been_extended"`
	SignedSeason              int             `json:"signed_season"`
	GuaranteedAmount          *int64          `json:"guaranteed_amount,omitempty"`
	CreatedAt                 time.Time       `json:"created_at"`
	UpdatedAt                 time.Time       `json:"updated_at"`
}

// IsActive reports whether the contract counts against the cap
func (c Contract) IsActive() bool {
	return c.Status == ContractStatusActive
}

// DeadMoney is a cap charge left behind when a contract is terminated early.
type DeadMoney struct {
	ID         uuid.UUID  `json:"id"`
	LeagueID   uuid.UUID  `json:"league_id"`
	TeamID     uuid.UUID  `json:"team_id"`
	PlayerID   uuid.UUID  `json:"player_id"`
	ContractID *uuid.UUID `json:"contract_id,omitempty"`
	Amount     int64      `json:"amount"`
	Season     int        `json:"season"`
	Reason     string     `json:"reason"`
	CreatedAt  time.Time  `json:"created_at"`
}
