package turnover

import (
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// Post-turnover status labels shown to the commissioner
const (
	StatusEligibleForExtension    = "Eligible for Extension"
	StatusEligibleForFranchiseTag = "Eligible for Franchise Tag"
	StatusPendingFreeAgency       = "Pending Free Agency"
	StatusActiveContract          = "Active Contract"
)

// ActiveContract is a contract as read for a turnover, with the names the
// preview displays.
type ActiveContract struct {
	models.Contract
	PlayerName string
	TeamName   string
}

// ContractChange is the planned transformation of one contract.
type ContractChange struct {
	ID                    uuid.UUID `json:"id"`
	PlayerName            string    `json:"playerName"`
	TeamName              string    `json:"teamName"`
	CurrentYearsRemaining int       `json:"currentYearsRemaining"`
	NewYearsRemaining     int       `json:"newYearsRemaining"`
	CurrentSalary         int64     `json:"currentSalary"`
	NewSalary             int64     `json:"newSalary"`
	NewStatus             string    `json:"newStatus"`
	HasBeenExtended       bool      `json:"hasBeenExtended"`
	HasBeenTagged         bool      `json:"hasBeenTagged"`
}

// Expires reports whether the contract runs out at this turnover.
func (c ContractChange) Expires() bool {
	return c.NewYearsRemaining == 0
}

// Category is one reporting bucket of the preview.
type Category struct {
	Count     int              `json:"count"`
	Contracts []ContractChange `json:"contracts"`
}

// Categories groups the planned changes. A contract can sit in both
// eligibility buckets.
type Categories struct {
	ContractsAffected       Category `json:"contractsAffected"`
	EligibleForExtension    Category `json:"eligibleForExtension"`
	EligibleForFranchiseTag Category `json:"eligibleForFranchiseTag"`
}

// Summary totals a plan.
type Summary struct {
	TotalContracts          int   `json:"totalContracts"`
	ContractsExpiring       int   `json:"contractsExpiring"`
	ContractsContinuing     int   `json:"contractsContinuing"`
	EligibleForExtension    int   `json:"eligibleForExtension"`
	EligibleForFranchiseTag int   `json:"eligibleForFranchiseTag"`
	TotalCurrentSalary      int64 `json:"totalCurrentSalary"`
	TotalNewSalary          int64 `json:"totalNewSalary"`
}

// Plan is the full set of mutations a turnover would apply. Preview renders
// it; Execute commits it.
type Plan struct {
	LeagueID      uuid.UUID
	CurrentSeason int
	NewSeason     int
	Changes       []ContractChange
	Categories    Categories
	Summary       Summary
}

// LeagueSettings echoes the economics the plan was computed with.
type LeagueSettings struct {
	AnnualIncreasePercentage float64 `json:"annualIncreasePercentage"`
	SeasonTurnoverDate       string  `json:"seasonTurnoverDate"`
	NextTurnoverDate         string  `json:"nextTurnoverDate,omitempty"`
}

// Preview is the read-only rendering of a plan.
type Preview struct {
	LeagueID        string           `json:"leagueId"`
	CurrentSeason   int              `json:"currentSeason"`
	NewSeason       int              `json:"newSeason"`
	ContractChanges []ContractChange `json:"contractChanges"`
	Categories      Categories       `json:"categories"`
	Summary         Summary          `json:"summary"`
	LeagueSettings  LeagueSettings   `json:"leagueSettings"`
}

// ResultSummary totals an executed turnover.
type ResultSummary struct {
	TotalProcessed   int `json:"totalProcessed"`
	ContractsExpired int `json:"contractsExpired"`
	ContractsActive  int `json:"contractsActive"`
}

// Result reports an executed turnover.
type Result struct {
	Message          string        `json:"message"`
	ContractsUpdated int           `json:"contractsUpdated"`
	ExpiredContracts int           `json:"expiredContracts"`
	NewSeason        int           `json:"newSeason"`
	TagsReset        int           `json:"tagsReset"`
	Summary          ResultSummary `json:"summary"`
}
