package leagues

import (
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
)

// GetDeadMoneyConfigRequest identifies the league whose config is read
type GetDeadMoneyConfigRequest struct {
	LeagueID string `json:"leagueId"`
}

// DeadMoneyConfigResponse carries a league's config and any soft warnings
type DeadMoneyConfigResponse struct {
	LeagueID        string          `json:"leagueId"`
	DeadMoneyConfig deadmoney.Input `json:"deadMoneyConfig"`
	Warnings        []string        `json:"warnings,omitempty"`
}

// UpdateDeadMoneyConfigRequest replaces a league's config
type UpdateDeadMoneyConfigRequest struct {
	LeagueID        string          `json:"leagueId"`
	DeadMoneyConfig deadmoney.Input `json:"deadMoneyConfig"`
}

// CalculateDeadMoneyImpactRequest previews a hypothetical cut. When
// DeadMoneyConfig is set it is used instead of the league's stored config.
type CalculateDeadMoneyImpactRequest struct {
	LeagueID        string           `json:"leagueId"`
	Salary          int64            `json:"salary"`
	YearsRemaining  int              `json:"yearsRemaining"`
	DeadMoneyConfig *deadmoney.Input `json:"deadMoneyConfig,omitempty"`
}

// CalculateDeadMoneyImpactResponse is the impact of the hypothetical cut
type CalculateDeadMoneyImpactResponse struct {
	Impact   deadmoney.Impact `json:"impact"`
	Warnings []string         `json:"warnings,omitempty"`
}
