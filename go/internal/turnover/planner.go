package turnover

import (
	"github.com/mcdev12/dynasty-contracts/go/internal/contractmath"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// PlanTurnover computes the season-end transformation for a league. It is
// pure: preview and execute both call it and differ only in whether the
// result is applied.
//
// Every ACTIVE contract with years remaining loses a year. Contracts that
// continue have their salary escalated by the league's annual increase;
// contracts reaching zero years keep their current salary.
func PlanTurnover(league models.League, contracts []ActiveContract) Plan {
	plan := Plan{
		LeagueID:      league.ID,
		CurrentSeason: league.Season,
		NewSeason:     league.Season + 1,
		Changes:       []ContractChange{},
	}
	pct := league.Settings.AnnualIncreasePercentage

	for _, c := range contracts {
		if c.Status != models.ContractStatusActive || c.YearsRemaining <= 0 {
			continue
		}

		change := planContract(c, pct)
		plan.Changes = append(plan.Changes, change)

		plan.Summary.TotalCurrentSalary += change.CurrentSalary
		plan.Summary.TotalNewSalary += change.NewSalary
		if change.Expires() {
			plan.Summary.ContractsExpiring++
		} else {
			plan.Summary.ContractsContinuing++
		}
	}

	plan.Categories = categorize(plan.Changes)
	plan.Summary.TotalContracts = len(plan.Changes)
	plan.Summary.EligibleForExtension = plan.Categories.EligibleForExtension.Count
	plan.Summary.EligibleForFranchiseTag = plan.Categories.EligibleForFranchiseTag.Count
	return plan
}

func planContract(c ActiveContract, increasePercentage float64) ContractChange {
	newYears := c.YearsRemaining - 1
	newSalary := c.CurrentSalary
	if newYears > 0 {
		newSalary = contractmath.CalculateAnnualSalary(c.CurrentSalary, increasePercentage)
	}

	return ContractChange{
		ID:                    c.ID,
		PlayerName:            c.PlayerName,
		TeamName:              c.TeamName,
		CurrentYearsRemaining: c.YearsRemaining,
		NewYearsRemaining:     newYears,
		CurrentSalary:         c.CurrentSalary,
		NewSalary:             newSalary,
		NewStatus:             statusLabel(newYears, c.HasBeenExtended, c.HasBeenTagged),
		HasBeenExtended:       c.HasBeenExtended,
		HasBeenTagged:         c.HasBeenTagged,
	}
}

// statusLabel names what happens to a contract after the turnover. An
// expiring contract that has used both its extension and its tag has no
// renewal left and heads to free agency.
func statusLabel(newYears int, extended, tagged bool) string {
	if newYears > 0 {
		return StatusActiveContract
	}
	switch {
	case !extended:
		return StatusEligibleForExtension
	case !tagged:
		return StatusEligibleForFranchiseTag
	default:
		return StatusPendingFreeAgency
	}
}

func categorize(changes []ContractChange) Categories {
	cats := Categories{
		ContractsAffected:       Category{Contracts: []ContractChange{}},
		EligibleForExtension:    Category{Contracts: []ContractChange{}},
		EligibleForFranchiseTag: Category{Contracts: []ContractChange{}},
	}
	for _, ch := range changes {
		if ch.CurrentYearsRemaining > 0 {
			cats.ContractsAffected.Contracts = append(cats.ContractsAffected.Contracts, ch)
		}
		if ch.Expires() && !ch.HasBeenExtended {
			cats.EligibleForExtension.Contracts = append(cats.EligibleForExtension.Contracts, ch)
		}
		if ch.Expires() && !ch.HasBeenTagged {
			cats.EligibleForFranchiseTag.Contracts = append(cats.EligibleForFranchiseTag.Contracts, ch)
		}
	}
	cats.ContractsAffected.Count = len(cats.ContractsAffected.Contracts)
	cats.EligibleForExtension.Count = len(cats.EligibleForExtension.Contracts)
	cats.EligibleForFranchiseTag.Count = len(cats.EligibleForFranchiseTag.Contracts)
	return cats
}

// ContractStatusAfter returns the persisted status for a planned change.
func ContractStatusAfter(ch ContractChange) models.ContractStatus {
	if ch.Expires() {
		return models.ContractStatusExpired
	}
	return models.ContractStatusActive
}
