package deadmoney

import (
	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/contractmath"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// SeasonCharge is the dead money charged against one league year.
type SeasonCharge struct {
	Season int   `json:"season"`
	Amount int64 `json:"amount"`
}

// Impact previews the dead money cutting a contract would create.
type Impact struct {
	Salary         int64          `json:"salary"`
	YearsRemaining int            `json:"yearsRemaining"`
	CurrentSeason  int64          `json:"currentSeason"`
	Charges        []SeasonCharge `json:"charges"`
	Total          int64          `json:"total"`
}

// CalculateImpact lays out the charges of a cut made during season. The
// immediate charge lands in season and each future charge in the following
// seasons.
func CalculateImpact(salary int64, yearsRemaining, season int, cfg models.DeadMoneyConfig) (Impact, error) {
	if salary < 0 {
		return Impact{}, apperr.Validation("salary must not be negative")
	}
	if yearsRemaining < 0 {
		return Impact{}, apperr.Validation("years remaining must not be negative")
	}

	b := contractmath.DeadMoneySchedule(salary, yearsRemaining, cfg)
	impact := Impact{
		Salary:         salary,
		YearsRemaining: yearsRemaining,
		CurrentSeason:  b.CurrentSeason,
		Total:          b.Total,
		Charges:        Charges(b, season),
	}
	return impact, nil
}

// Charges assigns a breakdown's amounts to league years starting at season.
func Charges(b contractmath.DeadMoneyBreakdown, season int) []SeasonCharge {
	charges := []SeasonCharge{{Season: season, Amount: b.CurrentSeason}}
	for i, amount := range b.FutureSeasons {
		charges = append(charges, SeasonCharge{Season: season + i + 1, Amount: amount})
	}
	return charges
}
