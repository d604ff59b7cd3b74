package contractmath

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// ErrInvalidSalaryCap is returned instead of dividing by a non-positive cap.
var ErrInvalidSalaryCap = fmt.Errorf("%w: salary cap must be positive", apperr.ErrValidation)

// CapProjection is a team's cap usage for one season.
type CapProjection struct {
	Season           int     `json:"season"`
	SalaryCap        int64   `json:"salaryCap"`
	ContractSalaries int64   `json:"contractSalaries"`
	DeadMoney        int64   `json:"deadMoney"`
	UsedCap          int64   `json:"usedCap"`
	AvailableCap     int64   `json:"availableCap"`
	UsedPercentage   float64 `json:"usedPercentage"`
	ActiveContracts  int     `json:"activeContracts"`
}

// CapCheck is the result of testing a new commitment against a projection.
type CapCheck struct {
	OK        bool  `json:"ok"`
	Shortfall int64 `json:"shortfall,omitempty"`
}

// ProjectTeamCap sums ACTIVE contract salaries and the dead money charged to
// season against salaryCap.
func ProjectTeamCap(contracts []models.Contract, deadMoney []models.DeadMoney, salaryCap int64, season int) (CapProjection, error) {
	if salaryCap <= 0 {
		return CapProjection{}, ErrInvalidSalaryCap
	}

	p := CapProjection{Season: season, SalaryCap: salaryCap}
	for _, c := range contracts {
		if !c.IsActive() {
			continue
		}
		p.ContractSalaries += c.CurrentSalary
		p.ActiveContracts++
	}
	p.DeadMoney = deadMoneyForSeason(deadMoney, season)
	p.finish()
	return p, nil
}

// ValidateCapSpace fails when the projection cannot absorb newCommitment.
func ValidateCapSpace(p CapProjection, newCommitment int64) CapCheck {
	total := p.UsedCap + newCommitment
	if total > p.SalaryCap {
		return CapCheck{OK: false, Shortfall: total - p.SalaryCap}
	}
	return CapCheck{OK: true}
}

// ProjectCapByYear projects cap usage for years seasons starting at season.
// In season+k a contract counts if it is ACTIVE and has more than k years
// remaining (the current season always counts), with its salary escalated k
// times. Dead money is taken from the records scheduled for each season.
func ProjectCapByYear(contracts []models.Contract, deadMoney []models.DeadMoney, salaryCap int64, season, years int, increasePercentage float64) ([]CapProjection, error) {
	if salaryCap <= 0 {
		return nil, ErrInvalidSalaryCap
	}
	if years < 1 {
		years = 1
	}

	out := make([]CapProjection, 0, years)
	for k := 0; k < years; k++ {
		p := CapProjection{Season: season + k, SalaryCap: salaryCap}
		for _, c := range contracts {
			if !c.IsActive() || (k > 0 && c.YearsRemaining <= k) {
				continue
			}
			p.ContractSalaries += EscalateSalary(c.CurrentSalary, increasePercentage, k)
			p.ActiveContracts++
		}
		p.DeadMoney = deadMoneyForSeason(deadMoney, season+k)
		p.finish()
		out = append(out, p)
	}
	return out, nil
}

func (p *CapProjection) finish() {
	p.UsedCap = p.ContractSalaries + p.DeadMoney
	p.AvailableCap = p.SalaryCap - p.UsedCap
	pct := decimal.NewFromInt(p.UsedCap).Div(decimal.NewFromInt(p.SalaryCap)).Mul(hundred).Round(2)
	p.UsedPercentage = pct.InexactFloat64()
}

func deadMoneyForSeason(records []models.DeadMoney, season int) int64 {
	var total int64
	for _, dm := range records {
		if dm.Season == season {
			total += dm.Amount
		}
	}
	return total
}
