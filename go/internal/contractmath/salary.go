// Package contractmath holds the pure contract calculations: salary
// escalation, dead money, extension and franchise tag rules, and cap
// projections. Nothing here performs I/O.
//
// Money is int64 whole currency units. Every fractional result is computed
// with decimal arithmetic and rounded half away from zero to a whole unit
// before it is returned, so repeated escalation is deterministic.
package contractmath

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

const (
	franchiseTagMultiplier = "1.15"
	franchiseTagPoolSize   = 10
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds a decimal amount to whole currency units.
func RoundMoney(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}

// ApplyRate returns amount*rate rounded to whole units.
func ApplyRate(amount int64, rate float64) int64 {
	return RoundMoney(decimal.NewFromInt(amount).Mul(decimal.NewFromFloat(rate)))
}

// CalculateAnnualSalary escalates a salary by increasePercentage percent.
func CalculateAnnualSalary(currentSalary int64, increasePercentage float64) int64 {
	factor := decimal.NewFromInt(1).Add(decimal.NewFromFloat(increasePercentage).Div(hundred))
	return RoundMoney(decimal.NewFromInt(currentSalary).Mul(factor))
}

// EscalateSalary applies CalculateAnnualSalary the given number of times.
func EscalateSalary(currentSalary int64, increasePercentage float64, seasons int) int64 {
	salary := currentSalary
	for i := 0; i < seasons; i++ {
		salary = CalculateAnnualSalary(salary, increasePercentage)
	}
	return salary
}

// CanExtendContract reports whether a contract is in or entering its final
// year and has never been extended.
func CanExtendContract(c models.Contract) bool {
	return c.YearsRemaining <= 1 && !c.HasBeenExtended
}

// CanApplyFranchiseTag reports whether a pending-expiry contract can be tagged
// given the team's tags already used this season.
func CanApplyFranchiseTag(c models.Contract, teamTagsUsed, maxFranchiseTags int) bool {
	return c.YearsRemaining <= 1 && !c.HasBeenTagged && teamTagsUsed < maxFranchiseTags
}

// CalculateFranchiseTagValue returns the greater of a 15% raise on the
// current salary and the mean of the ten highest salaries at the position.
func CalculateFranchiseTagValue(c models.Contract, topSalariesAtPosition []int64) int64 {
	raise := RoundMoney(decimal.NewFromInt(c.CurrentSalary).Mul(decimal.RequireFromString(franchiseTagMultiplier)))
	avg := topSalaryAverage(topSalariesAtPosition)
	if avg > raise {
		return avg
	}
	return raise
}

func topSalaryAverage(salaries []int64) int64 {
	if len(salaries) == 0 {
		return 0
	}
	sorted := make([]int64, len(salaries))
	copy(sorted, salaries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] > sorted[j] })
	if len(sorted) > franchiseTagPoolSize {
		sorted = sorted[:franchiseTagPoolSize]
	}

	sum := decimal.Zero
	for _, s := range sorted {
		sum = sum.Add(decimal.NewFromInt(s))
	}
	return RoundMoney(sum.Div(decimal.NewFromInt(int64(len(sorted)))))
}
