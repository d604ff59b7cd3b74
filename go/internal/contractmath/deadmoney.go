package contractmath

import "github.com/mcdev12/dynasty-contracts/go/internal/models"

// DeadMoneyBreakdown splits the dead money of a cut into the immediate charge
// and one charge per future season.
type DeadMoneyBreakdown struct {
	CurrentSeason int64
	FutureSeasons []int64
	Total         int64
}

// DeadMoneySchedule charges salary*CurrentSeason now plus salary*rate for each
// of min(yearsRemaining, 4) future seasons, where rate is the bucket for
// min(yearsRemaining, 4). The total may exceed one season's salary.
func DeadMoneySchedule(salary int64, yearsRemaining int, cfg models.DeadMoneyConfig) DeadMoneyBreakdown {
	b := DeadMoneyBreakdown{CurrentSeason: ApplyRate(salary, cfg.CurrentSeason)}
	b.Total = b.CurrentSeason

	n := min(yearsRemaining, models.DeadMoneyBuckets)
	if n <= 0 {
		return b
	}
	perYear := ApplyRate(salary, cfg.FutureRate(yearsRemaining))
	b.FutureSeasons = make([]int64, n)
	for i := range b.FutureSeasons {
		b.FutureSeasons[i] = perYear
		b.Total += perYear
	}
	return b
}

// CalculateDeadMoney returns the total dead money cutting c would create.
func CalculateDeadMoney(c models.Contract, cfg models.DeadMoneyConfig) int64 {
	return DeadMoneySchedule(c.CurrentSalary, c.YearsRemaining, cfg).Total
}
