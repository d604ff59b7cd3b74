package turnover

import (
	"time"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// NextTurnoverDate returns the next occurrence of the "MM-DD" turnover date
// on or after now's calendar day, as YYYY-MM-DD. Feb 29 falls on Mar 1
// outside leap years.
func NextTurnoverDate(monthDay string, now time.Time) (string, error) {
	md, err := time.Parse(models.SeasonTurnoverDateLayout, monthDay)
	if err != nil {
		return "", apperr.Validation("season turnover date %q: %v", monthDay, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), md.Month(), md.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = time.Date(now.Year()+1, md.Month(), md.Day(), 0, 0, 0, 0, now.Location())
	}
	return next.Format("2006-01-02"), nil
}
