package turnover

import (
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
)

// InFlightGuard allows at most one turnover per league to run in this
// process. Entries expire after ttl so a leaked entry cannot block a league
// forever.
type InFlightGuard struct {
	entries *cache.Cache
}

func NewInFlightGuard(ttl time.Duration) *InFlightGuard {
	return &InFlightGuard{entries: cache.New(ttl, 2*ttl)}
}

// Acquire claims the league. The returned release func must be called when
// the turnover finishes.
func (g *InFlightGuard) Acquire(leagueID uuid.UUID) (func(), error) {
	key := leagueID.String()
	if err := g.entries.Add(key, struct{}{}, cache.DefaultExpiration); err != nil {
		return nil, apperr.Conflict("a season turnover is already running for league %s", leagueID)
	}
	return func() { g.entries.Delete(key) }, nil
}
