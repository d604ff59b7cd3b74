package turnover

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

var errInjected = errors.New("connection reset by peer")

type outboxRow struct {
	leagueID  uuid.UUID
	eventType string
	payload   any
}

// fakeRepo keeps one league in memory. RunInTx snapshots the state and
// restores it when fn fails, the way a database rollback would.
type fakeRepo struct {
	mu        sync.Mutex
	league    models.League
	contracts map[uuid.UUID]ActiveContract
	outbox    []outboxRow

	// failApplyAfter fails the ApplyChange call after that many successes;
	// negative disables it
	failApplyAfter int
	failOutbox     bool
	applied        int
}

func newFakeRepo(league models.League, contracts ...ActiveContract) *fakeRepo {
	r := &fakeRepo{
		league:         league,
		contracts:      make(map[uuid.UUID]ActiveContract),
		failApplyAfter: -1,
	}
	for _, c := range contracts {
		r.contracts[c.ID] = c
	}
	return r
}

func (r *fakeRepo) GetLeague(_ context.Context, id uuid.UUID) (*models.League, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if id != r.league.ID {
		return nil, apperr.NotFound("league %s", id)
	}
	l := r.league
	return &l, nil
}

func (r *fakeRepo) ListActiveContracts(_ context.Context, leagueID uuid.UUID) ([]ActiveContract, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.activeLocked(leagueID), nil
}

func (r *fakeRepo) activeLocked(leagueID uuid.UUID) []ActiveContract {
	var out []ActiveContract
	for _, c := range r.contracts {
		if c.LeagueID == leagueID && c.Status == models.ContractStatusActive {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerName < out[j].PlayerName })
	return out
}

func (r *fakeRepo) RunInTx(_ context.Context, fn func(tx Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	league := r.league
	contracts := make(map[uuid.UUID]ActiveContract, len(r.contracts))
	for id, c := range r.contracts {
		contracts[id] = c
	}
	outbox := append([]outboxRow(nil), r.outbox...)

	if err := fn(fakeTx{r}); err != nil {
		r.league = league
		r.contracts = contracts
		r.outbox = outbox
		return err
	}
	return nil
}

func (r *fakeRepo) contract(id uuid.UUID) ActiveContract {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.contracts[id]
}

type fakeTx struct {
	r *fakeRepo
}

func (tx fakeTx) LockLeague(_ context.Context, id uuid.UUID) (*models.League, error) {
	if id != tx.r.league.ID {
		return nil, apperr.NotFound("league %s", id)
	}
	l := tx.r.league
	return &l, nil
}

func (tx fakeTx) ListActiveContracts(_ context.Context, leagueID uuid.UUID) ([]ActiveContract, error) {
	return tx.r.activeLocked(leagueID), nil
}

func (tx fakeTx) ApplyChange(_ context.Context, ch ContractChange) error {
	if tx.r.failApplyAfter >= 0 && tx.r.applied >= tx.r.failApplyAfter {
		return apperr.Persistence("update contract", errInjected)
	}
	c, ok := tx.r.contracts[ch.ID]
	if !ok || c.Status != models.ContractStatusActive {
		return apperr.Conflict("contract %s changed during turnover", ch.ID)
	}
	c.YearsRemaining = ch.NewYearsRemaining
	c.CurrentSalary = ch.NewSalary
	c.Status = ContractStatusAfter(ch)
	tx.r.contracts[ch.ID] = c
	tx.r.applied++
	return nil
}

func (tx fakeTx) AdvanceSeason(_ context.Context, leagueID uuid.UUID, fromSeason int) error {
	if tx.r.league.Season != fromSeason {
		return apperr.Conflict("league %s is no longer in season %d", leagueID, fromSeason)
	}
	tx.r.league.Season++
	return nil
}

func (tx fakeTx) ResetFranchiseTags(_ context.Context, leagueID uuid.UUID) (int, error) {
	n := 0
	for id, c := range tx.r.contracts {
		if c.LeagueID == leagueID && c.Status == models.ContractStatusActive && c.HasBeenTagged {
			c.HasBeenTagged = false
			tx.r.contracts[id] = c
			n++
		}
	}
	return n, nil
}

func (tx fakeTx) InsertOutboxEvent(_ context.Context, leagueID uuid.UUID, eventType string, payload any) error {
	if tx.r.failOutbox {
		return apperr.Persistence("insert outbox event", errInjected)
	}
	tx.r.outbox = append(tx.r.outbox, outboxRow{leagueID: leagueID, eventType: eventType, payload: payload})
	return nil
}

func (r *fakeRepo) activeContractIDs() []uuid.UUID {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []uuid.UUID
	for _, c := range r.activeLocked(r.league.ID) {
		ids = append(ids, c.ID)
	}
	return ids
}

func (r *fakeRepo) season() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.league.Season
}
