package contracts

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

type tagRow struct {
	teamID     uuid.UUID
	contractID uuid.UUID
	season     int
	value      int64
}

type capSnapshot struct {
	usedCap   int64
	deadMoney int64
}

// fakeState is an in-memory Store.
type fakeState struct {
	leagues   map[uuid.UUID]models.League
	teams     map[uuid.UUID]models.FantasyTeam
	players   map[uuid.UUID]models.Player
	contracts map[uuid.UUID]models.Contract
	deadMoney []models.DeadMoney
	outbox    []outboxRow
	tags      []tagRow
	snapshots map[uuid.UUID]capSnapshot

	failOutbox bool
}

// fakeRepo serves reads from the state directly and runs RunInTx against a
// copy that is only kept when fn succeeds.
type fakeRepo struct {
	*fakeState
	mu sync.Mutex
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{fakeState: &fakeState{
		leagues:   make(map[uuid.UUID]models.League),
		teams:     make(map[uuid.UUID]models.FantasyTeam),
		players:   make(map[uuid.UUID]models.Player),
		contracts: make(map[uuid.UUID]models.Contract),
		snapshots: make(map[uuid.UUID]capSnapshot),
	}}
}

func (r *fakeRepo) RunInTx(_ context.Context, fn func(tx Store) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx := r.fakeState.clone()
	if err := fn(tx); err != nil {
		return err
	}
	r.fakeState = tx
	return nil
}

func (s *fakeState) clone() *fakeState {
	cp := *s
	cp.contracts = make(map[uuid.UUID]models.Contract, len(s.contracts))
	for id, c := range s.contracts {
		cp.contracts[id] = c
	}
	cp.snapshots = make(map[uuid.UUID]capSnapshot, len(s.snapshots))
	for id, snap := range s.snapshots {
		cp.snapshots[id] = snap
	}
	cp.deadMoney = append([]models.DeadMoney(nil), s.deadMoney...)
	cp.outbox = append([]outboxRow(nil), s.outbox...)
	cp.tags = append([]tagRow(nil), s.tags...)
	return &cp
}

func (s *fakeState) GetLeague(_ context.Context, id uuid.UUID) (*models.League, error) {
	l, ok := s.leagues[id]
	if !ok {
		return nil, apperr.NotFound("league %s", id)
	}
	return &l, nil
}

func (s *fakeState) GetTeam(_ context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	t, ok := s.teams[id]
	if !ok {
		return nil, apperr.NotFound("fantasy team %s", id)
	}
	return &t, nil
}

func (s *fakeState) GetPlayer(_ context.Context, id uuid.UUID) (*models.Player, error) {
	p, ok := s.players[id]
	if !ok {
		return nil, apperr.NotFound("player %s", id)
	}
	return &p, nil
}

func (s *fakeState) GetContract(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	c, ok := s.contracts[id]
	if !ok {
		return nil, apperr.NotFound("contract %s", id)
	}
	return &c, nil
}

func (s *fakeState) GetActiveContractForPlayer(_ context.Context, playerID, teamID uuid.UUID) (*models.Contract, error) {
	for _, c := range s.contracts {
		if c.PlayerID == playerID && c.TeamID == teamID && c.IsActive() {
			return &c, nil
		}
	}
	return nil, nil
}

func (s *fakeState) ListTeamContracts(_ context.Context, teamID uuid.UUID) ([]models.Contract, error) {
	var out []models.Contract
	for _, c := range s.contracts {
		if c.TeamID == teamID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrentSalary > out[j].CurrentSalary })
	return out, nil
}

func (s *fakeState) ListTeamDeadMoney(_ context.Context, teamID uuid.UUID, fromSeason int) ([]models.DeadMoney, error) {
	var out []models.DeadMoney
	for _, dm := range s.deadMoney {
		if dm.TeamID == teamID && dm.Season >= fromSeason {
			out = append(out, dm)
		}
	}
	return out, nil
}

func (s *fakeState) TopSalariesAtPosition(_ context.Context, leagueID uuid.UUID, position string) ([]int64, error) {
	var out []int64
	for _, c := range s.contracts {
		if c.LeagueID == leagueID && c.IsActive() && s.players[c.PlayerID].Position == position {
			out = append(out, c.CurrentSalary)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	if len(out) > topSalaryPool {
		out = out[:topSalaryPool]
	}
	return out, nil
}

func (s *fakeState) CountTeamTags(_ context.Context, teamID uuid.UUID, season int) (int, error) {
	n := 0
	for _, tag := range s.tags {
		if tag.teamID == teamID && tag.season == season {
			n++
		}
	}
	return n, nil
}

func (s *fakeState) RecordFranchiseTag(_ context.Context, c models.Contract, season int, value int64) error {
	s.tags = append(s.tags, tagRow{teamID: c.TeamID, contractID: c.ID, season: season, value: value})
	return nil
}

func (s *fakeState) CreateContract(_ context.Context, c models.Contract) (*models.Contract, error) {
	c.ID = uuid.New()
	c.Status = models.ContractStatusActive
	s.contracts[c.ID] = c
	return &c, nil
}

func (s *fakeState) CutContract(_ context.Context, id uuid.UUID) (*models.Contract, error) {
	c, ok := s.contracts[id]
	if !ok || !c.IsActive() {
		return nil, apperr.Conflict("contract %s is not active", id)
	}
	c.Status = models.ContractStatusCut
	s.contracts[id] = c
	return &c, nil
}

func (s *fakeState) ExtendContract(_ context.Context, id uuid.UUID, years int, salary int64) (*models.Contract, error) {
	c, ok := s.contracts[id]
	if !ok || c.HasBeenExtended {
		return nil, apperr.Conflict("contract %s has already been extended", id)
	}
	c.YearsRemaining = years
	c.OriginalYears = max(c.OriginalYears, years)
	c.CurrentSalary = salary
	c.HasBeenExtended = true
	c.Status = models.ContractStatusActive
	s.contracts[id] = c
	return &c, nil
}

func (s *fakeState) ApplyFranchiseTag(_ context.Context, id uuid.UUID, value int64) (*models.Contract, error) {
	c, ok := s.contracts[id]
	if !ok || c.HasBeenTagged {
		return nil, apperr.Conflict("contract %s has already been tagged", id)
	}
	c.YearsRemaining = 1
	c.CurrentSalary = value
	c.HasBeenTagged = true
	c.Status = models.ContractStatusActive
	s.contracts[id] = c
	return &c, nil
}

func (s *fakeState) CreateDeadMoney(_ context.Context, dm models.DeadMoney) (*models.DeadMoney, error) {
	dm.ID = uuid.New()
	s.deadMoney = append(s.deadMoney, dm)
	return &dm, nil
}

func (s *fakeState) UpdateCapSnapshot(_ context.Context, teamID uuid.UUID, usedCap, deadMoney int64) error {
	s.snapshots[teamID] = capSnapshot{usedCap: usedCap, deadMoney: deadMoney}
	return nil
}

func (s *fakeState) InsertOutboxEvent(_ context.Context, leagueID uuid.UUID, eventType string, payload any) error {
	if s.failOutbox {
		return apperr.Persistence("insert outbox event", errInjected)
	}
	s.outbox = append(s.outbox, outboxRow{leagueID: leagueID, eventType: eventType, payload: payload})
	return nil
}
