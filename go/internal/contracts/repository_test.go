package contracts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/events"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// fakeQuerier implements the queries these tests touch; anything else
// panics through the nil embedded interface.
type fakeQuerier struct {
	db.Querier

	contract      db.Contract
	team          db.FantasyTeam
	err           error
	lockedReads   int
	lockedTeams   int
	outboxPayload json.RawMessage
	tagCounts     []db.CountFranchiseTagsByTeamSeasonParams
}

func (q *fakeQuerier) GetFantasyTeam(context.Context, uuid.UUID) (db.FantasyTeam, error) {
	return q.team, q.err
}

func (q *fakeQuerier) GetFantasyTeamForUpdate(context.Context, uuid.UUID) (db.FantasyTeam, error) {
	q.lockedTeams++
	return q.team, q.err
}

func (q *fakeQuerier) CountFranchiseTagsByTeamSeason(_ context.Context, arg db.CountFranchiseTagsByTeamSeasonParams) (int64, error) {
	q.tagCounts = append(q.tagCounts, arg)
	return 1, q.err
}

func (q *fakeQuerier) GetContract(context.Context, uuid.UUID) (db.Contract, error) {
	return q.contract, q.err
}

func (q *fakeQuerier) GetContractForUpdate(context.Context, uuid.UUID) (db.Contract, error) {
	q.lockedReads++
	return q.contract, q.err
}

func (q *fakeQuerier) GetActiveContractForPlayer(context.Context, db.GetActiveContractForPlayerParams) (db.Contract, error) {
	return q.contract, q.err
}

func (q *fakeQuerier) CutContract(context.Context, uuid.UUID) (db.Contract, error) {
	return q.contract, q.err
}

func (q *fakeQuerier) InsertOutboxEvent(_ context.Context, arg db.InsertOutboxEventParams) (uuid.UUID, error) {
	q.outboxPayload = arg.Payload
	return uuid.New(), q.err
}

func TestContractFromDB(t *testing.T) {
	created := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	row := db.Contract{
		ID:               uuid.New(),
		PlayerID:         uuid.New(),
		TeamID:           uuid.New(),
		LeagueID:         uuid.New(),
		OriginalSalary:   1_000_000,
		CurrentSalary:    1_150_000,
		OriginalYears:    3,
		YearsRemaining:   2,
		AcquisitionType:  "ROOKIE_DRAFT",
		Status:           "ACTIVE",
		HasBeenTagged:    true,
		SignedSeason:     2024,
		GuaranteedAmount: sql.NullInt64{Int64: 500_000, Valid: true},
		CreatedAt:        created,
		UpdatedAt:        created,
	}

	guaranteed := int64(500_000)
	want := &models.Contract{
		ID:               row.ID,
		PlayerID:         row.PlayerID,
		TeamID:           row.TeamID,
		LeagueID:         row.LeagueID,
		OriginalSalary:   1_000_000,
		CurrentSalary:    1_150_000,
		OriginalYears:    3,
		YearsRemaining:   2,
		AcquisitionType:  models.AcquisitionTypeRookieDraft,
		Status:           models.ContractStatusActive,
		HasBeenTagged:    true,
		SignedSeason:     2024,
		GuaranteedAmount: &guaranteed,
		CreatedAt:        created,
		UpdatedAt:        created,
	}
	if diff := cmp.Diff(want, ContractFromDB(row)); diff != "" {
		t.Errorf("ContractFromDB() mismatch (-want +got):\n%s", diff)
	}

	row.GuaranteedAmount = sql.NullInt64{}
	if got := ContractFromDB(row); got.GuaranteedAmount != nil {
		t.Errorf("GuaranteedAmount = %d, want nil", *got.GuaranteedAmount)
	}
}

func TestStoreGetContract(t *testing.T) {
	q := &fakeQuerier{err: sql.ErrNoRows}

	if _, err := newStore(q, false).GetContract(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetContract() error = %v, want not found", err)
	}
	if q.lockedReads != 0 {
		t.Errorf("plain read took a row lock")
	}

	q.err = errors.New("connection refused")
	if _, err := newStore(q, true).GetContract(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrPersistence) {
		t.Errorf("GetContract() error = %v, want persistence", err)
	}
	if q.lockedReads != 1 {
		t.Errorf("lockedReads = %d, want 1 inside a transaction", q.lockedReads)
	}
}

func TestStoreGetTeamLocksInsideTransaction(t *testing.T) {
	q := &fakeQuerier{team: db.FantasyTeam{ID: uuid.New(), LeagueID: uuid.New()}}

	if _, err := newStore(q, false).GetTeam(context.Background(), q.team.ID); err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if q.lockedTeams != 0 {
		t.Errorf("plain team read took a row lock")
	}

	team, err := newStore(q, true).GetTeam(context.Background(), q.team.ID)
	if err != nil {
		t.Fatalf("GetTeam() error = %v", err)
	}
	if team.ID != q.team.ID {
		t.Errorf("GetTeam() id = %s, want %s", team.ID, q.team.ID)
	}
	if q.lockedTeams != 1 {
		t.Errorf("lockedTeams = %d, want 1 inside a transaction", q.lockedTeams)
	}

	q.err = sql.ErrNoRows
	if _, err := newStore(q, true).GetTeam(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetTeam() error = %v, want not found", err)
	}
}

func TestStoreCountTeamTagsBySeason(t *testing.T) {
	q := &fakeQuerier{}
	teamID := uuid.New()

	n, err := newStore(q, true).CountTeamTags(context.Background(), teamID, 2026)
	if err != nil {
		t.Fatalf("CountTeamTags() error = %v", err)
	}
	if n != 1 {
		t.Errorf("CountTeamTags() = %d, want 1", n)
	}
	want := []db.CountFranchiseTagsByTeamSeasonParams{{TeamID: teamID, Season: 2026}}
	if diff := cmp.Diff(want, q.tagCounts); diff != "" {
		t.Errorf("count params (-want +got):\n%s", diff)
	}
}

func TestStoreMissingRows(t *testing.T) {
	q := &fakeQuerier{err: sql.ErrNoRows}
	s := newStore(q, true)

	c, err := s.GetActiveContractForPlayer(context.Background(), uuid.New(), uuid.New())
	if err != nil || c != nil {
		t.Errorf("GetActiveContractForPlayer() = %v, %v; want nil, nil", c, err)
	}
	if _, err := s.CutContract(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrConflict) {
		t.Errorf("CutContract() error = %v, want conflict", err)
	}
}

func TestStoreInsertOutboxEvent(t *testing.T) {
	q := &fakeQuerier{}
	payload := events.ContractCutPayload{ContractID: "c-1", DeadMoneyTotal: 1_500_000}

	if err := newStore(q, true).InsertOutboxEvent(context.Background(), uuid.New(), events.EventTypeContractCut, payload); err != nil {
		t.Fatalf("InsertOutboxEvent() error = %v", err)
	}

	var got events.ContractCutPayload
	if err := json.Unmarshal(q.outboxPayload, &got); err != nil {
		t.Fatalf("stored payload is not JSON: %v", err)
	}
	if got != payload {
		t.Errorf("stored payload = %+v, want %+v", got, payload)
	}
}
