package leagues

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

type fakeQuerier struct {
	league db.League
	err    error
	stored pqtype.NullRawMessage
}

func (q *fakeQuerier) GetLeague(_ context.Context, id uuid.UUID) (db.League, error) {
	if q.err != nil {
		return db.League{}, q.err
	}
	return q.league, nil
}

func (q *fakeQuerier) UpdateLeagueDeadMoneyConfig(_ context.Context, arg db.UpdateLeagueDeadMoneyConfigParams) (db.League, error) {
	if q.err != nil {
		return db.League{}, q.err
	}
	q.stored = arg.DeadMoneyConfig
	q.league.DeadMoneyConfig = arg.DeadMoneyConfig
	return q.league, nil
}

func leagueRow() db.League {
	return db.League{
		ID:                       uuid.New(),
		Season:                   2025,
		SalaryCap:                200_000_000,
		AnnualIncreasePercentage: 15,
		MaxFranchiseTags:         1,
		MinimumSalary:            500_000,
		SeasonTurnoverDate:       "03-01",
	}
}

func TestLeagueFromDBParsesConfigOnce(t *testing.T) {
	tests := []struct {
		name string
		raw  pqtype.NullRawMessage
		want models.DeadMoneyConfig
	}{
		{"null column", pqtype.NullRawMessage{}, deadmoney.Default()},
		{"corrupt", pqtype.NullRawMessage{RawMessage: json.RawMessage(`{"currentSeason":`), Valid: true}, deadmoney.Default()},
		{
			"stored",
			pqtype.NullRawMessage{RawMessage: json.RawMessage(`{"currentSeason":0.5,"futureSeasons":{"1":0.1,"2":0.1,"3":0.1,"4":0.1}}`), Valid: true},
			models.DeadMoneyConfig{CurrentSeason: 0.5, FutureSeasons: [4]float64{0.1, 0.1, 0.1, 0.1}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := leagueRow()
			row.DeadMoneyConfig = tt.raw
			got, err := LeagueFromDB(row)
			if err != nil {
				t.Fatalf("LeagueFromDB() error = %v", err)
			}
			if got.Settings.DeadMoneyConfig != tt.want {
				t.Errorf("DeadMoneyConfig = %+v, want %+v", got.Settings.DeadMoneyConfig, tt.want)
			}
			if got.Season != 2025 {
				t.Errorf("Season = %d, want 2025", got.Season)
			}
		})
	}
}

func TestLeagueFromDBRejectsUnusableEconomics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*db.League)
	}{
		{"NaN increase", func(l *db.League) { l.AnnualIncreasePercentage = math.NaN() }},
		{"infinite increase", func(l *db.League) { l.AnnualIncreasePercentage = math.Inf(1) }},
		{"negative increase", func(l *db.League) { l.AnnualIncreasePercentage = -10 }},
		{"zero cap", func(l *db.League) { l.SalaryCap = 0 }},
		{"negative cap", func(l *db.League) { l.SalaryCap = -1 }},
		{"negative minimum salary", func(l *db.League) { l.MinimumSalary = -500_000 }},
		{"negative tag limit", func(l *db.League) { l.MaxFranchiseTags = -1 }},
		{"malformed turnover date", func(l *db.League) { l.SeasonTurnoverDate = "3/1" }},
		{"impossible turnover date", func(l *db.League) { l.SeasonTurnoverDate = "13-01" }},
		{"empty turnover date", func(l *db.League) { l.SeasonTurnoverDate = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := leagueRow()
			tt.mutate(&row)
			if _, err := LeagueFromDB(row); !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("LeagueFromDB() error = %v, want validation", err)
			}

			repo := NewRepository(&fakeQuerier{league: row})
			if _, err := repo.GetLeague(context.Background(), row.ID); !errors.Is(err, apperr.ErrValidation) {
				t.Errorf("GetLeague() error = %v, want validation", err)
			}
		})
	}
}

func TestLeagueFromDBAcceptsZeroIncrease(t *testing.T) {
	row := leagueRow()
	row.AnnualIncreasePercentage = 0
	row.MinimumSalary = 0
	row.SeasonTurnoverDate = "02-29"
	if _, err := LeagueFromDB(row); err != nil {
		t.Errorf("LeagueFromDB() error = %v", err)
	}
}

func TestRepositoryErrors(t *testing.T) {
	repo := NewRepository(&fakeQuerier{err: sql.ErrNoRows})
	if _, err := repo.GetLeague(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("GetLeague() error = %v, want not found", err)
	}

	repo = NewRepository(&fakeQuerier{err: errors.New("connection refused")})
	if _, err := repo.GetLeague(context.Background(), uuid.New()); !errors.Is(err, apperr.ErrPersistence) {
		t.Errorf("GetLeague() error = %v, want persistence", err)
	}
}

func TestRepositoryStoresConfigShape(t *testing.T) {
	q := &fakeQuerier{league: leagueRow()}
	repo := NewRepository(q)

	cfg := models.DeadMoneyConfig{CurrentSeason: 0.75, FutureSeasons: [4]float64{0.25, 0.5, 0.5, 0.5}}
	league, err := repo.UpdateDeadMoneyConfig(context.Background(), q.league.ID, cfg)
	if err != nil {
		t.Fatalf("UpdateDeadMoneyConfig() error = %v", err)
	}
	if league.Settings.DeadMoneyConfig != cfg {
		t.Errorf("returned config = %+v, want %+v", league.Settings.DeadMoneyConfig, cfg)
	}

	parsed, _, err := deadmoney.Parse(q.stored.RawMessage)
	if err != nil {
		t.Fatalf("stored config does not parse: %v (%s)", err, q.stored.RawMessage)
	}
	if parsed != cfg {
		t.Errorf("stored config = %+v, want %+v", parsed, cfg)
	}
}
