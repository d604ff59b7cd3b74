package leagues

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	UpdateLeagueDeadMoneyConfig(ctx context.Context, arg db.UpdateLeagueDeadMoneyConfigParams) (db.League, error)
}

// Repository implements league data access operations
type Repository struct {
	queries Querier
}

// NewRepository creates a new leagues repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := r.queries.GetLeague(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("league %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get league", err)
	}

	return LeagueFromDB(league)
}

// UpdateDeadMoneyConfig stores a validated config on the league
func (r *Repository) UpdateDeadMoneyConfig(ctx context.Context, id uuid.UUID, cfg models.DeadMoneyConfig) (*models.League, error) {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dead money config: %w", err)
	}

	league, err := r.queries.UpdateLeagueDeadMoneyConfig(ctx, db.UpdateLeagueDeadMoneyConfigParams{
		ID:              id,
		DeadMoneyConfig: pqtype.NullRawMessage{RawMessage: raw, Valid: true},
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("league %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("update dead money config", err)
	}

	return LeagueFromDB(league)
}

// LeagueFromDB converts a database league to the domain model. The stored
// dead money config is parsed here, once, falling back to the default when
// it is missing or corrupt. The rest of the economics must be usable as
// stored; a league that fails ValidateSettings is a validation error.
func LeagueFromDB(l db.League) (*models.League, error) {
	var rawConfig []byte
	if l.DeadMoneyConfig.Valid {
		rawConfig = l.DeadMoneyConfig.RawMessage
	}

	league := &models.League{
		ID:             l.ID,
		Name:           l.Name,
		CommissionerID: l.CommissionerID,
		Status:         models.LeagueStatus(l.Status),
		Season:         int(l.Season),
		Settings: models.LeagueConfiguration{
			SalaryCap:                l.SalaryCap,
			AnnualIncreasePercentage: l.AnnualIncreasePercentage,
			MaxFranchiseTags:         int(l.MaxFranchiseTags),
			MinimumSalary:            l.MinimumSalary,
			SeasonTurnoverDate:       l.SeasonTurnoverDate,
			DeadMoneyConfig:          deadmoney.ParseOrDefault(rawConfig),
		},
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
	if err := ValidateSettings(league.Settings); err != nil {
		return nil, fmt.Errorf("league %s: %w", l.ID, err)
	}
	return league, nil
}

// ValidateSettings checks the economics salary math depends on.
func ValidateSettings(s models.LeagueConfiguration) error {
	pct := s.AnnualIncreasePercentage
	if math.IsNaN(pct) || math.IsInf(pct, 0) || pct < 0 {
		return apperr.Validation("annual increase percentage must be a non-negative number, got %v", pct)
	}
	if s.SalaryCap <= 0 {
		return apperr.Validation("salary cap must be positive, got %d", s.SalaryCap)
	}
	if s.MinimumSalary < 0 {
		return apperr.Validation("minimum salary must not be negative, got %d", s.MinimumSalary)
	}
	if s.MaxFranchiseTags < 0 {
		return apperr.Validation("max franchise tags must not be negative, got %d", s.MaxFranchiseTags)
	}
	if _, err := time.Parse(models.SeasonTurnoverDateLayout, s.SeasonTurnoverDate); err != nil {
		return apperr.Validation("season turnover date %q must be MM-DD", s.SeasonTurnoverDate)
	}
	return nil
}
