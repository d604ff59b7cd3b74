package leagues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/dynasty-contracts/go/internal/caller"
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// LeaguesRepository defines what the app layer needs from the repository
type LeaguesRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	UpdateDeadMoneyConfig(ctx context.Context, id uuid.UUID, cfg models.DeadMoneyConfig) (*models.League, error)
}

// App handles league configuration business logic
type App struct {
	repo LeaguesRepository
}

// NewApp creates a new leagues App
func NewApp(repo LeaguesRepository) *App {
	return &App{
		repo: repo,
	}
}

// GetLeague retrieves a league by ID
func (a *App) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, nil
}

// GetDeadMoneyConfig returns the league's config along with any warnings it
// would raise. A corrupt stored config has already been replaced by the
// default when the league was loaded.
func (a *App) GetDeadMoneyConfig(ctx context.Context, id uuid.UUID) (models.DeadMoneyConfig, []string, error) {
	league, err := a.GetLeague(ctx, id)
	if err != nil {
		return models.DeadMoneyConfig{}, nil, err
	}

	cfg := league.Settings.DeadMoneyConfig
	_, warnings, err := deadmoney.Validate(deadmoney.ToInput(cfg))
	if err != nil {
		return models.DeadMoneyConfig{}, nil, fmt.Errorf("stored dead money config: %w", err)
	}
	return cfg, warnings, nil
}

// UpdateDeadMoneyConfig validates and stores a new config. Only the
// commissioner may change it.
func (a *App) UpdateDeadMoneyConfig(ctx context.Context, id uuid.UUID, in deadmoney.Input) (models.DeadMoneyConfig, []string, error) {
	league, err := a.GetLeague(ctx, id)
	if err != nil {
		return models.DeadMoneyConfig{}, nil, err
	}
	if err := caller.RequireCommissioner(ctx, league); err != nil {
		return models.DeadMoneyConfig{}, nil, err
	}

	cfg, warnings, err := deadmoney.Validate(in)
	if err != nil {
		return models.DeadMoneyConfig{}, nil, err
	}

	updated, err := a.repo.UpdateDeadMoneyConfig(ctx, id, cfg)
	if err != nil {
		return models.DeadMoneyConfig{}, nil, fmt.Errorf("failed to update dead money config: %w", err)
	}

	log.Info().
		Str("league_id", id.String()).
		Float64("current_season", cfg.CurrentSeason).
		Int("warnings", len(warnings)).
		Msg("Updated dead money config")
	return updated.Settings.DeadMoneyConfig, warnings, nil
}

// CalculateDeadMoneyImpact previews the dead money of cutting a contract
// with the given salary and years remaining during the league's current
// season. A supplied config overrides the stored one after validation.
func (a *App) CalculateDeadMoneyImpact(ctx context.Context, id uuid.UUID, salary int64, yearsRemaining int, override *deadmoney.Input) (deadmoney.Impact, []string, error) {
	league, err := a.GetLeague(ctx, id)
	if err != nil {
		return deadmoney.Impact{}, nil, err
	}

	cfg := league.Settings.DeadMoneyConfig
	var warnings []string
	if override != nil {
		cfg, warnings, err = deadmoney.Validate(*override)
		if err != nil {
			return deadmoney.Impact{}, nil, err
		}
	}

	impact, err := deadmoney.CalculateImpact(salary, yearsRemaining, league.Season, cfg)
	if err != nil {
		return deadmoney.Impact{}, nil, err
	}
	return impact, warnings, nil
}
