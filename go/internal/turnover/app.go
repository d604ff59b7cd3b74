package turnover

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/dynasty-contracts/go/internal/caller"
	"github.com/mcdev12/dynasty-contracts/go/internal/events"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

// Store is the set of reads and writes a turnover performs inside one
// transaction.
type Store interface {
	LockLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListActiveContracts(ctx context.Context, leagueID uuid.UUID) ([]ActiveContract, error)
	ApplyChange(ctx context.Context, ch ContractChange) error
	AdvanceSeason(ctx context.Context, leagueID uuid.UUID, fromSeason int) error
	ResetFranchiseTags(ctx context.Context, leagueID uuid.UUID) (int, error)
	InsertOutboxEvent(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error
}

// TurnoverRepository defines what the app layer needs from the repository
type TurnoverRepository interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	ListActiveContracts(ctx context.Context, leagueID uuid.UUID) ([]ActiveContract, error)
	RunInTx(ctx context.Context, fn func(tx Store) error) error
}

// App runs season turnovers
type App struct {
	repo  TurnoverRepository
	guard *InFlightGuard
	clock clockwork.Clock
}

// NewApp creates a new turnover App
func NewApp(repo TurnoverRepository, guard *InFlightGuard, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		guard: guard,
		clock: clock,
	}
}

// Preview computes the turnover for a league without writing anything.
func (a *App) Preview(ctx context.Context, leagueID uuid.UUID) (*Preview, error) {
	league, err := a.authorize(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	contracts, err := a.repo.ListActiveContracts(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active contracts: %w", err)
	}

	plan := PlanTurnover(*league, contracts)

	settings := LeagueSettings{
		AnnualIncreasePercentage: league.Settings.AnnualIncreasePercentage,
		SeasonTurnoverDate:       league.Settings.SeasonTurnoverDate,
	}
	if next, err := NextTurnoverDate(league.Settings.SeasonTurnoverDate, a.clock.Now()); err != nil {
		log.Warn().Err(err).Str("league_id", leagueID.String()).Msg("Could not compute next turnover date")
	} else {
		settings.NextTurnoverDate = next
	}

	return &Preview{
		LeagueID:        leagueID.String(),
		CurrentSeason:   plan.CurrentSeason,
		NewSeason:       plan.NewSeason,
		ContractChanges: plan.Changes,
		Categories:      plan.Categories,
		Summary:         plan.Summary,
		LeagueSettings:  settings,
	}, nil
}

// Execute applies the turnover plan atomically: every contract update, the
// season increment, the franchise tag reset and the outbox event commit
// together or not at all.
func (a *App) Execute(ctx context.Context, leagueID uuid.UUID) (*Result, error) {
	if _, err := a.authorize(ctx, leagueID); err != nil {
		return nil, err
	}

	release, err := a.guard.Acquire(leagueID)
	if err != nil {
		return nil, err
	}
	defer release()

	executedBy, _ := caller.UserID(ctx)

	var result *Result
	err = a.repo.RunInTx(ctx, func(tx Store) error {
		league, err := tx.LockLeague(ctx, leagueID)
		if err != nil {
			return err
		}
		contracts, err := tx.ListActiveContracts(ctx, leagueID)
		if err != nil {
			return err
		}

		plan := PlanTurnover(*league, contracts)
		for _, ch := range plan.Changes {
			if err := tx.ApplyChange(ctx, ch); err != nil {
				return err
			}
		}
		if err := tx.AdvanceSeason(ctx, leagueID, league.Season); err != nil {
			return err
		}
		// tag usage is a season resource: reset it on every contract still
		// active, not only the ones this turnover touched
		tagsReset, err := tx.ResetFranchiseTags(ctx, leagueID)
		if err != nil {
			return err
		}

		result = buildResult(plan, tagsReset)
		return tx.InsertOutboxEvent(ctx, leagueID, events.EventTypeSeasonTurnoverCompleted, events.SeasonTurnoverCompletedPayload{
			LeagueID:         leagueID.String(),
			PreviousSeason:   plan.CurrentSeason,
			NewSeason:        plan.NewSeason,
			ContractsUpdated: result.ContractsUpdated,
			ContractsExpired: result.ExpiredContracts,
			TagsReset:        tagsReset,
			ExecutedBy:       executedBy.String(),
			ExecutedAt:       a.clock.Now().UTC(),
		})
	})
	if err != nil {
		log.Error().Err(err).Str("league_id", leagueID.String()).Msg("Season turnover rolled back")
		return nil, fmt.Errorf("season turnover failed: %w", err)
	}

	log.Info().
		Str("league_id", leagueID.String()).
		Int("new_season", result.NewSeason).
		Int("contracts_updated", result.ContractsUpdated).
		Int("contracts_expired", result.ExpiredContracts).
		Int("tags_reset", result.TagsReset).
		Msg("Season turnover executed")
	return result, nil
}

func (a *App) authorize(ctx context.Context, leagueID uuid.UUID) (*models.League, error) {
	league, err := a.repo.GetLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}
	if err := caller.RequireCommissioner(ctx, league); err != nil {
		return nil, err
	}
	return league, nil
}

func buildResult(plan Plan, tagsReset int) *Result {
	processed := len(plan.Changes)
	return &Result{
		Message: fmt.Sprintf("Season turnover completed: %d contracts processed, league advanced to season %d",
			processed, plan.NewSeason),
		ContractsUpdated: processed,
		ExpiredContracts: plan.Summary.ContractsExpiring,
		NewSeason:        plan.NewSeason,
		TagsReset:        tagsReset,
		Summary: ResultSummary{
			TotalProcessed:   processed,
			ContractsExpired: plan.Summary.ContractsExpiring,
			ContractsActive:  plan.Summary.ContractsContinuing,
		},
	}
}
