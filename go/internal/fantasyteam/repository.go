package fantasyteam

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

type Querier interface {
	GetFantasyTeam(ctx context.Context, id uuid.UUID) (db.FantasyTeam, error)
	GetFantasyTeamForUpdate(ctx context.Context, id uuid.UUID) (db.FantasyTeam, error)
	UpdateFantasyTeamCapSnapshot(ctx context.Context, arg db.UpdateFantasyTeamCapSnapshotParams) error
}

type Repository struct {
	queries Querier
}

func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

func (r *Repository) GetFantasyTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	team, err := r.queries.GetFantasyTeam(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("fantasy team %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get fantasy team", err)
	}

	return FantasyTeamFromDB(team), nil
}

// GetFantasyTeamForUpdate reads the team and locks its row until the
// surrounding transaction ends.
func (r *Repository) GetFantasyTeamForUpdate(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	team, err := r.queries.GetFantasyTeamForUpdate(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("fantasy team %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("lock fantasy team", err)
	}

	return FantasyTeamFromDB(team), nil
}

// UpdateCapSnapshot stores the derived cap usage on the team row. The
// snapshot is informational; contracts and dead money stay authoritative.
func (r *Repository) UpdateCapSnapshot(ctx context.Context, id uuid.UUID, usedCap, deadMoney int64) error {
	err := r.queries.UpdateFantasyTeamCapSnapshot(ctx, db.UpdateFantasyTeamCapSnapshotParams{
		ID:               id,
		CurrentSalaryCap: usedCap,
		CurrentDeadMoney: deadMoney,
	})
	if err != nil {
		return apperr.Persistence("update team cap snapshot", err)
	}
	return nil
}

func FantasyTeamFromDB(team db.FantasyTeam) *models.FantasyTeam {
	return &models.FantasyTeam{
		ID:               team.ID,
		LeagueID:         team.LeagueID,
		OwnerID:          team.OwnerID,
		Name:             team.Name,
		LogoURL:          team.LogoUrl,
		CurrentSalaryCap: team.CurrentSalaryCap,
		CurrentDeadMoney: team.CurrentDeadMoney,
		CreatedAt:        team.CreatedAt,
	}
}
