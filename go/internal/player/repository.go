package player

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
	"github.com/mcdev12/dynasty-contracts/go/internal/sqlutil"
)

type Querier interface {
	GetPlayer(ctx context.Context, id uuid.UUID) (db.Player, error)
}

// Repository handles player lookups. Players are shared across leagues and
// are never written by this service.
type Repository struct {
	queries Querier
}

// NewRepository creates a new player repository
func NewRepository(queries Querier) *Repository {
	return &Repository{
		queries: queries,
	}
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	p, err := r.queries.GetPlayer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("player %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get player", err)
	}

	return &models.Player{
		ID:         p.ID,
		ExternalID: p.ExternalID,
		FullName:   p.FullName,
		Position:   p.Position,
		NFLTeam:    sqlutil.FromSqlStringPtr(p.NflTeam),
		CreatedAt:  p.CreatedAt,
	}, nil
}
