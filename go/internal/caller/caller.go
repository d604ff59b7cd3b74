// Package caller carries the identity of the user behind a request. The
// identity arrives already authenticated in the X-User-ID header.
package caller

import (
	"context"
	"fmt"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

const HeaderUserID = "X-User-ID"

type ctxKey struct{}

// WithUserID returns a context carrying the caller's user ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// UserID returns the caller's user ID, if one was supplied.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(ctxKey{}).(uuid.UUID)
	return id, ok
}

// NewInterceptor copies X-User-ID into the request context.
func NewInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			raw := req.Header().Get(HeaderUserID)
			if raw == "" {
				return next(ctx, req)
			}
			id, err := uuid.Parse(raw)
			if err != nil {
				return nil, connect.NewError(connect.CodeUnauthenticated, fmt.Errorf("invalid %s header: %w", HeaderUserID, err))
			}
			return next(WithUserID(ctx, id), req)
		}
	}
}

// RequireCommissioner fails unless the caller is the league's commissioner.
func RequireCommissioner(ctx context.Context, league *models.League) error {
	id, ok := UserID(ctx)
	if !ok || id != league.CommissionerID {
		return apperr.Unauthorized("only the commissioner of league %s may do this", league.ID)
	}
	return nil
}

// RequireTeamManager fails unless the caller owns the team or is the league's
// commissioner.
func RequireTeamManager(ctx context.Context, league *models.League, team *models.FantasyTeam) error {
	id, ok := UserID(ctx)
	if ok && (id == team.OwnerID || id == league.CommissionerID) {
		return nil
	}
	return apperr.Unauthorized("caller may not manage team %s", team.ID)
}
