package caller

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

func TestInterceptor(t *testing.T) {
	userID := uuid.New()

	var seen uuid.UUID
	var seenOK bool
	next := func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		seen, seenOK = UserID(ctx)
		return nil, nil
	}
	handler := NewInterceptor()(next)

	req := connect.NewRequest(&struct{}{})
	req.Header().Set(HeaderUserID, userID.String())
	if _, err := handler(context.Background(), req); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if !seenOK || seen != userID {
		t.Errorf("UserID = %v (%v), want %v", seen, seenOK, userID)
	}

	if _, err := handler(context.Background(), connect.NewRequest(&struct{}{})); err != nil {
		t.Fatalf("handler without header error = %v", err)
	}
	if seenOK {
		t.Error("UserID present without header")
	}

	bad := connect.NewRequest(&struct{}{})
	bad.Header().Set(HeaderUserID, "not-a-uuid")
	_, err := handler(context.Background(), bad)
	if connect.CodeOf(err) != connect.CodeUnauthenticated {
		t.Errorf("bad header code = %v, want unauthenticated", connect.CodeOf(err))
	}
}

func TestRequireCommissioner(t *testing.T) {
	league := &models.League{ID: uuid.New(), CommissionerID: uuid.New()}

	if err := RequireCommissioner(WithUserID(context.Background(), league.CommissionerID), league); err != nil {
		t.Errorf("commissioner rejected: %v", err)
	}
	if err := RequireCommissioner(WithUserID(context.Background(), uuid.New()), league); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("other user error = %v, want unauthorized", err)
	}
	if err := RequireCommissioner(context.Background(), league); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("anonymous error = %v, want unauthorized", err)
	}
}

func TestRequireTeamManager(t *testing.T) {
	league := &models.League{ID: uuid.New(), CommissionerID: uuid.New()}
	team := &models.FantasyTeam{ID: uuid.New(), OwnerID: uuid.New()}

	for _, id := range []uuid.UUID{team.OwnerID, league.CommissionerID} {
		if err := RequireTeamManager(WithUserID(context.Background(), id), league, team); err != nil {
			t.Errorf("RequireTeamManager(%s) error = %v", id, err)
		}
	}
	if err := RequireTeamManager(WithUserID(context.Background(), uuid.New()), league, team); !errors.Is(err, apperr.ErrUnauthorized) {
		t.Errorf("stranger error = %v, want unauthorized", err)
	}
}
