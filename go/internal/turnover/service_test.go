package turnover

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/caller"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
	"github.com/mcdev12/dynasty-contracts/go/internal/rpc"
)

func newTestServer(t *testing.T, repo *fakeRepo) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.Handle(NewService(newTestApp(repo)).Handler(connect.WithInterceptors(caller.NewInterceptor())))
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func executeRequest(leagueID, userID string) *connect.Request[TurnoverRequest] {
	req := connect.NewRequest(&TurnoverRequest{LeagueID: leagueID})
	if userID != "" {
		req.Header().Set(caller.HeaderUserID, userID)
	}
	return req
}

func TestServiceExecuteTurnover(t *testing.T) {
	league := testLeague()
	c := contract(league, "Runner", 1_000_000, 2, false, false)
	repo := newFakeRepo(league, c)
	srv := newTestServer(t, repo)

	client := connect.NewClient[TurnoverRequest, Result](srv.Client(), srv.URL+ExecuteTurnoverProcedure, rpc.ClientOptions()...)
	res, err := client.CallUnary(context.Background(), executeRequest(league.ID.String(), league.CommissionerID.String()))
	if err != nil {
		t.Fatalf("ExecuteTurnover() error = %v", err)
	}

	if res.Msg.NewSeason != 2026 || res.Msg.ContractsUpdated != 1 || res.Msg.Summary.ContractsActive != 1 {
		t.Errorf("result = %+v", res.Msg)
	}
	if got := repo.contract(c.ID); got.CurrentSalary != 1_150_000 || got.YearsRemaining != 1 {
		t.Errorf("contract after execute = %+v", got.Contract)
	}
}

func TestServiceErrorCodes(t *testing.T) {
	league := testLeague()
	repo := newFakeRepo(league, contract(league, "Runner", 1_000_000, 2, false, false))
	srv := newTestServer(t, repo)

	execute := connect.NewClient[TurnoverRequest, Result](srv.Client(), srv.URL+ExecuteTurnoverProcedure, rpc.ClientOptions()...)
	preview := connect.NewClient[TurnoverRequest, Preview](srv.Client(), srv.URL+PreviewTurnoverProcedure, rpc.ClientOptions()...)

	tests := []struct {
		name string
		call func() error
		want connect.Code
	}{
		{
			name: "execute by non-commissioner",
			call: func() error {
				_, err := execute.CallUnary(context.Background(), executeRequest(league.ID.String(), uuid.NewString()))
				return err
			},
			want: connect.CodePermissionDenied,
		},
		{
			name: "preview without caller",
			call: func() error {
				_, err := preview.CallUnary(context.Background(), executeRequest(league.ID.String(), ""))
				return err
			},
			want: connect.CodePermissionDenied,
		},
		{
			name: "malformed caller header",
			call: func() error {
				_, err := preview.CallUnary(context.Background(), executeRequest(league.ID.String(), "not-a-uuid"))
				return err
			},
			want: connect.CodeUnauthenticated,
		},
		{
			name: "malformed league id",
			call: func() error {
				_, err := preview.CallUnary(context.Background(), executeRequest("league-1", league.CommissionerID.String()))
				return err
			},
			want: connect.CodeInvalidArgument,
		},
		{
			name: "unknown league",
			call: func() error {
				_, err := preview.CallUnary(context.Background(), executeRequest(uuid.NewString(), league.CommissionerID.String()))
				return err
			},
			want: connect.CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.call()
			if got := connect.CodeOf(err); got != tt.want {
				t.Errorf("code = %v, want %v (err %v)", got, tt.want, err)
			}
		})
	}

	if repo.season() != 2025 {
		t.Errorf("season = %d after rejected calls, want 2025", repo.season())
	}
	if got := repo.contract(repo.activeContractIDs()[0]); got.Status != models.ContractStatusActive {
		t.Errorf("contract status = %s, want ACTIVE", got.Status)
	}
}
