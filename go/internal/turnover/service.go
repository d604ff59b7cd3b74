package turnover

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/rpc"
)

const (
	ServiceName = "turnover.v1.TurnoverService"

	PreviewTurnoverProcedure = "/" + ServiceName + "/PreviewTurnover"
	ExecuteTurnoverProcedure = "/" + ServiceName + "/ExecuteTurnover"
)

// TurnoverRequest identifies the league to turn over
type TurnoverRequest struct {
	LeagueID string `json:"leagueId"`
}

// TurnoverApp defines what the service layer needs from the turnover application
type TurnoverApp interface {
	Preview(ctx context.Context, leagueID uuid.UUID) (*Preview, error)
	Execute(ctx context.Context, leagueID uuid.UUID) (*Result, error)
}

// Service implements the TurnoverService connect interface
type Service struct {
	app TurnoverApp
}

// NewService creates a new turnover connect service
func NewService(app TurnoverApp) *Service {
	return &Service{app: app}
}

// Handler mounts the service's procedures
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(PreviewTurnoverProcedure, connect.NewUnaryHandler(
		PreviewTurnoverProcedure, s.PreviewTurnover, rpc.ReadOnlyHandlerOptions(opts...)...,
	))
	mux.Handle(ExecuteTurnoverProcedure, connect.NewUnaryHandler(
		ExecuteTurnoverProcedure, s.ExecuteTurnover, rpc.HandlerOptions(opts...)...,
	))
	return "/" + ServiceName + "/", mux
}

// PreviewTurnover returns the planned turnover for a league
func (s *Service) PreviewTurnover(ctx context.Context, req *connect.Request[TurnoverRequest]) (*connect.Response[Preview], error) {
	id, err := uuid.Parse(req.Msg.LeagueID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	preview, err := s.app.Preview(ctx, id)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(preview), nil
}

// ExecuteTurnover applies the turnover for a league
func (s *Service) ExecuteTurnover(ctx context.Context, req *connect.Request[TurnoverRequest]) (*connect.Response[Result], error) {
	id, err := uuid.Parse(req.Msg.LeagueID)
	if err != nil {
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	result, err := s.app.Execute(ctx, id)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(result), nil
}
