package leagues

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
	"github.com/mcdev12/dynasty-contracts/go/internal/rpc"
)

const (
	ServiceName = "league.v1.LeagueService"

	GetDeadMoneyConfigProcedure       = "/" + ServiceName + "/GetDeadMoneyConfig"
	UpdateDeadMoneyConfigProcedure    = "/" + ServiceName + "/UpdateDeadMoneyConfig"
	CalculateDeadMoneyImpactProcedure = "/" + ServiceName + "/CalculateDeadMoneyImpact"
)

// LeaguesApp defines what the service layer needs from the leagues application
type LeaguesApp interface {
	GetDeadMoneyConfig(ctx context.Context, id uuid.UUID) (models.DeadMoneyConfig, []string, error)
	UpdateDeadMoneyConfig(ctx context.Context, id uuid.UUID, in deadmoney.Input) (models.DeadMoneyConfig, []string, error)
	CalculateDeadMoneyImpact(ctx context.Context, id uuid.UUID, salary int64, yearsRemaining int, override *deadmoney.Input) (deadmoney.Impact, []string, error)
}

// Service implements the LeagueService connect interface
type Service struct {
	app LeaguesApp
}

// NewService creates a new leagues connect service
func NewService(app LeaguesApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler mounts the service's procedures
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(GetDeadMoneyConfigProcedure, connect.NewUnaryHandler(
		GetDeadMoneyConfigProcedure, s.GetDeadMoneyConfig,
		rpc.ReadOnlyHandlerOptions(opts...)...,
	))
	mux.Handle(UpdateDeadMoneyConfigProcedure, connect.NewUnaryHandler(
		UpdateDeadMoneyConfigProcedure, s.UpdateDeadMoneyConfig, rpc.HandlerOptions(opts...)...,
	))
	mux.Handle(CalculateDeadMoneyImpactProcedure, connect.NewUnaryHandler(
		CalculateDeadMoneyImpactProcedure, s.CalculateDeadMoneyImpact,
		rpc.ReadOnlyHandlerOptions(opts...)...,
	))
	return "/" + ServiceName + "/", mux
}

// GetDeadMoneyConfig returns a league's dead money config
func (s *Service) GetDeadMoneyConfig(ctx context.Context, req *connect.Request[GetDeadMoneyConfigRequest]) (*connect.Response[DeadMoneyConfigResponse], error) {
	id, err := parseLeagueID(req.Msg.LeagueID)
	if err != nil {
		return nil, err
	}

	cfg, warnings, err := s.app.GetDeadMoneyConfig(ctx, id)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	return connect.NewResponse(&DeadMoneyConfigResponse{
		LeagueID:        id.String(),
		DeadMoneyConfig: deadmoney.ToInput(cfg),
		Warnings:        warnings,
	}), nil
}

// UpdateDeadMoneyConfig validates and stores a league's dead money config
func (s *Service) UpdateDeadMoneyConfig(ctx context.Context, req *connect.Request[UpdateDeadMoneyConfigRequest]) (*connect.Response[DeadMoneyConfigResponse], error) {
	id, err := parseLeagueID(req.Msg.LeagueID)
	if err != nil {
		return nil, err
	}

	cfg, warnings, err := s.app.UpdateDeadMoneyConfig(ctx, id, req.Msg.DeadMoneyConfig)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	return connect.NewResponse(&DeadMoneyConfigResponse{
		LeagueID:        id.String(),
		DeadMoneyConfig: deadmoney.ToInput(cfg),
		Warnings:        warnings,
	}), nil
}

// CalculateDeadMoneyImpact previews the dead money of a hypothetical cut
func (s *Service) CalculateDeadMoneyImpact(ctx context.Context, req *connect.Request[CalculateDeadMoneyImpactRequest]) (*connect.Response[CalculateDeadMoneyImpactResponse], error) {
	id, err := parseLeagueID(req.Msg.LeagueID)
	if err != nil {
		return nil, err
	}

	impact, warnings, err := s.app.CalculateDeadMoneyImpact(ctx, id, req.Msg.Salary, req.Msg.YearsRemaining, req.Msg.DeadMoneyConfig)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}

	return connect.NewResponse(&CalculateDeadMoneyImpactResponse{
		Impact:   impact,
		Warnings: warnings,
	}), nil
}

func parseLeagueID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, err)
	}
	return id, nil
}
