package contracts

import (
	"context"
	"net/http"

	"connectrpc.com/connect"
	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/contractmath"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
	"github.com/mcdev12/dynasty-contracts/go/internal/rpc"
)

const (
	ServiceName = "contract.v1.ContractService"

	SignContractProcedure      = "/" + ServiceName + "/SignContract"
	CutContractProcedure       = "/" + ServiceName + "/CutContract"
	ExtendContractProcedure    = "/" + ServiceName + "/ExtendContract"
	ApplyFranchiseTagProcedure = "/" + ServiceName + "/ApplyFranchiseTag"
	GetTeamCapProcedure        = "/" + ServiceName + "/GetTeamCap"
	ProjectTeamCapProcedure    = "/" + ServiceName + "/ProjectTeamCap"
)

// ContractsApp defines what the service layer needs from the contracts application
type ContractsApp interface {
	SignContract(ctx context.Context, req SignContractParams) (*models.Contract, error)
	CutContract(ctx context.Context, req CutContractParams) (*CutResult, error)
	ExtendContract(ctx context.Context, req ExtendContractParams) (*models.Contract, error)
	ApplyFranchiseTag(ctx context.Context, contractID uuid.UUID) (*FranchiseTagResult, error)
	GetTeamCap(ctx context.Context, teamID uuid.UUID) (*contractmath.CapProjection, error)
	ProjectTeamCap(ctx context.Context, teamID uuid.UUID, years int) ([]contractmath.CapProjection, error)
}

// Service implements the ContractService connect interface
type Service struct {
	app ContractsApp
}

// NewService creates a new contracts connect service
func NewService(app ContractsApp) *Service {
	return &Service{
		app: app,
	}
}

// Handler mounts the service's procedures
func (s *Service) Handler(opts ...connect.HandlerOption) (string, http.Handler) {
	mux := http.NewServeMux()
	mux.Handle(SignContractProcedure, connect.NewUnaryHandler(
		SignContractProcedure, s.SignContract, rpc.HandlerOptions(opts...)...,
	))
	mux.Handle(CutContractProcedure, connect.NewUnaryHandler(
		CutContractProcedure, s.CutContract, rpc.HandlerOptions(opts...)...,
	))
	mux.Handle(ExtendContractProcedure, connect.NewUnaryHandler(
		ExtendContractProcedure, s.ExtendContract, rpc.HandlerOptions(opts...)...,
	))
	mux.Handle(ApplyFranchiseTagProcedure, connect.NewUnaryHandler(
		ApplyFranchiseTagProcedure, s.ApplyFranchiseTag, rpc.HandlerOptions(opts...)...,
	))
	mux.Handle(GetTeamCapProcedure, connect.NewUnaryHandler(
		GetTeamCapProcedure, s.GetTeamCap, rpc.ReadOnlyHandlerOptions(opts...)...,
	))
	mux.Handle(ProjectTeamCapProcedure, connect.NewUnaryHandler(
		ProjectTeamCapProcedure, s.ProjectTeamCap, rpc.ReadOnlyHandlerOptions(opts...)...,
	))
	return "/" + ServiceName + "/", mux
}

// SignContract signs a player to a team
func (s *Service) SignContract(ctx context.Context, req *connect.Request[SignContractRequest]) (*connect.Response[ContractResponse], error) {
	teamID, err := parseID("team_id", req.Msg.TeamID)
	if err != nil {
		return nil, err
	}
	playerID, err := parseID("player_id", req.Msg.PlayerID)
	if err != nil {
		return nil, err
	}

	contract, err := s.app.SignContract(ctx, SignContractParams{
		TeamID:              teamID,
		PlayerID:            playerID,
		Salary:              req.Msg.Salary,
		Years:               req.Msg.Years,
		AcquisitionType:     models.AcquisitionType(req.Msg.AcquisitionType),
		HasFourthYearOption: req.Msg.HasFourthYearOption,
		GuaranteedAmount:    req.Msg.GuaranteedAmount,
	})
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&ContractResponse{Contract: contract}), nil
}

// CutContract releases a contract
func (s *Service) CutContract(ctx context.Context, req *connect.Request[CutContractRequest]) (*connect.Response[CutResult], error) {
	id, err := parseID("contract_id", req.Msg.ContractID)
	if err != nil {
		return nil, err
	}

	result, err := s.app.CutContract(ctx, CutContractParams{
		ContractID:        id,
		DeadMoneyOverride: req.Msg.DeadMoneyOverride,
	})
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(result), nil
}

// ExtendContract extends a contract in its final year
func (s *Service) ExtendContract(ctx context.Context, req *connect.Request[ExtendContractRequest]) (*connect.Response[ContractResponse], error) {
	id, err := parseID("contract_id", req.Msg.ContractID)
	if err != nil {
		return nil, err
	}

	contract, err := s.app.ExtendContract(ctx, ExtendContractParams{
		ContractID: id,
		Years:      req.Msg.Years,
		Salary:     req.Msg.Salary,
	})
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&ContractResponse{Contract: contract}), nil
}

// ApplyFranchiseTag tags a contract for one more season
func (s *Service) ApplyFranchiseTag(ctx context.Context, req *connect.Request[ApplyFranchiseTagRequest]) (*connect.Response[FranchiseTagResult], error) {
	id, err := parseID("contract_id", req.Msg.ContractID)
	if err != nil {
		return nil, err
	}

	result, err := s.app.ApplyFranchiseTag(ctx, id)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(result), nil
}

// GetTeamCap returns a team's cap usage for the current season
func (s *Service) GetTeamCap(ctx context.Context, req *connect.Request[GetTeamCapRequest]) (*connect.Response[TeamCapResponse], error) {
	id, err := parseID("team_id", req.Msg.TeamID)
	if err != nil {
		return nil, err
	}

	p, err := s.app.GetTeamCap(ctx, id)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&TeamCapResponse{TeamID: id.String(), Projection: *p}), nil
}

// ProjectTeamCap projects a team's cap usage over future seasons
func (s *Service) ProjectTeamCap(ctx context.Context, req *connect.Request[ProjectTeamCapRequest]) (*connect.Response[ProjectTeamCapResponse], error) {
	id, err := parseID("team_id", req.Msg.TeamID)
	if err != nil {
		return nil, err
	}

	projections, err := s.app.ProjectTeamCap(ctx, id, req.Msg.Years)
	if err != nil {
		return nil, apperr.ToConnect(err)
	}
	return connect.NewResponse(&ProjectTeamCapResponse{TeamID: id.String(), Projections: projections}), nil
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, connect.NewError(connect.CodeInvalidArgument, apperr.Validation("invalid %s %q", field, raw))
	}
	return id, nil
}
