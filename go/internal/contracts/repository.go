package contracts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/fantasyteam"
	"github.com/mcdev12/dynasty-contracts/go/internal/leagues"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
	"github.com/mcdev12/dynasty-contracts/go/internal/player"
	"github.com/mcdev12/dynasty-contracts/go/internal/sqlutil"
)

// topSalaryPool is how many salaries at a position feed the franchise tag
// average.
const topSalaryPool = 10

// Querier defines what the repository needs from the database layer
type Querier interface {
	leagues.Querier
	fantasyteam.Querier
	player.Querier

	GetContract(ctx context.Context, id uuid.UUID) (db.Contract, error)
	GetContractForUpdate(ctx context.Context, id uuid.UUID) (db.Contract, error)
	GetActiveContractForPlayer(ctx context.Context, arg db.GetActiveContractForPlayerParams) (db.Contract, error)
	ListContractsByTeam(ctx context.Context, teamID uuid.UUID) ([]db.Contract, error)
	ListDeadMoneyByTeam(ctx context.Context, arg db.ListDeadMoneyByTeamParams) ([]db.DeadMoney, error)
	ListTopSalariesAtPosition(ctx context.Context, arg db.ListTopSalariesAtPositionParams) ([]int64, error)
	CountFranchiseTagsByTeamSeason(ctx context.Context, arg db.CountFranchiseTagsByTeamSeasonParams) (int64, error)
	CreateContract(ctx context.Context, arg db.CreateContractParams) (db.Contract, error)
	CutContract(ctx context.Context, id uuid.UUID) (db.Contract, error)
	ExtendContract(ctx context.Context, arg db.ExtendContractParams) (db.Contract, error)
	ApplyFranchiseTag(ctx context.Context, arg db.ApplyFranchiseTagParams) (db.Contract, error)
	RecordFranchiseTag(ctx context.Context, arg db.RecordFranchiseTagParams) error
	CreateDeadMoney(ctx context.Context, arg db.CreateDeadMoneyParams) (db.DeadMoney, error)
	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) (uuid.UUID, error)
}

// Repository implements contract data access. Reads outside a transaction go
// through the embedded store; writes go through RunInTx.
type Repository struct {
	store
	db sqlutil.TxBeginner
}

// NewRepository creates a new contracts repository
func NewRepository(queries Querier, database sqlutil.TxBeginner) *Repository {
	return &Repository{
		store: newStore(queries, false),
		db:    database,
	}
}

// RunInTx runs fn against a store bound to one transaction. Contract and team
// reads inside fn lock the row until commit. Operations lock the contract
// before its team.
func (r *Repository) RunInTx(ctx context.Context, fn func(tx Store) error) error {
	return sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *db.Queries {
		return db.New(tx)
	}, func(q *db.Queries) error {
		return fn(newStore(q, true))
	})
}

type store struct {
	q         Querier
	leagues   *leagues.Repository
	teams     *fantasyteam.Repository
	players   *player.Repository
	forUpdate bool
}

func newStore(q Querier, forUpdate bool) store {
	return store{
		q:         q,
		leagues:   leagues.NewRepository(q),
		teams:     fantasyteam.NewRepository(q),
		players:   player.NewRepository(q),
		forUpdate: forUpdate,
	}
}

func (s store) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return s.leagues.GetLeague(ctx, id)
}

func (s store) GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error) {
	if s.forUpdate {
		return s.teams.GetFantasyTeamForUpdate(ctx, id)
	}
	return s.teams.GetFantasyTeam(ctx, id)
}

func (s store) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return s.players.GetPlayer(ctx, id)
}

func (s store) GetContract(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	get := s.q.GetContract
	if s.forUpdate {
		get = s.q.GetContractForUpdate
	}
	c, err := get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("contract %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get contract", err)
	}
	return ContractFromDB(c), nil
}

// GetActiveContractForPlayer returns nil when the team holds no ACTIVE
// contract for the player.
func (s store) GetActiveContractForPlayer(ctx context.Context, playerID, teamID uuid.UUID) (*models.Contract, error) {
	c, err := s.q.GetActiveContractForPlayer(ctx, db.GetActiveContractForPlayerParams{
		PlayerID: playerID,
		TeamID:   teamID,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Persistence("get active contract for player", err)
	}
	return ContractFromDB(c), nil
}

func (s store) ListTeamContracts(ctx context.Context, teamID uuid.UUID) ([]models.Contract, error) {
	rows, err := s.q.ListContractsByTeam(ctx, teamID)
	if err != nil {
		return nil, apperr.Persistence("list team contracts", err)
	}
	out := make([]models.Contract, len(rows))
	for i, row := range rows {
		out[i] = *ContractFromDB(row)
	}
	return out, nil
}

// ListTeamDeadMoney returns the team's dead money charged to fromSeason or
// later.
func (s store) ListTeamDeadMoney(ctx context.Context, teamID uuid.UUID, fromSeason int) ([]models.DeadMoney, error) {
	rows, err := s.q.ListDeadMoneyByTeam(ctx, db.ListDeadMoneyByTeamParams{
		TeamID: teamID,
		Season: int32(fromSeason),
	})
	if err != nil {
		return nil, apperr.Persistence("list team dead money", err)
	}
	out := make([]models.DeadMoney, len(rows))
	for i, row := range rows {
		out[i] = DeadMoneyFromDB(row)
	}
	return out, nil
}

func (s store) TopSalariesAtPosition(ctx context.Context, leagueID uuid.UUID, position string) ([]int64, error) {
	salaries, err := s.q.ListTopSalariesAtPosition(ctx, db.ListTopSalariesAtPositionParams{
		LeagueID: leagueID,
		Position: position,
		Limit:    topSalaryPool,
	})
	if err != nil {
		return nil, apperr.Persistence("list top salaries at position", err)
	}
	return salaries, nil
}

// CountTeamTags counts tags the team applied in season, whatever the tagged
// contracts' status is now.
func (s store) CountTeamTags(ctx context.Context, teamID uuid.UUID, season int) (int, error) {
	n, err := s.q.CountFranchiseTagsByTeamSeason(ctx, db.CountFranchiseTagsByTeamSeasonParams{
		TeamID: teamID,
		Season: int32(season),
	})
	if err != nil {
		return 0, apperr.Persistence("count team franchise tags", err)
	}
	return int(n), nil
}

func (s store) CreateContract(ctx context.Context, c models.Contract) (*models.Contract, error) {
	created, err := s.q.CreateContract(ctx, db.CreateContractParams{
		PlayerID:            c.PlayerID,
		TeamID:              c.TeamID,
		LeagueID:            c.LeagueID,
		OriginalSalary:      c.OriginalSalary,
		OriginalYears:       int32(c.OriginalYears),
		AcquisitionType:     string(c.AcquisitionType),
		HasFourthYearOption: c.HasFourthYearOption,
		SignedSeason:        int32(c.SignedSeason),
		GuaranteedAmount:    sqlutil.ToSqlInt64(c.GuaranteedAmount),
	})
	if err != nil {
		return nil, apperr.Persistence("create contract", err)
	}
	return ContractFromDB(created), nil
}

func (s store) CutContract(ctx context.Context, id uuid.UUID) (*models.Contract, error) {
	c, err := s.q.CutContract(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflict("contract %s is not active", id)
	}
	if err != nil {
		return nil, apperr.Persistence("cut contract", err)
	}
	return ContractFromDB(c), nil
}

func (s store) ExtendContract(ctx context.Context, id uuid.UUID, years int, salary int64) (*models.Contract, error) {
	c, err := s.q.ExtendContract(ctx, db.ExtendContractParams{
		ID:             id,
		YearsRemaining: int32(years),
		CurrentSalary:  salary,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflict("contract %s has already been extended", id)
	}
	if err != nil {
		return nil, apperr.Persistence("extend contract", err)
	}
	return ContractFromDB(c), nil
}

func (s store) ApplyFranchiseTag(ctx context.Context, id uuid.UUID, value int64) (*models.Contract, error) {
	c, err := s.q.ApplyFranchiseTag(ctx, db.ApplyFranchiseTagParams{
		ID:            id,
		CurrentSalary: value,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.Conflict("contract %s has already been tagged", id)
	}
	if err != nil {
		return nil, apperr.Persistence("apply franchise tag", err)
	}
	return ContractFromDB(c), nil
}

func (s store) RecordFranchiseTag(ctx context.Context, c models.Contract, season int, value int64) error {
	err := s.q.RecordFranchiseTag(ctx, db.RecordFranchiseTagParams{
		LeagueID:   c.LeagueID,
		TeamID:     c.TeamID,
		ContractID: c.ID,
		Season:     int32(season),
		TagValue:   value,
	})
	if err != nil {
		return apperr.Persistence("record franchise tag", err)
	}
	return nil
}

func (s store) CreateDeadMoney(ctx context.Context, dm models.DeadMoney) (*models.DeadMoney, error) {
	created, err := s.q.CreateDeadMoney(ctx, db.CreateDeadMoneyParams{
		LeagueID:   dm.LeagueID,
		TeamID:     dm.TeamID,
		PlayerID:   dm.PlayerID,
		ContractID: sqlutil.ToNullUUID(dm.ContractID),
		Amount:     dm.Amount,
		Season:     int32(dm.Season),
		Reason:     dm.Reason,
	})
	if err != nil {
		return nil, apperr.Persistence("create dead money", err)
	}
	out := DeadMoneyFromDB(created)
	return &out, nil
}

func (s store) UpdateCapSnapshot(ctx context.Context, teamID uuid.UUID, usedCap, deadMoney int64) error {
	return s.teams.UpdateCapSnapshot(ctx, teamID, usedCap, deadMoney)
}

func (s store) InsertOutboxEvent(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s payload: %w", eventType, err)
	}
	if _, err := s.q.InsertOutboxEvent(ctx, db.InsertOutboxEventParams{
		LeagueID:  leagueID,
		EventType: eventType,
		Payload:   raw,
	}); err != nil {
		return apperr.Persistence("insert outbox event", err)
	}
	return nil
}

// ContractFromDB converts a database contract row to the domain model
func ContractFromDB(c db.Contract) *models.Contract {
	return &models.Contract{
		ID:                        c.ID,
		PlayerID:                  c.PlayerID,
		TeamID:                    c.TeamID,
		LeagueID:                  c.LeagueID,
		OriginalSalary:            c.OriginalSalary,
		CurrentSalary:             c.CurrentSalary,
		OriginalYears:             int(c.OriginalYears),
		YearsRemaining:            int(c.YearsRemaining),
		AcquisitionType:           models.AcquisitionType(c.AcquisitionType),
		Status:                    models.ContractStatus(c.Status),
		HasFourthYearOption:       c.HasFourthYearOption,
		FourthYearOptionActivated: c.FourthYearOptionActivated,
		HasBeenTagged:             c.HasBeenTagged,
		HasBeenExtended:           c.HasBeenExtended,
		SignedSeason:              int(c.SignedSeason),
		GuaranteedAmount:          sqlutil.FromSqlInt64(c.GuaranteedAmount),
		CreatedAt:                 c.CreatedAt,
		UpdatedAt:                 c.UpdatedAt,
	}
}

// DeadMoneyFromDB converts a database dead money row to the domain model
func DeadMoneyFromDB(dm db.DeadMoney) models.DeadMoney {
	return models.DeadMoney{
		ID:         dm.ID,
		LeagueID:   dm.LeagueID,
		TeamID:     dm.TeamID,
		PlayerID:   dm.PlayerID,
		ContractID: sqlutil.FromNullUUID(dm.ContractID),
		Amount:     dm.Amount,
		Season:     int(dm.Season),
		Reason:     dm.Reason,
		CreatedAt:  dm.CreatedAt,
	}
}
