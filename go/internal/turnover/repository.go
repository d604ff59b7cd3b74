package turnover

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/leagues"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
	"github.com/mcdev12/dynasty-contracts/go/internal/sqlutil"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetLeague(ctx context.Context, id uuid.UUID) (db.League, error)
	GetLeagueForUpdate(ctx context.Context, id uuid.UUID) (db.League, error)
	ListActiveContractsByLeague(ctx context.Context, leagueID uuid.UUID) ([]db.ListActiveContractsByLeagueRow, error)
	UpdateContractForTurnover(ctx context.Context, arg db.UpdateContractForTurnoverParams) (int64, error)
	AdvanceLeagueSeason(ctx context.Context, arg db.AdvanceLeagueSeasonParams) (int64, error)
	ResetFranchiseTags(ctx context.Context, leagueID uuid.UUID) (int64, error)
	InsertOutboxEvent(ctx context.Context, arg db.InsertOutboxEventParams) (uuid.UUID, error)
}

// Repository reads turnover inputs and applies plans in a transaction
type Repository struct {
	db      sqlutil.TxBeginner
	queries Querier
}

// NewRepository creates a new turnover repository
func NewRepository(queries Querier, database sqlutil.TxBeginner) *Repository {
	return &Repository{
		db:      database,
		queries: queries,
	}
}

// GetLeague retrieves a league by ID
func (r *Repository) GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return store{q: r.queries}.getLeague(ctx, id, false)
}

// ListActiveContracts lists every ACTIVE contract in the league
func (r *Repository) ListActiveContracts(ctx context.Context, leagueID uuid.UUID) ([]ActiveContract, error) {
	return store{q: r.queries}.ListActiveContracts(ctx, leagueID)
}

// RunInTx runs fn against a store bound to one transaction. Any error from
// fn rolls back every write fn made.
func (r *Repository) RunInTx(ctx context.Context, fn func(tx Store) error) error {
	return sqlutil.Run(ctx, r.db, func(tx *sql.Tx) *db.Queries {
		return db.New(tx)
	}, func(q *db.Queries) error {
		return fn(store{q: q})
	})
}

type store struct {
	q Querier
}

func (s store) LockLeague(ctx context.Context, id uuid.UUID) (*models.League, error) {
	return s.getLeague(ctx, id, true)
}

func (s store) getLeague(ctx context.Context, id uuid.UUID, forUpdate bool) (*models.League, error) {
	get := s.q.GetLeague
	if forUpdate {
		get = s.q.GetLeagueForUpdate
	}
	league, err := get(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound("league %s", id)
	}
	if err != nil {
		return nil, apperr.Persistence("get league", err)
	}
	return leagues.LeagueFromDB(league)
}

func (s store) ListActiveContracts(ctx context.Context, leagueID uuid.UUID) ([]ActiveContract, error) {
	rows, err := s.q.ListActiveContractsByLeague(ctx, leagueID)
	if err != nil {
		return nil, apperr.Persistence("list active contracts", err)
	}

	out := make([]ActiveContract, len(rows))
	for i, row := range rows {
		out[i] = activeContractFromRow(row)
	}
	return out, nil
}

func (s store) ApplyChange(ctx context.Context, ch ContractChange) error {
	n, err := s.q.UpdateContractForTurnover(ctx, db.UpdateContractForTurnoverParams{
		ID:             ch.ID,
		YearsRemaining: int32(ch.NewYearsRemaining),
		CurrentSalary:  ch.NewSalary,
		Status:         string(ContractStatusAfter(ch)),
	})
	if err != nil {
		return apperr.Persistence(fmt.Sprintf("update contract %s", ch.ID), err)
	}
	if n != 1 {
		return apperr.Conflict("contract %s changed during turnover", ch.ID)
	}
	return nil
}

func (s store) AdvanceSeason(ctx context.Context, leagueID uuid.UUID, fromSeason int) error {
	n, err := s.q.AdvanceLeagueSeason(ctx, db.AdvanceLeagueSeasonParams{
		ID:     leagueID,
		Season: int32(fromSeason),
	})
	if err != nil {
		return apperr.Persistence("advance league season", err)
	}
	if n != 1 {
		return apperr.Conflict("league %s is no longer in season %d", leagueID, fromSeason)
	}
	return nil
}

func (s store) ResetFranchiseTags(ctx context.Context, leagueID uuid.UUID) (int, error) {
	n, err := s.q.ResetFranchiseTags(ctx, leagueID)
	if err != nil {
		return 0, apperr.Persistence("reset franchise tags", err)
	}
	return int(n), nil
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

func activeContractFromRow(row db.ListActiveContractsByLeagueRow) ActiveContract {
	return ActiveContract{
		Contract: models.Contract{
			ID:                        row.ID,
			PlayerID:                  row.PlayerID,
			TeamID:                    row.TeamID,
			LeagueID:                  row.LeagueID,
			OriginalSalary:            row.OriginalSalary,
			CurrentSalary:             row.CurrentSalary,
			OriginalYears:             int(row.OriginalYears),
			YearsRemaining:            int(row.YearsRemaining),
			AcquisitionType:           models.AcquisitionType(row.AcquisitionType),
			Status:                    models.ContractStatus(row.Status),
			HasFourthYearOption:       row.HasFourthYearOption,
			FourthYearOptionActivated: row.FourthYearOptionActivated,
			HasBeenTagged:             row.HasBeenTagged,
			HasBeenExtended:           row.HasBeenExtended,
			SignedSeason:              int(row.SignedSeason),
			GuaranteedAmount:          sqlutil.FromSqlInt64(row.GuaranteedAmount),
			CreatedAt:                 row.CreatedAt,
			UpdatedAt:                 row.UpdatedAt,
		},
		PlayerName: row.PlayerName,
		TeamName:   row.TeamName,
	}
}
