package contracts

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/dynasty-contracts/go/internal/apperr"
	"github.com/mcdev12/dynasty-contracts/go/internal/caller"
	"github.com/mcdev12/dynasty-contracts/go/internal/contractmath"
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
	"github.com/mcdev12/dynasty-contracts/go/internal/events"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

const (
	cutReason = "Released"

	defaultProjectionYears = models.MaxContractYears
	maxProjectionYears     = 10
)

// Store is the set of reads and writes a contract operation performs.
type Store interface {
	GetLeague(ctx context.Context, id uuid.UUID) (*models.League, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.FantasyTeam, error)
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	GetContract(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	GetActiveContractForPlayer(ctx context.Context, playerID, teamID uuid.UUID) (*models.Contract, error)
	ListTeamContracts(ctx context.Context, teamID uuid.UUID) ([]models.Contract, error)
	ListTeamDeadMoney(ctx context.Context, teamID uuid.UUID, fromSeason int) ([]models.DeadMoney, error)
	TopSalariesAtPosition(ctx context.Context, leagueID uuid.UUID, position string) ([]int64, error)
	CountTeamTags(ctx context.Context, teamID uuid.UUID, season int) (int, error)

	CreateContract(ctx context.Context, c models.Contract) (*models.Contract, error)
	CutContract(ctx context.Context, id uuid.UUID) (*models.Contract, error)
	ExtendContract(ctx context.Context, id uuid.UUID, years int, salary int64) (*models.Contract, error)
	ApplyFranchiseTag(ctx context.Context, id uuid.UUID, value int64) (*models.Contract, error)
	RecordFranchiseTag(ctx context.Context, c models.Contract, season int, value int64) error
	CreateDeadMoney(ctx context.Context, dm models.DeadMoney) (*models.DeadMoney, error)
	UpdateCapSnapshot(ctx context.Context, teamID uuid.UUID, usedCap, deadMoney int64) error
	InsertOutboxEvent(ctx context.Context, leagueID uuid.UUID, eventType string, payload any) error
}

// ContractsRepository defines what the app layer needs from the repository
type ContractsRepository interface {
	Store
	RunInTx(ctx context.Context, fn func(tx Store) error) error
}

// App handles contract lifecycle business logic
type App struct {
	repo  ContractsRepository
	clock clockwork.Clock
}

// NewApp creates a new contracts App
func NewApp(repo ContractsRepository, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		clock: clock,
	}
}

// SignContract creates an ACTIVE contract for a player on a team. The
// salary must fit under the team's cap for the current season.
func (a *App) SignContract(ctx context.Context, req SignContractParams) (*models.Contract, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	var signed *models.Contract
	err := a.repo.RunInTx(ctx, func(tx Store) error {
		league, team, err := a.teamScope(ctx, tx, req.TeamID)
		if err != nil {
			return err
		}
		if req.Salary < league.Settings.MinimumSalary {
			return apperr.Validation("salary %d is below the league minimum of %d", req.Salary, league.Settings.MinimumSalary)
		}
		if _, err := tx.GetPlayer(ctx, req.PlayerID); err != nil {
			return err
		}

		existing, err := tx.GetActiveContractForPlayer(ctx, req.PlayerID, team.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return apperr.Conflict("player %s already has an active contract with team %s", req.PlayerID, team.ID)
		}

		if err := checkCapSpace(ctx, tx, league, team.ID, req.Salary); err != nil {
			return err
		}

		signed, err = tx.CreateContract(ctx, models.Contract{
			PlayerID:            req.PlayerID,
			TeamID:              team.ID,
			LeagueID:            league.ID,
			OriginalSalary:      req.Salary,
			CurrentSalary:       req.Salary,
			OriginalYears:       req.Years,
			YearsRemaining:      req.Years,
			AcquisitionType:     req.AcquisitionType,
			Status:              models.ContractStatusActive,
			HasFourthYearOption: req.HasFourthYearOption,
			SignedSeason:        league.Season,
			GuaranteedAmount:    req.GuaranteedAmount,
		})
		if err != nil {
			return err
		}

		if err := refreshCapSnapshot(ctx, tx, league, team.ID); err != nil {
			return err
		}
		return tx.InsertOutboxEvent(ctx, league.ID, events.EventTypeContractSigned, events.ContractSignedPayload{
			ContractID:      signed.ID.String(),
			TeamID:          team.ID.String(),
			PlayerID:        req.PlayerID.String(),
			Salary:          signed.CurrentSalary,
			Years:           signed.YearsRemaining,
			AcquisitionType: string(signed.AcquisitionType),
			SignedAt:        a.clock.Now().UTC(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to sign contract: %w", err)
	}

	log.Info().
		Str("contract_id", signed.ID.String()).
		Str("team_id", signed.TeamID.String()).
		Str("player_id", signed.PlayerID.String()).
		Int64("salary", signed.CurrentSalary).
		Int("years", signed.YearsRemaining).
		Msg("Contract signed")
	return signed, nil
}

// CutContract releases a contract and records the dead money it leaves on
// the team's cap. The league's dead money config sets the charges unless
// req.DeadMoneyOverride is given, in which case that amount is charged to the
// current season. Scheduled charges are capped at the contract's guaranteed
// amount; an override above it is rejected.
func (a *App) CutContract(ctx context.Context, req CutContractParams) (*CutResult, error) {
	if req.DeadMoneyOverride != nil && *req.DeadMoneyOverride < 0 {
		return nil, apperr.Validation("dead money override must not be negative")
	}

	result := &CutResult{}
	err := a.repo.RunInTx(ctx, func(tx Store) error {
		contract, league, team, err := a.contractScope(ctx, tx, req.ContractID)
		if err != nil {
			return err
		}
		if !contract.IsActive() {
			return apperr.Conflict("contract %s is %s and cannot be cut", contract.ID, contract.Status)
		}
		if o := req.DeadMoneyOverride; o != nil && contract.GuaranteedAmount != nil && *o > *contract.GuaranteedAmount {
			return apperr.Validation("dead money override %d exceeds guaranteed amount %d", *o, *contract.GuaranteedAmount)
		}

		charges := cutCharges(contract, league, req.DeadMoneyOverride)

		cut, err := tx.CutContract(ctx, contract.ID)
		if err != nil {
			return err
		}
		result.Contract = cut

		for _, charge := range charges {
			if charge.Amount == 0 {
				continue
			}
			dm, err := tx.CreateDeadMoney(ctx, models.DeadMoney{
				LeagueID:   league.ID,
				TeamID:     team.ID,
				PlayerID:   contract.PlayerID,
				ContractID: &contract.ID,
				Amount:     charge.Amount,
				Season:     charge.Season,
				Reason:     cutReason,
			})
			if err != nil {
				return err
			}
			result.DeadMoney = append(result.DeadMoney, *dm)
			result.TotalDeadMoney += dm.Amount
		}

		if err := refreshCapSnapshot(ctx, tx, league, team.ID); err != nil {
			return err
		}
		return tx.InsertOutboxEvent(ctx, league.ID, events.EventTypeContractCut, events.ContractCutPayload{
			ContractID:     contract.ID.String(),
			TeamID:         team.ID.String(),
			PlayerID:       contract.PlayerID.String(),
			Season:         league.Season,
			DeadMoneyTotal: result.TotalDeadMoney,
			CutAt:          a.clock.Now().UTC(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cut contract: %w", err)
	}

	log.Info().
		Str("contract_id", result.Contract.ID.String()).
		Str("team_id", result.Contract.TeamID.String()).
		Int64("dead_money", result.TotalDeadMoney).
		Int("dead_money_seasons", len(result.DeadMoney)).
		Msg("Contract cut")
	return result, nil
}

// ExtendContract gives a contract in its final year new years and a new
// salary. A contract can be extended once.
func (a *App) ExtendContract(ctx context.Context, req ExtendContractParams) (*models.Contract, error) {
	if req.Years < 1 || req.Years > models.MaxContractYears {
		return nil, apperr.Validation("extension years must be between 1 and %d, got %d", models.MaxContractYears, req.Years)
	}

	var extended *models.Contract
	err := a.repo.RunInTx(ctx, func(tx Store) error {
		contract, league, team, err := a.contractScope(ctx, tx, req.ContractID)
		if err != nil {
			return err
		}
		if contract.Status == models.ContractStatusCut {
			return apperr.Conflict("contract %s has been cut", contract.ID)
		}
		if !contractmath.CanExtendContract(*contract) {
			return apperr.Conflict("contract %s is not eligible for extension", contract.ID)
		}
		if req.Salary < league.Settings.MinimumSalary {
			return apperr.Validation("salary %d is below the league minimum of %d", req.Salary, league.Settings.MinimumSalary)
		}

		if err := checkCapSpace(ctx, tx, league, team.ID, capDelta(contract, req.Salary)); err != nil {
			return err
		}

		extended, err = tx.ExtendContract(ctx, contract.ID, req.Years, req.Salary)
		if err != nil {
			return err
		}

		if err := refreshCapSnapshot(ctx, tx, league, team.ID); err != nil {
			return err
		}
		return tx.InsertOutboxEvent(ctx, league.ID, events.EventTypeContractExtended, events.ContractExtendedPayload{
			ContractID: contract.ID.String(),
			TeamID:     team.ID.String(),
			PlayerID:   contract.PlayerID.String(),
			NewYears:   extended.YearsRemaining,
			NewSalary:  extended.CurrentSalary,
			ExtendedAt: a.clock.Now().UTC(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to extend contract: %w", err)
	}

	log.Info().
		Str("contract_id", extended.ID.String()).
		Int("years", extended.YearsRemaining).
		Int64("salary", extended.CurrentSalary).
		Msg("Contract extended")
	return extended, nil
}

// ApplyFranchiseTag keeps a player for one more season at the franchise tag
// value. Expired contracts are reactivated for that season. A tag counts
// against the team's limit for the season it was applied in, even if the
// contract is later cut.
func (a *App) ApplyFranchiseTag(ctx context.Context, contractID uuid.UUID) (*FranchiseTagResult, error) {
	var result *FranchiseTagResult
	err := a.repo.RunInTx(ctx, func(tx Store) error {
		contract, league, team, err := a.contractScope(ctx, tx, contractID)
		if err != nil {
			return err
		}
		if contract.Status == models.ContractStatusCut {
			return apperr.Conflict("contract %s has been cut", contract.ID)
		}

		tagsUsed, err := tx.CountTeamTags(ctx, team.ID, league.Season)
		if err != nil {
			return err
		}
		if !contractmath.CanApplyFranchiseTag(*contract, tagsUsed, league.Settings.MaxFranchiseTags) {
			return apperr.Conflict("contract %s is not eligible for a franchise tag (%d of %d tags used)",
				contract.ID, tagsUsed, league.Settings.MaxFranchiseTags)
		}

		p, err := tx.GetPlayer(ctx, contract.PlayerID)
		if err != nil {
			return err
		}
		top, err := tx.TopSalariesAtPosition(ctx, league.ID, p.Position)
		if err != nil {
			return err
		}
		value := contractmath.CalculateFranchiseTagValue(*contract, top)

		if err := checkCapSpace(ctx, tx, league, team.ID, capDelta(contract, value)); err != nil {
			return err
		}

		tagged, err := tx.ApplyFranchiseTag(ctx, contract.ID, value)
		if err != nil {
			return err
		}
		if err := tx.RecordFranchiseTag(ctx, *tagged, league.Season, value); err != nil {
			return err
		}
		result = &FranchiseTagResult{
			Contract:        tagged,
			TagValue:        value,
			PreviousSalary:  contract.CurrentSalary,
			PositionSamples: len(top),
		}

		if err := refreshCapSnapshot(ctx, tx, league, team.ID); err != nil {
			return err
		}
		return tx.InsertOutboxEvent(ctx, league.ID, events.EventTypeFranchiseTagApplied, events.FranchiseTagAppliedPayload{
			ContractID: contract.ID.String(),
			TeamID:     team.ID.String(),
			PlayerID:   contract.PlayerID.String(),
			TagValue:   value,
			TaggedAt:   a.clock.Now().UTC(),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to apply franchise tag: %w", err)
	}

	log.Info().
		Str("contract_id", contractID.String()).
		Int64("tag_value", result.TagValue).
		Msg("Franchise tag applied")
	return result, nil
}

// GetTeamCap returns the team's cap usage for the league's current season.
func (a *App) GetTeamCap(ctx context.Context, teamID uuid.UUID) (*contractmath.CapProjection, error) {
	league, team, err := a.teamScopeRead(ctx, teamID)
	if err != nil {
		return nil, err
	}

	contracts, deadMoney, err := teamCommitments(ctx, a.repo, league, team.ID)
	if err != nil {
		return nil, err
	}
	p, err := contractmath.ProjectTeamCap(contracts, deadMoney, league.Settings.SalaryCap, league.Season)
	if err != nil {
		return nil, fmt.Errorf("league %s: %w", league.ID, err)
	}
	return &p, nil
}

// ProjectTeamCap projects the team's cap usage for years seasons starting
// with the current one. Zero years means the longest contract length.
func (a *App) ProjectTeamCap(ctx context.Context, teamID uuid.UUID, years int) ([]contractmath.CapProjection, error) {
	if years == 0 {
		years = defaultProjectionYears
	}
	if years < 1 || years > maxProjectionYears {
		return nil, apperr.Validation("projection years must be between 1 and %d, got %d", maxProjectionYears, years)
	}

	league, team, err := a.teamScopeRead(ctx, teamID)
	if err != nil {
		return nil, err
	}

	contracts, deadMoney, err := teamCommitments(ctx, a.repo, league, team.ID)
	if err != nil {
		return nil, err
	}
	projections, err := contractmath.ProjectCapByYear(contracts, deadMoney, league.Settings.SalaryCap,
		league.Season, years, league.Settings.AnnualIncreasePercentage)
	if err != nil {
		return nil, fmt.Errorf("league %s: %w", league.ID, err)
	}
	return projections, nil
}

// teamScope loads a team and its league and checks the caller may manage it.
func (a *App) teamScope(ctx context.Context, tx Store, teamID uuid.UUID) (*models.League, *models.FantasyTeam, error) {
	team, err := tx.GetTeam(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	league, err := tx.GetLeague(ctx, team.LeagueID)
	if err != nil {
		return nil, nil, err
	}
	if err := caller.RequireTeamManager(ctx, league, team); err != nil {
		return nil, nil, err
	}
	return league, team, nil
}

func (a *App) teamScopeRead(ctx context.Context, teamID uuid.UUID) (*models.League, *models.FantasyTeam, error) {
	team, err := a.repo.GetTeam(ctx, teamID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get team: %w", err)
	}
	league, err := a.repo.GetLeague(ctx, team.LeagueID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get league: %w", err)
	}
	return league, team, nil
}

// contractScope loads a contract with its league and team and checks the
// caller may manage the team.
func (a *App) contractScope(ctx context.Context, tx Store, contractID uuid.UUID) (*models.Contract, *models.League, *models.FantasyTeam, error) {
	contract, err := tx.GetContract(ctx, contractID)
	if err != nil {
		return nil, nil, nil, err
	}
	league, team, err := a.teamScope(ctx, tx, contract.TeamID)
	if err != nil {
		return nil, nil, nil, err
	}
	return contract, league, team, nil
}

func teamCommitments(ctx context.Context, s Store, league *models.League, teamID uuid.UUID) ([]models.Contract, []models.DeadMoney, error) {
	contracts, err := s.ListTeamContracts(ctx, teamID)
	if err != nil {
		return nil, nil, err
	}
	deadMoney, err := s.ListTeamDeadMoney(ctx, teamID, league.Season)
	if err != nil {
		return nil, nil, err
	}
	return contracts, deadMoney, nil
}

func checkCapSpace(ctx context.Context, tx Store, league *models.League, teamID uuid.UUID, commitment int64) error {
	contracts, deadMoney, err := teamCommitments(ctx, tx, league, teamID)
	if err != nil {
		return err
	}
	p, err := contractmath.ProjectTeamCap(contracts, deadMoney, league.Settings.SalaryCap, league.Season)
	if err != nil {
		return fmt.Errorf("league %s: %w", league.ID, err)
	}
	if check := contractmath.ValidateCapSpace(p, commitment); !check.OK {
		return apperr.Conflict("team %s is %d over the salary cap of %d", teamID, check.Shortfall, league.Settings.SalaryCap)
	}
	return nil
}

func refreshCapSnapshot(ctx context.Context, tx Store, league *models.League, teamID uuid.UUID) error {
	contracts, deadMoney, err := teamCommitments(ctx, tx, league, teamID)
	if err != nil {
		return err
	}
	p, err := contractmath.ProjectTeamCap(contracts, deadMoney, league.Settings.SalaryCap, league.Season)
	if err != nil {
		return fmt.Errorf("league %s: %w", league.ID, err)
	}
	return tx.UpdateCapSnapshot(ctx, teamID, p.UsedCap, p.DeadMoney)
}

// capDelta is how much more cap a contract would use at newSalary. Only an
// ACTIVE contract already counts against the cap.
func capDelta(c *models.Contract, newSalary int64) int64 {
	if !c.IsActive() {
		return newSalary
	}
	return newSalary - c.CurrentSalary
}

// cutCharges lays out the dead money a cut creates, capped at the
// guaranteed amount when the contract has one.
func cutCharges(c *models.Contract, league *models.League, override *int64) []deadmoney.SeasonCharge {
	var charges []deadmoney.SeasonCharge
	if override != nil {
		charges = []deadmoney.SeasonCharge{{Season: league.Season, Amount: *override}}
	} else {
		b := contractmath.DeadMoneySchedule(c.CurrentSalary, c.YearsRemaining, league.Settings.DeadMoneyConfig)
		charges = deadmoney.Charges(b, league.Season)
	}

	if c.GuaranteedAmount == nil {
		return charges
	}
	remaining := *c.GuaranteedAmount
	for i := range charges {
		charges[i].Amount = min(charges[i].Amount, remaining)
		remaining -= charges[i].Amount
	}
	return charges
}
