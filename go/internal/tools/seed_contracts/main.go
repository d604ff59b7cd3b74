// Command seed_contracts loads a development league with teams, players and
// contracts, then refreshes each team's cap snapshot.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/mcdev12/dynasty-contracts/go/internal/dbconfig"
	"github.com/mcdev12/dynasty-contracts/go/internal/deadmoney"
	"github.com/mcdev12/dynasty-contracts/go/internal/leagues"
	"github.com/mcdev12/dynasty-contracts/go/internal/models"
)

type seedFile struct {
	League    seedLeague     `json:"league"`
	Teams     []seedTeam     `json:"teams"`
	Players   []seedPlayer   `json:"players"`
	Contracts []seedContract `json:"contracts"`
}

type seedLeague struct {
	ID                       uuid.UUID `json:"id"`
	Name                     string    `json:"name"`
	CommissionerID           uuid.UUID `json:"commissioner_id"`
	Season                   int       `json:"season"`
	SalaryCap                int64     `json:"salary_cap"`
	AnnualIncreasePercentage float64   `json:"annual_increase_percentage"`
	MaxFranchiseTags         int       `json:"max_franchise_tags"`
	MinimumSalary            int64     `json:"minimum_salary"`
	SeasonTurnoverDate       string    `json:"season_turnover_date"`
}

type seedTeam struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"owner_id"`
	Name    string    `json:"name"`
}

type seedPlayer struct {
	ID         uuid.UUID `json:"id"`
	ExternalID string    `json:"external_id"`
	FullName   string    `json:"full_name"`
	Position   string    `json:"position"`
	NFLTeam    *string   `json:"nfl_team"`
}

type seedContract struct {
	ID              uuid.UUID              `json:"id"`
	PlayerID        uuid.UUID              `json:"player_id"`
	TeamID          uuid.UUID              `json:"team_id"`
	Salary          int64                  `json:"salary"`
	OriginalYears   int                    `json:"original_years"`
	YearsRemaining  int                    `json:"years_remaining"`
	AcquisitionType models.AcquisitionType `json:"acquisition_type"`
	HasBeenTagged   bool                   `json:"has_been_tagged"`
	HasBeenExtended bool                   `json:"has_been_extended"`
}

// validate checks the seed against the table constraints before anything is
// written, so a bad file fails without a partial load.
func (s seedFile) validate() error {
	if s.League.SalaryCap <= 0 {
		return fmt.Errorf("league salary_cap must be positive")
	}
	if err := leagues.ValidateSettings(models.LeagueConfiguration{
		SalaryCap:                s.League.SalaryCap,
		AnnualIncreasePercentage: s.League.AnnualIncreasePercentage,
		MaxFranchiseTags:         s.League.MaxFranchiseTags,
		MinimumSalary:            s.League.MinimumSalary,
		SeasonTurnoverDate:       s.League.SeasonTurnoverDate,
	}); err != nil {
		return fmt.Errorf("league: %w", err)
	}
	teams := make(map[uuid.UUID]bool, len(s.Teams))
	for _, t := range s.Teams {
		teams[t.ID] = true
	}
	players := make(map[uuid.UUID]bool, len(s.Players))
	for _, p := range s.Players {
		players[p.ID] = true
	}

	active := make(map[[2]uuid.UUID]bool)
	for _, c := range s.Contracts {
		switch {
		case !teams[c.TeamID]:
			return fmt.Errorf("contract %s: unknown team %s", c.ID, c.TeamID)
		case !players[c.PlayerID]:
			return fmt.Errorf("contract %s: unknown player %s", c.ID, c.PlayerID)
		case c.OriginalYears < 1 || c.OriginalYears > models.MaxContractYears:
			return fmt.Errorf("contract %s: original_years %d outside 1-%d", c.ID, c.OriginalYears, models.MaxContractYears)
		case c.YearsRemaining < 0 || c.YearsRemaining > c.OriginalYears:
			return fmt.Errorf("contract %s: years_remaining %d outside 0-%d", c.ID, c.YearsRemaining, c.OriginalYears)
		case c.Salary < s.League.MinimumSalary:
			return fmt.Errorf("contract %s: salary %d below league minimum %d", c.ID, c.Salary, s.League.MinimumSalary)
		}
		key := [2]uuid.UUID{c.PlayerID, c.TeamID}
		if active[key] {
			return fmt.Errorf("contract %s: player %s already has a contract with team %s", c.ID, c.PlayerID, c.TeamID)
		}
		active[key] = true
	}
	return nil
}

func main() {
	path := flag.String("file", "go/internal/assets/seed_league.json", "seed file")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	data, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read %s: %v\n", *path, err)
		os.Exit(1)
	}
	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		fmt.Fprintf(os.Stderr, "unmarshal seed: %v\n", err)
		os.Exit(1)
	}
	if err := seed.validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid seed: %v\n", err)
		os.Exit(1)
	}

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var counts [4]int
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		var err error
		counts, err = load(ctx, tx, seed)
		return err
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "seed failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf(
		"Contract seed: leagues=%d teams=%d players=%d contracts=%d (existing rows skipped)\n",
		counts[0], counts[1], counts[2], counts[3],
	)
}

// load inserts the seed and returns inserted league, team, player and
// contract counts.
func load(ctx context.Context, tx pgx.Tx, seed seedFile) ([4]int, error) {
	var counts [4]int
	l := seed.League

	deadMoneyConfig, err := json.Marshal(deadmoney.Default())
	if err != nil {
		return counts, err
	}

	tag, err := tx.Exec(ctx, `
        INSERT INTO leagues (
          id, name, commissioner_id, season, salary_cap, annual_increase_percentage,
          max_franchise_tags, minimum_salary, season_turnover_date, dead_money_config
        ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10::jsonb)
        ON CONFLICT (id) DO NOTHING
    `, l.ID, l.Name, l.CommissionerID, l.Season, l.SalaryCap, l.AnnualIncreasePercentage,
		l.MaxFranchiseTags, l.MinimumSalary, l.SeasonTurnoverDate, string(deadMoneyConfig))
	if err != nil {
		return counts, fmt.Errorf("insert league: %w", err)
	}
	counts[0] = int(tag.RowsAffected())

	for _, t := range seed.Teams {
		tag, err := tx.Exec(ctx, `
            INSERT INTO fantasy_teams (id, league_id, owner_id, name)
            VALUES ($1,$2,$3,$4)
            ON CONFLICT (id) DO NOTHING
        `, t.ID, l.ID, t.OwnerID, t.Name)
		if err != nil {
			return counts, fmt.Errorf("insert team %s: %w", t.Name, err)
		}
		counts[1] += int(tag.RowsAffected())
	}

	for _, p := range seed.Players {
		tag, err := tx.Exec(ctx, `
            INSERT INTO players (id, external_id, full_name, position, nfl_team)
            VALUES ($1,$2,$3,$4,$5)
            ON CONFLICT (external_id) DO NOTHING
        `, p.ID, p.ExternalID, p.FullName, p.Position, p.NFLTeam)
		if err != nil {
			return counts, fmt.Errorf("insert player %s: %w", p.FullName, err)
		}
		counts[2] += int(tag.RowsAffected())
	}

	for _, c := range seed.Contracts {
		tag, err := tx.Exec(ctx, `
            INSERT INTO contracts (
              id, player_id, team_id, league_id, original_salary, current_salary,
              original_years, years_remaining, acquisition_type, status,
              has_been_tagged, has_been_extended, signed_season
            ) VALUES ($1,$2,$3,$4,$5,$5,$6,$7,$8,'ACTIVE',$9,$10,$11)
            ON CONFLICT (id) DO NOTHING
        `, c.ID, c.PlayerID, c.TeamID, l.ID, c.Salary, c.OriginalYears, c.YearsRemaining,
			string(c.AcquisitionType), c.HasBeenTagged, c.HasBeenExtended, l.Season)
		if err != nil {
			return counts, fmt.Errorf("insert contract %s: %w", c.ID, err)
		}
		counts[3] += int(tag.RowsAffected())
	}

	// Cap snapshots are derived; recompute them for every seeded team.
	_, err = tx.Exec(ctx, `
        UPDATE fantasy_teams t SET
          current_salary_cap = COALESCE((
            SELECT SUM(c.current_salary) FROM contracts c
            WHERE c.team_id = t.id AND c.status = 'ACTIVE'), 0),
          current_dead_money = COALESCE((
            SELECT SUM(d.amount) FROM dead_money d
            WHERE d.team_id = t.id AND d.season = $2), 0)
        WHERE t.league_id = $1
    `, l.ID, l.Season)
	if err != nil {
		return counts, fmt.Errorf("refresh cap snapshots: %w", err)
	}
	return counts, nil
}
