// Command fix_dead_money_config rewrites league dead money configs that are
// missing, corrupt or carry a zero one-year bucket to the default.
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
)

type storedConfig struct {
	LeagueID uuid.UUID
	Name     string
	Raw      []byte
}

type repair struct {
	LeagueID uuid.UUID
	Name     string
	Reason   string
}

// planRepairs picks the leagues whose stored config must be rewritten.
func planRepairs(configs []storedConfig) []repair {
	var repairs []repair
	for _, c := range configs {
		if needs, reason := deadmoney.NeedsRepair(c.Raw); needs {
			repairs = append(repairs, repair{LeagueID: c.LeagueID, Name: c.Name, Reason: reason})
		}
	}
	return repairs
}

func main() {
	dryRun := flag.Bool("dry-run", false, "report leagues that need repair without writing")
	flag.Parse()

	_ = godotenv.Load()
	ctx := context.Background()

	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	configs, err := loadConfigs(ctx, pool)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configs: %v\n", err)
		os.Exit(1)
	}

	repairs := planRepairs(configs)
	for _, r := range repairs {
		fmt.Printf("league %s (%s): %s\n", r.LeagueID, r.Name, r.Reason)
	}
	if *dryRun || len(repairs) == 0 {
		fmt.Printf("Dead money config check: total=%d needing_repair=%d\n", len(configs), len(repairs))
		return
	}

	fixed, err := applyRepairs(ctx, pool, repairs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "apply repairs: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Dead money config repair: total=%d repaired=%d\n", len(configs), fixed)
}

func loadConfigs(ctx context.Context, pool *pgxpool.Pool) ([]storedConfig, error) {
	rows, err := pool.Query(ctx, `SELECT id, name, dead_money_config::text FROM leagues ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (storedConfig, error) {
		var c storedConfig
		var raw *string
		if err := row.Scan(&c.LeagueID, &c.Name, &raw); err != nil {
			return c, err
		}
		if raw != nil {
			c.Raw = []byte(*raw)
		}
		return c, nil
	})
}

// applyRepairs writes every repair in one transaction.
func applyRepairs(ctx context.Context, pool *pgxpool.Pool, repairs []repair) (int, error) {
	corrected, err := json.Marshal(deadmoney.Default())
	if err != nil {
		return 0, err
	}

	fixed := 0
	err = pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		for _, r := range repairs {
			tag, err := tx.Exec(ctx,
				`UPDATE leagues SET dead_money_config = $2::jsonb, updated_at = NOW() WHERE id = $1`,
				r.LeagueID, string(corrected))
			if err != nil {
				return fmt.Errorf("league %s: %w", r.LeagueID, err)
			}
			fixed += int(tag.RowsAffected())
		}
		return nil
	})
	return fixed, err
}
