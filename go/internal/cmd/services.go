package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/dynasty-contracts/go/internal/contracts"
	"github.com/mcdev12/dynasty-contracts/go/internal/db"
	"github.com/mcdev12/dynasty-contracts/go/internal/leagues"
	"github.com/mcdev12/dynasty-contracts/go/internal/turnover"
)

type Services struct {
	League    *leagues.Service
	Turnover  *turnover.Service
	Contracts *contracts.Service
}

func setupServices(database *sql.DB, config *Config) *Services {
	// Database layer → Repository layer → App layer → Service layer
	queries := db.New(database)
	clock := clockwork.NewRealClock()

	// League
	leagueRepo := leagues.NewRepository(queries)
	leagueApp := leagues.NewApp(leagueRepo)
	leagueService := leagues.NewService(leagueApp)

	// Turnover
	turnoverRepo := turnover.NewRepository(queries, database)
	guard := turnover.NewInFlightGuard(config.Turnover.InFlightTTL)
	turnoverApp := turnover.NewApp(turnoverRepo, guard, clock)
	turnoverService := turnover.NewService(turnoverApp)

	// Contracts
	contractRepo := contracts.NewRepository(queries, database)
	contractApp := contracts.NewApp(contractRepo, clock)
	contractService := contracts.NewService(contractApp)

	return &Services{
		League:    leagueService,
		Turnover:  turnoverService,
		Contracts: contractService,
	}
}
