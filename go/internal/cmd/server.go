package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"connectrpc.com/connect"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/dynasty-contracts/go/internal/caller"
)

func setupServer(services *Services, database *sql.DB, config *Config) *http.Server {
	mux := http.NewServeMux()

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedOrigins: config.Server.AllowedOrigins,
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"Connect-Protocol-Version", "Grpc-Status", "Grpc-Message"},
	})

	registerServices(mux, services)
	setupHealthCheck(mux, database)

	return &http.Server{
		Addr:              ":" + config.Server.Port,
		Handler:           h2c.NewHandler(c.Handler(mux), &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

func registerServices(mux *http.ServeMux, services *Services) {
	interceptors := connect.WithInterceptors(caller.NewInterceptor())

	leaguePath, leagueHandler := services.League.Handler(interceptors)
	mux.Handle(leaguePath, leagueHandler)

	turnoverPath, turnoverHandler := services.Turnover.Handler(interceptors)
	mux.Handle(turnoverPath, turnoverHandler)

	contractPath, contractHandler := services.Contracts.Handler(interceptors)
	mux.Handle(contractPath, contractHandler)
}

func setupHealthCheck(mux *http.ServeMux, database *sql.DB) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		status, body := http.StatusOK, map[string]string{"status": "ok"}
		if err := database.PingContext(ctx); err != nil {
			status, body = http.StatusServiceUnavailable, map[string]string{"status": "unhealthy", "database": err.Error()}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Error().Err(err).Msg("failed to write health check response")
		}
	})
}
