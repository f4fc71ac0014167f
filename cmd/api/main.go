package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"hourlog.org/internal/auth"
	"hourlog.org/internal/httpapi"
	"hourlog.org/internal/obs"
	"hourlog.org/internal/timesheet"
)

var version = "0.3.1"

func main() {
	obs.Init()

	tokenCfg := auth.Config{
		SecretKey:     os.Getenv("HOURLOG_JWT_SECRET"),
		ExpiryMinutes: envInt("HOURLOG_JWT_EXPIRY_MINUTES", 60),
		Issuer:        envOr("HOURLOG_JWT_ISSUER", "hourlog"),
		Audience:      envOr("HOURLOG_JWT_AUDIENCE", "hourlog-clients"),
	}
	tokens, err := auth.NewTokenService(tokenCfg)
	if err != nil {
		log.Fatalf("token service: %v", err)
	}

	// With a DSN the stores run on Postgres; without one the service keeps
	// everything in memory, which is enough for local development.
	var db *sql.DB
	var userStore auth.Store = auth.NewMemoryStore()
	var sheetStore timesheet.Store = timesheet.NewMemoryStore()
	if dsn := os.Getenv("HOURLOG_PG_DSN"); dsn != "" {
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
		userStore = auth.NewPGStore(db)
		sheetStore = timesheet.NewPGStore(db)
	}

	var opts []auth.ServiceOption
	if cost := envInt("HOURLOG_BCRYPT_COST", 0); cost > 0 {
		opts = append(opts, auth.WithBcryptCost(cost))
	}
	authSvc, err := auth.NewService(userStore, tokens, opts...)
	if err != nil {
		log.Fatalf("auth service: %v", err)
	}
	sheetSvc, err := timesheet.NewService(sheetStore)
	if err != nil {
		log.Fatalf("timesheet service: %v", err)
	}

	api := httpapi.New(httpapi.ReadyProbe{DB: db}, version, authSvc, sheetSvc)

	srv := &http.Server{
		Addr:              envOr("HOURLOG_ADDR", ":8080"),
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	obs.LogEvent("info", "starting", map[string]any{
		"service": "hourlog-api",
		"version": version,
		"addr":    srv.Addr,
	})

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	obs.LogEvent("info", "shutting_down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	obs.LogEvent("info", "stopped", nil)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("%s: %v", key, err)
	}
	return n
}
