package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	"github.com/Mukaram01/Name/auth"
	"github.com/Mukaram01/Name/cliparse"
	"github.com/Mukaram01/Name/db"
	"github.com/Mukaram01/Name/middleware"
	"github.com/Mukaram01/Name/router"
)

func main() {
	var err error

	// Load .env if present; real env vars take precedence
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open SQLite database
	dbConn, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// SQLite allows a single writer; one connection avoids busy errors
	dbConn.SetMaxOpenConns(1)

	// Verify connection
	if err := dbConn.Ping(); err != nil {
		slog.Error("database ping failed", "error", err)
		os.Exit(1)
	}

	// Create schema (tables) and seed defaults
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	if err := db.SeedDefaultSettings(dbConn); err != nil {
		slog.Error("settings seed failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	// The admin key is derived from the salt; print it once so the
	// contest operator can manage phases and the roster.
	slog.Info("Admin key ready", "key", auth.GenerateAdminKey(cfg.AdminKeySalt))

	// Create router
	mux := router.NewRouter(dbConn, cfg)

	// Create server
	server := http.Server{
		Handler: middleware.CORS(mux),
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
