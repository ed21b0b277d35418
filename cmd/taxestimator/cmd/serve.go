package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taxsim/tax-estimator/internal/calculation"
	"github.com/taxsim/tax-estimator/internal/config"
	"github.com/taxsim/tax-estimator/internal/logging"
	"github.com/taxsim/tax-estimator/internal/server"
)

// serveCmd runs the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the tax estimation HTTP server",
	Long: `Start the HTTP server exposing the estimation API.

Configuration comes from the environment (a .env file is honored):
  ADDR or PORT          listen address (default :8080)
  CORS_ALLOWED_ORIGINS  comma-separated origins (default *)
  LOG_LEVEL             zap level (default info)
  LOG_FORMAT            console or json (default console)
  MAX_UPLOAD_BYTES      per-file attachment ceiling (default 5242880)`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	// .env is optional; missing files are fine for deployed environments.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	cfg := config.ServerFromEnv()

	if err := logging.Initialize(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}); err != nil {
		return err
	}
	defer logging.Sync()

	tables, err := loadTables()
	if err != nil {
		return err
	}

	engine := calculation.NewEngine(tables)
	engine.SetLogger(logging.Sugar)

	logging.Logger.Info("starting tax estimation server",
		zap.String("addr", cfg.Addr),
		zap.Int("taxYear", tables.Year),
	)

	srv := server.New(cfg, engine, logging.Logger)
	return srv.Run()
}
