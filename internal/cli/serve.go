package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pdavydov/leaselint/internal/rules"
	"github.com/pdavydov/leaselint/internal/server"
	"github.com/pdavydov/leaselint/internal/store"
)

var (
	serveAddr    string
	serveDBPath  string
	serveNoStore bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the assessment HTTP API",
	Long: `Serve exposes the assessment engine over HTTP: contract and
single-clause assessment, clause extraction, persisted analysis
history, and an oracle chat endpoint.

API keys and tokens are read from the environment (a .env file in the
working directory is loaded if present).

Example:
  leaselint serve --addr :8080
  LEASELINT_SERVER_AUTH_TOKEN=secret leaselint serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().StringVar(&serveDBPath, "db", "", "sqlite path for analysis history (default from config)")
	serveCmd.Flags().BoolVar(&serveNoStore, "no-store", false, "disable analysis persistence")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Optional .env for API keys and tokens
	if err := godotenv.Load(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "Loaded environment from .env")
	}

	cfg := loadConfig()
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}
	if serveDBPath != "" {
		cfg.Server.DBPath = serveDBPath
	}
	if cfg.Server.AuthToken == "" {
		cfg.Server.AuthToken = os.Getenv("LEASELINT_AUTH_TOKEN")
	}

	consultant, err := buildConsultant(cfg)
	if err != nil {
		return err
	}

	var db *store.Store
	if !serveNoStore && cfg.Server.DBPath != "" {
		db, err = store.Open(cfg.Server.DBPath)
		if err != nil {
			return fmt.Errorf("open analysis store: %w", err)
		}
		defer db.Close()
	}

	srv := server.New(cfg.Server, cfg.Jurisdiction, rules.NewRegistry(), consultant, db)
	return srv.Run()
}
