package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/planwise/discovery/internal/config"
	"github.com/planwise/discovery/internal/db"
	"github.com/planwise/discovery/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the planwise HTTP API",
	Long: `Starts the insights API: POST /api/insights scores a posted snapshot,
GET /api/questions lists the guided-question catalog, and the history
endpoints expose past generation summaries.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if servePort != 0 {
			cfg.Server.Port = servePort
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		var database *db.DB
		if cfg.History.Enabled {
			database, err = db.Open(cfg.Database.Path)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()
		}

		srv := server.New(cfg.Server, database)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "planwise v%s starting on %s:%d\n", Version, cfg.Server.Host, cfg.Server.Port)
		if database != nil {
			fmt.Fprintf(os.Stderr, "  History: %s\n", cfg.Database.Path)
		}

		return srv.Start()
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "override the configured port")
	rootCmd.AddCommand(serveCmd)
}
