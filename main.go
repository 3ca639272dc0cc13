package main

import (
	"context"
	"embed"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"solitaire/internal/config"
	"solitaire/internal/engine"
	"solitaire/internal/server"
	"solitaire/internal/store"
	"solitaire/internal/termview"
)

//go:embed web/static
var static embed.FS

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "solitaire",
		Short:         "Charles Village patience: table server and tools",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(serveCmd(), dealCmd(), migrateCmd())
	return root
}

func serveCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve tables over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var results server.ResultRecorder
			if cfg.DatabaseURL != "" {
				db, err := openStore(ctx, cfg)
				if err != nil {
					return err
				}
				defer db.Close()
				results = db
				logger.Info("recording results to postgres")
			}

			return server.New(cfg, static, results, logger).Run(ctx)
		},
	}
	cmd.Flags().IntVar(&port, "port", 8080, "server port (overrides PORT)")
	return cmd
}

func openStore(ctx context.Context, cfg config.Config) (*store.DB, error) {
	db, err := store.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if cfg.AutoMigrate {
		if err := store.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return db, nil
}

func dealCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "deal",
		Short: "Deal a board and print it",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := engine.DefaultConfig()
			if seed != 0 {
				cfg = engine.SeededConfig(seed)
			}
			g := engine.NewGame(cfg)
			for _, ev := range g.Start() {
				if ev.Type == engine.EventCardSwept || ev.Type == engine.EventJokerSwept {
					pterm.Debug.Printfln("%s %v", ev.Type, ev.Data)
				}
			}
			pterm.DefaultSection.Println("Charles Village")
			fmt.Fprint(cmd.OutOrStdout(), termview.Render(g.View()))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "shuffle seed; 0 picks one from the clock")
	return cmd
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the results tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL is not set")
			}
			logger, err := cfg.NewLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			cfg.AutoMigrate = true
			db, err := openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			db.Close()
			logger.Info("schema applied", zap.String("database", "postgres"))
			return nil
		},
	}
}
