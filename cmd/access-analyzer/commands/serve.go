package commands

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/archive"
	"github.com/rezangit/building-access-analyzer/internal/config"
	"github.com/rezangit/building-access-analyzer/internal/httpapi"
)

// ServeCommand holds the flags for the serve command.
type ServeCommand struct {
	addr   string
	dbPath string
}

func NewServeCommand() *cobra.Command {
	cmd := &ServeCommand{}

	cobraCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve reports from the event archive over HTTP",
		Long: `Start an HTTP server exposing the unit-fob and busy-time reports
generated from the event archive, plus an endpoint for archiving
individual events.`,
		Args: cobra.NoArgs,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.addr, "addr", "", "listen address (default \":8080\")")
	cobraCmd.Flags().StringVar(&cmd.dbPath, "db", "", "archive database path (default \"./data/access.db\")")

	return cobraCmd
}

func (c *ServeCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if c.addr != "" {
		cfg.HTTPAddr = c.addr
	}
	if c.dbPath != "" {
		cfg.DBPath = c.dbPath
	}

	logger := log.New(cmd.ErrOrStderr(), "access-analyzer ", log.LstdFlags|log.LUTC)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	conn, worker, arch, err := openArchive(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer worker.Close()

	pruner := archive.NewRetentionPruner(arch, archive.PrunerConfig{
		RetentionDays: cfg.ArchiveRetentionDays,
		IntervalHours: cfg.PruneIntervalHours,
	}, logger)
	pruner.Start(ctx)
	defer pruner.Stop()

	srv := httpapi.NewServer(httpapi.Dependencies{
		Logger:  logger,
		Addr:    cfg.HTTPAddr,
		Archive: arch,
	})

	go func() {
		logger.Printf("listening on %s", cfg.HTTPAddr)
		if err := srv.Start(); err != nil {
			logger.Printf("server error: %v", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
