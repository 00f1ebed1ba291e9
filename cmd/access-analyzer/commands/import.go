package commands

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rezangit/building-access-analyzer/internal/accesslog/archive"
	"github.com/rezangit/building-access-analyzer/internal/accesslog/csvload"
	sqlitestore "github.com/rezangit/building-access-analyzer/internal/accesslog/store/sqlite"
	"github.com/rezangit/building-access-analyzer/internal/config"
	dbpkg "github.com/rezangit/building-access-analyzer/internal/db"
)

// ImportCommand holds the flags for the import command.
type ImportCommand struct {
	dbPath string
}

func NewImportCommand() *cobra.Command {
	cmd := &ImportCommand{}

	cobraCmd := &cobra.Command{
		Use:   "import [input.csv]",
		Short: "Import an access log into the event archive",
		Long:  "Import a CSV access log into the SQLite event archive so reports can span multiple log files.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.dbPath, "db", "", "archive database path (default \"./data/access.db\")")

	return cobraCmd
}

func (c *ImportCommand) Run(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	if c.dbPath != "" {
		cfg.DBPath = c.dbPath
	}

	input := cfg.DataFile
	if len(args) == 1 {
		input = args[0]
	}

	// Unlike report generation, import has nothing useful to do with an
	// unreadable input, so the load failure is surfaced.
	records, err := csvload.Load(input)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	conn, worker, arch, err := openArchive(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer worker.Close()

	n, err := arch.Import(ctx, records)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "archived %d records from %s\n", n, input)
	return nil
}

// openArchive opens the archive database and wires the single-writer
// worker and SQLite store.  Callers close the returned conn and worker.
func openArchive(ctx context.Context, dbPath string) (*sql.DB, *dbpkg.Worker, *archive.Archive, error) {
	conn, err := dbpkg.Open(ctx, dbpkg.Config{Path: dbPath})
	if err != nil {
		return nil, nil, nil, fmt.Errorf("open archive: %w", err)
	}

	worker := dbpkg.NewWorker(conn)
	st := sqlitestore.NewEventStore(conn, worker)
	return conn, worker, archive.New(st), nil
}
