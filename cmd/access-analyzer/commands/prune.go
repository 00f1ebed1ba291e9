package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rezangit/building-access-analyzer/internal/config"
)

// PruneCommand holds the flags for the prune command.
type PruneCommand struct {
	dbPath    string
	olderThan int
}

func NewPruneCommand() *cobra.Command {
	cmd := &PruneCommand{}

	cobraCmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete old events from the archive",
		Long:  "One-shot retention pass: delete archived events imported more than the given number of days ago.",
		Args:  cobra.NoArgs,
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.dbPath, "db", "", "archive database path (default \"./data/access.db\")")
	cobraCmd.Flags().IntVar(&cmd.olderThan, "older-than", 0, "delete events imported more than this many days ago (default from env)")

	return cobraCmd
}

func (c *PruneCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if c.dbPath != "" {
		cfg.DBPath = c.dbPath
	}

	days := c.olderThan
	if days <= 0 {
		days = cfg.ArchiveRetentionDays
	}
	if days <= 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "nothing to prune: no retention configured (--older-than or ACCESS_ANALYZER_ARCHIVE_RETENTION_DAYS)")
		return nil
	}

	ctx := cmd.Context()
	conn, worker, arch, err := openArchive(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer conn.Close()
	defer worker.Close()

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	deleted, err := arch.PruneOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "pruned %d events imported before %s\n", deleted, cutoff.Format(time.RFC3339))
	return nil
}
