// Package commands wires the CLI: every subcommand loads the books root,
// runs the pure computation packages, and persists mutations back as CSV.
package commands

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/auditlog"
	"github.com/tallybook-dev/tallybook/internal/buildinfo"
	"github.com/tallybook-dev/tallybook/internal/config"
	"github.com/tallybook-dev/tallybook/internal/gitops"
	"github.com/tallybook-dev/tallybook/internal/logger"
	"github.com/tallybook-dev/tallybook/internal/store"
)

type rootOptions struct {
	books   string
	verbose bool
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "tallybook",
		Short:   "File-backed personal bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.books, "books", ".", "books root directory")
	rootCmd.PersistentFlags().BoolVar(&opts.verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(
		newInitCommand(opts),
		newAddCommand(opts),
		newBillCommand(opts),
		newLedgerCommand(opts),
		newVoucherCommand(opts),
		newReportCommand(opts),
		newSummaryCommand(opts),
		newChartCommand(opts),
	)

	return rootCmd
}

func (o *rootOptions) log() zerolog.Logger {
	return logger.New(o.verbose)
}

// open resolves the books root and loads its config and collections.
func (o *rootOptions) open() (*config.Config, *store.Books, error) {
	dir, err := filepath.Abs(o.books)
	if err != nil {
		return nil, nil, fmt.Errorf("resolving books root: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, nil, fmt.Errorf("%s is not a books root: %w", dir, err)
	}

	books, err := store.Load(dir)
	if err != nil {
		return nil, nil, err
	}
	return cfg, books, nil
}

// saveAndRecord persists the books, auto-commits if configured, and appends
// an audit row. A failed audit write is a warning, never a lost mutation.
func (o *rootOptions) saveAndRecord(cfg *config.Config, books *store.Books, action, details, recordID string) error {
	if err := books.Save(); err != nil {
		return err
	}

	hash, err := gitops.AutoCommit(books.Root(), details, cfg.Git)
	if err != nil {
		return fmt.Errorf("committing books: %w", err)
	}

	entry := auditlog.Entry{
		Timestamp:  time.Now().UTC(),
		Profile:    cfg.Profile.ID,
		Action:     action,
		Details:    details,
		RecordID:   recordID,
		CommitHash: hash,
	}
	if err := auditlog.Append(books.Root(), []auditlog.Entry{entry}); err != nil {
		lg := o.log()
		lg.Warn().Err(err).Msg("failed to write audit log")
	}
	return nil
}
