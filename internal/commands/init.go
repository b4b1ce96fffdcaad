package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/tallybook-dev/tallybook/internal/config"
	"github.com/tallybook-dev/tallybook/internal/gitops"
	"github.com/tallybook-dev/tallybook/internal/store"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	var name string
	var currency string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books root",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.books
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, opts, absDir, name, currency, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "books owner name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "base currency")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(cmd *cobra.Command, opts *rootOptions, dir, name, currency string, noGit bool) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating books root: %w", err)
	}

	// Write tallybook.yaml.
	cfg := config.Default(name, currency)
	if noGit {
		cfg.Git.AutoCommit = false
	}
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the books with the default categories and chart of account groups.
	books := store.New(dir)
	for _, c := range store.DefaultCategories() {
		if _, err := books.AddCategory(c); err != nil {
			return fmt.Errorf("seeding categories: %w", err)
		}
	}
	for _, g := range store.DefaultAccountGroups() {
		if _, err := books.AddAccountGroup(g); err != nil {
			return fmt.Errorf("seeding account groups: %w", err)
		}
	}
	if err := books.Save(); err != nil {
		return err
	}

	hash := ""
	if !noGit {
		if err := gitops.Init(dir); err != nil {
			return fmt.Errorf("git init: %w", err)
		}
		var err error
		hash, err = gitops.CommitBooks(dir, "init: "+name, cfg.Git)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
	}

	lg := opts.log()
	lg.Info().Str("dir", dir).Str("currency", currency).Msg("books initialized")
	if hash != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized books at %s (%s)\n", dir, hash)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized books at %s\n", dir)
	}
	return nil
}
