// Package gitops shells out to git so a books root can be version
// controlled and every mutation committed.
package gitops

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/tallybook-dev/tallybook/internal/config"
)

// Init initializes a new git repository at dir and writes a .gitignore
// for files that should never be committed.
func Init(dir string) error {
	cmd := exec.Command("git", "init")
	cmd.Dir = dir
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("git init: %s: %w", out, err)
	}

	ignore := filepath.Join(dir, ".gitignore")
	if _, err := os.Stat(ignore); os.IsNotExist(err) {
		if err := os.WriteFile(ignore, []byte("*.png\n"), 0o644); err != nil {
			return fmt.Errorf("writing .gitignore: %w", err)
		}
	}
	return nil
}

// CommitBooks stages everything under dir and creates a commit with the
// configured author. Returns the short commit hash.
func CommitBooks(dir, message string, git config.GitConfig) (string, error) {
	add := exec.Command("git", "add", "-A")
	add.Dir = dir
	if out, err := add.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git add: %s: %w", out, err)
	}

	commit := exec.Command("git", "commit", "-m", message)
	commit.Dir = dir
	// Identity via env so commits work without a global git config.
	commit.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME="+git.AuthorName,
		"GIT_AUTHOR_EMAIL="+git.AuthorEmail,
		"GIT_COMMITTER_NAME="+git.AuthorName,
		"GIT_COMMITTER_EMAIL="+git.AuthorEmail,
	)
	if out, err := commit.CombinedOutput(); err != nil {
		return "", fmt.Errorf("git commit: %s: %w", out, err)
	}

	rev := exec.Command("git", "rev-parse", "--short", "HEAD")
	rev.Dir = dir
	out, err := rev.Output()
	if err != nil {
		return "", fmt.Errorf("git rev-parse: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// AutoCommit commits the books if auto-commit is enabled and dir is a
// repository. Returns the commit hash, or "" when nothing was committed.
func AutoCommit(dir, message string, git config.GitConfig) (string, error) {
	if !git.AutoCommit || !IsRepo(dir) {
		return "", nil
	}
	return CommitBooks(dir, message, git)
}

// IsRepo reports whether dir is the root of a git repository.
func IsRepo(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ".git"))
	return err == nil
}
