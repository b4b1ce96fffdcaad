package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/config"
)

var testGit = config.GitConfig{
	AutoCommit:  true,
	AuthorName:  "Test Author",
	AuthorEmail: "test@example.com",
}

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "*.png")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitBooks(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "transactions.csv"), []byte("id\n"), 0o644))

	hash, err := CommitBooks(dir, "add: expense 45.00 USD", testGit)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "add: expense 45.00 USD")

	authorLog := exec.Command("git", "log", "--format=%an <%ae>", "-1")
	authorLog.Dir = dir
	out, err = authorLog.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "Test Author <test@example.com>")
}

func TestAutoCommit_Disabled(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	git := testGit
	git.AutoCommit = false
	hash, err := AutoCommit(dir, "noop", git)
	require.NoError(t, err)
	assert.Empty(t, hash)
}

func TestAutoCommit_NotARepo(t *testing.T) {
	hash, err := AutoCommit(t.TempDir(), "noop", testGit)
	require.NoError(t, err)
	assert.Empty(t, hash)
}
