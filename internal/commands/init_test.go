package commands_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tallybook-dev/tallybook/internal/store"
)

func TestInit_CreatesFiles(t *testing.T) {
	dir := initBooks(t)

	for _, f := range []string{
		"tallybook.yaml",
		store.TransactionsFile,
		store.CategoriesFile,
		store.BillsFile,
		store.LedgersFile,
		store.AccountGroupsFile,
		store.VouchersFile,
	} {
		_, err := os.Stat(filepath.Join(dir, f))
		require.NoError(t, err, "%s should exist", f)
	}
}

func TestInit_Config(t *testing.T) {
	dir := t.TempDir()
	_, err := runTallybook(t, "init", dir, "--name", "Alice", "--currency", "EUR", "--no-git")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "tallybook.yaml"))
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Alice")
	assert.Contains(t, contents, "base_currency: EUR")
}

func TestInit_SeedsDefaults(t *testing.T) {
	dir := initBooks(t)

	books, err := store.Load(dir)
	require.NoError(t, err)
	assert.Len(t, books.Categories(), len(store.DefaultCategories()))
	assert.Len(t, books.AccountGroups(), len(store.DefaultAccountGroups()))
	assert.Empty(t, books.Transactions())
}

func TestInit_GitRepo(t *testing.T) {
	dir := t.TempDir()
	out, err := runTallybook(t, "init", dir, "--name", "Test Books")
	require.NoError(t, err, out)

	_, err = os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git should exist")

	log := exec.Command("git", "log", "--format=%s", "-1")
	log.Dir = dir
	logOut, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(logOut), "init: Test Books")
}

func TestInit_NoGit(t *testing.T) {
	dir := initBooks(t)
	_, err := os.Stat(filepath.Join(dir, ".git"))
	assert.True(t, os.IsNotExist(err), "no-git init must not create .git")
}

func TestInit_RequiresName(t *testing.T) {
	dir := t.TempDir()
	_, err := runTallybook(t, "init", dir)
	require.Error(t, err, "init without --name should fail")
}
