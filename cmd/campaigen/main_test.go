package main

import (
	"bytes"
	"context"
	"flag"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"campaigen/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createdID = regexp.MustCompile(`created with ID: ([0-9a-f-]{36})`)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	stdout := new(bytes.Buffer)
	stderr := new(bytes.Buffer)
	err := run(context.Background(), args, stdout, stderr)
	return stdout.String(), stderr.String(), err
}

func isolatedDB(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "campaigen.db")
	t.Setenv("DB_PATH", path)
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "text")
	return path
}

func TestRun_SpendAdd(t *testing.T) {
	dbPath := isolatedDB(t)

	stdout, stderr, err := runCLI(t, "spend", "add",
		"--amount", "12.34",
		"--description", "Test",
		"--category", "Cat",
		"--date", "2024-03-30",
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Adding spend:")
	assert.Contains(t, stdout, "Spend record created with ID:")

	m := createdID.FindStringSubmatch(stdout)
	require.Len(t, m, 2)
	id := uuid.MustParse(m[1])

	db, err := storage.NewDB(dbPath)
	require.NoError(t, err)
	defer db.Close()

	rec, found, err := storage.NewSpendRecordStore(db).GetByID(context.Background(), id)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "12.34", rec.Amount.String())
	assert.Equal(t, "Test", rec.Description.String)
	assert.Equal(t, "Cat", rec.Category.String)
	assert.Equal(t, time.Date(2024, 3, 30, 0, 0, 0, 0, time.UTC), rec.Date)
}

func TestRun_SpendListEmpty(t *testing.T) {
	isolatedDB(t)

	stdout, stderr, err := runCLI(t, "spend", "list")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Listing all spend records...")
	assert.Contains(t, stdout, "DESCRIPTION")
	assert.Contains(t, stdout, "No spend records found.")
}

func TestRun_SpendListAfterAdd(t *testing.T) {
	isolatedDB(t)

	_, _, err := runCLI(t, "spend", "add", "--amount", "98.76", "--description", "Record for listing")
	require.NoError(t, err)

	stdout, stderr, err := runCLI(t, "spend", "list")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "98.76")
	assert.Contains(t, stdout, "Record for listing")
	assert.Contains(t, stdout, time.Now().UTC().Format("2006-01-02"))
	assert.NotContains(t, stdout, "No spend records found.")
}

func TestRun_InfluencerAddAndList(t *testing.T) {
	isolatedDB(t)

	stdout, stderr, err := runCLI(t, "influencer", "add",
		"--influencer-name", "Jane",
		"--handle", "@jane",
		"--platform", "Insta",
		"--niche", "Tech",
	)
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Influencer created with ID:")

	stdout, stderr, err = runCLI(t, "influencer", "list")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	for _, want := range []string{"Jane", "@jane", "Insta", "Tech"} {
		assert.Contains(t, stdout, want)
	}
}

func TestRun_SpendAddMissingAmount(t *testing.T) {
	dbPath := isolatedDB(t)

	stdout, stderr, err := runCLI(t, "spend", "add", "--description", "No amount")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required flags: amount")
	assert.Contains(t, stderr, "Usage: campaigen spend add")
	assert.Empty(t, stdout)
	assert.NoFileExists(t, dbPath, "database must not be opened for invalid input")
}

func TestRun_SpendAddInvalidAmount(t *testing.T) {
	isolatedDB(t)

	_, stderr, err := runCLI(t, "spend", "add", "--amount", "twelve")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
	assert.Contains(t, stderr, "invalid value")
}

func TestRun_GetAndDelete(t *testing.T) {
	isolatedDB(t)

	stdout, _, err := runCLI(t, "spend", "add", "--amount", "5", "--category", "Ads")
	require.NoError(t, err)
	id := createdID.FindStringSubmatch(stdout)[1]

	stdout, _, err = runCLI(t, "spend", "get", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Amount:      5.00")
	assert.Contains(t, stdout, "Description: -")

	_, _, err = runCLI(t, "spend", "delete", "--id", id)
	require.NoError(t, err)

	stdout, _, err = runCLI(t, "spend", "get", "--id", id)
	require.NoError(t, err)
	assert.Contains(t, stdout, "No spend record found with ID: "+id)

	// Deleting again is not an error.
	_, _, err = runCLI(t, "spend", "delete", "--id", id)
	assert.NoError(t, err)
}

func TestRun_DBFlagOverridesEnv(t *testing.T) {
	envPath := isolatedDB(t)
	flagPath := filepath.Join(t.TempDir(), "flag.db")

	_, _, err := runCLI(t, "-db", flagPath, "influencer", "add", "--name", "Flag")
	require.NoError(t, err)

	assert.FileExists(t, flagPath)
	assert.NoFileExists(t, envPath)
}

func TestRun_InvalidDBPath(t *testing.T) {
	isolatedDB(t)

	_, _, err := runCLI(t, "-db", t.TempDir(), "spend", "list")
	require.Error(t, err, "expected error for invalid db path")
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestRun_Help(t *testing.T) {
	isolatedDB(t)

	for _, args := range [][]string{{"-h"}, {"help"}, {"spend", "--help"}, {"influencer", "add", "-h"}} {
		_, stderr, err := runCLI(t, args...)
		assert.ErrorIs(t, err, flag.ErrHelp, "args %v", args)
		assert.Contains(t, stderr, "Usage:", "args %v", args)
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	isolatedDB(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no command", nil, "missing command"},
		{"unknown group", []string{"campaign"}, `unknown command "campaign"`},
		{"missing subcommand", []string{"spend"}, "missing spend subcommand"},
		{"unknown subcommand", []string{"influencer", "remove"}, `unknown influencer subcommand "remove"`},
		{"invalid flag", []string{"spend", "list", "-invalid"}, "flag provided but not defined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, stderr, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.NotEmpty(t, stderr)
		})
	}
}
