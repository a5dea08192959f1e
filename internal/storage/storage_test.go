package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedRoster(t *testing.T, db *DB) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, db.InsertTeams(ctx, []Team{
		{ID: 1, Name: "Cloud Raptors"},
		{ID: 2, Name: "Iron Wolves"},
	}))
	require.NoError(t, db.InsertPlayers(ctx, []Player{
		{ID: 10, TeamID: 1, Name: "Raptor Top"},
		{ID: 20, TeamID: 2, Name: "Wolf Top"},
	}))
	require.NoError(t, db.InsertRiotAccounts(ctx, []RiotAccount{
		{PUUID: "puuid-raptor-top", PlayerID: 10},
		{PUUID: "puuid-wolf-top", PlayerID: 20},
	}))
}

func TestTournamentMatches_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedRoster(t, db)

	want := []model.TournamentMatch{
		{ID: 1, WinnerTeamID: 1, ExternalMatchID: "EUW1_100"},
		{ID: 2, WinnerTeamID: 2, ExternalMatchID: "EUW1_101"},
	}
	require.NoError(t, db.InsertTournamentMatches(ctx, want))

	got, err := db.TournamentMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestTournamentMatches_Empty(t *testing.T) {
	db := openTestDB(t)
	got, err := db.TournamentMatches(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestTournamentMatches_UpsertByID(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedRoster(t, db)

	require.NoError(t, db.InsertTournamentMatches(ctx, []model.TournamentMatch{
		{ID: 1, WinnerTeamID: 1, ExternalMatchID: "EUW1_100"},
	}))
	require.NoError(t, db.InsertTournamentMatches(ctx, []model.TournamentMatch{
		{ID: 1, WinnerTeamID: 2, ExternalMatchID: "EUW1_100"},
	}))

	got, err := db.TournamentMatches(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].WinnerTeamID)
}

func TestTeamByIdentity(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	seedRoster(t, db)

	teamID, found, err := db.TeamByIdentity(ctx, "puuid-wolf-top")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 2, teamID)
}

func TestTeamByIdentity_UnknownIsMissNotError(t *testing.T) {
	db := openTestDB(t)
	seedRoster(t, db)

	teamID, found, err := db.TeamByIdentity(context.Background(), "puuid-nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Zero(t, teamID)
}

func TestInsert_EmptySlicesAreNoOps(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	assert.NoError(t, db.InsertTeams(ctx, nil))
	assert.NoError(t, db.InsertPlayers(ctx, nil))
	assert.NoError(t, db.InsertRiotAccounts(ctx, nil))
	assert.NoError(t, db.InsertTournamentMatches(ctx, nil))
}
