package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
	"github.com/LeagueOfCloud/pickem-stats/internal/storage"
)

var seedCmd = &cobra.Command{
	Use:   "seed <fixture.json>",
	Short: "Load a tournament fixture into the database",
	Long: `Loads teams, players, riot accounts, and scheduled tournament matches
from a JSON fixture file. Existing rows with the same ids are replaced.

Fixture shape:
  {
    "teams":    [{"id": 1, "name": "..."}],
    "players":  [{"id": 1, "team_id": 1, "name": "..."}],
    "accounts": [{"account_puuid": "...", "player_id": 1}],
    "matches":  [{"id": 1, "winner_team_id": 1, "tournament_match_id": "EUW1_..."}]
  }`,
	Args: cobra.ExactArgs(1),
	RunE: runSeed,
}

// seedFixture mirrors the roster and schedule tables.
type seedFixture struct {
	Teams    []storage.Team          `json:"teams"`
	Players  []storage.Player        `json:"players"`
	Accounts []storage.RiotAccount   `json:"accounts"`
	Matches  []model.TournamentMatch `json:"matches"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read fixture: %w", err)
	}
	var fixture seedFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return fmt.Errorf("decode fixture: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	ctx := cmd.Context()
	if err := db.InsertTeams(ctx, fixture.Teams); err != nil {
		return fmt.Errorf("insert teams: %w", err)
	}
	if err := db.InsertPlayers(ctx, fixture.Players); err != nil {
		return fmt.Errorf("insert players: %w", err)
	}
	if err := db.InsertRiotAccounts(ctx, fixture.Accounts); err != nil {
		return fmt.Errorf("insert accounts: %w", err)
	}
	if err := db.InsertTournamentMatches(ctx, fixture.Matches); err != nil {
		return fmt.Errorf("insert matches: %w", err)
	}

	fmt.Printf("Seeded %d teams, %d players, %d accounts, %d matches\n",
		len(fixture.Teams), len(fixture.Players), len(fixture.Accounts), len(fixture.Matches))
	return nil
}
