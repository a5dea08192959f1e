package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LeagueOfCloud/pickem-stats/internal/storage"
)

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List stored tournament matches",
	Args:  cobra.NoArgs,
	RunE:  runMatches,
}

func runMatches(cmd *cobra.Command, args []string) error {
	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	matches, err := db.TournamentMatches(cmd.Context())
	if err != nil {
		return fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stdout, "No tournament matches stored yet. Run 'pickemstats seed <fixture.json>' to add some.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-6s  %-12s  %s\n", "ID", "WINNER", "MATCH ID")
	fmt.Fprintf(os.Stdout, "%-6s  %-12s  %s\n", "──────", "────────────", "────────────────────")
	for _, m := range matches {
		fmt.Fprintf(os.Stdout, "%-6d  %-12d  %s\n", m.ID, m.WinnerTeamID, m.ExternalMatchID)
	}
	return nil
}
