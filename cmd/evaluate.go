package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LeagueOfCloud/pickem-stats/internal/aggregator"
	"github.com/LeagueOfCloud/pickem-stats/internal/pipeline"
	"github.com/LeagueOfCloud/pickem-stats/internal/report"
	"github.com/LeagueOfCloud/pickem-stats/internal/riot"
	"github.com/LeagueOfCloud/pickem-stats/internal/storage"
)

// evalRegion is the Riot routing region used for telemetry fetches.
var evalRegion string

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Compute the pick'em statistic battery",
	Long: `Loads the stored tournament matches, fetches per-match telemetry from
the Riot match-history API, resolves team identity, and prints the
statistic battery used to grade pick'em entries.

Matches whose telemetry is malformed, whose teams cannot be resolved, or
whose fetch fails are skipped and reported; they never abort the run.`,
	Args: cobra.NoArgs,
	RunE: runEvaluate,
}

func init() {
	evaluateCmd.Flags().StringVar(&evalRegion, "region", "", "Riot routing region (default: RIOT_API_REGION or europe)")
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	apiKey, err := loadRiotAPIKey()
	if err != nil {
		return err
	}
	region := evalRegion
	if region == "" {
		region = os.Getenv("RIOT_API_REGION")
	}
	if region == "" {
		region = "europe"
	}

	db, err := storage.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer db.Close()

	client := riot.NewClient(apiKey, region)
	pipe := pipeline.New(db, client, db, log.New(os.Stderr, "", log.LstdFlags))

	matches, failed, err := pipe.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("Processed %d/%d tournament matches\n", len(matches), len(matches)+len(failed))
	rateLimited := 0
	for _, f := range failed {
		if errors.Is(f.Err, riot.ErrRateLimited) {
			rateLimited++
		}
	}
	if rateLimited > 0 {
		fmt.Fprintf(os.Stderr, "%d matches were rate limited; re-run after backing off to include them\n", rateLimited)
	}

	report.PrintResults(os.Stdout, aggregator.Aggregate(matches))
	return nil
}

// loadRiotAPIKey returns the Riot API key from the RIOT_API_KEY
// environment variable or ~/.pickemstats/riot_api_key.
func loadRiotAPIKey() (string, error) {
	if key := os.Getenv("RIOT_API_KEY"); key != "" {
		return key, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(home, ".pickemstats", "riot_api_key"))
	if err != nil {
		return "", fmt.Errorf("Riot API key not found: set RIOT_API_KEY or create ~/.pickemstats/riot_api_key")
	}
	return strings.TrimSpace(string(data)), nil
}
