// Package report renders the computed statistic battery.
package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/LeagueOfCloud/pickem-stats/internal/aggregator"
)

// sections group the battery the way the original pick'em sheet does.
var sections = []struct {
	Title string
	Keys  []string
}{
	{"PLAYER STATS", []string{
		aggregator.StatMostFirstBloods,
		aggregator.StatHighestKDA,
		aggregator.StatMostDeathsPlayer,
		aggregator.StatWorstVisionScore,
		aggregator.StatMostCSSingleGame,
	}},
	{"TEAM STATS", []string{
		aggregator.StatMostKillsTeam,
		aggregator.StatMostObjectivesTeam,
		aggregator.StatMostDeathsTeam,
		aggregator.StatMostStructureDamage,
		aggregator.StatMostPings,
	}},
	{"CHAMPION STATS", []string{
		aggregator.StatMostBannedChampion,
		aggregator.StatMostDamageTaken,
		aggregator.StatMostDamageDealt,
		aggregator.StatMostDeathsChampion,
	}},
	{"GAME STATS", []string{
		aggregator.StatLongGames,
		aggregator.StatObjectiveSteals,
		aggregator.StatPentakills,
		aggregator.StatShortestGame,
		aggregator.StatBiggestGoldDiff,
	}},
}

var statLabels = map[string]string{
	aggregator.StatMostFirstBloods:     "Most first bloods",
	aggregator.StatHighestKDA:          "Highest KDA",
	aggregator.StatMostDeathsPlayer:    "Most deaths",
	aggregator.StatWorstVisionScore:    "Worst vision score",
	aggregator.StatMostCSSingleGame:    "Most CS in a single game",
	aggregator.StatMostKillsTeam:       "Most kills",
	aggregator.StatMostObjectivesTeam:  "Most objectives",
	aggregator.StatMostDeathsTeam:      "Most deaths",
	aggregator.StatMostStructureDamage: "Most structure damage in a single game",
	aggregator.StatMostPings:           "Most pings in a single game",
	aggregator.StatMostBannedChampion:  "Most banned",
	aggregator.StatMostDamageTaken:     "Most damage tanked in a single game",
	aggregator.StatMostDamageDealt:     "Most damage dealt in a single game",
	aggregator.StatMostDeathsChampion:  "Most deaths overall",
	aggregator.StatLongGames:           "Games over 45 minutes",
	aggregator.StatObjectiveSteals:     "Objective steals",
	aggregator.StatPentakills:          "Pentakills",
	aggregator.StatShortestGame:        "Shortest game",
	aggregator.StatBiggestGoldDiff:     "Biggest gold difference",
}

// PrintResults writes the battery grouped by section. Statistics without
// data render an explicit "no data" marker rather than a value.
func PrintResults(w io.Writer, results aggregator.Results) {
	fmt.Fprintf(w, "\n=== Pick'em Results ===\n")
	for _, section := range sections {
		fmt.Fprintf(w, "\n--- %s ---\n\n", section.Title)
		table := tablewriter.NewTable(w, tablewriter.WithConfig(tablewriter.Config{
			Row:    tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignLeft}},
			Header: tw.CellConfig{Alignment: tw.CellAlignment{Global: tw.AlignCenter}},
		}))
		table.Header("STAT", "RESULT")
		for _, key := range section.Keys {
			res := results[key]
			summary := res.Summary
			if !res.HasData {
				summary = "(no data)"
			}
			table.Append(statLabels[key], summary)
		}
		table.Render()
	}
}
