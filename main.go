// Package main is the entry point for the pickemstats CLI tool, which
// ingests tournament match telemetry and computes the statistic battery
// used to grade pick'em entries.
package main

import "github.com/LeagueOfCloud/pickem-stats/cmd"

func main() {
	cmd.Execute()
}
