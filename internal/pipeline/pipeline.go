// Package pipeline orchestrates match ingestion: list tournament
// matches, fetch and normalize telemetry, resolve team identity.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
	"github.com/LeagueOfCloud/pickem-stats/internal/resolver"
	"github.com/LeagueOfCloud/pickem-stats/internal/telemetry"
)

// MatchSource supplies the tournament matches to process.
type MatchSource interface {
	TournamentMatches(ctx context.Context) ([]model.TournamentMatch, error)
}

// TelemetryFetcher fetches the raw telemetry document for one external
// match id.
type TelemetryFetcher interface {
	MatchTelemetry(ctx context.Context, matchID string) ([]byte, error)
}

// Failure records one tournament match discarded during ingestion. Err
// keeps the wrapped cause, so callers can tell a malformed document from
// an unresolved team or a rate-limited fetch via errors.Is/As.
type Failure struct {
	MatchID    int    // tournament match record id
	ExternalID string // telemetry key
	Err        error
}

// Pipeline wires the ingestion collaborators. All dependencies are
// injected so the pipeline runs against fakes in tests.
type Pipeline struct {
	source  MatchSource
	fetcher TelemetryFetcher
	lookup  resolver.TeamLookup
	log     *log.Logger
}

// New returns a pipeline over the given collaborators. A nil logger
// falls back to the process default.
func New(source MatchSource, fetcher TelemetryFetcher, lookup resolver.TeamLookup, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{source: source, fetcher: fetcher, lookup: lookup, log: logger}
}

// Run ingests every tournament match sequentially (the upstream fetch is
// rate-limited, so no internal parallelism) and returns the working set
// of fully resolved matches. A failed match is logged, recorded as a
// Failure, and skipped; it never aborts the batch and is always
// distinguishable from a successfully processed zero-value match.
func (p *Pipeline) Run(ctx context.Context) ([]model.Match, []Failure, error) {
	records, err := p.source.TournamentMatches(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list tournament matches: %w", err)
	}

	matches := make([]model.Match, 0, len(records))
	var failed []Failure
	for _, rec := range records {
		if err := ctx.Err(); err != nil {
			return matches, failed, err
		}
		m, err := p.ingest(ctx, rec)
		if err != nil {
			p.log.Printf("skip match %d (%s): %v", rec.ID, rec.ExternalMatchID, err)
			failed = append(failed, Failure{MatchID: rec.ID, ExternalID: rec.ExternalMatchID, Err: err})
			continue
		}
		matches = append(matches, *m)
	}
	return matches, failed, nil
}

func (p *Pipeline) ingest(ctx context.Context, rec model.TournamentMatch) (*model.Match, error) {
	raw, err := p.fetcher.MatchTelemetry(ctx, rec.ExternalMatchID)
	if err != nil {
		return nil, err
	}
	m, err := telemetry.Normalize(raw)
	if err != nil {
		return nil, err
	}
	m.ExternalID = rec.ExternalMatchID
	if err := resolver.Resolve(ctx, p.lookup, m); err != nil {
		return nil, err
	}
	return m, nil
}
