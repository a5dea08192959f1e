// Package resolver back-fills tournament team identity onto normalized
// matches.
package resolver

import (
	"context"
	"fmt"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
)

// TeamLookup resolves the tournament team owning an account identity.
// found is false when no team owns the identity; err is reserved for
// lookup-infrastructure failures.
type TeamLookup interface {
	TeamByIdentity(ctx context.Context, identity string) (teamID int, found bool, err error)
}

// UnresolvedTeamError reports an identity no tournament team owns. The
// match carrying it must be discarded: leaving a sentinel team id in
// place would corrupt every team-scoped aggregation.
type UnresolvedTeamError struct {
	Identity string
}

func (e *UnresolvedTeamError) Error() string {
	return fmt.Sprintf("no tournament team owns account %s", e.Identity)
}

// Resolve overwrites the side ids on both teams and all ten participants
// with tournament team ids. Each side is resolved once, from its first
// participant, and the result is batch-assigned to the whole side. The
// match must not reach aggregation unless Resolve completed both sides.
func Resolve(ctx context.Context, lookup TeamLookup, m *model.Match) error {
	if len(m.Participants) != model.ParticipantsPerMatch || len(m.Teams) != model.TeamsPerMatch {
		return fmt.Errorf("match %s: not normalized: %d participants, %d teams",
			m.ExternalID, len(m.Participants), len(m.Teams))
	}

	for side := 0; side < model.TeamsPerMatch; side++ {
		group := m.Side(side)
		anchor := group[0].Identity

		teamID, found, err := lookup.TeamByIdentity(ctx, anchor)
		if err != nil {
			return fmt.Errorf("team lookup for %s: %w", anchor, err)
		}
		if !found {
			return &UnresolvedTeamError{Identity: anchor}
		}

		m.Teams[side].ID = teamID
		for i := range group {
			group[i].TeamID = teamID
		}
	}
	return nil
}
