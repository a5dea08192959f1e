package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
)

// TournamentMatches returns every stored tournament match in id order,
// implementing pipeline.MatchSource.
func (db *DB) TournamentMatches(ctx context.Context) ([]model.TournamentMatch, error) {
	var out []model.TournamentMatch
	err := db.conn.SelectContext(ctx, &out, `
		SELECT id, winner_team_id, tournament_match_id
		FROM tournament_matches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select tournament matches: %w", err)
	}
	return out, nil
}

// TeamByIdentity resolves the tournament team owning a riot account,
// implementing resolver.TeamLookup. An unknown identity is a miss, not
// an error.
func (db *DB) TeamByIdentity(ctx context.Context, identity string) (int, bool, error) {
	var teamID int
	err := db.conn.GetContext(ctx, &teamID, `
		SELECT p.team_id
		FROM players p
		JOIN riot_accounts ra ON ra.player_id = p.id
		WHERE ra.account_puuid = ?`, identity)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup team for %s: %w", identity, err)
	}
	return teamID, true, nil
}

// InsertTeams upserts team roster rows.
func (db *DB) InsertTeams(ctx context.Context, teams []Team) error {
	if len(teams) == 0 {
		return nil
	}
	_, err := db.conn.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO teams (id, name) VALUES (:id, :name)`, teams)
	return err
}

// InsertPlayers upserts player roster rows.
func (db *DB) InsertPlayers(ctx context.Context, players []Player) error {
	if len(players) == 0 {
		return nil
	}
	_, err := db.conn.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO players (id, team_id, name)
		VALUES (:id, :team_id, :name)`, players)
	return err
}

// InsertRiotAccounts upserts account-to-player links.
func (db *DB) InsertRiotAccounts(ctx context.Context, accounts []RiotAccount) error {
	if len(accounts) == 0 {
		return nil
	}
	_, err := db.conn.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO riot_accounts (account_puuid, player_id)
		VALUES (:account_puuid, :player_id)`, accounts)
	return err
}

// InsertTournamentMatches upserts scheduled tournament matches.
func (db *DB) InsertTournamentMatches(ctx context.Context, matches []model.TournamentMatch) error {
	if len(matches) == 0 {
		return nil
	}
	_, err := db.conn.NamedExecContext(ctx, `
		INSERT OR REPLACE INTO tournament_matches (id, winner_team_id, tournament_match_id)
		VALUES (:id, :winner_team_id, :tournament_match_id)`, matches)
	return err
}
