// Package storage is the SQLite-backed tournament store: the match list
// the pipeline processes and the roster tables behind the team lookup.
package storage

import (
	_ "embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// DB wraps the tournament database.
type DB struct {
	conn *sqlx.DB
}

// Open opens (or creates) the SQLite database at the given path and
// applies the schema.
func Open(path string) (*DB, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL", path)
	conn, err := sqlx.Connect("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &DB{conn: conn}, nil
}

// Close closes the underlying connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

// Team is one tournament team roster row.
type Team struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// Player is one rostered player, owned by a team.
type Player struct {
	ID     int    `db:"id" json:"id"`
	TeamID int    `db:"team_id" json:"team_id"`
	Name   string `db:"name" json:"name"`
}

// RiotAccount links an account identity to a rostered player.
type RiotAccount struct {
	PUUID    string `db:"account_puuid" json:"account_puuid"`
	PlayerID int    `db:"player_id" json:"player_id"`
}
