package model

// Positional layout of the telemetry participant list: entries 0-4 are
// side A, entries 5-9 side B. This ordering is a contract inherited from
// the upstream match-history service.
const (
	TeamSize             = 5
	ParticipantsPerMatch = 2 * TeamSize
	TeamsPerMatch        = 2
)

// TeamUnresolved is the participant team id before the resolver has run.
const TeamUnresolved = 0

// TournamentMatch is one scheduled tournament match as stored in the
// relational store. ExternalMatchID keys the telemetry fetch.
type TournamentMatch struct {
	ID              int    `db:"id" json:"id"`
	WinnerTeamID    int    `db:"winner_team_id" json:"winner_team_id"`
	ExternalMatchID string `db:"tournament_match_id" json:"tournament_match_id"`
}

// Participant is one player's performance record within a single match.
// Identity is the raw account token from the telemetry; it is unique
// within a match, and cross-match aggregation assumes the upstream
// identity scheme keeps it stable per human.
type Participant struct {
	Identity   string
	SideID     int // raw in-match side id from the telemetry
	TeamID     int // tournament team id, TeamUnresolved until resolved
	ChampionID int

	FirstBloodKill bool

	Kills   int
	Deaths  int
	Assists int

	VisionScore          int
	MinionsKilled        int
	NeutralMinionsKilled int

	DamageTaken       int
	DamageToChampions int
	DamageToBuildings int
	DamageToTurrets   int

	DragonKills    int
	BaronKills     int
	HeraldKills    int
	InhibitorKills int
	TurretKills    int

	ObjectivesStolen int
	GoldEarned       int
	Pentakills       int
	Pings            int
}

// CreepScore is lane plus jungle minions.
func (p *Participant) CreepScore() int {
	return p.MinionsKilled + p.NeutralMinionsKilled
}

// ObjectiveKills is the combined epic-monster and structure kill count
// used by the team-objectives statistic.
func (p *Participant) ObjectiveKills() int {
	return p.DragonKills + p.BaronKills + p.HeraldKills + p.InhibitorKills + p.TurretKills
}

// StructureDamage is building plus turret damage.
func (p *Participant) StructureDamage() int {
	return p.DamageToBuildings + p.DamageToTurrets
}

// Team is one of the two competing sides. ID holds the raw side id from
// the telemetry until the resolver overwrites it with the tournament
// team id. Bans may be empty; non-positive entries are empty ban slots.
type Team struct {
	ID   int
	Bans []int
}

// Match is one completed game: exactly ParticipantsPerMatch participants
// and TeamsPerMatch teams, sides positional per TeamSize. Built once by
// the normalizer, mutated only by the resolver, read-only thereafter.
type Match struct {
	ExternalID   string
	Duration     int // seconds
	Participants []Participant
	Teams        []Team
}

// Side returns the five participants of the given side (0 or 1) as a
// view into the match, so a bulk team-id assignment through it is
// visible on the match itself.
func (m *Match) Side(side int) []Participant {
	return m.Participants[side*TeamSize : (side+1)*TeamSize]
}
