// Package telemetry normalizes raw match-history documents into the
// canonical match model.
package telemetry

import (
	"encoding/json"
	"fmt"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
)

// MalformedError reports a telemetry document with a required field
// absent or of the wrong type. The whole match is unusable: zero-filling
// a required field would corrupt the max/min comparisons downstream.
type MalformedError struct {
	Field  string
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed telemetry: %s: %s", e.Field, e.Reason)
}

// Raw document shapes. Pointer fields mark values whose absence fails
// normalization; plain fields default to zero when missing. A type
// mismatch anywhere fails the whole-document decode.

type rawDocument struct {
	Info *rawInfo `json:"info"`
}

type rawInfo struct {
	GameDuration *int             `json:"gameDuration"`
	Participants []rawParticipant `json:"participants"`
	Teams        []rawTeam        `json:"teams"`
}

type rawChallenges struct {
	TeamRiftHeraldKills *int `json:"teamRiftHeraldKills"`
}

type rawParticipant struct {
	PUUID          *string        `json:"puuid"`
	TeamID         *int           `json:"teamId"`
	ChampionID     *int           `json:"championId"`
	FirstBloodKill *bool          `json:"firstBloodKill"`
	Kills          *int           `json:"kills"`
	Deaths         *int           `json:"deaths"`
	Assists        *int           `json:"assists"`
	Challenges     *rawChallenges `json:"challenges"`

	VisionScore                 int `json:"visionScore"`
	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	DamageDealtToBuildings      int `json:"damageDealtToBuildings"`
	DamageDealtToTurrets        int `json:"damageDealtToTurrets"`
	DragonKills                 int `json:"dragonKills"`
	BaronKills                  int `json:"baronKills"`
	InhibitorKills              int `json:"inhibitorKills"`
	TurretKills                 int `json:"turretKills"`
	ObjectivesStolen            int `json:"objectivesStolen"`
	GoldEarned                  int `json:"goldEarned"`
	PentaKills                  int `json:"pentaKills"`

	// Ping counters are tolerant: any counter absent from the document
	// contributes 0 to the synthesized total.
	AllInPings         int `json:"allInPings"`
	AssistMePings      int `json:"assistMePings"`
	BasicPings         int `json:"basicPings"`
	CommandPings       int `json:"commandPings"`
	DangerPings        int `json:"dangerPings"`
	EnemyMissingPings  int `json:"enemyMissingPings"`
	EnemyVisionPings   int `json:"enemyVisionPings"`
	GetBackPings       int `json:"getBackPings"`
	HoldPings          int `json:"holdPings"`
	NeedVisionPings    int `json:"needVisionPings"`
	OnMyWayPings       int `json:"onMyWayPings"`
	PushPings          int `json:"pushPings"`
	RetreatPings       int `json:"retreatPings"`
	VisionClearedPings int `json:"visionClearedPings"`
}

func (p *rawParticipant) pingTotal() int {
	return p.AllInPings + p.AssistMePings + p.BasicPings + p.CommandPings +
		p.DangerPings + p.EnemyMissingPings + p.EnemyVisionPings +
		p.GetBackPings + p.HoldPings + p.NeedVisionPings + p.OnMyWayPings +
		p.PushPings + p.RetreatPings + p.VisionClearedPings
}

type rawTeam struct {
	TeamID *int `json:"teamId"`
	Bans   []struct {
		ChampionID int `json:"championId"`
	} `json:"bans"`
}

// Normalize parses one raw telemetry document into a Match. Pure function
// of the input; a MalformedError means the match must be discarded whole.
func Normalize(raw []byte) (*model.Match, error) {
	var doc rawDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &MalformedError{Field: "document", Reason: err.Error()}
	}
	if doc.Info == nil {
		return nil, &MalformedError{Field: "info", Reason: "missing"}
	}
	info := doc.Info
	if info.GameDuration == nil {
		return nil, &MalformedError{Field: "info.gameDuration", Reason: "missing"}
	}
	if got := len(info.Participants); got != model.ParticipantsPerMatch {
		return nil, &MalformedError{
			Field:  "info.participants",
			Reason: fmt.Sprintf("expected %d participants, got %d", model.ParticipantsPerMatch, got),
		}
	}
	if got := len(info.Teams); got != model.TeamsPerMatch {
		return nil, &MalformedError{
			Field:  "info.teams",
			Reason: fmt.Sprintf("expected %d teams, got %d", model.TeamsPerMatch, got),
		}
	}

	m := &model.Match{
		Duration:     *info.GameDuration,
		Participants: make([]model.Participant, 0, model.ParticipantsPerMatch),
		Teams:        make([]model.Team, 0, model.TeamsPerMatch),
	}

	for i := range info.Participants {
		p, err := normalizeParticipant(i, &info.Participants[i])
		if err != nil {
			return nil, err
		}
		m.Participants = append(m.Participants, p)
	}

	for i := range info.Teams {
		rt := &info.Teams[i]
		if rt.TeamID == nil {
			return nil, &MalformedError{
				Field:  fmt.Sprintf("info.teams[%d].teamId", i),
				Reason: "missing",
			}
		}
		team := model.Team{ID: *rt.TeamID}
		for _, ban := range rt.Bans {
			team.Bans = append(team.Bans, ban.ChampionID)
		}
		m.Teams = append(m.Teams, team)
	}

	return m, nil
}

func normalizeParticipant(idx int, rp *rawParticipant) (model.Participant, error) {
	missing := func(field string) (model.Participant, error) {
		return model.Participant{}, &MalformedError{
			Field:  fmt.Sprintf("info.participants[%d].%s", idx, field),
			Reason: "missing",
		}
	}

	switch {
	case rp.PUUID == nil:
		return missing("puuid")
	case rp.TeamID == nil:
		return missing("teamId")
	case rp.ChampionID == nil:
		return missing("championId")
	case rp.FirstBloodKill == nil:
		return missing("firstBloodKill")
	case rp.Kills == nil:
		return missing("kills")
	case rp.Deaths == nil:
		return missing("deaths")
	case rp.Assists == nil:
		return missing("assists")
	case rp.Challenges == nil:
		return missing("challenges")
	case rp.Challenges.TeamRiftHeraldKills == nil:
		return missing("challenges.teamRiftHeraldKills")
	}

	return model.Participant{
		Identity:   *rp.PUUID,
		SideID:     *rp.TeamID,
		TeamID:     model.TeamUnresolved,
		ChampionID: *rp.ChampionID,

		FirstBloodKill: *rp.FirstBloodKill,

		Kills:   *rp.Kills,
		Deaths:  *rp.Deaths,
		Assists: *rp.Assists,

		VisionScore:          rp.VisionScore,
		MinionsKilled:        rp.TotalMinionsKilled,
		NeutralMinionsKilled: rp.NeutralMinionsKilled,

		DamageTaken:       rp.TotalDamageTaken,
		DamageToChampions: rp.TotalDamageDealtToChampions,
		DamageToBuildings: rp.DamageDealtToBuildings,
		DamageToTurrets:   rp.DamageDealtToTurrets,

		DragonKills:    rp.DragonKills,
		BaronKills:     rp.BaronKills,
		HeraldKills:    *rp.Challenges.TeamRiftHeraldKills,
		InhibitorKills: rp.InhibitorKills,
		TurretKills:    rp.TurretKills,

		ObjectivesStolen: rp.ObjectivesStolen,
		GoldEarned:       rp.GoldEarned,
		Pentakills:       rp.PentaKills,
		Pings:            rp.pingTotal(),
	}, nil
}
