package telemetry

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
)

// rawFixtureParticipant builds one complete participant object in the
// wire format. Side 100 for slots 0-4, side 200 for 5-9.
func rawFixtureParticipant(slot int) map[string]any {
	side := 100
	if slot >= model.TeamSize {
		side = 200
	}
	return map[string]any{
		"puuid":          fmt.Sprintf("puuid-%d", slot),
		"teamId":         side,
		"championId":     200 + slot,
		"firstBloodKill": slot == 0,
		"kills":          slot,
		"deaths":         1,
		"assists":        2,
		"challenges": map[string]any{
			"teamRiftHeraldKills": 1,
		},
		"visionScore":                 25,
		"totalMinionsKilled":          180,
		"neutralMinionsKilled":        20,
		"totalDamageTaken":            15000,
		"totalDamageDealtToChampions": 18000,
		"damageDealtToBuildings":      3000,
		"damageDealtToTurrets":        2500,
		"dragonKills":                 1,
		"baronKills":                  0,
		"inhibitorKills":              1,
		"turretKills":                 2,
		"objectivesStolen":            0,
		"goldEarned":                  12000,
		"pentaKills":                  0,
		"commandPings":                10,
		"onMyWayPings":                5,
	}
}

// rawFixture builds a full valid document. Tests mutate the returned
// maps before marshalling.
func rawFixture() map[string]any {
	participants := make([]map[string]any, 0, model.ParticipantsPerMatch)
	for i := 0; i < model.ParticipantsPerMatch; i++ {
		participants = append(participants, rawFixtureParticipant(i))
	}
	return map[string]any{
		"info": map[string]any{
			"gameDuration": 2100,
			"participants": participants,
			"teams": []map[string]any{
				{"teamId": 100, "bans": []map[string]any{{"championId": 64}, {"championId": 0}}},
				{"teamId": 200, "bans": []map[string]any{{"championId": 64}}},
			},
		},
	}
}

func mustMarshal(t *testing.T, doc map[string]any) []byte {
	t.Helper()
	raw, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	return raw
}

func fixtureParticipants(doc map[string]any) []map[string]any {
	return doc["info"].(map[string]any)["participants"].([]map[string]any)
}

func TestNormalize_ValidDocument(t *testing.T) {
	m, err := Normalize(mustMarshal(t, rawFixture()))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if m.Duration != 2100 {
		t.Errorf("Duration: want 2100, got %d", m.Duration)
	}
	if len(m.Participants) != model.ParticipantsPerMatch {
		t.Fatalf("want %d participants, got %d", model.ParticipantsPerMatch, len(m.Participants))
	}
	if len(m.Teams) != model.TeamsPerMatch {
		t.Fatalf("want %d teams, got %d", model.TeamsPerMatch, len(m.Teams))
	}

	p := m.Participants[0]
	if p.Identity != "puuid-0" || p.SideID != 100 || p.ChampionID != 200 {
		t.Errorf("participant 0 identity fields: %+v", p)
	}
	if !p.FirstBloodKill {
		t.Error("participant 0 should carry the first blood")
	}
	if p.TeamID != model.TeamUnresolved {
		t.Errorf("tournament team must start unresolved, got %d", p.TeamID)
	}
	if p.CreepScore() != 200 {
		t.Errorf("CreepScore: want 200, got %d", p.CreepScore())
	}
	if p.HeraldKills != 1 {
		t.Errorf("herald kills must come from the challenges block, got %d", p.HeraldKills)
	}
	if p.Pings != 15 {
		t.Errorf("Pings: want 15, got %d", p.Pings)
	}

	if m.Participants[7].SideID != 200 {
		t.Errorf("participant 7 side: want 200, got %d", m.Participants[7].SideID)
	}
	if got := m.Teams[0].Bans; len(got) != 2 || got[0] != 64 || got[1] != 0 {
		t.Errorf("team 0 bans: want [64 0], got %v", got)
	}
}

func TestNormalize_MissingRequiredField(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(doc map[string]any)
		field  string
	}{
		{
			name:   "puuid",
			mutate: func(doc map[string]any) { delete(fixtureParticipants(doc)[3], "puuid") },
			field:  "info.participants[3].puuid",
		},
		{
			name:   "firstBloodKill",
			mutate: func(doc map[string]any) { delete(fixtureParticipants(doc)[0], "firstBloodKill") },
			field:  "info.participants[0].firstBloodKill",
		},
		{
			name:   "challenges block",
			mutate: func(doc map[string]any) { delete(fixtureParticipants(doc)[9], "challenges") },
			field:  "info.participants[9].challenges",
		},
		{
			name: "herald counter inside challenges",
			mutate: func(doc map[string]any) {
				fixtureParticipants(doc)[1]["challenges"] = map[string]any{}
			},
			field: "info.participants[1].challenges.teamRiftHeraldKills",
		},
		{
			name:   "gameDuration",
			mutate: func(doc map[string]any) { delete(doc["info"].(map[string]any), "gameDuration") },
			field:  "info.gameDuration",
		},
		{
			name: "team id",
			mutate: func(doc map[string]any) {
				delete(doc["info"].(map[string]any)["teams"].([]map[string]any)[1], "teamId")
			},
			field: "info.teams[1].teamId",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := rawFixture()
			tc.mutate(doc)
			_, err := Normalize(mustMarshal(t, doc))
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("want MalformedError, got %v", err)
			}
			if malformed.Field != tc.field {
				t.Errorf("Field: want %q, got %q", tc.field, malformed.Field)
			}
		})
	}
}

func TestNormalize_TolerantCountersDefaultToZero(t *testing.T) {
	doc := rawFixture()
	p := fixtureParticipants(doc)[2]
	delete(p, "visionScore")
	delete(p, "commandPings")
	delete(p, "onMyWayPings")
	delete(p, "objectivesStolen")

	m, err := Normalize(mustMarshal(t, doc))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	got := m.Participants[2]
	if got.VisionScore != 0 || got.Pings != 0 || got.ObjectivesStolen != 0 {
		t.Errorf("absent tolerant counters must read as zero: %+v", got)
	}
}

func TestNormalize_WrongParticipantCount(t *testing.T) {
	doc := rawFixture()
	info := doc["info"].(map[string]any)
	info["participants"] = fixtureParticipants(doc)[:9]

	_, err := Normalize(mustMarshal(t, doc))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedError, got %v", err)
	}
	if malformed.Field != "info.participants" {
		t.Errorf("Field: got %q", malformed.Field)
	}
}

func TestNormalize_WrongTeamCount(t *testing.T) {
	doc := rawFixture()
	info := doc["info"].(map[string]any)
	info["teams"] = doc["info"].(map[string]any)["teams"].([]map[string]any)[:1]

	_, err := Normalize(mustMarshal(t, doc))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedError, got %v", err)
	}
	if malformed.Field != "info.teams" {
		t.Errorf("Field: got %q", malformed.Field)
	}
}

func TestNormalize_WrongTypeFails(t *testing.T) {
	doc := rawFixture()
	fixtureParticipants(doc)[4]["kills"] = "twelve"

	_, err := Normalize(mustMarshal(t, doc))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedError for a mistyped field, got %v", err)
	}
}

func TestNormalize_NotJSON(t *testing.T) {
	_, err := Normalize([]byte("???"))
	var malformed *MalformedError
	if !errors.As(err, &malformed) {
		t.Fatalf("want MalformedError, got %v", err)
	}
	if !strings.Contains(malformed.Error(), "malformed telemetry") {
		t.Errorf("error text: %q", malformed.Error())
	}
}
