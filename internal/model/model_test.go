package model

import (
	"fmt"
	"testing"
)

func TestSide_IsAViewIntoTheMatch(t *testing.T) {
	m := &Match{}
	for i := 0; i < ParticipantsPerMatch; i++ {
		m.Participants = append(m.Participants, Participant{Identity: fmt.Sprintf("p%d", i)})
	}

	a, b := m.Side(0), m.Side(1)
	if len(a) != TeamSize || len(b) != TeamSize {
		t.Fatalf("side sizes: %d/%d", len(a), len(b))
	}
	if a[0].Identity != "p0" || b[0].Identity != "p5" {
		t.Errorf("side anchors: %s/%s", a[0].Identity, b[0].Identity)
	}

	// Writes through a side slice must land on the match.
	for i := range b {
		b[i].TeamID = 42
	}
	if m.Participants[9].TeamID != 42 {
		t.Error("Side must alias the match participants, not copy them")
	}
}

func TestParticipantDerivedValues(t *testing.T) {
	p := Participant{
		MinionsKilled:        150,
		NeutralMinionsKilled: 30,
		DamageToBuildings:    4000,
		DamageToTurrets:      1000,
		DragonKills:          2,
		BaronKills:           1,
		HeraldKills:          1,
		InhibitorKills:       1,
		TurretKills:          3,
	}
	if got := p.CreepScore(); got != 180 {
		t.Errorf("CreepScore: want 180, got %d", got)
	}
	if got := p.StructureDamage(); got != 5000 {
		t.Errorf("StructureDamage: want 5000, got %d", got)
	}
	if got := p.ObjectiveKills(); got != 8 {
		t.Errorf("ObjectiveKills: want 8, got %d", got)
	}
}
