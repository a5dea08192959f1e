// Package aggregator derives the pick'em statistic battery from a set of
// resolved matches. Every reducer is a pure function over a read-only
// view of the match set; none depends on another's output.
package aggregator

import (
	"fmt"
	"strings"

	"github.com/LeagueOfCloud/pickem-stats/internal/model"
)

// LongGameSeconds is the duration threshold for the long-game count.
const LongGameSeconds = 2700 // 45 minutes

// Statistic keys, one per entry of the battery.
const (
	StatMostFirstBloods     = "most_first_bloods"
	StatHighestKDA          = "highest_kda"
	StatMostDeathsPlayer    = "most_deaths_player"
	StatWorstVisionScore    = "worst_vision_score"
	StatMostCSSingleGame    = "most_cs_single_game"
	StatMostKillsTeam       = "most_kills_team"
	StatMostObjectivesTeam  = "most_objectives_team"
	StatMostDeathsTeam      = "most_deaths_team"
	StatMostStructureDamage = "most_structure_damage_single_game"
	StatMostPings           = "most_pings_single_game"
	StatMostBannedChampion  = "most_banned_champion"
	StatMostDamageTaken     = "most_damage_taken_single_game"
	StatMostDamageDealt     = "most_damage_dealt_single_game"
	StatMostDeathsChampion  = "most_deaths_champion"
	StatLongGames           = "games_over_45_minutes"
	StatObjectiveSteals     = "total_objective_steals"
	StatPentakills          = "total_pentakills"
	StatShortestGame        = "shortest_game"
	StatBiggestGoldDiff     = "biggest_gold_difference"
)

// StatOrder fixes the presentation order of the battery.
var StatOrder = []string{
	StatMostFirstBloods,
	StatHighestKDA,
	StatMostDeathsPlayer,
	StatWorstVisionScore,
	StatMostCSSingleGame,
	StatMostKillsTeam,
	StatMostObjectivesTeam,
	StatMostDeathsTeam,
	StatMostStructureDamage,
	StatMostPings,
	StatMostBannedChampion,
	StatMostDamageTaken,
	StatMostDamageDealt,
	StatMostDeathsChampion,
	StatLongGames,
	StatObjectiveSteals,
	StatPentakills,
	StatShortestGame,
	StatBiggestGoldDiff,
}

// Result is one computed statistic. HasData is false when the match set
// could not support the statistic; an empty set never reports a numeric
// default as if it were a winner.
type Result struct {
	Key     string
	Summary string
	HasData bool
}

// Results maps statistic key to its computed result.
type Results map[string]Result

func (r Results) put(key, summary string) {
	r[key] = Result{Key: key, Summary: summary, HasData: true}
}

func (r Results) putNoData(key string) {
	r[key] = Result{Key: key, Summary: "no data", HasData: false}
}

// tally accumulates integer totals per key while remembering the order
// keys first appeared, so extreme lookups break ties on first encounter
// rather than map iteration order.
type tally[K comparable] struct {
	order []K
	vals  map[K]int
}

func newTally[K comparable]() *tally[K] {
	return &tally[K]{vals: make(map[K]int)}
}

func (t *tally[K]) add(k K, v int) {
	if _, ok := t.vals[k]; !ok {
		t.order = append(t.order, k)
	}
	t.vals[k] += v
}

func (t *tally[K]) max() (K, int, bool) {
	var bestKey K
	bestVal, found := 0, false
	for _, k := range t.order {
		if v := t.vals[k]; !found || v > bestVal {
			bestKey, bestVal, found = k, v, true
		}
	}
	return bestKey, bestVal, found
}

func (t *tally[K]) min() (K, int, bool) {
	var bestKey K
	bestVal, found := 0, false
	for _, k := range t.order {
		if v := t.vals[k]; !found || v < bestVal {
			bestKey, bestVal, found = k, v, true
		}
	}
	return bestKey, bestVal, found
}

// ---- Typed reducer results ----

// FirstBloods is the one multi-winner statistic: every identity sharing
// the maximum count is reported.
type FirstBloods struct {
	Identities []string
	Count      int
}

// KDALeader is the participant with the best tournament-wide KDA ratio.
type KDALeader struct {
	Identity string
	Kills    int
	Deaths   int
	Assists  int
	Ratio    float64
}

// PlayerValue pairs a participant identity with a statistic value.
type PlayerValue struct {
	Identity string
	Value    int
}

// TeamValue pairs a tournament team id with a statistic value.
type TeamValue struct {
	TeamID int
	Value  int
}

// ChampionValue pairs a champion id with a statistic value.
type ChampionValue struct {
	ChampionID int
	Value      int
}

// GameDuration reports a duration in raw seconds and whole minutes.
type GameDuration struct {
	Seconds int
	Minutes int
}

// ---- Player-scoped reducers ----

// MostFirstBloods counts first-blood kills per identity across the
// tournament. Ties share the win.
func MostFirstBloods(matches []model.Match) (FirstBloods, bool) {
	counts := newTally[string]()
	for _, m := range matches {
		for _, p := range m.Participants {
			if p.FirstBloodKill {
				counts.add(p.Identity, 1)
			}
		}
	}
	_, best, ok := counts.max()
	if !ok {
		return FirstBloods{}, false
	}
	var ids []string
	for _, id := range counts.order {
		if counts.vals[id] == best {
			ids = append(ids, id)
		}
	}
	return FirstBloods{Identities: ids, Count: best}, true
}

// HighestKDA sums kills, deaths, and assists per identity across the
// tournament and computes one ratio from the totals, with deaths clamped
// to at least 1 so a deathless run ranks above any equal-score run that
// died.
func HighestKDA(matches []model.Match) (KDALeader, bool) {
	type kda struct{ kills, deaths, assists int }
	var order []string
	totals := make(map[string]*kda)
	for _, m := range matches {
		for _, p := range m.Participants {
			t, ok := totals[p.Identity]
			if !ok {
				t = &kda{}
				totals[p.Identity] = t
				order = append(order, p.Identity)
			}
			t.kills += p.Kills
			t.deaths += p.Deaths
			t.assists += p.Assists
		}
	}

	var best KDALeader
	found := false
	for _, id := range order {
		t := totals[id]
		ratio := kdaRatio(t.kills, t.assists, t.deaths)
		if !found || ratio > best.Ratio {
			best = KDALeader{Identity: id, Kills: t.kills, Deaths: t.deaths, Assists: t.assists, Ratio: ratio}
			found = true
		}
	}
	return best, found
}

func kdaRatio(kills, assists, deaths int) float64 {
	if deaths < 1 {
		deaths = 1
	}
	return float64(kills+assists) / float64(deaths)
}

// MostDeathsPlayer sums deaths per identity across the tournament.
func MostDeathsPlayer(matches []model.Match) (PlayerValue, bool) {
	deaths := newTally[string]()
	for _, m := range matches {
		for _, p := range m.Participants {
			deaths.add(p.Identity, p.Deaths)
		}
	}
	id, v, ok := deaths.max()
	return PlayerValue{Identity: id, Value: v}, ok
}

// WorstVisionScore sums vision score per identity and reports the
// minimum.
func WorstVisionScore(matches []model.Match) (PlayerValue, bool) {
	vision := newTally[string]()
	for _, m := range matches {
		for _, p := range m.Participants {
			vision.add(p.Identity, p.VisionScore)
		}
	}
	id, v, ok := vision.min()
	return PlayerValue{Identity: id, Value: v}, ok
}

// MostCSSingleGame is the highest single-game creep score, not a
// tournament sum.
func MostCSSingleGame(matches []model.Match) (PlayerValue, bool) {
	var best PlayerValue
	found := false
	for _, m := range matches {
		for _, p := range m.Participants {
			if cs := p.CreepScore(); !found || cs > best.Value {
				best = PlayerValue{Identity: p.Identity, Value: cs}
				found = true
			}
		}
	}
	return best, found
}

// ---- Team-scoped reducers ----

// MostKillsTeam sums kills per tournament team.
func MostKillsTeam(matches []model.Match) (TeamValue, bool) {
	kills := newTally[int]()
	for _, m := range matches {
		for _, p := range m.Participants {
			kills.add(p.TeamID, p.Kills)
		}
	}
	id, v, ok := kills.max()
	return TeamValue{TeamID: id, Value: v}, ok
}

// MostObjectivesTeam sums dragon, baron, herald, inhibitor, and turret
// kills per tournament team.
func MostObjectivesTeam(matches []model.Match) (TeamValue, bool) {
	objectives := newTally[int]()
	for _, m := range matches {
		for _, p := range m.Participants {
			objectives.add(p.TeamID, p.ObjectiveKills())
		}
	}
	id, v, ok := objectives.max()
	return TeamValue{TeamID: id, Value: v}, ok
}

// MostDeathsTeam sums deaths per tournament team.
func MostDeathsTeam(matches []model.Match) (TeamValue, bool) {
	deaths := newTally[int]()
	for _, m := range matches {
		for _, p := range m.Participants {
			deaths.add(p.TeamID, p.Deaths)
		}
	}
	id, v, ok := deaths.max()
	return TeamValue{TeamID: id, Value: v}, ok
}

// MostStructureDamageSingleGame re-aggregates structure damage per team
// within each game and reports the highest team-game value.
func MostStructureDamageSingleGame(matches []model.Match) (TeamValue, bool) {
	return maxTeamGameValue(matches, func(p *model.Participant) int { return p.StructureDamage() })
}

// MostPingsSingleGame re-aggregates ping totals per team within each
// game and reports the highest team-game value.
func MostPingsSingleGame(matches []model.Match) (TeamValue, bool) {
	return maxTeamGameValue(matches, func(p *model.Participant) int { return p.Pings })
}

// maxTeamGameValue sums value per team within each game, then takes the
// maximum team-game sum across all games.
func maxTeamGameValue(matches []model.Match, value func(*model.Participant) int) (TeamValue, bool) {
	var best TeamValue
	found := false
	for _, m := range matches {
		perTeam := newTally[int]()
		for i := range m.Participants {
			perTeam.add(m.Participants[i].TeamID, value(&m.Participants[i]))
		}
		if teamID, v, ok := perTeam.max(); ok && (!found || v > best.Value) {
			best = TeamValue{TeamID: teamID, Value: v}
			found = true
		}
	}
	return best, found
}

// ---- Champion-scoped reducers ----

// MostBannedChampion counts each ban-list occurrence across all teams.
// Non-positive champion ids are placeholder "no ban" slots and are
// excluded.
func MostBannedChampion(matches []model.Match) (ChampionValue, bool) {
	bans := newTally[int]()
	for _, m := range matches {
		for _, team := range m.Teams {
			for _, ban := range team.Bans {
				if ban > 0 {
					bans.add(ban, 1)
				}
			}
		}
	}
	id, v, ok := bans.max()
	return ChampionValue{ChampionID: id, Value: v}, ok
}

// MostDamageTakenSingleGame is the highest single-game damage taken,
// credited to the champion played.
func MostDamageTakenSingleGame(matches []model.Match) (ChampionValue, bool) {
	return maxChampionGameValue(matches, func(p *model.Participant) int { return p.DamageTaken })
}

// MostDamageDealtSingleGame is the highest single-game damage dealt to
// champions, credited to the champion played.
func MostDamageDealtSingleGame(matches []model.Match) (ChampionValue, bool) {
	return maxChampionGameValue(matches, func(p *model.Participant) int { return p.DamageToChampions })
}

func maxChampionGameValue(matches []model.Match, value func(*model.Participant) int) (ChampionValue, bool) {
	var best ChampionValue
	found := false
	for _, m := range matches {
		for i := range m.Participants {
			if v := value(&m.Participants[i]); !found || v > best.Value {
				best = ChampionValue{ChampionID: m.Participants[i].ChampionID, Value: v}
				found = true
			}
		}
	}
	return best, found
}

// MostDeathsChampion sums deaths per champion across the tournament.
func MostDeathsChampion(matches []model.Match) (ChampionValue, bool) {
	deaths := newTally[int]()
	for _, m := range matches {
		for _, p := range m.Participants {
			deaths.add(p.ChampionID, p.Deaths)
		}
	}
	id, v, ok := deaths.max()
	return ChampionValue{ChampionID: id, Value: v}, ok
}

// ---- Whole-set reducers ----

// LongGames counts games lasting longer than LongGameSeconds.
func LongGames(matches []model.Match) (int, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	count := 0
	for _, m := range matches {
		if m.Duration > LongGameSeconds {
			count++
		}
	}
	return count, true
}

// TotalObjectiveSteals sums objective-steal counts over the whole set.
func TotalObjectiveSteals(matches []model.Match) (int, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	total := 0
	for _, m := range matches {
		for _, p := range m.Participants {
			total += p.ObjectivesStolen
		}
	}
	return total, true
}

// TotalPentakills sums pentakill counts over the whole set.
func TotalPentakills(matches []model.Match) (int, bool) {
	if len(matches) == 0 {
		return 0, false
	}
	total := 0
	for _, m := range matches {
		for _, p := range m.Participants {
			total += p.Pentakills
		}
	}
	return total, true
}

// ShortestGame is the minimum game duration, in raw seconds and
// truncated whole minutes.
func ShortestGame(matches []model.Match) (GameDuration, bool) {
	if len(matches) == 0 {
		return GameDuration{}, false
	}
	shortest := matches[0].Duration
	for _, m := range matches[1:] {
		if m.Duration < shortest {
			shortest = m.Duration
		}
	}
	return GameDuration{Seconds: shortest, Minutes: shortest / 60}, true
}

// BiggestGoldDifference is the maximum single-game gold-difference
// magnitude between the two teams.
func BiggestGoldDifference(matches []model.Match) (int, bool) {
	best, found := 0, false
	for _, m := range matches {
		gold := newTally[int]()
		for _, p := range m.Participants {
			gold.add(p.TeamID, p.GoldEarned)
		}
		if len(gold.order) < model.TeamsPerMatch {
			continue
		}
		diff := gold.vals[gold.order[0]] - gold.vals[gold.order[1]]
		if diff < 0 {
			diff = -diff
		}
		if !found || diff > best {
			best, found = diff, true
		}
	}
	return best, found
}

// Aggregate runs the whole battery and returns one result per statistic
// in StatOrder. Matches must be fully resolved; Aggregate never mutates
// them.
func Aggregate(matches []model.Match) Results {
	r := make(Results, len(StatOrder))

	if fb, ok := MostFirstBloods(matches); ok {
		r.put(StatMostFirstBloods, fmt.Sprintf("%s with %d first bloods", strings.Join(fb.Identities, ", "), fb.Count))
	} else {
		r.putNoData(StatMostFirstBloods)
	}

	if kda, ok := HighestKDA(matches); ok {
		r.put(StatHighestKDA, fmt.Sprintf("%s with KDA %.2f (%d/%d/%d)", kda.Identity, kda.Ratio, kda.Kills, kda.Deaths, kda.Assists))
	} else {
		r.putNoData(StatHighestKDA)
	}

	if pv, ok := MostDeathsPlayer(matches); ok {
		r.put(StatMostDeathsPlayer, fmt.Sprintf("%s with %d deaths", pv.Identity, pv.Value))
	} else {
		r.putNoData(StatMostDeathsPlayer)
	}

	if pv, ok := WorstVisionScore(matches); ok {
		r.put(StatWorstVisionScore, fmt.Sprintf("%s with %d vision score", pv.Identity, pv.Value))
	} else {
		r.putNoData(StatWorstVisionScore)
	}

	if pv, ok := MostCSSingleGame(matches); ok {
		r.put(StatMostCSSingleGame, fmt.Sprintf("%s with %d CS in a single game", pv.Identity, pv.Value))
	} else {
		r.putNoData(StatMostCSSingleGame)
	}

	if tv, ok := MostKillsTeam(matches); ok {
		r.put(StatMostKillsTeam, fmt.Sprintf("team %d with %d kills", tv.TeamID, tv.Value))
	} else {
		r.putNoData(StatMostKillsTeam)
	}

	if tv, ok := MostObjectivesTeam(matches); ok {
		r.put(StatMostObjectivesTeam, fmt.Sprintf("team %d with %d objectives", tv.TeamID, tv.Value))
	} else {
		r.putNoData(StatMostObjectivesTeam)
	}

	if tv, ok := MostDeathsTeam(matches); ok {
		r.put(StatMostDeathsTeam, fmt.Sprintf("team %d with %d deaths", tv.TeamID, tv.Value))
	} else {
		r.putNoData(StatMostDeathsTeam)
	}

	if tv, ok := MostStructureDamageSingleGame(matches); ok {
		r.put(StatMostStructureDamage, fmt.Sprintf("team %d with %d structure damage in a single game", tv.TeamID, tv.Value))
	} else {
		r.putNoData(StatMostStructureDamage)
	}

	if tv, ok := MostPingsSingleGame(matches); ok {
		r.put(StatMostPings, fmt.Sprintf("team %d with %d pings in a single game", tv.TeamID, tv.Value))
	} else {
		r.putNoData(StatMostPings)
	}

	if cv, ok := MostBannedChampion(matches); ok {
		r.put(StatMostBannedChampion, fmt.Sprintf("champion %d with %d bans", cv.ChampionID, cv.Value))
	} else {
		r.putNoData(StatMostBannedChampion)
	}

	if cv, ok := MostDamageTakenSingleGame(matches); ok {
		r.put(StatMostDamageTaken, fmt.Sprintf("champion %d tanked %d damage in a single game", cv.ChampionID, cv.Value))
	} else {
		r.putNoData(StatMostDamageTaken)
	}

	if cv, ok := MostDamageDealtSingleGame(matches); ok {
		r.put(StatMostDamageDealt, fmt.Sprintf("champion %d dealt %d damage in a single game", cv.ChampionID, cv.Value))
	} else {
		r.putNoData(StatMostDamageDealt)
	}

	if cv, ok := MostDeathsChampion(matches); ok {
		r.put(StatMostDeathsChampion, fmt.Sprintf("champion %d with %d deaths overall", cv.ChampionID, cv.Value))
	} else {
		r.putNoData(StatMostDeathsChampion)
	}

	if count, ok := LongGames(matches); ok {
		r.put(StatLongGames, fmt.Sprintf("%d games longer than 45 minutes", count))
	} else {
		r.putNoData(StatLongGames)
	}

	if total, ok := TotalObjectiveSteals(matches); ok {
		r.put(StatObjectiveSteals, fmt.Sprintf("%d objective steals overall", total))
	} else {
		r.putNoData(StatObjectiveSteals)
	}

	if total, ok := TotalPentakills(matches); ok {
		r.put(StatPentakills, fmt.Sprintf("%d pentakills overall", total))
	} else {
		r.putNoData(StatPentakills)
	}

	if d, ok := ShortestGame(matches); ok {
		r.put(StatShortestGame, fmt.Sprintf("shortest game: %d minutes (%d seconds)", d.Minutes, d.Seconds))
	} else {
		r.putNoData(StatShortestGame)
	}

	if diff, ok := BiggestGoldDifference(matches); ok {
		r.put(StatBiggestGoldDiff, fmt.Sprintf("biggest gold difference: %d gold", diff))
	} else {
		r.putNoData(StatBiggestGoldDiff)
	}

	return r
}
