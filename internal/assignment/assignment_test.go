package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtools/team-selector/internal/categories"
	"github.com/fmtools/team-selector/internal/eligibility"
	"github.com/fmtools/team-selector/internal/fmerr"
	"github.com/fmtools/team-selector/internal/players"
	"github.com/fmtools/team-selector/internal/roles"
	"github.com/fmtools/team-selector/internal/rolefile"
)

var scenarioARoles = []string{
	"GK", "CD(d)", "CD(s)", "FB(d) R", "FB(d) L", "CM(d)", "CM(s)", "CM(a)", "W(s) R", "W(s) L", "CF(s)",
}

func recordWithScore(name string, role roles.ID, score float64) players.Record {
	scores := make(map[roles.ID]float64, roles.Count)
	for _, r := range roles.All {
		scores[r] = 0.0
	}
	scores[role] = score
	return players.Record{Name: name, RoleScores: scores}
}

// TestFindTeam_ScenarioA covers a clean bijection: 11 players, each
// scoring 10.0 on exactly one of the 11 declared roles and 0.0
// everywhere else, with no filters.
func TestFindTeam_ScenarioA(t *testing.T) {
	recs := make([]players.Record, len(scenarioARoles))
	for i, r := range scenarioARoles {
		recs[i] = recordWithScore(playerName(i), roles.ID(r), 10.0)
	}

	rf := &rolefile.RoleFile{Roles: scenarioARoles}
	idx := eligibility.Build(recs, rf, categories.Default)

	team, err := FindTeam(rf.Roles, recs, idx)
	require.NoError(t, err)

	require.Len(t, team.Assignments, 11)
	assert.Equal(t, 110.0, team.TotalScore)
	assert.Empty(t, team.Unassigned)
	for i, a := range team.Assignments {
		assert.Equal(t, playerName(i), a.Player)
		assert.Equal(t, 10.0, a.Score)
	}
}

func playerName(i int) string {
	return []string{
		"GoalieOne", "DefOne", "DefTwo", "FBOne", "FBTwo", "MidOne", "MidTwo", "MidThree", "WingOne", "WingTwo", "StrikerOne",
	}[i]
}

// TestFindTeam_ScenarioB covers a filter blocking the optimal pick: a
// higher-scoring GK candidate is filtered out of the goal category and
// ends up unassigned with a warning, while the next-best unfiltered
// candidate fills the slot.
func TestFindTeam_ScenarioB(t *testing.T) {
	recs := []players.Record{
		recordWithScore("Alisson", "GK", 19.0),
		recordWithScore("Neuer", "GK", 15.0),
	}
	for i, r := range scenarioARoles[1:] {
		recs = append(recs, recordWithScore(playerName(i+1), roles.ID(r), 10.0))
	}

	rf := &rolefile.RoleFile{
		Roles:   scenarioARoles,
		Filters: []rolefile.PlayerFilter{{Player: "Alisson", Categories: []categories.ID{categories.WingBack}}},
	}
	idx := eligibility.Build(recs, rf, categories.Default)

	team, err := FindTeam(rf.Roles, recs, idx)
	require.NoError(t, err)

	var gk *Assignment
	for i := range team.Assignments {
		if team.Assignments[i].Role == "GK" {
			gk = &team.Assignments[i]
		}
	}
	require.NotNil(t, gk)
	assert.Equal(t, "Neuer", gk.Player)
	assert.Equal(t, 15.0, gk.Score)
	assert.Contains(t, team.Unassigned, "Alisson")
}

func TestFindTeam_InsufficientPlayers(t *testing.T) {
	recs := []players.Record{recordWithScore("Solo", "GK", 10.0)}
	rf := &rolefile.RoleFile{Roles: scenarioARoles}
	idx := eligibility.Build(recs, rf, categories.Default)

	_, err := FindTeam(rf.Roles, recs, idx)
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.InsufficientPlayers, fe.Kind)
}

func TestFindTeam_SlotUnfillable(t *testing.T) {
	recs := make([]players.Record, 11)
	for i := range recs {
		recs[i] = recordWithScore(playerName(i), "CF(s)", 5.0)
	}
	// Every player filtered to a category that cannot cover GK.
	filters := make([]rolefile.PlayerFilter, len(recs))
	for i, p := range recs {
		filters[i] = rolefile.PlayerFilter{Player: p.Name, Categories: []categories.ID{categories.Striker}}
	}
	rf := &rolefile.RoleFile{Roles: scenarioARoles, Filters: filters}
	idx := eligibility.Build(recs, rf, categories.Default)

	_, err := FindTeam(rf.Roles, recs, idx)
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.SlotUnfillable, fe.Kind)
	assert.Equal(t, "GK", fe.Value)
}

// TestFindTeam_DuplicateSlotsFillInOrder exercises the "two GK slots" rule:
// the first GK slot takes the top scorer, the second takes the
// next-best among those remaining.
func TestFindTeam_DuplicateSlotsFillInOrder(t *testing.T) {
	recs := []players.Record{
		recordWithScore("Best", "GK", 18.0),
		recordWithScore("Second", "GK", 14.0),
		recordWithScore("Third", "GK", 9.0),
	}
	for i := 3; i < 11; i++ {
		recs = append(recs, recordWithScore(playerName(i%11), "CM(d)", 1.0))
	}
	roleSlots := []string{"GK", "GK"}
	rf := &rolefile.RoleFile{Roles: roleSlots}
	idx := eligibility.Build(recs, rf, categories.Default)

	team, err := FindTeam(roleSlots, recs, idx)
	require.NoError(t, err)
	require.Len(t, team.Assignments, 2)
	assert.Equal(t, "Best", team.Assignments[0].Player)
	assert.Equal(t, "Second", team.Assignments[1].Player)
}

func TestFindTeam_TieBreaksOnLowerInputIndex(t *testing.T) {
	recs := []players.Record{
		recordWithScore("First", "GK", 10.0),
		recordWithScore("Second", "GK", 10.0),
	}
	for i := 2; i < 11; i++ {
		recs = append(recs, recordWithScore(playerName(i%11), "CM(d)", 1.0))
	}
	roleSlots := []string{"GK"}
	rf := &rolefile.RoleFile{Roles: roleSlots}
	idx := eligibility.Build(recs, rf, categories.Default)

	team, err := FindTeam(roleSlots, recs, idx)
	require.NoError(t, err)
	assert.Equal(t, "First", team.Assignments[0].Player)
}
