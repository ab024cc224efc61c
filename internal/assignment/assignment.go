// Package assignment implements the deterministic greedy team-selection
// algorithm: given 11 role slots, a player pool, and an
// eligibility index, it fills each slot with the highest-scoring eligible
// player still available, breaking ties by input order.
package assignment

import (
	"strconv"

	"github.com/fmtools/team-selector/internal/eligibility"
	"github.com/fmtools/team-selector/internal/fmerr"
	"github.com/fmtools/team-selector/internal/players"
	"github.com/fmtools/team-selector/internal/roles"
)

// MinimumPlayers is the smallest pool size greedy selection can ever
// succeed against, since a Team always fills exactly 11 slots with
// distinct players.
const MinimumPlayers = 11

// Assignment pairs one role-file slot with the player chosen to fill it.
type Assignment struct {
	Role   roles.ID
	Player string
	Score  float64
}

// Team is the final output of the assignment engine: 11 assignments, in
// slot-declaration order, plus the players left over who warrant a
// warning.
type Team struct {
	Assignments []Assignment
	TotalScore  float64
	Unassigned  []string
}

// FindTeam runs the greedy slot-filling procedure: for each slot, pick the
// highest-scoring eligible available player, breaking ties by input order.
// roleSlots is the role-file's declared role list (duplicates and
// order preserved); recs is the player pool in input order.
func FindTeam(roleSlots []string, recs []players.Record, idx *eligibility.Index) (*Team, error) {
	if len(recs) < MinimumPlayers {
		return nil, fmerr.New(fmerr.InsufficientPlayers, strconv.Itoa(len(recs)))
	}

	available := make([]bool, len(recs))
	for i := range available {
		available[i] = true
	}

	assignments := make([]Assignment, 0, len(roleSlots))
	var total float64

	for _, roleText := range roleSlots {
		role := roles.ID(roleText)

		best := -1
		var bestScore float64
		for i, p := range recs {
			if !available[i] || !idx.IsEligible(p.Name, role) {
				continue
			}
			score := p.RoleScore(role)
			if best == -1 || score > bestScore {
				best = i
				bestScore = score
			}
		}

		if best == -1 {
			return nil, fmerr.New(fmerr.SlotUnfillable, roleText)
		}

		assignments = append(assignments, Assignment{
			Role:   role,
			Player: recs[best].Name,
			Score:  bestScore,
		})
		total += bestScore
		available[best] = false
	}

	var unassigned []string
	for i, p := range recs {
		if !available[i] {
			continue
		}
		if idx.HasFilter(p.Name) || !idx.HasAnyEligibleRole(p.Name) {
			unassigned = append(unassigned, p.Name)
		}
	}

	return &Team{Assignments: assignments, TotalScore: total, Unassigned: unassigned}, nil
}
