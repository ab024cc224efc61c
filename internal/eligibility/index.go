// Package eligibility builds the dense player/role eligibility matrix (spec
// component C5): which of the 96 roles a given player is permitted to fill
// once role-file filters are taken into account.
package eligibility

import (
	"github.com/fmtools/team-selector/internal/categories"
	"github.com/fmtools/team-selector/internal/players"
	"github.com/fmtools/team-selector/internal/roles"
	"github.com/fmtools/team-selector/internal/rolefile"
)

// Index answers is-eligible / has-any-eligible-role queries in O(1) after a
// single O(P·R) build pass. The zero value is not usable; construct one
// with Build.
type Index struct {
	byPlayer map[string]map[roles.ID]bool
	anyRole  map[string]bool
	filtered map[string]bool
}

// Build computes eligibility for every player against every role: a player
// with no filter is eligible for all 96 roles; a filtered player is
// eligible only for roles that belong to at least one of their allowed
// categories.
func Build(recs []players.Record, rf *rolefile.RoleFile, catMap *categories.Map) *Index {
	filters := make(map[string][]categories.ID, len(rf.Filters))
	for _, f := range rf.Filters {
		filters[f.Player] = f.Categories
	}

	idx := &Index{
		byPlayer: make(map[string]map[roles.ID]bool, len(recs)),
		anyRole:  make(map[string]bool, len(recs)),
		filtered: make(map[string]bool, len(recs)),
	}

	for _, p := range recs {
		allowed, hasFilter := filters[p.Name]
		row := make(map[roles.ID]bool, roles.Count)
		any := false
		for _, r := range roles.All {
			eligible := !hasFilter || inAnyCategory(catMap, r, allowed)
			row[r] = eligible
			any = any || eligible
		}
		idx.byPlayer[p.Name] = row
		idx.anyRole[p.Name] = any
		idx.filtered[p.Name] = hasFilter
	}

	return idx
}

func inAnyCategory(catMap *categories.Map, role roles.ID, allowed []categories.ID) bool {
	for _, c := range allowed {
		if catMap.IsIn(role, c) {
			return true
		}
	}
	return false
}

// IsEligible reports whether player may be assigned to role.
func (idx *Index) IsEligible(player string, role roles.ID) bool {
	return idx.byPlayer[player][role]
}

// HasAnyEligibleRole reports whether player is eligible for at least one of
// the 96 roles.
func (idx *Index) HasAnyEligibleRole(player string) bool {
	return idx.anyRole[player]
}

// HasFilter reports whether player was named in the role file's filter
// section, regardless of how many roles that filter leaves them eligible
// for.
func (idx *Index) HasFilter(player string) bool {
	return idx.filtered[player]
}
