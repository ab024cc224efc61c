// Package rolefile implements the role-file grammar: an
// 11-role selection plus optional per-player category filters, expressed in
// either a legacy bare-list format or a sectioned [roles]/[filters] format.
package rolefile

import "github.com/fmtools/team-selector/internal/categories"

// RequiredRoleCount is the exact number of roles a role file must name: one
// per starting-XI slot.
const RequiredRoleCount = 11

// PlayerFilter restricts a named player to a subset of categories: the
// assignment engine (C6) will only place that player into a role belonging
// to one of these categories, regardless of their raw role scores.
type PlayerFilter struct {
	Player     string
	Categories []categories.ID
}

// RoleFile is the parsed result of a role-file document: the 11 roles to
// fill, in file order, plus zero or more player filters, also in file
// order. Roles may repeat (e.g. two CD(d) slots); filters' player names are
// unique within a single RoleFile.
type RoleFile struct {
	Roles   []string
	Filters []PlayerFilter
}
