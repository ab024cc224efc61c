package categories

import "github.com/fmtools/team-selector/internal/roles"

// roster is the static many-to-many relation between categories and roles.
// It is the ground truth for the domain: every role.All entry appears in at
// least one list here, and every entry here is a member of roles.All. See
// DESIGN.md for the one role adjustment made against the reference
// implementation's own category table.
var roster = map[ID][]roles.ID{
	Goal: {"GK", "SK(d)", "SK(s)", "SK(a)"},
	CentralDefender: {
		"CD(d)", "CD(s)", "CD(c)", "BPD(d)", "BPD(s)", "BPD(c)", "NCB(d)", "WCB(d)", "WCB(s)",
		"WCB(a)", "L(s)", "L(a)",
	},
	WingBack: {
		"FB(d) R", "FB(s) R", "FB(a) R", "FB(d) L", "FB(s) L", "FB(a) L", "WB(d) R", "WB(s) R",
		"WB(a) R", "WB(d) L", "WB(s) L", "WB(a) L", "IFB(d) R", "IFB(d) L", "IWB(d) R",
		"IWB(s) R", "IWB(a) R", "IWB(d) L", "IWB(s) L", "IWB(a) L", "CWB(s) R", "CWB(a) R",
		"CWB(s) L", "CWB(a) L", "CWB(d) R", "CWB(d) L",
	},
	DefensiveMidfielder: {
		"DM(d)", "DM(s)", "HB", "BWM(d)", "BWM(s)", "A", "CM(d)", "DLP(d)", "BBM", "SV(s)",
		"SV(a)",
	},
	CentralMidfielder: {
		"CM(d)", "CM(s)", "CM(a)", "DLP(d)", "DLP(s)", "RPM", "BBM", "CAR", "MEZ(s)", "MEZ(a)",
	},
	Winger: {
		"WM(d)", "WM(s)", "WM(a)", "WP(s)", "WP(a)", "W(s) R", "W(s) L", "W(a) R", "W(a) L",
		"IF(s)", "IF(a)", "IW(s)", "IW(a)", "WTM(s)", "WTM(a)", "TQ(a)", "RD(A)", "DW(d)",
		"DW(s)",
	},
	AttackingMidfielder: {
		"SS", "EG", "AP(s)", "AP(a)", "CM(a)", "MEZ(a)", "IW(a)", "IW(s)",
	},
	Playmaker: {
		"DLP(d)", "DLP(s)", "AP(s)", "AP(a)", "WP(s)", "WP(a)", "RGA", "RPM",
	},
	Striker: {
		"AF", "P", "DLF(s)", "DLF(a)", "CF(s)", "CF(a)", "F9", "TM(s)", "TM(a)", "PF(d)",
		"PF(s)", "PF(a)", "IF(a)", "IF(s)",
	},
}

// Map is a read-only, immutable view over the category/role relation. The
// zero value is not usable; construct one with NewMap.
type Map struct {
	categoryToRoles map[ID][]roles.ID
	roleToCategory  map[roles.ID]map[ID]bool
}

// Default is the single static CategoryMap for the domain's closed role and
// category sets. It is safe for concurrent use by any number of invocations.
var Default = NewMap()

// NewMap builds a Map from the fixed category/role roster. It is exposed
// mainly for tests that want to exercise construction directly; production
// code should use Default.
func NewMap() *Map {
	m := &Map{
		categoryToRoles: make(map[ID][]roles.ID, len(roster)),
		roleToCategory:  make(map[roles.ID]map[ID]bool, roles.Count),
	}
	for cat, rs := range roster {
		cp := make([]roles.ID, len(rs))
		copy(cp, rs)
		m.categoryToRoles[cat] = cp
		for _, r := range rs {
			if m.roleToCategory[r] == nil {
				m.roleToCategory[r] = make(map[ID]bool, 3)
			}
			m.roleToCategory[r][cat] = true
		}
	}
	return m
}

// RolesFor returns every role belonging to category, in roster order.
func (m *Map) RolesFor(category ID) []roles.ID {
	return m.categoryToRoles[category]
}

// CategoriesFor returns every category role belongs to. For any role in the
// closed set this is guaranteed non-empty.
func (m *Map) CategoriesFor(role roles.ID) []ID {
	set := m.roleToCategory[role]
	out := make([]ID, 0, len(set))
	for _, c := range All {
		if set[c] {
			out = append(out, c)
		}
	}
	return out
}

// IsIn reports whether role belongs to category.
func (m *Map) IsIn(role roles.ID, category ID) bool {
	return m.roleToCategory[role][category]
}

func init() {
	for _, r := range roles.All {
		if len(Default.CategoriesFor(r)) == 0 {
			panic("categories: role " + string(r) + " belongs to no category")
		}
	}
	for cat, rs := range roster {
		for _, r := range rs {
			if !roles.Valid(string(r)) {
				panic("categories: category " + string(cat) + " lists unknown role " + string(r))
			}
		}
	}
}
