// Package categories defines the 9 positional categories used to express
// per-player role filters, and the static many-to-many mapping between
// categories and the 96 roles in internal/roles.
package categories

import (
	"strings"

	"github.com/fmtools/team-selector/internal/fmerr"
)

// ID is one of the 9 closed-set category identifiers. The canonical form is
// always lowercase.
type ID string

const (
	Goal                ID = "goal"
	CentralDefender     ID = "cd"
	WingBack            ID = "wb"
	DefensiveMidfielder ID = "dm"
	CentralMidfielder   ID = "cm"
	Winger              ID = "wing"
	AttackingMidfielder ID = "am"
	Playmaker           ID = "pm"
	Striker             ID = "str"
)

// All is the fixed, ordered list of the 9 categories.
var All = []ID{
	Goal, CentralDefender, WingBack, DefensiveMidfielder, CentralMidfielder,
	Winger, AttackingMidfielder, Playmaker, Striker,
}

var byName = func() map[string]ID {
	m := make(map[string]ID, len(All))
	for _, c := range All {
		m[string(c)] = c
	}
	return m
}()

// Parse matches s case-insensitively against the 9 category names and
// returns its canonical (lowercase) ID.
func Parse(s string) (ID, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := byName[key]; ok {
		return c, nil
	}
	return "", fmerr.New(fmerr.UnknownCategory, s)
}

// Valid reports whether s names one of the 9 categories, case-insensitively.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}
