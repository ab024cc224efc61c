// Package players holds the player-record shape and the
// player-table parser that turns a rectangular string table into validated
// records.
package players

import (
	"fmt"
	"strings"

	"github.com/fmtools/team-selector/internal/roles"
)

// Attributes is the fixed, ordered list of the 47 player abilities
// preserved (but never scored directly) by this module.
var Attributes = []string{
	"Cor", "Cro", "Dri", "Fin", "Fir", "Fre", "Hea", "Lon", "L Th", "Mar", "Pas", "Pen", "Tck",
	"Tec", "Agg", "Ant", "Bra", "Cmp", "Cnt", "Dec", "Det", "Fla", "Ldr", "OtB", "Pos", "Tea",
	"Vis", "Wor", "Acc", "Agi", "Bal", "Jum", "Nat", "Pac", "Sta", "Str", "Aer", "Cmd", "Com",
	"Ecc", "Han", "Kic", "1v1", "Pun", "Ref", "Rus", "Thr",
}

// AttributeCount is the size of the fixed ability list (47).
const AttributeCount = 47

// Foot is a player's preferred footedness.
type Foot int

const (
	Either Foot = iota
	Left
	Right
)

func (f Foot) String() string {
	switch f {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Either"
	}
}

// parseFoot normalizes a raw table cell into a Foot. Any
// value outside {Left, Right, Either, L, R, RL} (the superset the reference
// tool's own tests accept) falls back to Either; the caller is told via the
// returned bool so it can record a non-fatal warning.
func parseFoot(raw string) (f Foot, recognized bool) {
	switch strings.TrimSpace(raw) {
	case "Left", "L":
		return Left, true
	case "Right", "R":
		return Right, true
	case "Either", "RL":
		return Either, true
	default:
		return Either, false
	}
}

// Record is a single player's full data: identity, footedness, the 47
// preserved abilities, an opaque DNA rating, and a dense role-score map
// covering every role in the closed set.
type Record struct {
	Name       string
	Age        int
	Foot       Foot
	Abilities  [AttributeCount]*float64 // nil means "missing", not zero
	DNA        *float64
	RoleScores map[roles.ID]float64 // dense: every roles.All entry is present
}

// RoleScore returns the player's rating for role, defaulting to 0.0 for any
// role missing from RoleScores (there should be none, since ParseTable
// always fills the dense map, but callers constructing Record by hand may
// omit entries).
func (r *Record) RoleScore(role roles.ID) float64 {
	return r.RoleScores[role]
}

// Warning is a non-fatal observation surfaced during table parsing — e.g. an
// unrecognized foot value that fell back to Either. Warnings never abort
// parsing.
type Warning struct {
	Row     int
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("row %d: %s", w.Row, w.Message)
}
