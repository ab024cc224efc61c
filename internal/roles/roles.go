// Package roles defines the closed set of 96 tactical role identifiers a
// player can be assigned to, and the canonical order that column 51..146 of
// a player table is indexed by (see internal/players).
package roles

import (
	"fmt"

	"github.com/fmtools/team-selector/internal/fmerr"
)

// ID is an opaque role identifier drawn from the closed set in All. Two IDs
// are equal iff their underlying strings are byte-for-byte identical; case
// and whitespace are significant.
type ID string

// All is the frozen, canonical ordering of the 96 valid roles. Column i of
// a player table's role-score block (see players.ParseTable) corresponds to
// All[i]. Never reorder this slice: it is part of the table's wire format.
var All = []ID{
	"W(s) R", "W(s) L", "W(a) R", "W(a) L", "IF(s)", "IF(a)", "AP(s)", "AP(a)", "WTM(s)", "WTM(a)",
	"TQ(a)", "RD(A)", "IW(s)", "IW(a)", "DW(d)", "DW(s)", "WM(d)", "WM(s)", "WM(a)", "WP(s)",
	"WP(a)", "MEZ(s)", "MEZ(a)", "BWM(d)", "BWM(s)", "BBM", "CAR", "CM(d)", "CM(s)", "CM(a)",
	"DLP(d)", "DLP(s)", "RPM", "HB", "DM(d)", "DM(s)", "A", "SV(s)", "SV(a)", "RGA", "CD(d)",
	"CD(s)", "CD(c)", "NCB(d)", "WCB(d)", "WCB(s)", "WCB(a)", "BPD(d)", "BPD(s)", "BPD(c)", "L(s)",
	"L(a)", "FB(d) R", "FB(s) R", "FB(a) R", "FB(d) L", "FB(s) L", "FB(a) L", "IFB(d) R",
	"IFB(d) L", "WB(d) R", "WB(s) R", "WB(a) R", "WB(d) L", "WB(s) L", "WB(a) L", "IWB(d) R",
	"IWB(s) R", "IWB(a) R", "IWB(d) L", "IWB(s) L", "IWB(a) L", "CWB(s) R", "CWB(a) R", "CWB(s) L",
	"CWB(a) L", "CWB(d) R", "CWB(d) L", "PF(d)", "PF(s)", "PF(a)", "TM(s)", "TM(a)", "AF", "P",
	"DLF(s)", "DLF(a)", "CF(s)", "CF(a)", "F9", "SS", "EG", "SK(d)", "SK(s)", "SK(a)", "GK",
}

var indexOf = func() map[ID]int {
	m := make(map[ID]int, len(All))
	for i, r := range All {
		m[r] = i
	}
	return m
}()

// Count is the size of the closed role set (96).
const Count = 96

// New validates name against the closed role set and returns the
// corresponding ID, or an error if name is not a recognized role.
func New(name string) (ID, error) {
	if _, ok := indexOf[ID(name)]; !ok {
		return "", fmerr.New(fmerr.UnknownRole, name)
	}
	return ID(name), nil
}

// Valid reports whether name is one of the 96 closed-set role strings.
func Valid(name string) bool {
	_, ok := indexOf[ID(name)]
	return ok
}

// Index returns the canonical column position of r within All, and false if
// r is not a member of the closed set.
func Index(r ID) (int, bool) {
	i, ok := indexOf[r]
	return i, ok
}

func init() {
	if len(All) != Count {
		panic(fmt.Sprintf("roles: All has %d entries, want %d", len(All), Count))
	}
	if len(indexOf) != Count {
		panic("roles: All contains duplicate role strings")
	}
}
