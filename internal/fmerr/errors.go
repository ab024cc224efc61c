// Package fmerr is the cross-cutting error taxonomy
// shared by every other internal package. It models each fatal condition as
// a Kind plus a locator rather than a free-form message, so callers can
// branch on errors.As/errors.Is instead of matching strings.
package fmerr

import "fmt"

// Kind identifies the category of a fatal Error. Each Kind's doc comment
// names the package(s) that produce it.
type Kind int

const (
	// UnknownRole is raised by the roles and rolefile packages when a
	// string does not name one of the 96 closed-set roles.
	UnknownRole Kind = iota
	// UnknownCategory is raised by categories.Parse, and by rolefile when a
	// filter category token does not name one of the 9 closed-set
	// categories.
	UnknownCategory
	// RoleCount is raised by rolefile when a [roles] section (or a
	// legacy-format file) does not contain exactly 11 entries.
	RoleCount
	// DuplicateFilter is raised by rolefile when the same player name
	// appears twice in [filters].
	DuplicateFilter
	// Malformed is raised by rolefile when a line cannot be parsed within
	// its section.
	Malformed
	// UnrecognizedSection is raised by rolefile for a [x] header that is
	// neither [roles] nor [filters].
	UnrecognizedSection
	// DuplicatePlayer is raised by players when two table rows share a
	// name.
	DuplicatePlayer
	// MalformedScore is raised by players when a role-score cell is
	// non-empty and not a valid number.
	MalformedScore
	// InsufficientPlayers is raised by assignment when fewer than 11
	// players are available before greedy selection starts.
	InsufficientPlayers
	// SlotUnfillable is raised by assignment when a slot has zero
	// eligible, unassigned players remaining.
	SlotUnfillable
)

func (k Kind) String() string {
	switch k {
	case UnknownRole:
		return "UnknownRole"
	case UnknownCategory:
		return "UnknownCategory"
	case RoleCount:
		return "RoleCount"
	case DuplicateFilter:
		return "DuplicateFilter"
	case Malformed:
		return "Malformed"
	case UnrecognizedSection:
		return "UnrecognizedSection"
	case DuplicatePlayer:
		return "DuplicatePlayer"
	case MalformedScore:
		return "MalformedScore"
	case InsufficientPlayers:
		return "InsufficientPlayers"
	case SlotUnfillable:
		return "SlotUnfillable"
	default:
		return "Unknown"
	}
}

// Error is the single structured error type returned by every fallible
// operation in this module. It never carries a stack trace; it carries
// enough context (kind, offending value, and a locator where one applies)
// for a caller to render a precise, testable message.
type Error struct {
	Kind   Kind
	Value  string // the offending role, category token, or player name
	Player string // the player a filter error relates to, when distinct from Value
	Line   int    // 1-based line number within a role file; 0 if not applicable
	Row    int    // 1-based row number within a player table; 0 if not applicable
	Col    int    // 0-based column index within a player table; only meaningful when Row is set
}

func (e *Error) Error() string {
	loc := ""
	switch {
	case e.Line > 0:
		loc = fmt.Sprintf(" (line %d)", e.Line)
	case e.Row > 0 && e.Col >= 0:
		loc = fmt.Sprintf(" (row %d, col %d)", e.Row, e.Col)
	case e.Row > 0:
		loc = fmt.Sprintf(" (row %d)", e.Row)
	}
	if e.Player != "" {
		return fmt.Sprintf("%s: player %q, %q%s", e.Kind, e.Player, e.Value, loc)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: %q%s", e.Kind, e.Value, loc)
	}
	return fmt.Sprintf("%s%s", e.Kind, loc)
}

// Is supports errors.Is by comparing Kind alone, so callers can write
// errors.Is(err, &fmerr.Error{Kind: fmerr.SlotUnfillable}) style checks.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind
}

// New builds an Error of the given kind with an offending value and no
// locator. Components that have a line/row/col to report use AtLine,
// AtCell or AtLineForPlayer instead.
func New(kind Kind, value string) *Error {
	return &Error{Kind: kind, Value: value}
}

// AtLine builds an Error of the given kind located at a 1-based role-file
// line number.
func AtLine(kind Kind, value string, line int) *Error {
	return &Error{Kind: kind, Value: value, Line: line}
}

// AtCell builds a MalformedScore-style Error located at a 1-based table row
// and 0-based column.
func AtCell(kind Kind, row, col int) *Error {
	return &Error{Kind: kind, Row: row, Col: col}
}

// AtLineForPlayer builds an Error (UnknownCategory, DuplicateFilter) that
// relates to a specific player's filter line.
func AtLineForPlayer(kind Kind, player, value string, line int) *Error {
	return &Error{Kind: kind, Player: player, Value: value, Line: line}
}
