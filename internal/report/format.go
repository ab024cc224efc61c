// Package report renders a Team into the fixed textual report format (spec
// component C7).
package report

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fmtools/team-selector/internal/assignment"
)

// Format renders team as one line per assignment, sorted lexicographically
// by role text (not slot-declaration order), followed by a total-score
// line and, if any players were left out by a filter, a warning block
// listing them in their original input order.
func Format(team *assignment.Team) string {
	rows := make([]assignment.Assignment, len(team.Assignments))
	copy(rows, team.Assignments)
	sort.SliceStable(rows, func(i, j int) bool {
		return string(rows[i].Role) < string(rows[j].Role)
	})

	var b strings.Builder
	for _, a := range rows {
		fmt.Fprintf(&b, "%s -> %s (score: %s)\n", a.Role, a.Player, formatScore(a.Score))
	}
	fmt.Fprintf(&b, "Total Score: %s\n", formatScore(team.TotalScore))

	if len(team.Unassigned) > 0 {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Warning: %d player(s) could not be assigned due to filter restrictions\n", len(team.Unassigned))
		for _, name := range team.Unassigned {
			fmt.Fprintf(&b, "- %s\n", name)
		}
	}

	return b.String()
}

// formatScore renders v to one decimal place, half-to-even, with negative
// zero normalized to "0.0".
func formatScore(v float64) string {
	rounded := roundHalfToEven(v, 1)
	if rounded == 0 {
		rounded = 0 // collapses -0.0 to +0.0
	}
	return fmt.Sprintf("%.1f", rounded)
}

// roundHalfToEven rounds v to the given number of decimal places using
// banker's rounding, matching the reference tool's numeric formatting
// contract rather than Go's default round-half-away-from-zero.
func roundHalfToEven(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	scaled := v * scale
	floor := math.Floor(scaled)
	diff := scaled - floor
	switch {
	case diff < 0.5:
		return floor / scale
	case diff > 0.5:
		return (floor + 1) / scale
	default:
		if math.Mod(floor, 2) == 0 {
			return floor / scale
		}
		return (floor + 1) / scale
	}
}
