// Package teamselect wires the lower-level components (role-file grammar,
// player-table parsing, eligibility, greedy assignment, and reporting) into
// the single entry point a driver calls.
package teamselect

import (
	"github.com/fmtools/team-selector/internal/assignment"
	"github.com/fmtools/team-selector/internal/categories"
	"github.com/fmtools/team-selector/internal/eligibility"
	"github.com/fmtools/team-selector/internal/players"
	"github.com/fmtools/team-selector/internal/report"
	"github.com/fmtools/team-selector/internal/rolefile"
)

// Result bundles everything a caller needs after a successful run: the
// assembled team, the rendered report text, and any non-fatal warnings
// raised while parsing the player table.
type Result struct {
	Team    *assignment.Team
	Report  string
	Parsing []players.Warning
}

// Run parses roleFileData and table, builds the eligibility index against
// the fixed category map, and runs greedy assignment over the result. It
// returns the first fatal error encountered from any stage; all stages run
// synchronously and borrow their inputs immutably.
func Run(roleFileData []byte, table [][]string) (*Result, error) {
	rf, err := rolefile.Parse(roleFileData)
	if err != nil {
		return nil, err
	}

	recs, warnings, err := players.ParseTable(table)
	if err != nil {
		return nil, err
	}

	idx := eligibility.Build(recs, rf, categories.Default)

	team, err := assignment.FindTeam(rf.Roles, recs, idx)
	if err != nil {
		return nil, err
	}

	return &Result{
		Team:    team,
		Report:  report.Format(team),
		Parsing: warnings,
	}, nil
}
