package players

import (
	"strconv"
	"strings"

	"github.com/fmtools/team-selector/internal/fmerr"
	"github.com/fmtools/team-selector/internal/roles"
)

// Column layout of the rectangular table this parser consumes, frozen as
// part of the public contract.
const (
	colName          = 0
	colAge           = 1
	colFoot          = 2
	abilitiesStart   = 3
	dnaCol           = abilitiesStart + AttributeCount // 50
	roleScoresStart  = dnaCol + 1                       // 51
	totalColumnCount = roleScoresStart + roles.Count    // 147
)

// ParseTable converts a rectangular table of strings into validated player
// records, one per non-blank-named row, preserving input order. Short rows
// are padded with empty cells; rows longer than the contract width are
// truncated. Returns any non-fatal warnings alongside a fatal error when one
// occurs (DuplicatePlayer, MalformedScore).
func ParseTable(rows [][]string) ([]Record, []Warning, error) {
	var out []Record
	var warnings []Warning
	seen := make(map[string]bool, len(rows))

	for i, raw := range rows {
		rowNum := i + 1
		row := normalizeRow(raw)

		name := strings.TrimSpace(row[colName])
		if name == "" {
			continue
		}
		if seen[name] {
			return nil, warnings, fmerr.New(fmerr.DuplicatePlayer, name)
		}
		seen[name] = true

		age := parseAgeOrZero(row[colAge])

		foot, recognized := parseFoot(row[colFoot])
		if !recognized {
			warnings = append(warnings, Warning{
				Row:     rowNum,
				Message: "unrecognized foot value, defaulting to Either",
			})
		}

		var abilities [AttributeCount]*float64
		for j := 0; j < AttributeCount; j++ {
			abilities[j] = parseOptionalFloat(row[abilitiesStart+j])
		}

		dna := parseOptionalFloat(row[dnaCol])

		roleScores := make(map[roles.ID]float64, roles.Count)
		for j, role := range roles.All {
			cell := strings.TrimSpace(row[roleScoresStart+j])
			if cell == "" {
				roleScores[role] = 0.0
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, warnings, fmerr.AtCell(fmerr.MalformedScore, rowNum, roleScoresStart+j)
			}
			roleScores[role] = v
		}

		out = append(out, Record{
			Name:       name,
			Age:        age,
			Foot:       foot,
			Abilities:  abilities,
			DNA:        dna,
			RoleScores: roleScores,
		})
	}

	return out, warnings, nil
}

// normalizeRow pads a short row with empty cells and truncates a long one so
// every column index 0..totalColumnCount-1 is always safe to read.
func normalizeRow(row []string) []string {
	if len(row) >= totalColumnCount {
		return row[:totalColumnCount]
	}
	padded := make([]string, totalColumnCount)
	copy(padded, row)
	return padded
}

func parseAgeOrZero(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return v
}

func parseOptionalFloat(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}
