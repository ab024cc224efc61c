package rolefile

import (
	"strconv"
	"strings"

	"github.com/fmtools/team-selector/internal/categories"
	"github.com/fmtools/team-selector/internal/fmerr"
	"github.com/fmtools/team-selector/internal/roles"
)

// Parse reads a UTF-8 role-file document and returns its RoleFile, or the
// first grammar error encountered.
//
// Format is auto-detected: if any line, after trimming, equals "[roles]" or
// "[filters]" case-insensitively, the file is sectioned; otherwise it is
// legacy (a bare list of exactly 11 role lines, no comments recognized).
func Parse(data []byte) (*RoleFile, error) {
	lines := splitLines(string(data))

	if isSectioned(lines) {
		return parseSectioned(lines)
	}
	return parseLegacy(lines)
}

// splitLines breaks data on both "\n" and "\r\n" without retaining the
// terminator.
func splitLines(data string) []string {
	data = strings.ReplaceAll(data, "\r\n", "\n")
	if data == "" {
		return nil
	}
	return strings.Split(data, "\n")
}

func isSectioned(lines []string) bool {
	for _, l := range lines {
		t := strings.ToLower(strings.TrimSpace(l))
		if t == "[roles]" || t == "[filters]" {
			return true
		}
	}
	return false
}

// parseLegacy treats every non-blank line as a RoleId; comments are not
// recognized in this mode.
func parseLegacy(lines []string) (*RoleFile, error) {
	var roleList []string
	for i, raw := range lines {
		lineNo := i + 1
		text := strings.TrimSpace(raw)
		if text == "" {
			continue
		}
		if _, err := roles.New(text); err != nil {
			return nil, fmerr.AtLine(fmerr.UnknownRole, text, lineNo)
		}
		roleList = append(roleList, text)
	}
	if len(roleList) != RequiredRoleCount {
		return nil, fmerr.New(fmerr.RoleCount, strconv.Itoa(len(roleList)))
	}
	return &RoleFile{Roles: roleList}, nil
}

// section identifies which bracketed block a line belongs to.
type section int

const (
	sectionNone section = iota
	sectionRoles
	sectionFilters
)

// parseSectioned walks [roles]/[filters] blocks, ignoring "#" comments and
// blank lines within a section, and rejecting any other unrecognized header.
func parseSectioned(lines []string) (*RoleFile, error) {
	var roleList []string
	var filters []PlayerFilter
	seenPlayer := make(map[string]bool)

	cur := sectionNone
	for i, raw := range lines {
		lineNo := i + 1
		trimmed := strings.TrimSpace(raw)

		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") {
			continue
		}

		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			switch strings.ToLower(trimmed) {
			case "[roles]":
				cur = sectionRoles
			case "[filters]":
				cur = sectionFilters
			default:
				return nil, fmerr.AtLine(fmerr.UnrecognizedSection, trimmed, lineNo)
			}
			continue
		}

		switch cur {
		case sectionRoles:
			if strings.HasPrefix(trimmed, "#") {
				continue
			}
			if _, err := roles.New(trimmed); err != nil {
				return nil, fmerr.AtLine(fmerr.UnknownRole, trimmed, lineNo)
			}
			roleList = append(roleList, trimmed)

		case sectionFilters:
			if strings.HasPrefix(trimmed, "#") {
				continue
			}
			filter, err := parseFilterLine(trimmed, lineNo)
			if err != nil {
				return nil, err
			}
			if seenPlayer[filter.Player] {
				return nil, fmerr.AtLineForPlayer(fmerr.DuplicateFilter, filter.Player, "", lineNo)
			}
			seenPlayer[filter.Player] = true
			filters = append(filters, filter)

		default:
			return nil, fmerr.AtLine(fmerr.Malformed, trimmed, lineNo)
		}
	}

	if len(roleList) != RequiredRoleCount {
		return nil, fmerr.New(fmerr.RoleCount, strconv.Itoa(len(roleList)))
	}

	return &RoleFile{Roles: roleList, Filters: filters}, nil
}

// parseFilterLine splits "PLAYER_NAME : CATEGORY_LIST" on the first colon
// and validates every comma-separated category token.
func parseFilterLine(line string, lineNo int) (PlayerFilter, error) {
	idx := strings.Index(line, ":")
	if idx < 0 {
		return PlayerFilter{}, fmerr.AtLine(fmerr.Malformed, line, lineNo)
	}
	player := strings.TrimSpace(line[:idx])
	if player == "" {
		return PlayerFilter{}, fmerr.AtLine(fmerr.Malformed, line, lineNo)
	}

	rest := strings.TrimSpace(line[idx+1:])
	if rest == "" {
		return PlayerFilter{}, fmerr.AtLine(fmerr.Malformed, line, lineNo)
	}

	tokens := strings.Split(rest, ",")
	cats := make([]categories.ID, 0, len(tokens))
	for _, tok := range tokens {
		text := strings.TrimSpace(tok)
		cat, err := categories.Parse(text)
		if err != nil {
			return PlayerFilter{}, fmerr.AtLineForPlayer(fmerr.UnknownCategory, player, text, lineNo)
		}
		cats = append(cats, cat)
	}

	return PlayerFilter{Player: player, Categories: cats}, nil
}
