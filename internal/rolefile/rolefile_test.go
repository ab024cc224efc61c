package rolefile

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fmtools/team-selector/internal/categories"
	"github.com/fmtools/team-selector/internal/fmerr"
)

const legacyEleven = `GK
CD(d)
CD(s)
FB(d) R
FB(d) L
CM(d)
CM(s)
CM(a)
W(s) R
W(s) L
CF(s)`

func TestParse_Legacy_Valid(t *testing.T) {
	rf, err := Parse([]byte(legacyEleven))
	require.NoError(t, err)
	require.Len(t, rf.Roles, RequiredRoleCount)
	assert.Equal(t, "GK", rf.Roles[0])
	assert.Empty(t, rf.Filters)
}

func TestParse_Legacy_WrongCount(t *testing.T) {
	_, err := Parse([]byte("GK\nCD(d)\n"))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.RoleCount, fe.Kind)
}

func TestParse_Legacy_UnknownRole(t *testing.T) {
	bad := strings.Replace(legacyEleven, "GK", "qb", 1)
	_, err := Parse([]byte(bad))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.UnknownRole, fe.Kind)
	assert.Equal(t, "qb", fe.Value)
	assert.Equal(t, 1, fe.Line)
}

func TestParse_Sectioned_EquivalentToLegacyWhenNoFilters(t *testing.T) {
	var b strings.Builder
	b.WriteString("[roles]\n")
	b.WriteString(legacyEleven)
	b.WriteString("\n")

	sectioned, err := Parse([]byte(b.String()))
	require.NoError(t, err)

	legacy, err := Parse([]byte(legacyEleven))
	require.NoError(t, err)

	if diff := cmp.Diff(legacy, sectioned); diff != "" {
		t.Fatalf("legacy and sectioned parses diverged (-legacy +sectioned):\n%s", diff)
	}
}

func TestParse_Sectioned_RoleCount(t *testing.T) {
	doc := "[roles]\n" + strings.Join(strings.Split(legacyEleven, "\n")[:10], "\n") + "\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.RoleCount, fe.Kind)
	assert.Equal(t, "10", fe.Value)
}

func TestParse_Sectioned_UnknownRole(t *testing.T) {
	bad := strings.Replace(legacyEleven, "GK", "qb", 1)
	doc := "[roles]\n" + bad + "\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.UnknownRole, fe.Kind)
	assert.Equal(t, "qb", fe.Value)
}

func TestParse_Sectioned_UnknownCategory(t *testing.T) {
	doc := "[roles]\n" + legacyEleven + "\n\n[filters]\nNeuer : striker\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.UnknownCategory, fe.Kind)
	assert.Equal(t, "Neuer", fe.Player)
	assert.Equal(t, "striker", fe.Value)
}

func TestParse_Sectioned_FiltersAndComments(t *testing.T) {
	doc := "[roles]\n" + legacyEleven + `

[filters]
# Alisson is restricted to wing-back duty only
Alisson : wb
Neuer : goal, cd
`
	rf, err := Parse([]byte(doc))
	require.NoError(t, err)
	require.Len(t, rf.Filters, 2)
	assert.Equal(t, "Alisson", rf.Filters[0].Player)
	assert.Equal(t, []categories.ID{categories.WingBack}, rf.Filters[0].Categories)
	assert.Equal(t, "Neuer", rf.Filters[1].Player)
	assert.Equal(t, []categories.ID{categories.Goal, categories.CentralDefender}, rf.Filters[1].Categories)
}

func TestParse_Sectioned_DuplicateFilter(t *testing.T) {
	doc := "[roles]\n" + legacyEleven + "\n\n[filters]\nNeuer : goal\nNeuer : cd\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.DuplicateFilter, fe.Kind)
	assert.Equal(t, "Neuer", fe.Player)
}

func TestParse_Sectioned_UnrecognizedHeader(t *testing.T) {
	doc := "[roles]\n" + legacyEleven + "\n\n[bogus]\nsomething\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.UnrecognizedSection, fe.Kind)
}

func TestParse_Sectioned_MalformedFilterLine(t *testing.T) {
	doc := "[roles]\n" + legacyEleven + "\n\n[filters]\nno colon here\n"
	_, err := Parse([]byte(doc))
	require.Error(t, err)
	var fe *fmerr.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fmerr.Malformed, fe.Kind)
}

func TestParse_CRLFLineEndings(t *testing.T) {
	crlf := strings.ReplaceAll(legacyEleven, "\n", "\r\n")
	rf, err := Parse([]byte(crlf))
	require.NoError(t, err)
	assert.Len(t, rf.Roles, RequiredRoleCount)
}

func TestRoundTrip_FormatThenParse(t *testing.T) {
	original := &RoleFile{
		Roles: strings.Split(legacyEleven, "\n"),
		Filters: []PlayerFilter{
			{Player: "Alisson", Categories: []categories.ID{categories.WingBack}},
			{Player: "Neuer", Categories: []categories.ID{categories.Goal, categories.CentralDefender}},
		},
	}

	reparsed, err := Parse([]byte(Format(original)))
	require.NoError(t, err)

	if diff := cmp.Diff(original, reparsed); diff != "" {
		t.Fatalf("round-trip mismatch (-original +reparsed):\n%s", diff)
	}
}

func TestRoundTrip_NoFilters(t *testing.T) {
	original := &RoleFile{Roles: strings.Split(legacyEleven, "\n")}
	reparsed, err := Parse([]byte(Format(original)))
	require.NoError(t, err)
	if diff := cmp.Diff(original, reparsed); diff != "" {
		t.Fatalf("round-trip mismatch (-original +reparsed):\n%s", diff)
	}
}
