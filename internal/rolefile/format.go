package rolefile

import "strings"

// Format serializes a RoleFile back into the sectioned textual form. The
// [filters] section is emitted only when rf has at least one filter; with
// no filters the output is a [roles] section alone, which Parse reads the
// same way as the legacy bare list (see rolefile_test.go).
func Format(rf *RoleFile) string {
	var b strings.Builder

	b.WriteString("[roles]\n")
	for _, r := range rf.Roles {
		b.WriteString(r)
		b.WriteString("\n")
	}

	if len(rf.Filters) == 0 {
		return b.String()
	}

	b.WriteString("\n[filters]\n")
	for _, f := range rf.Filters {
		b.WriteString(f.Player)
		b.WriteString(" : ")
		names := make([]string, len(f.Categories))
		for i, c := range f.Categories {
			names[i] = string(c)
		}
		b.WriteString(strings.Join(names, ", "))
		b.WriteString("\n")
	}

	return b.String()
}
