package datasets

import (
	"fmt"
	"strings"
	"unicode"
)

// ColumnNames converts a header row into unique lowercase SQL
// identifiers. "Violation ID" becomes "violation_id", a leading digit
// gets a "c_" prefix, empty names become "column_<n>", and repeated
// names get a numeric suffix.
func ColumnNames(header []string) []string {
	res := make([]string, len(header))
	seen := make(map[string]struct{})
	for i, h := range header {
		name := normalizeColumn(h)
		if name == "" {
			name = fmt.Sprintf("column_%d", i+1)
		}
		if _, ok := seen[name]; ok {
			base := name
			for n := 2; ; n++ {
				name = fmt.Sprintf("%s_%d", base, n)
				if _, ok := seen[name]; !ok {
					break
				}
			}
		}
		seen[name] = struct{}{}
		res[i] = name
	}
	return res
}

func normalizeColumn(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			underscore = false
		case !underscore && b.Len() > 0:
			b.WriteByte('_')
			underscore = true
		}
	}
	res := strings.TrimRight(b.String(), "_")
	if res != "" && unicode.IsDigit(rune(res[0])) {
		res = "c_" + res
	}
	return res
}
