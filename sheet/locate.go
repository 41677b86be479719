package sheet

import (
	"strings"
)

// FindColumn finds the worksheet column for a label on a given day. The
// header row repeats each label once per weekday, so the day index (0-based)
// selects which occurrence applies. Returns the 1-based column index, with
// ok=false when the label has no occurrence for that day.
func FindColumn(header []string, label string, day int) (int, bool) {
	occurrences := []int{}
	for i, cell := range header {
		if strings.TrimSpace(cell) == label {
			occurrences = append(occurrences, i)
		}
	}

	if day >= 0 && day < len(occurrences) {
		return occurrences[day] + 1, true
	}

	return 0, false
}

// LocateRow finds the 1-based worksheet row for a campaign name, scanning
// the trimmed first cell of each row top to bottom and falling back to the
// alias table when there is no verbatim match. The returned alias is the
// alternate name that matched, or empty for a direct match. First match
// wins - duplicate campaign names are not disambiguated.
func LocateRow(rows [][]string, camp string, aliases *AliasTable) (int, string, bool) {
	if ix, ok := findRow(rows, camp); ok {
		return ix, "", true
	}

	if aliases != nil {
		for _, alt := range aliases.Alternates(camp) {
			if ix, ok := findRow(rows, alt); ok {
				return ix, alt, true
			}
		}
	}

	return 0, "", false
}

func findRow(rows [][]string, name string) (int, bool) {
	for i, row := range rows {
		if len(row) > 0 && strings.TrimSpace(row[0]) == name {
			return i + 1, true
		}
	}

	return 0, false
}
