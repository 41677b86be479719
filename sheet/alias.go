package sheet

import (
	"strings"
)

// AliasTable maps canonical campaign names to the alternate spellings used
// by the various data sources. The first column holds the canonical name and
// the remaining columns hold known aliases, row-aligned.
//
// A name that appears as an alias for more than one canonical campaign is
// undefined behaviour - the leftmost matching column wins and no diagnostic
// is emitted.
type AliasTable struct {
	header []string
	rows   [][]string
}

// NewAliasTable builds an alias table from raw worksheet values. The first
// row is treated as the header row.
func NewAliasTable(values [][]string) *AliasTable {
	if len(values) == 0 {
		return &AliasTable{}
	}

	return &AliasTable{
		header: values[0],
		rows:   values[1:],
	}
}

// Alternates returns the known alternate names for a campaign, deduplicated
// and in column order, excluding the queried name itself. If the name is a
// canonical name the row's remaining columns are returned; if it appears in
// an alias column the whole row (canonical name included) is returned. An
// unknown name yields an empty list.
func (t *AliasTable) Alternates(name string) []string {
	name = strings.TrimSpace(name)

	for _, row := range t.rows {
		if cellAt(row, 0) == name {
			return collect(row[1:], name)
		}
	}

	for col := 1; col < len(t.header); col++ {
		for _, row := range t.rows {
			if cellAt(row, col) == name {
				return collect(row, name)
			}
		}
	}

	return nil
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}

	return ""
}

func collect(row []string, exclude string) []string {
	seen := map[string]bool{}
	names := []string{}

	for _, v := range row {
		v = strings.TrimSpace(v)
		if v == "" || v == exclude || seen[v] {
			continue
		}

		seen[v] = true
		names = append(names, v)
	}

	return names
}
