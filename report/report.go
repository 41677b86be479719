package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode selects which export schema a report file is parsed and aggregated
// under.
type Mode string

const (
	ModeCTC     Mode = "CTC"
	ModeLogType Mode = "Log type"
)

// Modes lists the recognised update modes, in the order presented to the
// operator.
var Modes = []Mode{ModeCTC, ModeLogType}

func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.TrimSpace(s) == string(m) {
			return m, nil
		}
	}

	return "", fmt.Errorf("unknown update mode '%s' (expected one of %v)", s, Modes)
}

// Columns returns the worksheet column labels updated for this mode, in
// write order.
func (m Mode) Columns() []string {
	switch m {
	case ModeLogType:
		return []string{"Logged Calls", "Dial Time"}
	default:
		return []string{"Calls", "Connects", "CTC", "Abandoned"}
	}
}

// Table is the raw contents of an uploaded report file - a header row and
// the data rows below it, all as strings.
type Table struct {
	Header []string
	Rows   [][]string
}

// index maps normalised column labels to their position in the header.
func (t Table) index() map[string]int {
	ix := map[string]int{}
	for i, h := range t.Header {
		ix[strings.TrimSpace(h)] = i
	}

	return ix
}

func (t Table) cell(row []string, col int) string {
	if col < len(row) {
		return strings.TrimSpace(row[col])
	}

	return ""
}

// Cell is a single worksheet value keyed by the column label it belongs
// under.
type Cell struct {
	Label string
	Value any
}

// Update is one campaign's aggregated metrics, ready to be written to the
// campaign's worksheet row.
type Update struct {
	Camp  string
	Cells []Cell
}

// Aggregate parses and aggregates a report table for the given update mode,
// returning one update per distinct campaign, sorted by campaign name.
func Aggregate(mode Mode, t Table) ([]Update, error) {
	switch mode {
	case ModeCTC:
		records, err := ParseCTC(t)
		if err != nil {
			return nil, err
		}
		return AggregateCTC(records), nil

	case ModeLogType:
		records, err := ParseLog(t)
		if err != nil {
			return nil, err
		}
		return AggregateLog(records), nil

	default:
		return nil, fmt.Errorf("unknown update mode '%s'", mode)
	}
}

// atoi coerces a report numeric field to an integer, truncating values the
// export writes as floats (e.g. '12.0').
func atoi(s string) (int, error) {
	v := strings.TrimSpace(s)

	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}

	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return int(f), nil
	}

	return 0, fmt.Errorf("invalid numeric value '%s'", s)
}
