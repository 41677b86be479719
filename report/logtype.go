package report

import (
	"fmt"
	"sort"
)

// LogRecord is a single validated row from a 'Log type' export.
type LogRecord struct {
	Camp    string
	Seconds int
}

// LogSummary is the per-campaign aggregate of a 'Log type' export: total
// recorded seconds, the number of logged calls and the total formatted as a
// dial time.
type LogSummary struct {
	Camp        string
	Seconds     int
	LoggedCalls int
	DialTime    string
}

func (s LogSummary) Update() Update {
	return Update{
		Camp: s.Camp,
		Cells: []Cell{
			{Label: "Logged Calls", Value: s.LoggedCalls},
			{Label: "Dial Time", Value: s.DialTime},
		},
	}
}

// ParseLog validates and coerces the rows of a 'Log type' export. Rows
// without a campaign identifier or without a recording length are dropped;
// rows with a recording length that cannot be coerced to an integer are an
// error for the whole file.
func ParseLog(t Table) ([]LogRecord, error) {
	ix := t.index()

	for _, col := range []string{"Current campaign", "Recording Length (Seconds)"} {
		if _, ok := ix[col]; !ok {
			return nil, fmt.Errorf("missing '%s' column", col)
		}
	}

	records := []LogRecord{}
	for i, row := range t.Rows {
		camp := t.cell(row, ix["Current campaign"])
		seconds := t.cell(row, ix["Recording Length (Seconds)"])

		if camp == "" || seconds == "" {
			continue
		}

		v, err := atoi(seconds)
		if err != nil {
			return nil, fmt.Errorf("row %d: 'Recording Length (Seconds)' %v", i+2, err)
		}

		records = append(records, LogRecord{
			Camp:    camp,
			Seconds: v,
		})
	}

	return records, nil
}

// AggregateLog groups records by campaign name, summing the recording
// lengths and counting the logged calls. Output is sorted by campaign name.
func AggregateLog(records []LogRecord) []Update {
	type group struct {
		seconds int
		count   int
	}

	groups := map[string]*group{}
	for _, r := range records {
		g, ok := groups[r.Camp]
		if !ok {
			g = &group{}
			groups[r.Camp] = g
		}

		g.seconds += r.Seconds
		g.count++
	}

	camps := []string{}
	for camp := range groups {
		camps = append(camps, camp)
	}

	sort.Strings(camps)

	updates := []Update{}
	for _, camp := range camps {
		g := groups[camp]
		summary := LogSummary{
			Camp:        camp,
			Seconds:     g.seconds,
			LoggedCalls: g.count,
			DialTime:    FormatDuration(g.seconds),
		}

		updates = append(updates, summary.Update())
	}

	return updates
}

// FormatDuration formats a duration in seconds as zero-padded HH:MM:SS.
// Hours are not clamped to 24 - a week's dial time is e.g. '168:00:00'.
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds%60)
}
