package report

import (
	"fmt"
	"sort"
	"strconv"
)

// CTCRecord is a single validated row from a 'CTC' export.
type CTCRecord struct {
	Camp      string
	Calls     int
	Connects  int
	CTC       float64
	Abandoned int
}

// CTCSummary is the per-campaign aggregate of a 'CTC' export: sums of the
// counters and the arithmetic mean of the calls-to-connect values.
type CTCSummary struct {
	Camp      string
	Calls     int
	Connects  int
	CTC       float64
	Abandoned int
}

func (s CTCSummary) Update() Update {
	return Update{
		Camp: s.Camp,
		Cells: []Cell{
			{Label: "Calls", Value: s.Calls},
			{Label: "Connects", Value: s.Connects},
			{Label: "CTC", Value: s.CTC},
			{Label: "Abandoned", Value: s.Abandoned},
		},
	}
}

// ParseCTC validates and coerces the rows of a 'CTC' export. Rows without a
// campaign identifier are dropped; rows with numeric fields that cannot be
// coerced are an error for the whole file.
func ParseCTC(t Table) ([]CTCRecord, error) {
	ix := t.index()

	for _, col := range []string{"Campaign", "Calls", "Connects", "Calls to Connect", "Abandoned"} {
		if _, ok := ix[col]; !ok {
			return nil, fmt.Errorf("missing '%s' column", col)
		}
	}

	records := []CTCRecord{}
	for i, row := range t.Rows {
		camp := t.cell(row, ix["Campaign"])
		if camp == "" {
			continue
		}

		record := CTCRecord{
			Camp: camp,
		}

		var err error
		if record.Calls, err = atoi(t.cell(row, ix["Calls"])); err != nil {
			return nil, fmt.Errorf("row %d: 'Calls' %v", i+2, err)
		}

		if record.Connects, err = atoi(t.cell(row, ix["Connects"])); err != nil {
			return nil, fmt.Errorf("row %d: 'Connects' %v", i+2, err)
		}

		if record.Abandoned, err = atoi(t.cell(row, ix["Abandoned"])); err != nil {
			return nil, fmt.Errorf("row %d: 'Abandoned' %v", i+2, err)
		}

		if record.CTC, err = strconv.ParseFloat(t.cell(row, ix["Calls to Connect"]), 64); err != nil {
			return nil, fmt.Errorf("row %d: invalid 'Calls to Connect' value '%s'", i+2, t.cell(row, ix["Calls to Connect"]))
		}

		records = append(records, record)
	}

	return records, nil
}

// AggregateCTC groups records by campaign name, summing the counters and
// averaging the calls-to-connect values. Output is sorted by campaign name.
func AggregateCTC(records []CTCRecord) []Update {
	type group struct {
		calls     int
		connects  int
		abandoned int
		ctc       float64
		count     int
	}

	groups := map[string]*group{}
	for _, r := range records {
		g, ok := groups[r.Camp]
		if !ok {
			g = &group{}
			groups[r.Camp] = g
		}

		g.calls += r.Calls
		g.connects += r.Connects
		g.abandoned += r.Abandoned
		g.ctc += r.CTC
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
		summary := CTCSummary{
			Camp:      camp,
			Calls:     g.calls,
			Connects:  g.connects,
			CTC:       g.ctc / float64(g.count),
			Abandoned: g.abandoned,
		}

		updates = append(updates, summary.Update())
	}

	return updates
}
