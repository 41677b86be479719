// Package updater drives the per-file, per-row update loop: aggregate a
// report, resolve target columns for the selected day, locate each
// campaign's worksheet row and write the aggregated metrics cell by cell.
package updater

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dialworks/campaign-sheets/metrics"
	"github.com/dialworks/campaign-sheets/report"
	"github.com/dialworks/campaign-sheets/sheet"
)

// Reporter receives the per-file and per-row status notices surfaced to the
// operator.
type Reporter interface {
	Infof(format string, args ...any)
	Successf(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// File is a single uploaded report.
type File struct {
	Name    string
	Content io.Reader
}

type Updater struct {
	mode     report.Mode
	day      int
	rows     [][]string
	header   []string
	aliases  *sheet.AliasTable
	writer   *sheet.Writer
	reporter Reporter
}

// New builds an updater over a snapshot of the target worksheet. The header
// row for column-label matching is the worksheet's second row, by
// convention. day is the 0-based weekday index selecting which occurrence
// of each repeated column label to update.
func New(mode report.Mode, day int, rows [][]string, aliases *sheet.AliasTable, cells sheet.CellUpdater, retry sheet.Retry, reporter Reporter) (*Updater, error) {
	if len(rows) < 2 {
		return nil, fmt.Errorf("worksheet has no header row (expected headers in row 2)")
	}

	warnf := func(format string, args ...any) {
		metrics.RateLimitRetries.Inc()
		reporter.Warnf(format, args...)
	}

	return &Updater{
		mode:     mode,
		day:      day,
		rows:     rows,
		header:   rows[1],
		aliases:  aliases,
		writer:   sheet.NewWriter(cells, retry, warnf),
		reporter: reporter,
	}, nil
}

// Run processes the uploaded files sequentially. Files are independent - an
// error aborts only that file's processing and is surfaced as an error
// notice.
func (u *Updater) Run(ctx context.Context, files []File) {
	for _, f := range files {
		u.reporter.Infof("Processing file %s", f.Name)

		if err := u.process(ctx, f); err != nil {
			metrics.Files.WithLabelValues("error").Inc()
			u.reporter.Errorf("An error occurred while processing %s (%v)", f.Name, err)
			continue
		}

		metrics.Files.WithLabelValues("ok").Inc()
	}
}

func (u *Updater) process(ctx context.Context, f File) error {
	table, err := report.Read(f.Name, f.Content)
	if err != nil {
		return err
	}

	updates, err := report.Aggregate(u.mode, table)
	if err != nil {
		return err
	}

	// ... resolve target columns up front - a miss aborts the file before
	//     any cell is written
	columns := map[string]int{}
	for _, label := range u.mode.Columns() {
		col, ok := sheet.FindColumn(u.header, label, u.day)
		if !ok {
			return fmt.Errorf("no '%s' column for day %d - check the worksheet headers", label, u.day+1)
		}

		columns[label] = col
	}

	// ... update each aggregated campaign row
	for _, update := range updates {
		row, alias, ok := sheet.LocateRow(u.rows, update.Camp, u.aliases)
		if !ok {
			metrics.RowsSkipped.Inc()
			u.reporter.Warnf("Camp name '%s' not found in the worksheet", update.Camp)
			continue
		}

		if alias != "" {
			u.reporter.Infof("Using alternate name '%s' for campaign '%s'", alias, update.Camp)
		}

		// TODO: batch same-row cells into a single Values.BatchUpdate request
		for _, cell := range update.Cells {
			if err := u.writer.Update(ctx, row, columns[cell.Label], cell.Value); err != nil {
				if errors.Is(err, sheet.ErrRateLimited) {
					metrics.CellsFailed.Inc()
					u.reporter.Errorf("Max retries reached for '%s' of campaign '%s' - update failed", cell.Label, update.Camp)
					continue
				}

				return err
			}

			metrics.CellsUpdated.Inc()
		}

		metrics.RowsUpdated.Inc()
		u.reporter.Successf("Updated %s from file %s", update.Camp, f.Name)
	}

	return nil
}
