package updater

import (
	"context"

	"github.com/dialworks/campaign-sheets/report"
	"github.com/dialworks/campaign-sheets/sheet"
)

// Options describes a single run: which worksheet to update, which settings
// worksheet holds the alias table, and how to aggregate and retry.
type Options struct {
	Client    *sheet.Client
	Worksheet string
	Settings  string
	Mode      report.Mode
	Day       int
	Retry     sheet.Retry
	Reporter  Reporter
}

// Process fetches the target worksheet and the alias table once, then runs
// the update loop over the uploaded files.
func Process(ctx context.Context, opts Options, files []File) error {
	worksheet := opts.Client.Worksheet(opts.Worksheet)

	rows, err := worksheet.Values(ctx)
	if err != nil {
		return err
	}

	settings, err := opts.Client.Worksheet(opts.Settings).Values(ctx)
	if err != nil {
		return err
	}

	u, err := New(opts.Mode, opts.Day, rows, sheet.NewAliasTable(settings), worksheet, opts.Retry, opts.Reporter)
	if err != nil {
		return err
	}

	u.Run(ctx, files)

	return nil
}
