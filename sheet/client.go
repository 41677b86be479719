package sheet

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const SCOPE = "https://www.googleapis.com/auth/spreadsheets"

// Client wraps the Google Sheets API for a single spreadsheet, authenticated
// with a service account credential.
type Client struct {
	google        *sheets.Service
	spreadsheetId string
}

func NewClient(ctx context.Context, credentials []byte, spreadsheetId string) (*Client, error) {
	config, err := google.JWTConfigFromJSON(credentials, SCOPE)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%v)", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	return &Client{
		google:        service,
		spreadsheetId: spreadsheetId,
	}, nil
}

func (c *Client) Worksheet(name string) *Worksheet {
	return &Worksheet{
		client: c,
		name:   name,
	}
}

// Worksheet is a handle on a single named worksheet of the client's
// spreadsheet.
type Worksheet struct {
	client *Client
	name   string
}

func (w *Worksheet) Name() string {
	return w.name
}

// Values retrieves the worksheet's cell values as strings, row by row.
func (w *Worksheet) Values(ctx context.Context) ([][]string, error) {
	area := fmt.Sprintf("'%s'", w.name)

	response, err := w.client.google.Spreadsheets.Values.Get(w.client.spreadsheetId, area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from worksheet '%s' (%w)", w.name, err)
	}

	rows := make([][]string, len(response.Values))
	for i, record := range response.Values {
		row := make([]string, len(record))
		for j, v := range record {
			row[j] = fmt.Sprintf("%v", v)
		}

		rows[i] = row
	}

	return rows, nil
}

// UpdateCell writes a single value to the cell at the 1-based row and column
// index.
func (w *Worksheet) UpdateCell(ctx context.Context, row, col int, value any) error {
	area := fmt.Sprintf("'%s'!%s%d", w.name, ColumnName(col), row)

	rq := sheets.ValueRange{
		Values: [][]any{{value}},
	}

	if _, err := w.client.google.Spreadsheets.Values.Update(w.client.spreadsheetId, area, &rq).
		ValueInputOption("RAW").
		Context(ctx).
		Do(); err != nil {
		return err
	}

	return nil
}

// ColumnName converts a 1-based column index to its A1 notation letters
// e.g. 1 becomes 'A' and 27 becomes 'AA'.
func ColumnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}

	return name
}
