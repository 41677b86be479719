package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Read loads an uploaded report file into a Table, dispatching on the file
// extension. Call-center suites export both CSV and XLSX.
func Read(filename string, r io.Reader) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx":
		return ReadXLSX(r)
	default:
		return ReadCSV(r)
	}
}

// ReadCSV loads a CSV export. The first record is the header row.
func ReadCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("error reading CSV file (%v)", err)
	}

	if len(records) == 0 {
		return Table{}, fmt.Errorf("file is empty")
	}

	return Table{
		Header: records[0],
		Rows:   records[1:],
	}, nil
}

// ReadXLSX loads the first worksheet of an XLSX export. The first row is the
// header row.
func ReadXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("error reading XLSX file (%v)", err)
	}

	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, fmt.Errorf("XLSX file has no worksheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("error reading XLSX worksheet '%s' (%v)", sheets[0], err)
	}

	if len(rows) == 0 {
		return Table{}, fmt.Errorf("file is empty")
	}

	return Table{
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}
