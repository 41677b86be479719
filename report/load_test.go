package report

import (
	"reflect"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadCSV(t *testing.T) {
	csv := `Campaign,Calls,Connects,Calls to Connect,Abandoned
Acme,10,5,2.0,1
Zenith,20,8,4.0,2
`

	expected := Table{
		Header: []string{"Campaign", "Calls", "Connects", "Calls to Connect", "Abandoned"},
		Rows: [][]string{
			{"Acme", "10", "5", "2.0", "1"},
			{"Zenith", "20", "8", "4.0", "2"},
		},
	}

	table, err := ReadCSV(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadCSV (%v)", err)
	}

	if !reflect.DeepEqual(table, expected) {
		t.Errorf("Incorrect table\n   expected: %+v\n   got:      %+v", expected, table)
	}
}

func TestReadCSVWithEmptyFile(t *testing.T) {
	if _, err := ReadCSV(strings.NewReader("")); err == nil {
		t.Fatalf("Expected error return for empty file, got %v", err)
	}
}

func TestReadXLSX(t *testing.T) {
	f := excelize.NewFile()
	f.SetSheetRow("Sheet1", "A1", &[]any{"Current campaign", "Recording Length (Seconds)"})
	f.SetSheetRow("Sheet1", "A2", &[]any{"Acme", 120})
	f.SetSheetRow("Sheet1", "A3", &[]any{"Zenith", 60})

	buffer, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Unexpected error building XLSX fixture (%v)", err)
	}

	expected := Table{
		Header: []string{"Current campaign", "Recording Length (Seconds)"},
		Rows: [][]string{
			{"Acme", "120"},
			{"Zenith", "60"},
		},
	}

	table, err := ReadXLSX(buffer)
	if err != nil {
		t.Fatalf("Unexpected error returned from ReadXLSX (%v)", err)
	}

	if !reflect.DeepEqual(table, expected) {
		t.Errorf("Incorrect table\n   expected: %+v\n   got:      %+v", expected, table)
	}
}

func TestReadDispatchesOnExtension(t *testing.T) {
	csv := "Campaign,Calls\nAcme,10\n"

	table, err := Read("report.CSV", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("Unexpected error returned from Read (%v)", err)
	}

	if len(table.Rows) != 1 {
		t.Errorf("Expected 1 row, got %v", len(table.Rows))
	}
}
