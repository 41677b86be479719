package sheet

import (
	"testing"
)

func TestFindColumn(t *testing.T) {
	header := []string{"Calls", "CTC", "Calls", "CTC"}

	tests := []struct {
		label    string
		day      int
		expected int
		ok       bool
	}{
		{"Calls", 0, 1, true},
		{"Calls", 1, 3, true},
		{"Calls", 2, 0, false},
		{"CTC", 1, 4, true},
		{"Abandoned", 0, 0, false},
	}

	for _, test := range tests {
		col, ok := FindColumn(header, test.label, test.day)
		if ok != test.ok || col != test.expected {
			t.Errorf("Incorrect column for '%s' day %v - expected:(%v,%v), got:(%v,%v)", test.label, test.day, test.expected, test.ok, col, ok)
		}
	}
}

func TestFindColumnTrimsHeaderCells(t *testing.T) {
	header := []string{" Calls ", "CTC"}

	if col, ok := FindColumn(header, "Calls", 0); !ok || col != 1 {
		t.Errorf("Incorrect column for padded header - expected:(1,true), got:(%v,%v)", col, ok)
	}
}

func TestLocateRow(t *testing.T) {
	rows := [][]string{
		{"Campaigns", ""},
		{"Calls", "CTC"},
		{" Acme ", "10"},
		{"Zenith Ltd", "20"},
	}

	aliases := NewAliasTable([][]string{
		{"Camp", "Source A"},
		{"Zenith", "Zenith Ltd"},
	})

	if row, alias, ok := LocateRow(rows, "Acme", aliases); !ok || row != 3 || alias != "" {
		t.Errorf("Incorrect direct match - expected:(3,'',true), got:(%v,'%v',%v)", row, alias, ok)
	}

	if row, alias, ok := LocateRow(rows, "Zenith", aliases); !ok || row != 4 || alias != "Zenith Ltd" {
		t.Errorf("Incorrect alias match - expected:(4,'Zenith Ltd',true), got:(%v,'%v',%v)", row, alias, ok)
	}

	if _, _, ok := LocateRow(rows, "Nimbus", aliases); ok {
		t.Errorf("Expected no match for unknown campaign, got ok:%v", ok)
	}
}

func TestLocateRowFirstMatchWins(t *testing.T) {
	rows := [][]string{
		{"Acme"},
		{"Acme"},
	}

	if row, _, ok := LocateRow(rows, "Acme", nil); !ok || row != 1 {
		t.Errorf("Expected first matching row (1), got:(%v,%v)", row, ok)
	}
}
