package sheet

import (
	"reflect"
	"testing"
)

var settings = [][]string{
	{"Camp", "Source A", "Source B"},
	{"Acme", "Acme Corp", "ACME INC"},
	{"Zenith", "Zenith Ltd", ""},
	{"Apex", "", "Apex Outbound"},
}

func TestAlternatesForCanonicalName(t *testing.T) {
	table := NewAliasTable(settings)

	expected := []string{"Acme Corp", "ACME INC"}
	if names := table.Alternates("Acme"); !reflect.DeepEqual(names, expected) {
		t.Errorf("Incorrect alternates for 'Acme' - expected:%v, got:%v", expected, names)
	}
}

func TestAlternatesForAliasName(t *testing.T) {
	table := NewAliasTable(settings)

	expected := []string{"Acme", "ACME INC"}
	if names := table.Alternates("Acme Corp"); !reflect.DeepEqual(names, expected) {
		t.Errorf("Incorrect alternates for 'Acme Corp' - expected:%v, got:%v", expected, names)
	}
}

func TestAlternatesSkipsBlanks(t *testing.T) {
	table := NewAliasTable(settings)

	expected := []string{"Zenith Ltd"}
	if names := table.Alternates("Zenith"); !reflect.DeepEqual(names, expected) {
		t.Errorf("Incorrect alternates for 'Zenith' - expected:%v, got:%v", expected, names)
	}

	expected = []string{"Apex", "Apex Outbound"}
	if names := table.Alternates("Apex Outbound"); !reflect.DeepEqual(names, expected) {
		t.Errorf("Incorrect alternates for 'Apex Outbound' - expected:%v, got:%v", expected, names)
	}
}

func TestAlternatesForUnknownName(t *testing.T) {
	table := NewAliasTable(settings)

	if names := table.Alternates("Nimbus"); len(names) != 0 {
		t.Errorf("Expected no alternates for unknown name, got %v", names)
	}
}

func TestAlternatesDeduplicates(t *testing.T) {
	table := NewAliasTable([][]string{
		{"Camp", "Source A", "Source B"},
		{"Acme", "Acme Corp", "Acme Corp"},
	})

	expected := []string{"Acme Corp"}
	if names := table.Alternates("Acme"); !reflect.DeepEqual(names, expected) {
		t.Errorf("Incorrect alternates for 'Acme' - expected:%v, got:%v", expected, names)
	}
}

func TestAlternatesWithEmptyTable(t *testing.T) {
	table := NewAliasTable([][]string{})

	if names := table.Alternates("Acme"); len(names) != 0 {
		t.Errorf("Expected no alternates from empty table, got %v", names)
	}
}
