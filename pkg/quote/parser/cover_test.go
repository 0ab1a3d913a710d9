package parser

import "testing"

func TestExtractCoverFields(t *testing.T) {
	rows := [][]string{
		{"ACME Shelters"},
		{"Quotation #:", "Q-100"},
		{"QDR #", "", "ignored"},
		{"QDR-555"},
		{"Company", "Initech"},
		{"Quotation Date", "2024-01-15"},
	}

	details := ExtractCoverFields(rows, DefaultCoverFields(), 40)

	if v, ok := details.Get("Quotation #"); !ok || v != "Q-100" {
		t.Errorf("Quotation # = %q (found=%v), expected Q-100", v, ok)
	}
	// Value below the label when the right-hand cell is blank.
	if v, ok := details.Get("QDR #"); !ok || v != "QDR-555" {
		t.Errorf("QDR # = %q (found=%v), expected QDR-555", v, ok)
	}
	if v, ok := details.Get("Quotation Date"); !ok || v != "2024-01-15" {
		t.Errorf("Quotation Date = %q (found=%v), expected 2024-01-15", v, ok)
	}
	// Absent labels yield absent keys, not errors.
	if _, ok := details.Get("SPR #"); ok {
		t.Error("SPR # should be absent")
	}

	customer := ExtractCoverFields(rows, DefaultCustomerFields(), 40)
	if v, ok := customer.Get("Company"); !ok || v != "Initech" {
		t.Errorf("Company = %q (found=%v), expected Initech", v, ok)
	}
}

func TestExtractCoverFieldsDiscoveryOrder(t *testing.T) {
	rows := [][]string{
		{"Valid Until", "2024-06-30"},
		{"Quotation #", "Q-2"},
	}

	details := ExtractCoverFields(rows, DefaultCoverFields(), 40)

	// Order follows the field table, not sheet position.
	if len(details) != 2 {
		t.Fatalf("expected 2 fields, got %d", len(details))
	}
	if details[0].Key != "Quotation #" || details[1].Key != "Valid Until" {
		t.Errorf("unexpected field order: %+v", details)
	}
}

func TestExtractCoverFieldsScanBound(t *testing.T) {
	rows := [][]string{
		{"filler"},
		{"filler"},
		{"Company", "TooDeep Inc"},
	}

	details := ExtractCoverFields(rows, DefaultCustomerFields(), 2)
	if _, ok := details.Get("Company"); ok {
		t.Error("label beyond the scan bound should not be found")
	}
}

func TestFindValueNearLabelSkipsValuelessMatch(t *testing.T) {
	rows := [][]string{
		{"Company", ""},
		{"", ""},
		{"Company", "Initech"},
	}

	v, ok := findValueNearLabel(rows, [][]string{{"company"}})
	if !ok || v != "Initech" {
		t.Errorf("findValueNearLabel = %q (found=%v), expected Initech", v, ok)
	}
}

func TestEmailLabelSynonyms(t *testing.T) {
	// "Mailing Address" must not satisfy the e-mail label; both real
	// spellings must.
	rows := [][]string{
		{"Mailing Address", "PO Box 1"},
		{"E-mail", "bob@initech.example"},
	}
	details := ExtractCoverFields(rows, DefaultCustomerFields(), 40)
	if v, ok := details.Get("E-mail"); !ok || v != "bob@initech.example" {
		t.Errorf("E-mail = %q (found=%v), expected bob@initech.example", v, ok)
	}
	if v, ok := details.Get("Address"); !ok || v != "PO Box 1" {
		t.Errorf("Address = %q (found=%v), expected PO Box 1", v, ok)
	}

	rows = [][]string{
		{"Email Address", "alice@initech.example"},
	}
	details = ExtractCoverFields(rows, DefaultCustomerFields(), 40)
	if v, ok := details.Get("E-mail"); !ok || v != "alice@initech.example" {
		t.Errorf("E-mail = %q (found=%v), expected alice@initech.example", v, ok)
	}
}

func TestMatchesLabel(t *testing.T) {
	tests := []struct {
		norm     string
		groups   [][]string
		expected bool
	}{
		{"quotation #:", [][]string{{"quotation"}, {"#"}}, true},
		{"quotation date", [][]string{{"quotation"}, {"#"}}, false},
		{"e-mail", [][]string{{"e-mail", "email"}}, true},
		{"email", [][]string{{"e-mail", "email"}}, true},
		{"mailing address", [][]string{{"e-mail", "email"}}, false},
	}

	for _, tt := range tests {
		if got := matchesLabel(tt.norm, tt.groups); got != tt.expected {
			t.Errorf("matchesLabel(%q, %v) = %v, expected %v",
				tt.norm, tt.groups, got, tt.expected)
		}
	}
}
