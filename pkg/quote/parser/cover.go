package parser

import (
	"strings"

	"quotewatch/pkg/quote/models"
)

// CoverFieldSpec maps a canonical cover field key to the label tokens that
// identify it. Tokens is a list of synonym groups: a cell matches when its
// normalized text contains at least one alternative from every group, so
// {{"e-mail", "email"}} matches either spelling while {{"quotation"}, {"#"}}
// requires both words.
type CoverFieldSpec struct {
	Key    string
	Tokens [][]string
}

// DefaultCoverFields lists the quotation-level cover fields.
func DefaultCoverFields() []CoverFieldSpec {
	return []CoverFieldSpec{
		{Key: "Quotation #", Tokens: [][]string{{"quotation"}, {"#"}}},
		{Key: "QDR #", Tokens: [][]string{{"qdr"}, {"#"}}},
		{Key: "SPR #", Tokens: [][]string{{"spr"}, {"#"}}},
		{Key: "Opportunity #", Tokens: [][]string{{"opportunity"}, {"#"}}},
		{Key: "Quote Name", Tokens: [][]string{{"quote"}, {"name"}}},
		{Key: "Quotation Date", Tokens: [][]string{{"quotation"}, {"date"}}},
		{Key: "Valid Until", Tokens: [][]string{{"valid"}, {"until"}}},
	}
}

// DefaultCustomerFields lists the customer-level cover fields.
func DefaultCustomerFields() []CoverFieldSpec {
	return []CoverFieldSpec{
		{Key: "Contact Name", Tokens: [][]string{{"contact"}, {"name"}}},
		{Key: "Company", Tokens: [][]string{{"company"}}},
		{Key: "Address", Tokens: [][]string{{"address"}}},
		{Key: "City, State ZIP", Tokens: [][]string{{"city"}, {"state"}, {"zip"}}},
		{Key: "Country", Tokens: [][]string{{"country"}}},
		{Key: "Phone Number", Tokens: [][]string{{"phone"}}},
		{Key: "E-mail", Tokens: [][]string{{"e-mail", "email"}}},
	}
}

// ExtractCoverFields scans the first scanRows rows of a grid for each field's
// label tokens and reads the adjacent value. The value is the first non-blank
// cell to the right of the label, falling back to the cell directly below.
// Fields whose labels are absent are simply omitted.
func ExtractCoverFields(rows [][]string, specs []CoverFieldSpec, scanRows int) models.CoverDetails {
	if scanRows <= 0 || scanRows > len(rows) {
		scanRows = len(rows)
	}

	var details models.CoverDetails
	for _, spec := range specs {
		if val, ok := findValueNearLabel(rows[:scanRows], spec.Tokens); ok {
			details = append(details, models.CoverField{Key: spec.Key, Value: val})
		}
	}
	return details
}

// matchesLabel reports whether the normalized cell text contains at least one
// alternative from every synonym group.
func matchesLabel(norm string, groups [][]string) bool {
	for _, alts := range groups {
		found := false
		for _, alt := range alts {
			if strings.Contains(norm, alt) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// findValueNearLabel locates the first cell matching the label tokens and
// returns the neighbouring value cell.
func findValueNearLabel(rows [][]string, groups [][]string) (string, bool) {
	for r, row := range rows {
		for c, cell := range row {
			if strings.TrimSpace(cell) == "" {
				continue
			}
			if !matchesLabel(Normalize(cell), groups) {
				continue
			}
			if v := strings.TrimSpace(cellAt(row, c+1)); v != "" {
				return v, true
			}
			if r+1 < len(rows) {
				if v := strings.TrimSpace(cellAt(rows[r+1], c)); v != "" {
					return v, true
				}
			}
		}
	}
	return "", false
}
