package parser

import "strings"

// headerTokens are the words scored when hunting for a table header row.
var headerTokens = []string{"model", "qty", "quantity", "net", "price"}

// columnSynonyms maps each required canonical column to accepted titles,
// compared against normalized cell text. Data-driven so new variants are a
// table entry, not a code change.
var columnSynonyms = map[string][]string{
	"model": {"model number", "model"},
	"qty":   {"qty", "quantity"},
	"price": {"net price"},
}

// Columns holds 0-based column indexes resolved from a header row.
type Columns struct {
	Model int
	Qty   int
	Price int
}

// DetectHeaderRow scans the first scanRows rows for a row containing at least
// minMatches of the header tokens. Returns the 0-based row index, or -1.
func DetectHeaderRow(rows [][]string, scanRows, minMatches int) int {
	if scanRows <= 0 || scanRows > len(rows) {
		scanRows = len(rows)
	}

	for i := 0; i < scanRows; i++ {
		count := 0
		for _, tok := range headerTokens {
			for _, cell := range rows[i] {
				if strings.Contains(Normalize(cell), tok) {
					count++
					break
				}
			}
		}
		if count >= minMatches {
			return i
		}
	}
	return -1
}

// ResolveColumns maps a header row to the required column indexes,
// case-insensitively via the synonym table. Exact synonym matches win over
// substring matches so "Net Price" does not land on "List Price Net".
func ResolveColumns(header []string) (Columns, bool) {
	model := findColumn(header, columnSynonyms["model"])
	qty := findColumn(header, columnSynonyms["qty"])
	price := findColumn(header, columnSynonyms["price"])

	if model < 0 || qty < 0 || price < 0 {
		return Columns{}, false
	}
	return Columns{Model: model, Qty: qty, Price: price}, true
}

func findColumn(header []string, synonyms []string) int {
	// Exact match pass.
	for i, cell := range header {
		norm := Normalize(cell)
		for _, syn := range synonyms {
			if norm == syn {
				return i
			}
		}
	}
	// Substring pass ("Model Number / SKU" still resolves).
	for i, cell := range header {
		norm := Normalize(cell)
		if norm == "" {
			continue
		}
		for _, syn := range synonyms {
			if strings.Contains(norm, syn) {
				return i
			}
		}
	}
	return -1
}
