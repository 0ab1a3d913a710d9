// Package models defines data structures for quotation extraction.
package models

// Quotation represents everything extracted from one workbook.
type Quotation struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Cover contains the cover fields in discovery order.
	Cover CoverDetails `json:"cover"`
	// Customer contains the customer fields in discovery order.
	Customer CoverDetails `json:"customer"`
	// Sheets contains per-sheet line items in original sheet order.
	Sheets []SheetItems `json:"sheets"`
}

// TotalItems returns the number of accepted line items across all sheets.
func (q *Quotation) TotalItems() int {
	n := 0
	for _, s := range q.Sheets {
		n += len(s.Items)
	}
	return n
}
