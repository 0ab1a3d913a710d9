package parser

import (
	"strings"

	"quotewatch/pkg/quote/models"
)

// Skip reasons reported for rejected rows.
const (
	SkipBlankModel  = "blank model number"
	SkipBadQuantity = "quantity not a positive number"
	SkipBadPrice    = "net price not parseable"
)

// SkippedRow records a rejected data row for logging.
type SkippedRow struct {
	// Row is the 1-based row index within the sheet.
	Row int
	// Reason is one of the Skip* constants.
	Reason string
}

// ExtractItems reads data rows following the header row until the first fully
// blank row. Rows with a blank model number, a non-positive or non-numeric
// quantity, or an unparseable price are rejected and reported.
func ExtractItems(rows [][]string, headerIdx int, cols Columns) ([]models.LineItem, []SkippedRow) {
	var items []models.LineItem
	var skipped []SkippedRow

	for i := headerIdx + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			break
		}
		rowNum := i + 1 // 1-based

		model := strings.TrimSpace(cellAt(row, cols.Model))
		if model == "" {
			skipped = append(skipped, SkippedRow{Row: rowNum, Reason: SkipBlankModel})
			continue
		}

		qty, ok := ParseNumber(cellAt(row, cols.Qty))
		if !ok || !qty.IsPositive() {
			skipped = append(skipped, SkippedRow{Row: rowNum, Reason: SkipBadQuantity})
			continue
		}

		price, ok := ParseNumber(cellAt(row, cols.Price))
		if !ok {
			skipped = append(skipped, SkippedRow{Row: rowNum, Reason: SkipBadPrice})
			continue
		}

		items = append(items, models.LineItem{
			ModelNumber: model,
			Quantity:    qty,
			NetPrice:    price,
			Row:         rowNum,
		})
	}

	return items, skipped
}
