// Package output renders extracted quotations into normalized workbooks.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"quotewatch/pkg/quote/models"
)

// SheetName is the single sheet of the normalized output workbook.
const SheetName = "Consolidated"

// tariffModel is exempt from margin uplift.
const tariffModel = "TARIFF"

// minSellPrice floors an uplifted price that rounds to zero.
var minSellPrice = decimal.RequireFromString("0.01")

var oneHundred = decimal.NewFromInt(100)

// WriteError wraps a failure to save the output workbook.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Write renders the quotation into a one-sheet workbook at path, overwriting
// any prior output of the same name. Cover and customer fields come first,
// one label/value row each, then per source sheet one formatted line per
// item. A quotation with zero items still produces the cover sections.
func Write(q *models.Quotation, path string, marginPercent decimal.Decimal) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return &WriteError{Path: path, Err: err}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}})
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	sheetStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}

	row := 1
	setCell := func(col string, r int, v string) {
		_ = f.SetCellValue(SheetName, fmt.Sprintf("%s%d", col, r), v)
	}

	setCell("A", row, "Cover")
	_ = f.SetCellStyle(SheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), titleStyle)
	row++

	row = writeFieldSection(setCell, row, "Cover Details:", q.Cover)
	row++
	row = writeFieldSection(setCell, row, "Customer Details:", q.Customer)
	row++

	for _, sheet := range q.Sheets {
		setCell("A", row, sheet.Name)
		_ = f.SetCellStyle(SheetName, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), sheetStyle)
		row++
		for _, item := range sheet.Items {
			setCell("A", row, FormatLine(item, marginPercent))
			row++
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return &WriteError{Path: path, Err: err}
	}
	return nil
}

func writeFieldSection(setCell func(string, int, string), row int, title string, fields models.CoverDetails) int {
	setCell("A", row, title)
	row++
	for _, field := range fields {
		setCell("A", row, field.Key)
		setCell("B", row, field.Value)
		row++
	}
	return row
}

// FormatLine renders one line item using the fixed external contract
// "<Model> <Qty> <Sell>,*,*,*,<Net>". Quantity carries one decimal place,
// prices two. The three asterisks are placeholders preserved verbatim.
func FormatLine(item models.LineItem, marginPercent decimal.Decimal) string {
	sell := SellPrice(item, marginPercent)
	return fmt.Sprintf("%s %s %s,*,*,*,%s",
		item.ModelNumber,
		item.Quantity.StringFixed(1),
		sell.StringFixed(2),
		item.NetPrice.StringFixed(2))
}

// SellPrice uplifts the net price by the margin: net / (1 - margin/100),
// floored at 0.01. A zero margin leaves the net price untouched, and model
// "TARIFF" is always exempt.
func SellPrice(item models.LineItem, marginPercent decimal.Decimal) decimal.Decimal {
	if marginPercent.IsZero() || strings.EqualFold(item.ModelNumber, tariffModel) {
		return item.NetPrice
	}
	denom := decimal.NewFromInt(1).Sub(marginPercent.Div(oneHundred))
	if denom.IsZero() {
		return item.NetPrice
	}
	sell := item.NetPrice.Div(denom)
	if sell.Round(2).IsZero() {
		return minSellPrice
	}
	return sell
}
