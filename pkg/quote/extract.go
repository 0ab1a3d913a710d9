package quote

import (
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"quotewatch/pkg/quote/models"
	"quotewatch/pkg/quote/parser"
)

// Extract parses the workbook at path and returns its cover details and
// per-sheet line items. Hidden sheets are excluded entirely. Extraction is
// deterministic for identical input bytes.
func Extract(path string, opts Options) (*models.Quotation, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	log := opts.logger()

	visible := visibleSheets(f)
	log.Info("sheets enumerated",
		"file", filepath.Base(path),
		"total", len(f.GetSheetList()),
		"visible", len(visible))

	q := &models.Quotation{BookName: filepath.Base(path)}
	if len(visible) == 0 {
		return q, nil
	}

	coverSheet := pickCoverSheet(visible)
	coverRows, err := f.GetRows(coverSheet)
	if err == nil {
		q.Cover = parser.ExtractCoverFields(coverRows, opts.coverFields(), opts.CoverScanRows)
		q.Customer = parser.ExtractCoverFields(coverRows, opts.customerFields(), opts.CoverScanRows)
	} else {
		log.Warn("cover sheet unreadable", "sheet", coverSheet, "error", err)
	}

	for _, sheet := range visible {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warn("sheet skipped", "sheet", sheet, "reason", "unreadable", "error", err)
			continue
		}

		headerIdx := parser.DetectHeaderRow(rows, opts.HeaderScanRows, opts.MinHeaderMatches)
		if headerIdx < 0 {
			log.Info("sheet skipped", "sheet", sheet, "reason", "no header row")
			continue
		}
		cols, ok := parser.ResolveColumns(rows[headerIdx])
		if !ok {
			log.Info("sheet skipped", "sheet", sheet, "reason", "missing required columns")
			continue
		}

		items, skipped := parser.ExtractItems(rows, headerIdx, cols)
		for _, s := range skipped {
			log.Info("row skipped", "sheet", sheet, "row", s.Row, "reason", s.Reason)
		}
		log.Info("sheet processed", "sheet", sheet, "items", len(items))

		q.Sheets = append(q.Sheets, models.SheetItems{Name: sheet, Items: items})
	}

	return q, nil
}

// visibleSheets returns sheet names in workbook order, excluding hidden and
// very-hidden tabs.
func visibleSheets(f *excelize.File) []string {
	var visible []string
	for _, name := range f.GetSheetList() {
		ok, err := f.GetSheetVisible(name)
		if err != nil || !ok {
			continue
		}
		visible = append(visible, name)
	}
	return visible
}

// pickCoverSheet prefers a sheet named "cover", else the first visible sheet.
func pickCoverSheet(visible []string) string {
	for _, name := range visible {
		if strings.EqualFold(strings.TrimSpace(name), "cover") {
			return name
		}
	}
	return visible[0]
}
