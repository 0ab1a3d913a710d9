// Package quote provides quotation extraction from spreadsheet workbooks.
package quote

import (
	"io"
	"log/slog"

	"quotewatch/pkg/quote/parser"
)

// Options configures extraction behavior.
type Options struct {
	// Logger receives sheet- and row-level skip diagnostics.
	// If nil, diagnostics are discarded.
	Logger *slog.Logger
	// CoverScanRows bounds the cover sheet region scanned for labels.
	CoverScanRows int
	// HeaderScanRows bounds the rows scanned for a table header.
	HeaderScanRows int
	// MinHeaderMatches is the header token count required to accept a row
	// as the table header.
	MinHeaderMatches int
	// CoverFields overrides the cover field table (nil uses the default).
	CoverFields []parser.CoverFieldSpec
	// CustomerFields overrides the customer field table (nil uses the default).
	CustomerFields []parser.CoverFieldSpec
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		CoverScanRows:    40,
		HeaderScanRows:   15,
		MinHeaderMatches: 4,
	}
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func (o Options) coverFields() []parser.CoverFieldSpec {
	if o.CoverFields != nil {
		return o.CoverFields
	}
	return parser.DefaultCoverFields()
}

func (o Options) customerFields() []parser.CoverFieldSpec {
	if o.CustomerFields != nil {
		return o.CustomerFields
	}
	return parser.DefaultCustomerFields()
}
