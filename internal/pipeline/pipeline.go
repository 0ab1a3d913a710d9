// Package pipeline orchestrates the per-file extract, write, archive pass.
package pipeline

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"quotewatch/internal/archive"
	"quotewatch/internal/config"
	"quotewatch/pkg/quote"
	"quotewatch/pkg/quote/output"
)

// Pipeline processes one workbook start-to-finish. All errors are absorbed
// at this boundary: failures are logged, the input file is left where the
// user can notice it, and the caller's loop keeps running.
type Pipeline struct {
	cfg    *config.Config
	log    *slog.Logger
	margin decimal.Decimal
	now    func() time.Time
}

// New creates a Pipeline. A nil logger discards diagnostics.
func New(cfg *config.Config, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		cfg:    cfg,
		log:    log,
		margin: decimal.NewFromFloat(cfg.MarginPercent),
		now:    time.Now,
	}
}

// OutputPath returns where the normalized workbook for path is written:
// same base name, .xlsx extension, in the output directory.
func (p *Pipeline) OutputPath(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(p.cfg.OutputDir, stem+".xlsx")
}

// Process extracts the workbook, writes the normalized output, and archives
// the input. An unreadable workbook or a failed write leaves the input in
// the upload folder; only a successful write triggers archiving.
func (p *Pipeline) Process(path string) error {
	p.log.Info("processing", "file", path)

	opts := quote.DefaultOptions()
	opts.Logger = p.log
	q, err := quote.Extract(path, opts)
	if err != nil {
		p.log.Error("unreadable workbook, leaving in upload", "file", path, "error", err)
		return err
	}

	outPath := p.OutputPath(path)
	if err := output.Write(q, outPath, p.margin); err != nil {
		p.log.Error("output write failed, not archiving", "file", path, "error", err)
		return err
	}
	p.log.Info("output written", "file", path, "output", outPath, "items", q.TotalItems())

	archived, err := archive.Move(path, p.cfg.ArchiveDir, p.now())
	if err != nil {
		p.log.Error("archive failed", "file", path, "error", err)
		return err
	}
	p.log.Info("archived", "file", path, "archive", archived)
	return nil
}
