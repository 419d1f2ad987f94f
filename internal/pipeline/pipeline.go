// Package pipeline drives the corpus build: extract, normalize, detect,
// assemble, write — one source file at a time, in manifest order.
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/lexindo/pasalcorpus/internal/config"
	"github.com/lexindo/pasalcorpus/internal/corpus"
	"github.com/lexindo/pasalcorpus/internal/extractor"
	"github.com/lexindo/pasalcorpus/internal/normalize"
	"github.com/lexindo/pasalcorpus/internal/structure"
)

// Summary aggregates what one run did.
type Summary struct {
	FilesProcessed    int
	FilesSkipped      int
	RecordsWritten    int
	PenjelasanDropped int
	FallbackUses      int
}

// Runner executes the build pipeline sequentially. A single-file failure
// is logged and skipped; only an output write error aborts the run.
type Runner struct {
	cfg config.Config
	log *slog.Logger
}

func New(cfg config.Config, log *slog.Logger) *Runner {
	return &Runner{cfg: cfg, log: log}
}

// Run processes every manifest source in order and appends the resulting
// records to out. The context is checked between files so a long run can
// be interrupted cleanly; in-flight extraction calls are not preempted.
func (r *Runner) Run(ctx context.Context, manifest *config.Manifest, out io.Writer) (Summary, error) {
	var sum Summary
	writer := corpus.NewWriter(out)

	for _, src := range manifest.Sources {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		records, fellBack, err := r.processSource(src)
		if err != nil {
			r.log.Warn("skipping source", "file", src.Path, "error", err)
			sum.FilesSkipped++
			continue
		}
		if fellBack {
			sum.FallbackUses++
		}

		kept, dropped := corpus.FilterPenjelasan(records)
		sum.PenjelasanDropped += dropped

		if err := writer.WriteAll(kept); err != nil {
			return sum, err
		}
		sum.FilesProcessed++
		sum.RecordsWritten = writer.Count()

		r.log.Info("extracted records",
			"file", src.FileName(),
			"records", len(kept),
			"penjelasan_dropped", dropped)
	}

	return sum, nil
}

// processSource runs extraction through assembly for one manifest entry.
func (r *Runner) processSource(src config.Source) ([]corpus.Record, bool, error) {
	if err := src.Validate(); err != nil {
		return nil, false, err
	}
	if _, err := os.Stat(src.Path); err != nil {
		return nil, false, err
	}

	chain, err := extractor.ForFile(src.Path, r.cfg.MinTextLen, r.cfg.FallbackPdftotext)
	if err != nil {
		return nil, false, err
	}

	result, err := chain.Extract(src.Path)
	if err != nil {
		return nil, false, err
	}
	if result.FellBack {
		r.log.Info("extraction fell back", "file", src.FileName(), "strategy", result.Strategy)
	}

	text := normalize.StripArtifacts(normalize.Clean(result.Text))
	blocks := structure.Detect(text)

	records := make([]corpus.Record, 0, len(blocks))
	for _, blk := range blocks {
		records = append(records, corpus.Assemble(src, blk))
	}
	return records, result.FellBack, nil
}
