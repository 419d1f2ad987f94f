package extractor

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrTextTooShort marks a strategy result rejected by the acceptance
// threshold, as opposed to an outright extraction failure.
var ErrTextTooShort = errors.New("extracted text below minimum length")

// Strategy extracts the raw text content of one document.
type Strategy interface {
	Name() string
	Extract(path string) (string, error)
}

// Result is the outcome of a chain run: the chosen text, which strategy
// produced it, and whether the primary strategy was bypassed.
type Result struct {
	Text     string
	Strategy string
	FellBack bool
}

// Chain tries strategies in order and accepts the first result meeting
// MinTextLen. When no strategy meets the threshold, the longest text seen
// is returned; the chain only errors when every strategy yields nothing.
type Chain struct {
	Strategies []Strategy
	MinTextLen int
}

func (c *Chain) Extract(path string) (Result, error) {
	var (
		best     Result
		failures []error
	)

	for i, s := range c.Strategies {
		text, err := s.Extract(path)
		if err != nil {
			failures = append(failures, fmt.Errorf("%s: %w", s.Name(), err))
			continue
		}
		if len(text) >= c.MinTextLen {
			return Result{Text: text, Strategy: s.Name(), FellBack: i > 0}, nil
		}
		failures = append(failures, fmt.Errorf("%s: %w (%d chars)", s.Name(), ErrTextTooShort, len(text)))
		if len(text) > len(best.Text) {
			best = Result{Text: text, Strategy: s.Name(), FellBack: i > 0}
		}
	}

	if strings.TrimSpace(best.Text) != "" {
		return best, nil
	}
	return Result{}, errors.Join(failures...)
}

// SupportedExtensions lists document types the chain can dispatch.
var SupportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// ForFile builds the strategy chain for a file based on its extension.
// PDFs get the text-layer reader first, then the content-stream walker,
// then pdftotext when enabled.
func ForFile(path string, minTextLen int, fallbackPdftotext bool) (*Chain, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		strategies := []Strategy{&TextLayer{}, &ContentStream{}}
		if fallbackPdftotext {
			strategies = append(strategies, &Pdftotext{})
		}
		return &Chain{Strategies: strategies, MinTextLen: minTextLen}, nil
	case ".docx":
		return &Chain{Strategies: []Strategy{&DOCX{}}, MinTextLen: minTextLen}, nil
	case ".txt":
		return &Chain{Strategies: []Strategy{&PlainFile{}}, MinTextLen: minTextLen}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}
