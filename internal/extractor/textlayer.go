package extractor

import (
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// TextLayer reads the PDF text layer page by page. Fast, but yields
// little or nothing for scanned or oddly encoded statutes.
type TextLayer struct{}

func (e *TextLayer) Name() string { return "text-layer" }

func (e *TextLayer) Extract(path string) (text string, err error) {
	// The pdf library panics on some malformed cross-reference tables;
	// surface that as an extraction failure so the chain can move on.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = recoveredError(r)
		}
	}()

	f, reader, err := pdflib.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var buf strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if buf.Len() > 0 {
			buf.WriteString("\n")
		}
		buf.WriteString(strings.ReplaceAll(pageText, "\r", ""))
	}
	return buf.String(), nil
}
