package extractor

import (
	"fmt"
	"os/exec"
	"strings"
)

// Pdftotext shells out to poppler's pdftotext. Last resort for PDFs both
// Go readers choke on; only wired into the chain when enabled in config.
type Pdftotext struct{}

func (e *Pdftotext) Name() string { return "pdftotext" }

func (e *Pdftotext) Extract(path string) (string, error) {
	if _, err := exec.LookPath("pdftotext"); err != nil {
		return "", fmt.Errorf("pdftotext not found: %w", err)
	}
	out, err := exec.Command("pdftotext", "-layout", "-enc", "UTF-8", path, "-").Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}
	return strings.ReplaceAll(string(out), "\r", ""), nil
}
