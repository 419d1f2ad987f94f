package extractor

import (
	"os"
	"strings"
)

// PlainFile reads an already-extracted text dump. Useful when a statute
// only exists as a text transcription.
type PlainFile struct{}

func (e *PlainFile) Name() string { return "plain-file" }

func (e *PlainFile) Extract(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r", ""), nil
}
