package pipeline

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bytedance/sonic"

	"github.com/lexindo/pasalcorpus/internal/config"
	"github.com/lexindo/pasalcorpus/internal/corpus"
)

const statuteText = `UNDANG-UNDANG REPUBLIK INDONESIA
BAB I
KETENTUAN UMUM
Pasal 1
Dalam Undang-Undang ini yang dimaksud dengan pem-
bentukan adalah proses.
Pasal 2
(1) Setiap orang berhak atas perlindungan.
(2) Ketentuan lebih lanjut diatur dengan Peraturan Pemerintah.
Pasal 3
Cukup jelas.
`

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeSource(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func testConfig() config.Config {
	return config.Config{
		ManifestPath: "sources.yaml",
		OutputPath:   "final_corpus.jsonl",
		MinTextLen:   1,
	}
}

func decodeRecords(t *testing.T, out []byte) []corpus.Record {
	t.Helper()
	var records []corpus.Record
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		var rec corpus.Record
		if err := sonic.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("invalid JSONL line %q: %v", line, err)
		}
		records = append(records, rec)
	}
	return records
}

func TestRun_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "uu_test.txt", statuteText)

	manifest := &config.Manifest{Sources: []config.Source{{
		Path:     path,
		UUCode:   "UU_TEST",
		UUName:   "Undang-Undang Uji Coba",
		UUNumber: "UU No. 1 Tahun 2023",
		Year:     2023,
	}}}

	var buf bytes.Buffer
	sum, err := New(testConfig(), testLogger()).Run(context.Background(), manifest, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sum.FilesProcessed != 1 || sum.FilesSkipped != 0 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	// Pasal 3 is "Cukup jelas." and must be filtered.
	if sum.RecordsWritten != 2 || sum.PenjelasanDropped != 1 {
		t.Errorf("expected 2 written and 1 dropped, got %+v", sum)
	}

	records := decodeRecords(t, buf.Bytes())
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.Title != "Pasal 1" || first.PasalNumber != "1" {
		t.Errorf("first record identity wrong: %+v", first)
	}
	if first.Bab == nil || *first.Bab != "I" {
		t.Errorf("expected bab I, got %v", first.Bab)
	}
	if !strings.HasPrefix(first.Text, "Dalam Undang-Undang ini") {
		t.Errorf("unexpected first text: %q", first.Text)
	}
	if !strings.Contains(first.Text, "pembentukan") {
		t.Errorf("hyphenation not rejoined: %q", first.Text)
	}
	if first.SourceFile != "uu_test.txt" {
		t.Errorf("expected source_file uu_test.txt, got %q", first.SourceFile)
	}
	if first.UUCode != "UU_TEST" || first.Year != 2023 {
		t.Errorf("metadata not carried: %+v", first)
	}

	second := records[1]
	if second.PasalNumber != "2" {
		t.Errorf("expected pasal 2, got %q", second.PasalNumber)
	}
	if second.Bab == nil || *second.Bab != "I" {
		t.Errorf("chapter context not inherited: %v", second.Bab)
	}
	for _, marker := range []string{"(1)", "(2)"} {
		if !strings.Contains(second.Text, marker) {
			t.Errorf("ayat marker %s lost: %q", marker, second.Text)
		}
	}
	if second.AyatNumber != nil {
		t.Errorf("ayat_number must stay null, got %v", *second.AyatNumber)
	}
}

func TestRun_MissingFileSkipped(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "uu_good.txt", statuteText)

	manifest := &config.Manifest{Sources: []config.Source{
		{Path: filepath.Join(dir, "uu_missing.txt"), UUCode: "UU_MISSING"},
		{Path: good, UUCode: "UU_GOOD"},
	}}

	var buf bytes.Buffer
	sum, err := New(testConfig(), testLogger()).Run(context.Background(), manifest, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.FilesSkipped != 1 || sum.FilesProcessed != 1 {
		t.Errorf("unexpected summary: %+v", sum)
	}
	for _, rec := range decodeRecords(t, buf.Bytes()) {
		if rec.UUCode != "UU_GOOD" {
			t.Errorf("record from skipped source leaked: %+v", rec)
		}
	}
}

func TestRun_InvalidEntrySkipped(t *testing.T) {
	dir := t.TempDir()
	good := writeSource(t, dir, "uu_good.txt", statuteText)

	manifest := &config.Manifest{Sources: []config.Source{
		{Path: good}, // missing uu_code
		{Path: good, UUCode: "UU_GOOD"},
	}}

	var buf bytes.Buffer
	sum, err := New(testConfig(), testLogger()).Run(context.Background(), manifest, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.FilesSkipped != 1 || sum.FilesProcessed != 1 {
		t.Errorf("unexpected summary: %+v", sum)
	}
}

func TestRun_EmptyExtractionYieldsNoRecords(t *testing.T) {
	dir := t.TempDir()
	empty := writeSource(t, dir, "uu_empty.txt", "")
	good := writeSource(t, dir, "uu_good.txt", statuteText)

	manifest := &config.Manifest{Sources: []config.Source{
		{Path: empty, UUCode: "UU_EMPTY"},
		{Path: good, UUCode: "UU_GOOD"},
	}}

	var buf bytes.Buffer
	sum, err := New(testConfig(), testLogger()).Run(context.Background(), manifest, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.FilesSkipped != 1 {
		t.Errorf("empty extraction should skip the file: %+v", sum)
	}
	for _, rec := range decodeRecords(t, buf.Bytes()) {
		if rec.UUCode == "UU_EMPTY" {
			t.Errorf("record emitted for empty source: %+v", rec)
		}
	}
}

func TestRun_NoArticleHeaders(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "uu_plain.txt", "Dokumen tanpa struktur pasal sama sekali.\n")

	manifest := &config.Manifest{Sources: []config.Source{{Path: path, UUCode: "UU_PLAIN"}}}

	var buf bytes.Buffer
	sum, err := New(testConfig(), testLogger()).Run(context.Background(), manifest, &buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.FilesProcessed != 1 || sum.RecordsWritten != 0 {
		t.Errorf("expected processed file with zero records, got %+v", sum)
	}
	if strings.TrimSpace(buf.String()) != "" {
		t.Errorf("expected empty output, got %q", buf.String())
	}
}

func TestRun_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := writeSource(t, dir, "uu_test.txt", statuteText)
	manifest := &config.Manifest{Sources: []config.Source{{Path: path, UUCode: "UU_TEST"}}}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if _, err := New(testConfig(), testLogger()).Run(ctx, manifest, &buf); err == nil {
		t.Fatal("expected context error")
	}
}
