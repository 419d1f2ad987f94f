// Package corpus defines the output record model and its assembly from
// detected article blocks.
package corpus

import (
	"strings"

	"github.com/lexindo/pasalcorpus/internal/config"
	"github.com/lexindo/pasalcorpus/internal/structure"
)

// SectionTypePasal is the section_type constant for per-article records.
// Ayat-level splitting is out of scope, so every record carries it.
const SectionTypePasal = "PASAL"

// Record is one line of the output corpus: statute metadata, the
// structural context active where the article was found, and the
// article text itself.
type Record struct {
	UUCode      string  `json:"uu_code"`
	UUName      string  `json:"uu_name"`
	UUNumber    string  `json:"uu_number"`
	Year        int     `json:"year"`
	SectionType string  `json:"section_type"`
	Title       string  `json:"title"`
	PasalNumber string  `json:"pasal_number"`
	AyatNumber  *string `json:"ayat_number"`
	Buku        *string `json:"buku"`
	Bab         *string `json:"bab"`
	Bagian      *string `json:"bagian"`
	ValidFrom   *string `json:"valid_from"`
	ValidTo     *string `json:"valid_to"`
	SourceFile  string  `json:"source_file"`
	Text        string  `json:"text"`
}

// Assemble merges one source entry and one detected block into a record.
// Pure: no I/O, no failure modes.
func Assemble(src config.Source, blk structure.Block) Record {
	return Record{
		UUCode:      src.UUCode,
		UUName:      src.UUName,
		UUNumber:    src.UUNumber,
		Year:        src.Year,
		SectionType: SectionTypePasal,
		Title:       blk.Title,
		PasalNumber: blk.Number,
		AyatNumber:  nil,
		Buku:        headingLabel(blk.Context.Buku),
		Bab:         headingLabel(blk.Context.Bab),
		Bagian:      headingLabel(blk.Context.Bagian),
		ValidFrom:   src.ValidFrom,
		ValidTo:     src.ValidTo,
		SourceFile:  src.FileName(),
		Text:        blk.Body,
	}
}

func headingLabel(h *structure.Heading) *string {
	if h == nil {
		return nil
	}
	label := h.Label
	return &label
}

// IsPenjelasan reports whether a record is an elucidation block rather
// than normative text: the title names the Penjelasan annex, or the body
// is the boilerplate "Cukup jelas." entry.
func IsPenjelasan(rec Record) bool {
	if strings.Contains(strings.ToLower(rec.Title), "penjelasan") {
		return true
	}
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(rec.Text)), "cukup jelas")
}

// FilterPenjelasan drops elucidation records, returning the kept records
// and the number dropped.
func FilterPenjelasan(records []Record) ([]Record, int) {
	kept := make([]Record, 0, len(records))
	dropped := 0
	for _, rec := range records {
		if IsPenjelasan(rec) {
			dropped++
			continue
		}
		kept = append(kept, rec)
	}
	return kept, dropped
}
