package corpus

import (
	"fmt"
	"io"

	"github.com/bytedance/sonic"
)

// Writer appends records to an output stream as newline-delimited JSON,
// one record per line, UTF-8.
type Writer struct {
	w     io.Writer
	count int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Write serializes one record and appends it as a single line.
func (jw *Writer) Write(rec Record) error {
	data, err := sonic.Marshal(rec)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	data = append(data, '\n')
	if _, err := jw.w.Write(data); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	jw.count++
	return nil
}

// WriteAll writes records in order, stopping at the first write error.
func (jw *Writer) WriteAll(records []Record) error {
	for _, rec := range records {
		if err := jw.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of records written so far.
func (jw *Writer) Count() int {
	return jw.count
}
