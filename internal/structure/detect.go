// Package structure segments normalized statute text into per-article
// blocks, tracking the enclosing BUKU/BAB/Bagian hierarchy.
package structure

import (
	"regexp"
	"strings"
)

var (
	pasalRe  = regexp.MustCompile(`(?i)^\s*Pasal\s+((?:\d+[A-Za-z]?)|(?:[IVXLCM]+))\s*$`)
	bukuRe   = regexp.MustCompile(`(?i)^\s*BUKU\s+([IVXLC]+)\s*(.*)$`)
	babRe    = regexp.MustCompile(`(?i)^\s*BAB\s+([IVXLC]+)\s*(.*)$`)
	bagianRe = regexp.MustCompile(`(?i)^\s*Bagian\s+((?:[0-9IVXLC]+)|(?:Ke\p{Ll}+))\s*(.*)$`)
)

// Heading is one recognized division header: its label ("I", "Kesatu")
// and whatever title text followed on the same line, often empty because
// statute titles sit on the next line.
type Heading struct {
	Label string
	Title string
}

// Context holds the most recently seen division headers while scanning.
// It is a "latest seen" tuple, not a tree: a new header simply overwrites
// its slot and clears the slots below it.
type Context struct {
	Buku   *Heading
	Bab    *Heading
	Bagian *Heading
}

// Block is one detected article with the context active at its header.
type Block struct {
	Context Context
	Number  string
	Title   string
	Body    string
}

// Detect scans text line by line and returns article blocks in document
// order. Text before the first article header only sets context. A text
// with no article headers yields nil.
//
// Detection is pattern-only: a prose line that happens to start with
// "Pasal N" and nothing else will be taken for a header. That ambiguity
// is inherent to the format and left as is.
func Detect(text string) []Block {
	var (
		blocks  []Block
		ctx     Context
		current *Block
		body    []string
	)

	flush := func() {
		if current == nil {
			return
		}
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		blocks = append(blocks, *current)
		current = nil
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		switch {
		case bukuRe.MatchString(line):
			flush()
			m := bukuRe.FindStringSubmatch(line)
			ctx.Buku = &Heading{Label: strings.TrimSpace(m[1]), Title: strings.TrimSpace(m[2])}
			ctx.Bab = nil
			ctx.Bagian = nil
		case babRe.MatchString(line):
			flush()
			m := babRe.FindStringSubmatch(line)
			ctx.Bab = &Heading{Label: strings.TrimSpace(m[1]), Title: strings.TrimSpace(m[2])}
			ctx.Bagian = nil
		case bagianRe.MatchString(line):
			flush()
			m := bagianRe.FindStringSubmatch(line)
			ctx.Bagian = &Heading{Label: strings.TrimSpace(m[1]), Title: strings.TrimSpace(m[2])}
		case pasalRe.MatchString(line):
			flush()
			m := pasalRe.FindStringSubmatch(line)
			number := strings.TrimSpace(m[1])
			current = &Block{
				Context: ctx,
				Number:  number,
				Title:   "Pasal " + number,
			}
		default:
			if current != nil {
				body = append(body, line)
			}
		}
	}
	flush()

	return blocks
}
