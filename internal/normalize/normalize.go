// Package normalize applies minimal textual cleanup to raw extracted
// statute text. It is purely local: no knowledge of document structure.
package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	// hyphenBreakRe matches a word split across a line break: hyphen,
	// newline, then a lowercase continuation.
	hyphenBreakRe = regexp.MustCompile(`(\p{L})-\n\s*(\p{Ll})`)

	// spacedEllipsisRe matches spaced dot runs (". . .") that PDF text
	// layers produce for fill leaders. Confined to a single line: the
	// structure detector needs header lines kept intact.
	spacedEllipsisRe = regexp.MustCompile(`[ \t]*\.[ \t]*\.[ \t]*\.[ \t]*`)

	// blankRunRe and spaceRunRe squeeze redundant whitespace.
	blankRunRe = regexp.MustCompile(`\n{4,}`)
	spaceRunRe = regexp.MustCompile(`[ \t]{2,}`)

	// pageNumberRe matches lines carrying only a page number.
	pageNumberRe = regexp.MustCompile(`^\s*\d+\s*$`)
)

// Clean normalizes raw extracted text. Operations, in order: strip NUL
// bytes, unicode NFKC, rejoin hyphenated line breaks, collapse spaced
// dot runs to an ellipsis, trim line endings, squeeze blank-line and
// space runs. Parenthesized ayat markers like (1) pass through verbatim.
// Clean is idempotent.
func Clean(t string) string {
	t = strings.ReplaceAll(t, "\x00", "")
	t = norm.NFKC.String(t)
	t = hyphenBreakRe.ReplaceAllString(t, "$1$2")
	t = spacedEllipsisRe.ReplaceAllString(t, "…")

	lines := strings.Split(t, "\n")
	for i, ln := range lines {
		lines[i] = strings.TrimRight(ln, " \t")
	}
	t = strings.Join(lines, "\n")

	t = blankRunRe.ReplaceAllString(t, "\n\n")
	t = spaceRunRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// StripArtifacts removes extraction debris that would confuse the
// structure detector: lines containing only a page number.
func StripArtifacts(t string) string {
	lines := strings.Split(t, "\n")
	kept := lines[:0]
	for _, ln := range lines {
		if pageNumberRe.MatchString(ln) {
			continue
		}
		kept = append(kept, ln)
	}
	return strings.Join(kept, "\n")
}
