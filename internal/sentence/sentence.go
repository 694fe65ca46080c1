// Package sentence implements the small amount of text segmentation the
// engine owns itself: splitting whitespace-delimited eojeol and stripping
// a trailing sentence mark before dictionary lookup. Sentence-level
// tokenization beyond that is left to the caller.
package sentence

import (
	"strings"

	"golang.org/x/text/width"
)

// Split breaks a line into whitespace-delimited eojeol, after folding any
// fullwidth/halfwidth punctuation variants to their canonical ASCII form
// so the sentence-mark set matches regardless of input encoding quirks.
func Split(line string) []string {
	return strings.Fields(width.Narrow.String(line))
}

// StripMark removes a single trailing sentence mark from eojeol, if marks
// contains it, returning the stripped eojeol and the mark (or "" if none
// was present).
func StripMark(eojeol string, marks []string) (string, string) {
	for _, m := range marks {
		if strings.HasSuffix(eojeol, m) {
			return strings.TrimSuffix(eojeol, m), m
		}
	}
	return eojeol, ""
}
