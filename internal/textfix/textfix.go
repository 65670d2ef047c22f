// Package textfix normalizes the free-text fields of imported cards.
//
// Imports arrive with artifacts of the editor they were written in:
// whitespace-only lines, header and alignment markup the renderer does
// not understand, curly quotation marks, and a stray horizontal rule
// after blockquotes. Fix applies the cleanup rules in a fixed order and
// is idempotent: running it over already-clean text changes nothing.
package textfix

import (
	"regexp"
	"strings"
)

// whitespaceLine matches a line consisting only of spaces or tabs
// between two newlines.
var whitespaceLine = regexp.MustCompile(`\n[ \t]+\n`)

var replacer = strings.NewReplacer(
	"<hdr>", "<b>",
	"</hdr>", "</b>",
	"<right>", "",
	"</right>", "",
	"<left>", "",
	"</left>", "",
	"<center>", "",
	"</center>", "",
	"“", `"`,
	"”", `"`,
	"</blockquote><hr>", "</blockquote>\n",
)

// Fix applies the standard text cleanups:
//
//  1. collapse whitespace-only lines into a single newline
//  2. replace <hdr>/</hdr> with <b>/</b>
//  3. strip <right>, <left> and <center> alignment tags entirely
//  4. collapse empty <hdr></hdr> and <b></b> pairs to nothing
//  5. normalize curly double quotes to straight quotes
//  6. replace </blockquote><hr> with </blockquote> and a newline
//
// The rules run in that order and repeat until the text stops changing,
// so nested degenerate markup (for example <b><b></b></b>) is removed
// completely and Fix(Fix(s)) == Fix(s) for every input.
func Fix(s string) string {
	for {
		fixed := fixOnce(s)
		if fixed == s {
			return fixed
		}
		s = fixed
	}
}

func fixOnce(s string) string {
	s = whitespaceLine.ReplaceAllString(s, "\n")
	s = replacer.Replace(s)
	s = strings.ReplaceAll(s, "<hdr></hdr>", "")
	s = strings.ReplaceAll(s, "<b></b>", "")
	return s
}
