// Package normalize cleans free-text roster fields on intake.
// Pipeline order
// 1 UTF-8 repair drop invalid bytes
// 2 Whitespace runs collapse to one space
// 3 Unicode NFC so accented names compare byte-equal
// 4 Remove control and format chars (ZWSP, ZWJ, BOM)
// 5 Width fold fullwidth forms to ASCII
// 6 Trim
//
// Case is kept: search lower-cases at query time, display wants the original
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// chains are not safe for concurrent use, pool them
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFC,
			runes.Remove(runes.In(unicode.Cc)),
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// Display returns s cleaned for storage in a display field (name, department)
func Display(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToValidUTF8(s, "")
	s = collapseSpaces(s)

	tr := chainPool.Get().(transform.Transformer)
	ns, _, err := transform.String(tr, s)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// transform only fails on malformed input we already repaired
		ns = s
	}
	return collapseSpaces(ns)
}

// Registration cleans a registration number: Display plus no inner spaces,
// so "45 21" and "４５２１" both become "4521"
func Registration(s string) string {
	return strings.ReplaceAll(Display(s), " ", "")
}

// collapseSpaces turns every whitespace run into one ASCII space and trims the edges
func collapseSpaces(s string) string {
	return strings.Join(strings.FieldsFunc(s, unicode.IsSpace), " ")
}
