// Package ucd exposes the three per-codepoint oracles the collation
// engine treats as given external resources: canonical combining
// class, canonical decomposition, and FCD (first/last CCC of the
// decomposition). All three are backed by golang.org/x/text's own
// normalization tables rather than a hand-maintained copy of the UCD —
// deriving a fresh decomposition/FCD table from UnicodeData.txt is a
// data-pipeline concern, not an algorithm concern.
package ucd

import (
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// CCC returns the canonical combining class of cp, in 0..=254.
func CCC(cp rune) uint8 {
	return norm.NFD.PropertiesString(string(cp)).CCC()
}

// Decomposition returns the canonical decomposition of cp as a slice
// of code points, or nil if cp has no canonical decomposition (or
// only a compatibility one — those are out of scope for NFD).
func Decomposition(cp rune) []rune {
	props := norm.NFD.PropertiesString(string(cp))
	dec := props.Decomposition()
	if dec == nil {
		return nil
	}
	out := make([]rune, 0, len(dec))
	for len(dec) > 0 {
		r, size := utf8.DecodeRune(dec)
		out = append(out, r)
		dec = dec[size:]
	}
	// A decomposition identical to the input single code point isn't
	// a real decomposition (norm reports trivial "decompositions" for
	// some Hangul-adjacent and singleton entries); guard defensively.
	if len(out) == 1 && out[0] == cp {
		return nil
	}
	return out
}

// FCD returns the leading and trailing canonical combining class of
// cp's canonical decomposition (both equal to CCC(cp) if cp doesn't
// decompose).
func FCD(cp rune) (lead, trail uint8) {
	props := norm.NFD.PropertiesString(string(cp))
	return props.LeadCCC(), props.TrailCCC()
}
