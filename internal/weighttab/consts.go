// Package weighttab holds the collation weight tables (DUCET, CLDR
// root, and the two shipped locale tailorings) plus the structural
// code-point sets the CEA builder consults: which code points start
// two- or three-code-point contractions, and which four unassigned
// code points are erroneously covered by the CJK implicit-weight
// ranges.
//
// The structural sets below are facts about the UCA/CLDR tables
// themselves (which code points happen to begin a listed contraction)
// rather than derived weight values, so they are carried over as-is
// from the reference collation implementation consulted for this
// package; the weight tables in data_*.go are a representative,
// hand-curated subset rather than a full derivation from the Unicode
// Character Database.
package weighttab

// NeedThree holds the code points that can start a three-code-point
// sequence in the collation tables.
var NeedThree = map[rune]bool{
	0x0CC6: true,
	0x0DD9: true,
	0x0FB2: true,
	0x0FB3: true,
}

// NeedTwo holds the code points that can start a two-code-point
// sequence in the collation tables. 0x004C and 0x006C (L, l) are
// included here, which is why the low-weights table excludes them:
// they must always go through the singles/multis path so a
// contraction starting with them is never shadowed by the low-weight
// fast path.
var NeedTwo = map[rune]bool{
	0x004C: true, 0x006C: true, 0x0418: true, 0x0438: true,
	0x0627: true, 0x0648: true, 0x064A: true, 0x09C7: true,
	0x0B47: true, 0x0B92: true, 0x0BC6: true, 0x0BC7: true,
	0x0C46: true, 0x0CBF: true, 0x0CCA: true, 0x0D46: true,
	0x0D47: true, 0x0DDC: true, 0x0E40: true, 0x0E41: true,
	0x0E42: true, 0x0E43: true, 0x0E44: true, 0x0E4D: true,
	0x0EC0: true, 0x0EC1: true, 0x0EC2: true, 0x0EC3: true,
	0x0EC4: true, 0x0ECD: true, 0x0F71: true, 0x1025: true,
	0x19B5: true, 0x19B6: true, 0x19B7: true, 0x19BA: true,
	0x1B05: true, 0x1B07: true, 0x1B09: true, 0x1B0B: true,
	0x1B0D: true, 0x1B11: true, 0x1B3A: true, 0x1B3C: true,
	0x1B3E: true, 0x1B3F: true, 0x1B42: true, 0xAAB5: true,
	0xAAB6: true, 0xAAB9: true, 0xAABB: true, 0xAABC: true,
	0x11131: true, 0x11132: true, 0x11347: true, 0x114B9: true,
	0x115B8: true, 0x115B9: true, 0x11935: true,
}

// IncludedUnassigned lists code points erroneously covered by one of
// the CJK Extension implicit-weight ranges despite being
// unassigned; they must use the unassigned-block formula instead.
var IncludedUnassigned = map[rune]bool{
	0x2B73A: true,
	0x2B81E: true,
	0x2CEA2: true,
	0x2EBE1: true,
}

// LowTableLimit is the exclusive upper bound of the dense low-weights
// table: every code point below this value, except the two
// contraction starters in NeedTwo, has a direct entry.
const LowTableLimit = 0xB7
