package weighttab

// baseMultis assembles the shared DUCET/CLDR-root contraction table.
//
// Cyrillic short I (Й / й) canonically decomposes to its base letter
// plus the combining breve (U+0306), but UCA treats it as its own
// letter — sorted immediately after И/и — rather than as an accented
// variant, so the breve's weight can't simply be "the usual
// diacritic secondary bump" the way it is for Latin combining marks.
// The contraction table is exactly UCA's mechanism for this: when the
// breve immediately follows one of the two base letters, the pair is
// looked up as a unit and gets its own primary weight, just past the
// base letter's.
func baseMultis() map[MultiKey][]Element {
	return map[MultiKey][]Element{
		Key2(0x0418, 0x0306): {Pack(false, 0x2101, 0x20, 0x08)}, // Й
		Key2(0x0438, 0x0306): {Pack(false, 0x2101, 0x20, 0x02)}, // й
	}
}
