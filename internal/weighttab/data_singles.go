package weighttab

// Combining marks: primary 0 (ignorable at the primary level, so a
// shared base letter plus differing accents still compares on later
// letters first) with an ascending, mark-specific secondary weight so two
// strings differing only by accent still resolve deterministically
// at the secondary level. Tertiary 0x02, matching the non-zero
// tertiary real DUCET/CLDR give combining marks: Shift (element.go)
// zeroes out a primary-0 element only when its tertiary is also 0 (or
// it follows another shifted-variable element), so a non-zero
// tertiary is what keeps an accent's secondary weight alive under the
// default shifting collator instead of collapsing to Equal.
var combiningMarks = map[rune]Element{
	0x0300: Pack(false, 0, 0x25, 0x02), // grave
	0x0301: Pack(false, 0, 0x26, 0x02), // acute
	0x0302: Pack(false, 0, 0x27, 0x02), // circumflex
	0x0303: Pack(false, 0, 0x28, 0x02), // tilde
	0x0304: Pack(false, 0, 0x29, 0x02), // macron
	0x0306: Pack(false, 0, 0x2A, 0x02), // breve
	0x0308: Pack(false, 0, 0x2B, 0x02), // diaeresis
	0x030C: Pack(false, 0, 0x2C, 0x02), // caron
	0x0327: Pack(false, 0, 0x2D, 0x02), // cedilla
	0x0328: Pack(false, 0, 0x2E, 0x02), // ogonek
	0x0654: Pack(false, 0, 0x2F, 0x02), // Arabic hamza above
}

// arabicLetters gives a handful of Arabic block letters a normal
// (after-Latin) primary weight in the un-tailored root tables, so the
// tailorings in tailor.go have something to override.
var arabicLetters = map[rune]Element{
	0x0627: Pack(false, 0x2000, 0x20, 0x02), // alef
	0x0628: Pack(false, 0x2010, 0x20, 0x02), // beh
	0x062D: Pack(false, 0x2020, 0x20, 0x02), // hah
	0x062F: Pack(false, 0x2030, 0x20, 0x02), // dal
	0x0645: Pack(false, 0x2040, 0x20, 0x02), // meem
	0x0648: Pack(false, 0x2050, 0x20, 0x02), // waw
	0x064A: Pack(false, 0x2060, 0x20, 0x02), // yeh
	0x06CC: Pack(false, 0x2070, 0x20, 0x02), // Farsi yeh
}

// lLetters gives L/l (U+004C/U+006C) their own singles-table entry.
// The low-weights table (data_low.go) deliberately excludes both —
// they are NEED_TWO contraction starters (consts.go), so the CEA
// builder always routes them through the multis-lookup path first —
// but a starter that fails every multi-code-point lookup still falls
// back to a plain singles entry, which must exist.
// Weights match the scheme buildLow uses for every other Basic Latin
// letter, so L/l sort exactly where alphabetic order puts them.
var lLetters = map[rune]Element{
	0x004C: Pack(false, 0x10B0, 0x20, 0x08), // L
	0x006C: Pack(false, 0x10B0, 0x20, 0x02), // l
}

// cyrillicLetters gives the two NeedTwo Cyrillic starters (short I's
// base letters) a plain fallback weight, used when they aren't
// followed by the combining breve that would otherwise trigger the
// multis-table contraction in data_multis.go.
var cyrillicLetters = map[rune]Element{
	0x0418: Pack(false, 0x2100, 0x20, 0x08), // И
	0x0438: Pack(false, 0x2100, 0x20, 0x02), // и
}

// fdfaRow is the singles entry for U+FDFA (ARABIC LIGATURE SALLALLAHOU
// ALAYHE WASSALLAM), the outlier code point whose collation-element
// expansion — 18 elements — is the longest of any single code point,
// used to exercise CEA buffer growth.
var fdfaRow = buildFdfaRow()

func buildFdfaRow() []Element {
	row := make([]Element, 18)
	for i := range row {
		row[i] = Pack(false, 0x3000+uint16(i)*4, 0x20, 0x02)
	}
	return row
}

// baseSingles assembles the singles table shared by DUCET and CLDR
// root before either's locale tailoring is applied.
func baseSingles() map[rune][]Element {
	m := make(map[rune][]Element, len(combiningMarks)+len(arabicLetters)+len(cyrillicLetters)+len(lLetters)+1)
	for cp, e := range combiningMarks {
		m[cp] = []Element{e}
	}
	for cp, e := range arabicLetters {
		m[cp] = []Element{e}
	}
	for cp, e := range cyrillicLetters {
		m[cp] = []Element{e}
	}
	for cp, e := range lLetters {
		m[cp] = []Element{e}
	}
	m[0xFDFA] = fdfaRow
	return m
}
