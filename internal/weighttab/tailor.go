package weighttab

import "sync"

// Locale names a CLDR tailoring overlay merged over CLDR root.
type Locale int

const (
	// LocaleRoot is the CLDR root collation order, no overlay.
	LocaleRoot Locale = iota
	// LocaleArabicScript reorders the Arabic script ahead of Latin.
	LocaleArabicScript
	// LocaleArabicInterleaved interleaves Arabic letters among the
	// Latin alphabet by approximate transliteration order.
	LocaleArabicInterleaved
)

// arabicScriptOverlay overrides the root Arabic primaries so the
// whole block sorts ahead of Latin 'a' (whose primary is 0x1000).
var arabicScriptOverlay = map[rune]Element{
	0x0627: Pack(false, 0x0300, 0x20, 0x02),
	0x0628: Pack(false, 0x0310, 0x20, 0x02),
	0x062D: Pack(false, 0x0320, 0x20, 0x02),
	0x062F: Pack(false, 0x0330, 0x20, 0x02),
	0x0645: Pack(false, 0x0340, 0x20, 0x02),
	0x0648: Pack(false, 0x0350, 0x20, 0x02),
	0x064A: Pack(false, 0x0360, 0x20, 0x02),
	0x06CC: Pack(false, 0x0370, 0x20, 0x02),
}

// arabicInterleavedOverlay places the same letters strictly between
// Latin 'a' (0x1000) and 'b' (0x1010).
var arabicInterleavedOverlay = map[rune]Element{
	0x0627: Pack(false, 0x1001, 0x20, 0x02),
	0x0628: Pack(false, 0x1002, 0x20, 0x02),
	0x062D: Pack(false, 0x1003, 0x20, 0x02),
	0x062F: Pack(false, 0x1004, 0x20, 0x02),
	0x0645: Pack(false, 0x1005, 0x20, 0x02),
	0x0648: Pack(false, 0x1006, 0x20, 0x02),
	0x064A: Pack(false, 0x1007, 0x20, 0x02),
	0x06CC: Pack(false, 0x1008, 0x20, 0x02),
}

var (
	ducetOnce  sync.Once
	ducetTable *Table

	cldrRootOnce  sync.Once
	cldrRootTable *Table

	arabicScriptOnce  sync.Once
	arabicScriptTable *Table

	arabicInterleavedOnce  sync.Once
	arabicInterleavedTable *Table
)

// DUCET returns the default Unicode Collation Element Table, building
// it on first use. Safe for concurrent callers.
func DUCET() *Table {
	ducetOnce.Do(func() {
		ducetTable = &Table{
			Low:     buildLow(),
			Singles: baseSingles(),
			Multis:  baseMultis(),
		}
	})
	return ducetTable
}

// CLDRRoot returns the CLDR root collation table, building it on
// first use. Safe for concurrent callers.
func CLDRRoot() *Table {
	cldrRootOnce.Do(func() {
		cldrRootTable = &Table{
			Low:     buildLow(),
			Singles: baseSingles(),
			Multis:  baseMultis(),
		}
	})
	return cldrRootTable
}

// CLDRArabicScript returns the CLDR root table with the
// ArabicScript overlay merged in, building it (and CLDRRoot, if
// needed) on first use.
func CLDRArabicScript() *Table {
	arabicScriptOnce.Do(func() {
		arabicScriptTable = overlay(CLDRRoot(), arabicScriptOverlay)
	})
	return arabicScriptTable
}

// CLDRArabicInterleaved returns the CLDR root table with the
// ArabicInterleaved overlay merged in, building it (and CLDRRoot, if
// needed) on first use.
func CLDRArabicInterleaved() *Table {
	arabicInterleavedOnce.Do(func() {
		arabicInterleavedTable = overlay(CLDRRoot(), arabicInterleavedOverlay)
	})
	return arabicInterleavedTable
}

// overlay copies root's singles table and patches in the overlay
// entries: decode root, then extend with the locale's patch. Low is
// copied as is (it is an array) and Multis is shared by reference,
// since neither shipped tailoring patches them.
func overlay(root *Table, patch map[rune]Element) *Table {
	singles := make(map[rune][]Element, len(root.Singles)+len(patch))
	for cp, row := range root.Singles {
		singles[cp] = row
	}
	for cp, e := range patch {
		singles[cp] = []Element{e}
	}

	return &Table{
		Low:     root.Low,
		Singles: singles,
		Multis:  root.Multis,
	}
}
