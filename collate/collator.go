package collate

import (
	"bytes"

	"github.com/boxesandglue/collate/internal/weighttab"
)

// Order is the result of a comparison.
type Order int

const (
	Less    Order = -1
	Equal   Order = 0
	Greater Order = 1
)

// Tailoring selects which weight table a Collator draws from.
type Tailoring int

const (
	// Ducet selects the Unicode default collation element table.
	Ducet Tailoring = iota
	// CldrRoot selects the CLDR root collation order.
	CldrRoot
	// CldrArabicScript overlays Arabic-ahead-of-Latin reordering onto
	// CLDR root.
	CldrArabicScript
	// CldrArabicInterleaved overlays Arabic letters interleaved among
	// the Latin alphabet onto CLDR root.
	CldrArabicInterleaved
)

func (t Tailoring) table() *weighttab.Table {
	switch t {
	case Ducet:
		return weighttab.DUCET()
	case CldrArabicScript:
		return weighttab.CLDRArabicScript()
	case CldrArabicInterleaved:
		return weighttab.CLDRArabicInterleaved()
	default:
		return weighttab.CLDRRoot()
	}
}

// Collator holds immutable comparison configuration plus mutable
// per-call scratch buffers: a single Collator is not safe for
// concurrent use, but independent Collators never share state.
type Collator struct {
	Tailoring Tailoring
	Shifting  bool
	Tiebreak  bool

	bufA, bufB         []rune
	scratchA, scratchB []rune
	ceaA, ceaB         []weighttab.Element
}

// NewCollator builds a Collator with explicit configuration.
func NewCollator(tailoring Tailoring, shifting, tiebreak bool) *Collator {
	return &Collator{Tailoring: tailoring, Shifting: shifting, Tiebreak: tiebreak}
}

// DefaultCollator returns the default configuration: CLDR root,
// shifting on, tiebreak on.
func DefaultCollator() *Collator {
	return NewCollator(CldrRoot, true, true)
}

// Collate compares a and b, byte sequences interpreted as UTF-8,
// honoring the Collator's configured tiebreak policy.
func (c *Collator) Collate(a, b []byte) Order {
	return c.collate(a, b, c.Tiebreak)
}

// CollateNoTiebreak compares a and b as Collate does, but always
// treats fully-equal collation as Equal regardless of the Collator's
// configured Tiebreak field (SUPPLEMENTED FEATURES #1; used by
// conformance testing, which checks collation order independent of
// raw-byte tiebreaking).
func (c *Collator) CollateNoTiebreak(a, b []byte) Order {
	return c.collate(a, b, false)
}

func (c *Collator) collate(a, b []byte, tiebreak bool) Order {
	if bytes.Equal(a, b) {
		return Equal
	}

	c.bufA = c.bufA[:0]
	c.bufB = c.bufB[:0]
	result, bufA, bufB := asciiFastPath(a, b, c.bufA, c.bufB)
	c.bufA, c.bufB = bufA, bufB
	if result != asciiUndecided {
		return orderFromASCII(result)
	}

	nfdA := normalizeNFD(c.bufA, c.scratchA)
	nfdB := normalizeNFD(c.bufB, c.scratchB)
	c.scratchA, c.scratchB = nfdA, nfdB

	if runesEqual(nfdA, nfdB) {
		if tiebreak {
			return byteCompare(a, b)
		}
		return Equal
	}

	tbl := c.Tailoring.table()
	cldr := c.Tailoring != Ducet

	na, nb, decided, isDecided := trimSharedPrefix(tbl, c.Shifting, nfdA, nfdB)
	if isDecided {
		return decided
	}

	if r, ok := firstPrimaryFastPath(tbl, c.Shifting, na, nb); ok {
		return r
	}

	// generateCEA mutates its buf argument (discontiguous matches pull
	// and delete later code points); na/nb are scratch-owned for the
	// remainder of this call, so no defensive copy is needed.
	c.ceaA = generateCEA(tbl, cldr, c.Shifting, na, c.ceaA[:0])
	c.ceaB = generateCEA(tbl, cldr, c.Shifting, nb, c.ceaB[:0])

	result2 := compareCEA(c.ceaA, c.ceaB, c.Shifting)
	if result2 != Equal {
		return result2
	}

	if tiebreak {
		return byteCompare(a, b)
	}
	return Equal
}

func orderFromASCII(r asciiResult) Order {
	switch r {
	case asciiLess:
		return Less
	case asciiGreater:
		return Greater
	default:
		return Equal
	}
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func byteCompare(a, b []byte) Order {
	switch bytes.Compare(a, b) {
	case -1:
		return Less
	case 1:
		return Greater
	default:
		return Equal
	}
}
