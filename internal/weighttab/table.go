package weighttab

// Table is one complete set of collation weight data: the dense
// low-weights table, the singles table, and the multis (contraction)
// table. A Tailoring (see the collate package) resolves to one Table.
type Table struct {
	Low     [LowTableLimit]Element
	Singles map[rune][]Element
	Multis  map[MultiKey][]Element
}

// MultiKey is the lookup key for a 2- or 3-code-point contraction.
// The unused third slot is zero for a 2-code-point key, packing a
// variable-length code-point sequence into one fixed-size comparable
// key.
type MultiKey [3]rune

// Key2 builds a MultiKey for a two-code-point contraction.
func Key2(a, b rune) MultiKey { return MultiKey{a, b} }

// Key3 builds a MultiKey for a three-code-point contraction.
func Key3(a, b, c rune) MultiKey { return MultiKey{a, b, c} }

// Lookup returns the singles-table entry for cp, if any.
func (t *Table) Lookup(cp rune) ([]Element, bool) {
	row, ok := t.Singles[cp]
	return row, ok
}

// LookupMulti returns the multis-table entry for a 2- or
// 3-code-point key, if any.
func (t *Table) LookupMulti(key MultiKey) ([]Element, bool) {
	row, ok := t.Multis[key]
	return row, ok
}

// LowWeight returns the low-table entry for cp. The caller is
// responsible for only calling this for cp < LowTableLimit that is
// not a NeedTwo/NeedThree contraction starter — see IsLow.
func (t *Table) LowWeight(cp rune) Element {
	return t.Low[cp]
}

// IsLow reports whether cp should be looked up in the dense low
// table rather than the singles table.
func IsLow(cp rune) bool {
	return cp < LowTableLimit && cp != 0x004C && cp != 0x006C
}
