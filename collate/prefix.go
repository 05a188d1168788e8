package collate

import "github.com/boxesandglue/collate/internal/weighttab"

func isContractionStarter(cp rune) bool {
	return weighttab.NeedTwo[cp] || weighttab.NeedThree[cp]
}

// isVariableCodePoint reports whether cp's first emitted collation
// element carries the variable flag or a zero primary, the condition
// that makes it unsafe to drop at a shared-prefix boundary under
// shifting.
func isVariableCodePoint(tbl *weighttab.Table, cp rune) bool {
	e := firstElement(tbl, cp)
	variable, primary, _, _ := weighttab.Unpack(e)
	return variable || primary == 0
}

// firstElement returns the first collation element a lone code point
// would emit: low table, then singles, then implicit synthesis.
func firstElement(tbl *weighttab.Table, cp rune) weighttab.Element {
	if weighttab.IsLow(cp) {
		return tbl.LowWeight(cp)
	}
	if row, ok := tbl.Lookup(cp); ok && len(row) > 0 {
		return row[0]
	}
	a, _ := weighttab.Implicit(cp)
	return a
}

// trimSharedPrefix drops the longest common, contraction-safe, (if
// shifting) variable-safe leading run from both
// buffers. Returns the possibly-shortened slices and, if one side
// became empty, a decided result.
func trimSharedPrefix(tbl *weighttab.Table, shifting bool, a, b []rune) (na, nb []rune, decided Order, isDecided bool) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	prefixLen := 0
	for prefixLen < n {
		cp := a[prefixLen]
		if cp != b[prefixLen] || isContractionStarter(cp) {
			break
		}
		prefixLen++
	}

	if prefixLen == 0 {
		return a, b, 0, false
	}

	if shifting && isVariableCodePoint(tbl, a[prefixLen-1]) {
		if prefixLen >= 2 && !isVariableCodePoint(tbl, a[prefixLen-2]) {
			prefixLen--
		} else {
			prefixLen = 0
		}
	}

	if prefixLen == 0 {
		return a, b, 0, false
	}

	na, nb = a[prefixLen:], b[prefixLen:]
	if len(na) == 0 || len(nb) == 0 {
		if len(na) == len(nb) {
			// Both empty: whole-string equality was already caught by
			// the caller's earlier checks; unreachable in practice.
			return na, nb, Equal, true
		}
		if len(na) > len(nb) {
			return na, nb, Greater, true
		}
		return na, nb, Less, true
	}
	return na, nb, 0, false
}
