package collate

import "github.com/boxesandglue/collate/internal/weighttab"

// firstPrimaryFastPath handles the case where the first code points of
// two already-prefix-trimmed buffers differ and neither starts a
// contraction: their first primary weights alone can decide the
// comparison.
func firstPrimaryFastPath(tbl *weighttab.Table, shifting bool, a, b []rune) (Order, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}
	ca, cb := a[0], b[0]
	if ca == cb || isContractionStarter(ca) || isContractionStarter(cb) {
		return 0, false
	}

	pa := firstPrimary(tbl, ca, shifting)
	if pa == 0 {
		return 0, false
	}
	pb := firstPrimary(tbl, cb, shifting)
	if pb == 0 || pa == pb {
		return 0, false
	}
	if pa < pb {
		return Less, true
	}
	return Greater, true
}

// firstPrimary returns cp's first emitted primary weight, or 0 (bail)
// if shifting is on and that element is variable: a variable leading
// code point can still be trimmed away by later ignorable handling,
// so its primary can't safely decide the comparison here.
func firstPrimary(tbl *weighttab.Table, cp rune, shifting bool) uint16 {
	e := firstElement(tbl, cp)
	if shifting && weighttab.IsVariable(e) {
		return 0
	}
	return weighttab.Primary(e)
}
