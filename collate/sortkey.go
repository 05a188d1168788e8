package collate

import "github.com/boxesandglue/collate/internal/weighttab"

type level int

const (
	levelPrimary level = iota
	levelSecondary
	levelTertiary
	levelQuaternary
)

// levelWeight extracts e's weight at level, and reports whether e
// should be skipped at this level (zero weight, or — for primary
// under shifting — the variable bit set, since variable elements
// contribute only at the quaternary level).
func levelWeight(e weighttab.Element, lvl level, shifting bool) (value uint16, skip bool) {
	switch lvl {
	case levelPrimary:
		if shifting && weighttab.IsVariable(e) {
			return 0, true
		}
		v := weighttab.Primary(e)
		return v, v == 0
	case levelSecondary:
		v := weighttab.Secondary(e)
		return v, v == 0
	case levelTertiary:
		v := weighttab.Tertiary(e)
		return v, v == 0
	default: // levelQuaternary
		var v uint16
		switch {
		case weighttab.IsVariable(e):
			v = weighttab.Primary(e)
		case weighttab.Primary(e) != 0:
			v = 0xFFFF
		default:
			v = 0
		}
		return v, v == 0
	}
}

// nextWeight advances *idx past skipped entries in buf and returns the
// next contributing weight at lvl, or 0 once the sentinel is reached.
func nextWeight(buf []weighttab.Element, idx *int, lvl level, shifting bool) uint16 {
	for {
		e := buf[*idx]
		if e == weighttab.Sentinel {
			return 0
		}
		*idx++
		if v, skip := levelWeight(e, lvl, shifting); !skip {
			return v
		}
	}
}

// compareLevel walks a and b in lockstep at a single level, skipping
// zero-weight entries, until a difference is found or both
// sides are simultaneously exhausted.
func compareLevel(a, b []weighttab.Element, lvl level, shifting bool) Order {
	ia, ib := 0, 0
	for {
		va := nextWeight(a, &ia, lvl, shifting)
		vb := nextWeight(b, &ib, lvl, shifting)
		if va == 0 && vb == 0 {
			return Equal
		}
		if va != vb {
			if va < vb {
				return Less
			}
			return Greater
		}
	}
}

// compareCEA runs the full incremental multi-level comparison over
// two completed CEA buffers generated with the same shifting flag.
func compareCEA(a, b []weighttab.Element, shifting bool) Order {
	if r := compareLevel(a, b, levelPrimary, shifting); r != Equal {
		return r
	}
	if r := compareLevel(a, b, levelSecondary, shifting); r != Equal {
		return r
	}
	if r := compareLevel(a, b, levelTertiary, shifting); r != Equal {
		return r
	}
	if shifting {
		if r := compareLevel(a, b, levelQuaternary, shifting); r != Equal {
			return r
		}
	}
	return Equal
}
