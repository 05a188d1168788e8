package collate

import "github.com/boxesandglue/collate/internal/ucd"

// Hangul syllable constants (the standard L/V/T decomposition
// arithmetic defined by the Unicode Standard, §3.12).
const (
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7
	hangulSBase = 0xAC00
	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

func isHangulSyllable(cp rune) bool {
	return cp >= hangulSBase && cp <= hangulSBase+hangulSCount-1
}

// isHangulLV reports whether cp is a Hangul LV syllable (decomposes to
// exactly L+V, no trailing consonant) rather than LVT. The reference
// implementation carries a ~400-entry literal set of LV code points;
// the condition is exactly "no trailing jamo", i.e. sIndex % tCount
// == 0, so no table is needed.
func isHangulLV(cp rune) bool {
	sIndex := cp - hangulSBase
	return sIndex%hangulTCount == 0
}

func decomposeHangul(cp rune) []rune {
	sIndex := cp - hangulSBase
	l := rune(hangulLBase + sIndex/hangulNCount)
	v := rune(hangulVBase + (sIndex%hangulNCount)/hangulTCount)
	if isHangulLV(cp) {
		return []rune{l, v}
	}
	t := rune(hangulTBase + sIndex%hangulTCount)
	return []rune{l, v, t}
}

// fcdOK runs the FCD precheck: a cheap walk that certifies a
// buffer is already in an NFD-equivalent order so the (much more
// expensive) decompose+reorder pass can be skipped.
func fcdOK(buf []rune) bool {
	var prevTrail uint8
	for _, cp := range buf {
		if cp < 0xC0 {
			prevTrail = 0
			continue
		}
		if cp == 0x0F81 || (cp >= 0xAC00 && cp <= 0xD7A3) {
			return false
		}
		lead, trail := ucd.FCD(cp)
		if lead == 0 && trail == 0 {
			c := ucd.CCC(cp)
			lead, trail = c, c
		}
		if lead != 0 && lead < prevTrail {
			return false
		}
		prevTrail = trail
	}
	return true
}

// decompose replaces each code point in buf with its canonical
// decomposition (Hangul handled algorithmically), appending into out.
func decompose(buf []rune, out []rune) []rune {
	for _, cp := range buf {
		switch {
		case cp < 0xC0:
			out = append(out, cp)
		case isHangulSyllable(cp):
			out = append(out, decomposeHangul(cp)...)
		default:
			if dec := ucd.Decomposition(cp); dec != nil {
				out = append(out, dec...)
			} else {
				out = append(out, cp)
			}
		}
	}
	return out
}

// canonicalReorder performs the standard canonical-ordering bubble
// pass: adjacent non-starters are swapped while out of CCC
// order, shrinking the right bound each pass until a pass makes no
// swap.
func canonicalReorder(buf []rune) {
	n := len(buf)
	for n > 1 {
		lastSwap := 0
		for i := 1; i < n; i++ {
			ccc1 := ucd.CCC(buf[i])
			if ccc1 == 0 {
				continue
			}
			ccc0 := ucd.CCC(buf[i-1])
			if ccc0 > 0 && ccc0 > ccc1 {
				buf[i-1], buf[i] = buf[i], buf[i-1]
				lastSwap = i
			}
		}
		if lastSwap == 0 {
			return
		}
		n = lastSwap
	}
}

// normalizeNFD returns buf's canonical NFD form, written into scratch
// (truncated to length 0) so the result never aliases buf — callers
// rely on this to keep a Collator's two scratch buffers and two
// code-point buffers independently reusable across calls. If buf
// is already FCD-acceptable, its contents are copied through
// unchanged rather than decomposed.
func normalizeNFD(buf []rune, scratch []rune) []rune {
	out := scratch[:0]
	if fcdOK(buf) {
		return append(out, buf...)
	}
	out = decompose(buf, out)
	canonicalReorder(out)
	return out
}
