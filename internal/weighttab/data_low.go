package weighttab

// buildLow constructs the dense low-weights table covering code
// points 0x00..0xB6. Real DUCET/CLDR assign these through the full
// UCA derivation pipeline; this builds a
// representative table with the same *shape* as the real one —
// controls fully ignorable, punctuation/symbols variable with
// ascending primaries, digits and letters non-variable with a shared
// primary per letter and a tertiary split by case — which is enough
// to reproduce UCA-correct ordering for ASCII and Latin-1 structural
// punctuation without claiming to be the genuine derived table.
//
// DUCET and CLDR root agree on ASCII/Latin-1 ordering in practice (the
// CLDR root collation order doesn't reorder Latin punctuation or
// letters relative to DUCET), so both tailorings share this builder.
func buildLow() [LowTableLimit]Element {
	var t [LowTableLimit]Element

	// C0 controls: fully ignorable at every level.
	for cp := rune(0x00); cp < 0x20; cp++ {
		t[cp] = Pack(false, 0, 0, 0)
	}

	// ASCII punctuation/symbols: variable, ascending primary in code
	// point order. Primaries start low and stay well under the digit
	// and letter bands below.
	primary := uint16(2)
	for _, cp := range asciiPunctuation() {
		t[cp] = Pack(true, primary, 0x20, 0x02)
		primary += 2
	}

	// Digits 0-9: non-variable, ascending primary, below letters.
	const digitBase = 0x0E00
	for i, cp := 0, rune('0'); cp <= '9'; i, cp = i+1, cp+1 {
		t[cp] = Pack(false, digitBase+uint16(i)*4, 0x20, 0x02)
	}

	// Basic Latin letters: same primary per letter regardless of
	// case (case is a tertiary-level distinction only), lowercase
	// sorting before uppercase when nothing else differs — tertiary
	// 0x02 for lowercase, 0x08 for uppercase, matching the actual
	// DUCET convention for basic Latin.
	const letterBase = 0x1000
	const letterStep = 0x10
	for i, cp := 0, rune('a'); cp <= 'z'; i, cp = i+1, cp+1 {
		p := letterBase + uint16(i)*letterStep
		t[cp] = Pack(false, p, 0x20, 0x02)
		t[cp-('a'-'A')] = Pack(false, p, 0x20, 0x08)
	}

	// C1 controls and Latin-1 punctuation/symbols (0x80-0xB6): treat
	// uniformly as variable symbols continuing the ascending band
	// from ASCII punctuation. This range holds no letters (Latin-1
	// accented letters start at 0xC0, outside the low table).
	for cp := rune(0x80); cp < LowTableLimit; cp++ {
		if t[cp] != 0 {
			continue
		}
		t[cp] = Pack(true, primary, 0x20, 0x02)
		primary += 2
	}

	return t
}

// asciiPunctuation enumerates the ASCII punctuation/symbol ranges
// that carry a variable weight, in code-point order.
func asciiPunctuation() []rune {
	var out []rune
	add := func(lo, hi rune) {
		for cp := lo; cp <= hi; cp++ {
			out = append(out, cp)
		}
	}
	add(0x21, 0x2F) // ! " # $ % & ' ( ) * + , - . /
	add(0x3A, 0x40) // : ; < = > ? @
	add(0x5B, 0x60) // [ \ ] ^ _ `
	add(0x7B, 0x7E) // { | } ~
	out = append([]rune{0x20}, out...)
	return out
}
