package collate

import "unicode/utf8"

// asciiResult is the outcome of the ASCII fast path.
type asciiResult int

const (
	// asciiUndecided means a non-eligible code point was reached; the
	// caller must fall back to the full pipeline using bufA/bufB,
	// which the fast path has fully populated regardless.
	asciiUndecided asciiResult = iota
	asciiLess
	asciiEqual
	asciiGreater
)

func isEligibleASCII(cp rune) bool {
	return (cp >= '0' && cp <= '9') || (cp >= 'A' && cp <= 'Z') || (cp >= 'a' && cp <= 'z')
}

func foldASCII(cp rune) rune {
	if cp >= 'A' && cp <= 'Z' {
		return cp + 0x20
	}
	return cp
}

// asciiFastPath walks a and b one code point at a time, decoding into
// bufA/bufB (both truncated to length 0 by the caller), short-circuiting
// on ASCII alphanumerics. It always fully decodes both inputs into the
// scratch buffers, even when it reaches a decision, so the caller can
// proceed into the rest of the pipeline without re-decoding.
func asciiFastPath(a, b []byte, bufA, bufB []rune) (asciiResult, []rune, []rune) {
	var (
		i, j                int
		reversedCaseDecided bool
		reversedCaseLess    bool
	)

	for {
		aDone := i >= len(a)
		bDone := j >= len(b)
		if aDone || bDone {
			bufA = drainUTF8(a[i:], bufA)
			bufB = drainUTF8(b[j:], bufB)
			if len(bufA) != len(bufB) {
				if len(bufA) > len(bufB) {
					return asciiGreater, bufA, bufB
				}
				return asciiLess, bufA, bufB
			}
			if reversedCaseDecided {
				if reversedCaseLess {
					return asciiLess, bufA, bufB
				}
				return asciiGreater, bufA, bufB
			}
			return asciiEqual, bufA, bufB
		}

		ra, sizeA := utf8.DecodeRune(a[i:])
		rb, sizeB := utf8.DecodeRune(b[j:])

		if !isEligibleASCII(ra) || !isEligibleASCII(rb) {
			bufA = append(bufA, ra)
			bufB = append(bufB, rb)
			i += sizeA
			j += sizeB
			bufA = drainUTF8(a[i:], bufA)
			bufB = drainUTF8(b[j:], bufB)
			return asciiUndecided, bufA, bufB
		}

		bufA = append(bufA, ra)
		bufB = append(bufB, rb)
		i += sizeA
		j += sizeB

		if ra == rb {
			continue
		}

		fa, fb := foldASCII(ra), foldASCII(rb)
		if fa != fb {
			bufA = drainUTF8(a[i:], bufA)
			bufB = drainUTF8(b[j:], bufB)
			if fa < fb {
				return asciiLess, bufA, bufB
			}
			return asciiGreater, bufA, bufB
		}

		// Pure case difference: reversed order (uppercase sorts after
		// lowercase at the tertiary level), remembered only once.
		if !reversedCaseDecided {
			reversedCaseDecided = true
			reversedCaseLess = ra > rb
		}
	}
}

// drainUTF8 decodes the remainder of s into buf, substituting U+FFFD
// for invalid sequences.
func drainUTF8(s []byte, buf []rune) []rune {
	for len(s) > 0 {
		r, size := utf8.DecodeRune(s)
		buf = append(buf, r)
		s = s[size:]
	}
	return buf
}
