package collate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecomposeHangulSyllable(t *testing.T) {
	// 한 (U+D55C) = HA(ᄒ U+1112) + A(ᅡ U+1161) + N(ᆫ U+11AB): an LVT
	// syllable, 3 jamo.
	got := decomposeHangul(0xD55C)
	require.Equal(t, []rune{0x1112, 0x1161, 0x11AB}, got)
}

func TestDecomposeHangulLVSyllable(t *testing.T) {
	// 가 (U+AC00) is the very first syllable: L=0x1100, V=0x1161, no
	// trailing consonant.
	require.True(t, isHangulLV(0xAC00))
	got := decomposeHangul(0xAC00)
	require.Equal(t, []rune{0x1100, 0x1161}, got)
}

func TestCanonicalReorderSwapsOutOfOrderCCC(t *testing.T) {
	// A base letter followed by two combining marks in the wrong CCC
	// order (grave CCC 230 before cedilla CCC 202, say) should swap.
	buf := []rune{'a', 0x0327, 0x0300} // a + cedilla(202) + grave(230): already ascending, no swap
	canonicalReorder(buf)
	require.Equal(t, []rune{'a', 0x0327, 0x0300}, buf)

	buf2 := []rune{'a', 0x0300, 0x0327} // grave(230) then cedilla(202): needs swap
	canonicalReorder(buf2)
	require.Equal(t, []rune{'a', 0x0327, 0x0300}, buf2)
}

func TestNormalizeNFDDecomposesPrecomposedLetter(t *testing.T) {
	// é alone passes the FCD precheck and is copied through; a
	// following cedilla (CCC 202, below é's trailing 230) makes the
	// precheck fail, so é is decomposed and the marks reordered.
	scratch := make([]rune, 0, 8)
	out := normalizeNFD([]rune{0x00E9, 0x0327}, scratch) // é + cedilla
	require.Equal(t, []rune{'e', 0x0327, 0x0301}, out)
}

func TestNormalizeNFDLeavesAlreadyDecomposedAlone(t *testing.T) {
	scratch := make([]rune, 0, 8)
	in := []rune{'e', 0x0301}
	out := normalizeNFD(in, scratch)
	require.Equal(t, in, out)
}

func TestFCDBypassEquivalence(t *testing.T) {
	// FCD-positive input produces the same NFD output whether the
	// precheck is honored (fast path) or bypassed (force decompose).
	in := []rune{'a', 'b', 'c'}
	require.True(t, fcdOK(in))

	viaFastPath := normalizeNFD(in, make([]rune, 0, 8))

	forced := decompose(in, make([]rune, 0, 8))
	canonicalReorder(forced)

	require.Equal(t, forced, viaFastPath)
}
