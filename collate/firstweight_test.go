package collate

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/collate/internal/weighttab"
)

func TestFirstPrimaryFastPathDecidesOnDistinctNonVariablePrimaries(t *testing.T) {
	tbl := weighttab.CLDRRoot()
	r, ok := firstPrimaryFastPath(tbl, true, []rune("ax"), []rune("bx"))
	require.True(t, ok)
	require.Equal(t, Less, r)
}

func TestFirstPrimaryFastPathBailsUnderShiftingOnVariableLeader(t *testing.T) {
	tbl := weighttab.CLDRRoot()
	// Space (U+0020) and '!' are both variable-weight ASCII
	// punctuation (data_low.go): under the default shifting collator,
	// a variable leading code point can't decide the comparison by
	// its primary alone, so the fast path must bail.
	_, ok := firstPrimaryFastPath(tbl, true, []rune(" x"), []rune("!x"))
	require.False(t, ok)
}

func TestFirstPrimaryFastPathDecidesOnVariableLeaderWhenNotShifting(t *testing.T) {
	tbl := weighttab.CLDRRoot()
	// Same pair as above, but with shifting off the variable flag
	// carries no special meaning at the primary level.
	r, ok := firstPrimaryFastPath(tbl, false, []rune(" x"), []rune("!x"))
	require.True(t, ok)
	require.Equal(t, Less, r)
}

func TestFirstPrimaryFastPathBailsOnEqualLeadingCodePoint(t *testing.T) {
	tbl := weighttab.CLDRRoot()
	_, ok := firstPrimaryFastPath(tbl, true, []rune("ax"), []rune("ay"))
	require.False(t, ok)
}

func TestFirstPrimaryFastPathBailsOnContractionStarter(t *testing.T) {
	tbl := weighttab.CLDRRoot()
	_, ok := firstPrimaryFastPath(tbl, true, []rune("lx"), []rune("by"))
	require.False(t, ok)
}
