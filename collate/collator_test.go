package collate

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func collateStrings(c *Collator, ss []string) {
	sort.Slice(ss, func(i, j int) bool {
		return c.Collate([]byte(ss[i]), []byte(ss[j])) == Less
	})
}

func TestScenario1_AccentsAndCase(t *testing.T) {
	c := DefaultCollator()
	words := []string{"Peng", "Peña", "Ernie", "Émile"}
	collateStrings(c, words)
	require.Equal(t, []string{"Émile", "Ernie", "Peña", "Peng"}, words)
}

func TestScenario2_CaseDoesNotDominate(t *testing.T) {
	c := DefaultCollator()
	require.Equal(t, Less, c.Collate([]byte("Američane"), []byte("ameriške")))
}

func TestScenario3_AccentedOrdering(t *testing.T) {
	c := DefaultCollator()
	require.Equal(t, Less, c.Collate([]byte("Hélène"), []byte("Héloïse")))
}

func TestScenario4_InvalidUTF8SubstitutesReplacementChar(t *testing.T) {
	c := DefaultCollator()
	valid := []byte("Theodore")
	invalid := []byte("Th\xE9odore")
	require.Equal(t, Less, c.Collate(valid, invalid))
}

func TestScenario5_ArabicScriptSortsAheadOfLatin(t *testing.T) {
	c := NewCollator(CldrArabicScript, true, true)
	require.Equal(t, Less, c.Collate([]byte("ی"), []byte("a")))
}

func TestScenario6_ArabicInterleaved(t *testing.T) {
	c := NewCollator(CldrArabicInterleaved, true, true)
	words := []string{"Bob", "Alice", "أحمد"}
	collateStrings(c, words)
	require.Equal(t, []string{"Alice", "أحمد", "Bob"}, words)
}

func TestScenario7_CEABufferGrowthDoesNotCrash(t *testing.T) {
	c := DefaultCollator()
	long := make([]rune, 0, 48)
	for i := 0; i < 47; i++ {
		long = append(long, 'l')
	}
	long = append(long, 0xFDFA)

	require.Equal(t, Greater, c.Collate([]byte(string(long)), []byte("ā")))
}

func TestReflexivity(t *testing.T) {
	c := DefaultCollator()
	for _, s := range []string{"", "a", "Peng", "أحمد", string(rune(0xFDFA))} {
		require.Equal(t, Equal, c.Collate([]byte(s), []byte(s)), "collate(%q, %q)", s, s)
	}
}

func TestByteIdenticalIsEqual(t *testing.T) {
	c := DefaultCollator()
	require.Equal(t, Equal, c.Collate([]byte("hello"), []byte("hello")))
}

// precomposedAndDecomposedE returns U+00E9 (precomposed é) and
// U+0065 U+0301 (e + combining acute) as distinct byte sequences that
// share the same NFD form.
func precomposedAndDecomposedE() (string, string) {
	return string(rune(0x00E9)), string([]rune{'e', 0x0301})
}

func TestNFDEqualWithoutTiebreakIsEqual(t *testing.T) {
	c := NewCollator(CldrRoot, true, false)
	precomposed, decomposed := precomposedAndDecomposedE()
	require.Equal(t, Equal, c.Collate([]byte(precomposed), []byte(decomposed)))
}

func TestTiebreakOnRequiresByteEquality(t *testing.T) {
	c := NewCollator(CldrRoot, true, true)
	precomposed, decomposed := precomposedAndDecomposedE()
	require.NotEqual(t, Equal, c.Collate([]byte(precomposed), []byte(decomposed)))
}

func TestAntisymmetry(t *testing.T) {
	c := DefaultCollator()
	pairs := [][2]string{
		{"Peng", "Peña"}, {"Ernie", "Émile"}, {"a", "b"}, {"", "a"},
		{"Theodore", "Th\xE9odore"},
	}
	for _, p := range pairs {
		forward := c.Collate([]byte(p[0]), []byte(p[1]))
		backward := c.Collate([]byte(p[1]), []byte(p[0]))
		require.Equal(t, -forward, backward, "pair %v", p)
	}
}

func TestCollateNoTiebreakIgnoresConfiguredTiebreak(t *testing.T) {
	c := NewCollator(CldrRoot, true, true)
	precomposed, decomposed := precomposedAndDecomposedE()
	require.Equal(t, Equal, c.CollateNoTiebreak([]byte(precomposed), []byte(decomposed)))
}
