package collate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/boxesandglue/collate/internal/conformance"
)

// loadSampleFixture reads the curated ordering fixture: each line is
// already in the order DefaultCollator's tables should produce it.
func loadSampleFixture(t *testing.T) []conformance.Line {
	t.Helper()
	f, err := os.Open(filepath.Join("..", "testdata", "conformance_sample.txt"))
	require.NoError(t, err)
	defer f.Close()

	lines, err := conformance.Parse(f)
	require.NoError(t, err)
	return lines
}

func TestConformanceFixtureIsMonotonicallyNonDecreasing(t *testing.T) {
	lines := loadSampleFixture(t)

	configs := []struct {
		name     string
		tailor   Tailoring
		shifting bool
	}{
		{"DucetShifted", Ducet, true},
		{"DucetNonIgnorable", Ducet, false},
		{"CldrRootShifted", CldrRoot, true},
		{"CldrRootNonIgnorable", CldrRoot, false},
	}

	for _, cfg := range configs {
		t.Run(cfg.name, func(t *testing.T) {
			c := NewCollator(cfg.tailor, cfg.shifting, false)
			for i := 1; i < len(lines); i++ {
				prev, cur := lines[i-1].String(), lines[i].String()
				result := c.CollateNoTiebreak([]byte(prev), []byte(cur))
				require.NotEqual(t, Greater, result,
					"line %d (%q) must not sort after line %d (%q)",
					lines[i-1].SourceLine, prev, lines[i].SourceLine, cur)
			}
		})
	}
}
