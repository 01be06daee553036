package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDNAEntropy(t *testing.T) {
	t.Run("uniform composition is maximal", func(t *testing.T) {
		assert.InDelta(t, 1.0, DNAEntropy([]byte("ACGT")), 1e-6)
		assert.InDelta(t, 1.0, DNAEntropy([]byte("ACGTACGTACGTACGT")), 1e-6)
	})

	t.Run("homopolymer is near zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, DNAEntropy([]byte("AAAAAAAA")), 1e-6)
	})

	t.Run("two-letter composition", func(t *testing.T) {
		// p = 1/2 for A and C: entropy is log 2 / log 4 = 1/2
		assert.InDelta(t, 0.5, DNAEntropy([]byte("ACACACAC")), 1e-6)
	})

	t.Run("non-ACGT bytes count toward length only", func(t *testing.T) {
		full := DNAEntropy([]byte("ACGT"))
		diluted := DNAEntropy([]byte("ACGTNNNN"))
		assert.Less(t, diluted, full)
	})

	t.Run("lowercase is not counted", func(t *testing.T) {
		assert.InDelta(t, 0.0, DNAEntropy([]byte("acgt")), 1e-3)
	})

	t.Run("empty sequence", func(t *testing.T) {
		assert.Equal(t, 0.0, DNAEntropy(nil))
	})
}
