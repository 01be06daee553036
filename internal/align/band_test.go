package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullBand(na, nb int) BandLimits {
	bands := make(BandLimits, na)
	for i := range bands {
		bands[i] = BandWindow{Left: 0, Right: nb - 1}
	}
	return bands
}

func TestVariableBandAlign(t *testing.T) {
	m := dnaMatrix()

	t.Run("full-width band matches local alignment", func(t *testing.T) {
		a, b := []byte("AAACCCGGG"), []byte("CCC")
		c, err := VariableBandAlign(a, b, 3, 1, m, fullBand(len(a), len(b)))
		require.NoError(t, err)

		local, err := LocalAlign(a, b, 3, 1, m)
		require.NoError(t, err)

		assert.Equal(t, local.Elements, c.Elements)
		assert.Equal(t, local.QFrom, c.QFrom)
		assert.Equal(t, local.SFrom, c.SFrom)
		assert.Equal(t, "3S3M3S", c.CigarString(0, 9))
	})

	t.Run("unit diagonal band follows the diagonal", func(t *testing.T) {
		a := []byte("ACGTACGT")
		bands := make(BandLimits, len(a))
		for i := range bands {
			bands[i] = BandWindow{Left: i, Right: i}
		}
		c, err := VariableBandAlign(a, a, 3, 1, m, bands)
		require.NoError(t, err)
		require.Len(t, c.Elements, 1)
		assert.Equal(t, SElement{Len: 8, Kind: OpMatch}, c.Elements[0])
		assert.Equal(t, int32(8), c.Score(a, a, 3, 1, m))
	})

	t.Run("empty window row blocks the backtrack", func(t *testing.T) {
		a := []byte("AAAA")
		bands := BandLimits{
			{Left: 0, Right: 3},
			{Left: 0, Right: 3},
			{Left: 1, Right: 0}, // contributes nothing
			{Left: 0, Right: 3},
		}
		c, err := VariableBandAlign(a, a, 3, 1, m, bands)
		require.NoError(t, err)
		require.Len(t, c.Elements, 1)
		assert.Equal(t, SElement{Len: 2, Kind: OpMatch}, c.Elements[0])
		assert.Equal(t, 0, c.QFrom)
		assert.Equal(t, 1, c.QTo)
	})

	t.Run("widening and narrowing windows stay consistent", func(t *testing.T) {
		a, b := []byte("ACGTAC"), []byte("ACGTAC")
		bands := BandLimits{
			{Left: 0, Right: 1},
			{Left: 0, Right: 3},
			{Left: 1, Right: 4},
			{Left: 2, Right: 5},
			{Left: 3, Right: 5},
			{Left: 4, Right: 5},
		}
		c, err := VariableBandAlign(a, b, 3, 1, m, bands)
		require.NoError(t, err)
		require.Len(t, c.Elements, 1)
		assert.Equal(t, SElement{Len: 6, Kind: OpMatch}, c.Elements[0])
		assert.Equal(t, int32(6), c.Score(a, b, 3, 1, m))
	})

	t.Run("band count must match query length", func(t *testing.T) {
		_, err := VariableBandAlign([]byte("ACGT"), []byte("ACGT"), 3, 1, m, fullBand(3, 4))
		require.Error(t, err)
		var alignErr AlignError
		require.ErrorAs(t, err, &alignErr)
	})

	t.Run("window outside the subject is rejected", func(t *testing.T) {
		bands := BandLimits{{Left: 0, Right: 4}}
		_, err := VariableBandAlign([]byte("A"), []byte("ACGT"), 3, 1, m, bands)
		require.Error(t, err)

		bands = BandLimits{{Left: -1, Right: 2}}
		_, err = VariableBandAlign([]byte("A"), []byte("ACGT"), 3, 1, m, bands)
		require.Error(t, err)
	})

	t.Run("empty query", func(t *testing.T) {
		c, err := VariableBandAlign(nil, []byte("ACGT"), 3, 1, m, nil)
		require.NoError(t, err)
		assert.Empty(t, c.Elements)
	})
}
