package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDNAScoreMatrix(t *testing.T) {
	m := NewDNAScoreMatrix(1, 2)

	t.Run("match and mismatch", func(t *testing.T) {
		assert.Equal(t, int32(1), m.Score('A', 'A'))
		assert.Equal(t, int32(1), m.Score('T', 'T'))
		assert.Equal(t, int32(-2), m.Score('A', 'C'))
	})

	t.Run("case folding", func(t *testing.T) {
		assert.Equal(t, int32(1), m.Score('a', 'A'))
		assert.Equal(t, int32(1), m.Score('g', 'g'))
		assert.Equal(t, int32(-2), m.Score('a', 'c'))
	})

	t.Run("N never matches", func(t *testing.T) {
		assert.Equal(t, int32(-2), m.Score('N', 'N'))
		assert.Equal(t, int32(-2), m.Score('n', 'N'))
		assert.Equal(t, int32(-2), m.Score('N', 'A'))
	})

	t.Run("non-alphabet bytes match themselves", func(t *testing.T) {
		assert.Equal(t, int32(1), m.Score('X', 'X'))
		assert.Equal(t, int32(1), m.Score(0x00, 0x00))
		assert.Equal(t, int32(-2), m.Score(0x00, 0xFF))
	})
}

func TestProteinScoreMatrix(t *testing.T) {
	m := NewProteinScoreMatrix()

	t.Run("diagonal values", func(t *testing.T) {
		assert.Equal(t, int32(4), m.Score('A', 'A'))
		assert.Equal(t, int32(11), m.Score('W', 'W'))
		assert.Equal(t, int32(9), m.Score('C', 'C'))
		assert.Equal(t, int32(1), m.Score('*', '*'))
	})

	t.Run("off-diagonal values", func(t *testing.T) {
		assert.Equal(t, int32(-1), m.Score('A', 'R'))
		assert.Equal(t, int32(-3), m.Score('W', 'A'))
		assert.Equal(t, int32(2), m.Score('E', 'Q'))
		assert.Equal(t, int32(-4), m.Score('L', 'D'))
	})

	t.Run("symmetric", func(t *testing.T) {
		alphabet := []byte(blosum62Alphabet)
		for _, a := range alphabet {
			for _, b := range alphabet {
				assert.Equal(t, m.Score(a, b), m.Score(b, a))
			}
		}
	})

	t.Run("all case combinations", func(t *testing.T) {
		assert.Equal(t, int32(4), m.Score('a', 'a'))
		assert.Equal(t, int32(4), m.Score('A', 'a'))
		assert.Equal(t, int32(4), m.Score('a', 'A'))
		assert.Equal(t, int32(-1), m.Score('a', 'r'))
	})

	t.Run("bytes outside the alphabet score zero", func(t *testing.T) {
		assert.Equal(t, int32(0), m.Score('U', 'U'))
		assert.Equal(t, int32(0), m.Score('A', 'U'))
		assert.Equal(t, int32(0), m.Score('#', '!'))
	})
}
