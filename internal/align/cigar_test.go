package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCigarConstruction(t *testing.T) {
	t.Run("fresh cigar is an empty span", func(t *testing.T) {
		c := NewCigar(4, 2)
		assert.Empty(t, c.Elements)
		assert.Equal(t, 5, c.QFrom)
		assert.Equal(t, 4, c.QTo)
		assert.Equal(t, 3, c.SFrom)
		assert.Equal(t, 2, c.STo)
	})

	t.Run("push front grows the from side", func(t *testing.T) {
		c := NewCigar(5, 2)
		c.PushFront(OpMatch, 3)
		assert.Equal(t, 3, c.QFrom)
		assert.Equal(t, 5, c.QTo)
		assert.Equal(t, 0, c.SFrom)
		assert.Equal(t, 2, c.STo)

		c.PushFront(OpDelete, 2)
		assert.Equal(t, 3, c.QFrom)
		assert.Equal(t, -2, c.SFrom)

		c.PushFront(OpInsert, 1)
		assert.Equal(t, 2, c.QFrom)
		assert.Equal(t, -2, c.SFrom)

		require.Len(t, c.Elements, 3)
		assert.Equal(t, SElement{Len: 1, Kind: OpInsert}, c.Elements[0])
		assert.Equal(t, SElement{Len: 2, Kind: OpDelete}, c.Elements[1])
		assert.Equal(t, SElement{Len: 3, Kind: OpMatch}, c.Elements[2])
	})

	t.Run("push back grows the to side", func(t *testing.T) {
		c := NewCigar(-1, -1)
		c.PushBack(OpMatch, 2)
		c.PushBack(OpInsert, 1)
		assert.Equal(t, 0, c.QFrom)
		assert.Equal(t, 2, c.QTo)
		assert.Equal(t, 0, c.SFrom)
		assert.Equal(t, 1, c.STo)
	})

	t.Run("adjacent same-kind elements merge", func(t *testing.T) {
		c := NewCigar(-1, -1)
		c.PushBack(OpMatch, 2)
		c.PushBack(OpMatch, 3)
		require.Len(t, c.Elements, 1)
		assert.Equal(t, 5, c.Elements[0].Len)

		c.PushFront(OpMatch, 1)
		require.Len(t, c.Elements, 1)
		assert.Equal(t, 6, c.Elements[0].Len)
	})

	t.Run("zero length pushes are ignored", func(t *testing.T) {
		c := NewCigar(-1, -1)
		c.PushBack(OpMatch, 0)
		c.PushFront(OpDelete, 0)
		assert.Empty(t, c.Elements)
	})
}

func TestCigarString(t *testing.T) {
	t.Run("plain tokens", func(t *testing.T) {
		c := NewCigar(-1, -1)
		c.PushBack(OpMatch, 4)
		c.PushBack(OpDelete, 2)
		c.PushBack(OpMatch, 1)
		assert.Equal(t, "4M2D1M", c.CigarString(0, 5))
	})

	t.Run("soft clips both ends", func(t *testing.T) {
		c := NewCigar(5, 2) // local hit: query 3..5, subject 0..2
		c.PushFront(OpMatch, 3)
		assert.Equal(t, "3S3M3S", c.CigarString(0, 9))
	})

	t.Run("qstart shifts the clips", func(t *testing.T) {
		c := NewCigar(5, 2)
		c.PushFront(OpMatch, 3)
		// query was trimmed by 2 before aligning; full read is 11 long
		assert.Equal(t, "5S3M3S", c.CigarString(2, 11))
	})

	t.Run("clip lengths clamp at zero", func(t *testing.T) {
		c := NewCigar(3, 3)
		c.PushFront(OpMatch, 4)
		assert.Equal(t, "4M", c.CigarString(0, 4))
	})

	t.Run("empty cigar renders clips only", func(t *testing.T) {
		c := NewCigar(-1, -1)
		assert.Equal(t, "", c.CigarString(0, 0))
		assert.Equal(t, "4S", c.CigarString(0, 4))
	})
}

func TestDetailedCigarString(t *testing.T) {
	query := []byte("ACGT")
	subject := []byte("AGGT")

	c := NewCigar(3, 3)
	c.PushFront(OpMatch, 4)

	assert.Equal(t, "4M", c.CigarString(0, 4))
	assert.Equal(t, "1=1X2=", c.DetailedCigarString(0, 4, query, subject))
}

func TestCigarToAlign(t *testing.T) {
	query := []byte("ACGGT")
	subject := []byte("ACTT")

	// A C G G T      query
	// A C - T T      subject (one base of query inserted)
	c := NewCigar(-1, -1)
	c.PushBack(OpMatch, 2)
	c.PushBack(OpInsert, 1)
	c.PushBack(OpMatch, 2)

	aq, as := c.ToAlign(query, subject)
	assert.Equal(t, "ACGGT", string(aq))
	assert.Equal(t, "AC-TT", string(as))
}

func TestCigarCounts(t *testing.T) {
	query := []byte("ACGGT")
	subject := []byte("ACTT")

	c := NewCigar(-1, -1)
	c.PushBack(OpMatch, 2)
	c.PushBack(OpInsert, 1)
	c.PushBack(OpMatch, 2)

	t.Run("matches", func(t *testing.T) {
		// A=A, C=C, G!=T, T=T
		assert.Equal(t, 3, c.Matches(query, subject))
	})

	t.Run("distance", func(t *testing.T) {
		// one mismatch plus one gap position
		assert.Equal(t, 2, c.Distance(query, subject))
	})

	t.Run("score", func(t *testing.T) {
		m := NewDNAScoreMatrix(1, 2)
		// 3 matches - 1 mismatch - (3 + 1) gap
		assert.Equal(t, int32(3-2-4), c.Score(query, subject, 3, 1, m))
	})
}

func TestCigarSpanInvariants(t *testing.T) {
	query := []byte("ACGTACGTAC")
	subject := []byte("ACGTTACGGT")

	c, err := GlobalAlign(query, subject, 3, 1, NewDNAScoreMatrix(1, 2))
	require.NoError(t, err)

	qlen, slen := 0, 0
	for i, e := range c.Elements {
		require.Positive(t, e.Len)
		if i > 0 {
			require.NotEqual(t, c.Elements[i-1].Kind, e.Kind)
		}
		switch e.Kind {
		case OpMatch:
			qlen += e.Len
			slen += e.Len
		case OpInsert:
			qlen += e.Len
		case OpDelete:
			slen += e.Len
		}
	}
	assert.Equal(t, c.QTo-c.QFrom+1, qlen)
	assert.Equal(t, c.STo-c.SFrom+1, slen)
}
