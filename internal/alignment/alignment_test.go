package alignment

import (
	"testing"

	"github.com/aria-lang/bioflow-go/internal/align"
	"github.com/aria-lang/bioflow-go/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSeq(t *testing.T, bases string) *sequence.Sequence {
	t.Helper()
	seq, err := sequence.New(bases)
	require.NoError(t, err)
	return seq
}

func TestScoringMatrix(t *testing.T) {
	t.Run("DefaultDNA", func(t *testing.T) {
		s := DefaultDNA()
		assert.Equal(t, int32(2), s.MatchScore)
		assert.Equal(t, int32(1), s.MismatchPenalty)
		assert.Equal(t, int32(2), s.GapOpenPenalty)
		assert.Equal(t, int32(1), s.GapExtendPenalty)
		assert.False(t, s.Protein)
	})

	t.Run("BLASTLike", func(t *testing.T) {
		s := BLASTLike()
		assert.Equal(t, int32(1), s.MatchScore)
		assert.Equal(t, int32(3), s.MismatchPenalty)
	})

	t.Run("BLOSUM62", func(t *testing.T) {
		s := BLOSUM62()
		assert.True(t, s.Protein)
		assert.Equal(t, int32(11), s.GapOpenPenalty)
		assert.Equal(t, int32(4), s.Matrix().Score('A', 'A'))
	})

	t.Run("matrix scores", func(t *testing.T) {
		s := DefaultDNA()
		assert.Equal(t, int32(2), s.Matrix().Score('A', 'A'))
		assert.Equal(t, int32(-1), s.Matrix().Score('A', 'T'))
	})

	t.Run("invalid scoring matrix", func(t *testing.T) {
		_, err := NewScoringMatrix(0, 1, 2, 1)
		require.Error(t, err)

		_, err = NewScoringMatrix(2, -1, 2, 1)
		require.Error(t, err)

		_, err = NewScoringMatrix(2, 1, -2, 1)
		require.Error(t, err)

		_, err = NewScoringMatrix(2, 1, 2, -1)
		require.Error(t, err)
	})
}

func TestSmithWaterman(t *testing.T) {
	tests := []struct {
		name  string
		seq1  string
		seq2  string
		score int32
		cigar string
	}{
		{
			name:  "identical short",
			seq1:  "ATGC",
			seq2:  "ATGC",
			score: 8,
			cigar: "4M",
		},
		{
			name:  "trailing mismatch trimmed",
			seq1:  "ATGC",
			seq2:  "ATGA",
			score: 6,
			cigar: "3M1S",
		},
		{
			name:  "with gap",
			seq1:  "ATGCATGC",
			seq2:  "ATGATGC",
			score: 11,
			cigar: "3M1I4M",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := SmithWaterman(mustSeq(t, tt.seq1), mustSeq(t, tt.seq2), nil)
			require.NoError(t, err)
			assert.Equal(t, tt.score, a.Score)
			assert.Equal(t, tt.cigar, a.ToCIGAR())
			assert.Equal(t, Local, a.AlignmentType)
			assert.Len(t, a.AlignedSeq1, len(a.AlignedSeq2))
		})
	}

	t.Run("no match returns empty alignment", func(t *testing.T) {
		a, err := SmithWaterman(mustSeq(t, "AAAA"), mustSeq(t, "TTTT"), nil)
		require.NoError(t, err)
		assert.Equal(t, int32(0), a.Score)
		assert.Equal(t, 0, a.Length())
	})

	t.Run("empty sequence rejected", func(t *testing.T) {
		seq := mustSeq(t, "ATGC")
		empty := &sequence.Sequence{}
		_, err := SmithWaterman(seq, empty, nil)
		require.Error(t, err)
	})
}

func TestNeedlemanWunsch(t *testing.T) {
	t.Run("identical sequences", func(t *testing.T) {
		a, err := NeedlemanWunsch(mustSeq(t, "ATGC"), mustSeq(t, "ATGC"), nil)
		require.NoError(t, err)
		assert.Equal(t, int32(8), a.Score)
		assert.Equal(t, "4M", a.ToCIGAR())
		assert.Equal(t, 1.0, a.Identity)
		assert.Equal(t, Global, a.AlignmentType)
	})

	t.Run("mismatch stays in the match run", func(t *testing.T) {
		a, err := NeedlemanWunsch(mustSeq(t, "ATGC"), mustSeq(t, "ATGA"), nil)
		require.NoError(t, err)
		assert.Equal(t, int32(5), a.Score)
		assert.Equal(t, "4M", a.ToCIGAR())
		assert.Equal(t, "3=1X", a.ToDetailedCIGAR())
		assert.Equal(t, 3, a.MatchCount())
		assert.Equal(t, 1, a.MismatchCount())
	})

	t.Run("length difference forces a gap", func(t *testing.T) {
		a, err := NeedlemanWunsch(mustSeq(t, "ACGT"), mustSeq(t, "ACG"), nil)
		require.NoError(t, err)
		assert.Equal(t, int32(3), a.Score)
		assert.Equal(t, "3M1I", a.ToCIGAR())
		assert.Equal(t, 1, a.TotalGaps())
		assert.Equal(t, 1, a.GapOpenings())
	})

	t.Run("score only", func(t *testing.T) {
		score, err := GlobalAlignmentScoreOnly(mustSeq(t, "ATGC"), mustSeq(t, "ATGC"), nil)
		require.NoError(t, err)
		assert.Equal(t, int32(8), score)
	})
}

func TestSemiGlobalAlignment(t *testing.T) {
	t.Run("read embedded in reference", func(t *testing.T) {
		a, err := SemiGlobalAlignment(mustSeq(t, "ACGT"), mustSeq(t, "TTACGTTT"), nil, false, false)
		require.NoError(t, err)
		assert.Equal(t, int32(8), a.Score)
		assert.Equal(t, "4M", a.ToCIGAR())
		assert.Equal(t, 0, a.Start1)
		assert.Equal(t, 2, a.Start2)
		assert.Equal(t, SemiGlobal, a.AlignmentType)
	})

	t.Run("pinned both ends matches global", func(t *testing.T) {
		pinned, err := SemiGlobalAlignment(mustSeq(t, "ACGT"), mustSeq(t, "AACGT"), nil, true, true)
		require.NoError(t, err)

		global, err := NeedlemanWunsch(mustSeq(t, "ACGT"), mustSeq(t, "AACGT"), nil)
		require.NoError(t, err)

		assert.Equal(t, global.Score, pinned.Score)
		assert.Equal(t, global.ToCIGAR(), pinned.ToCIGAR())
	})
}

func TestBandedAlign(t *testing.T) {
	t.Run("full band matches local", func(t *testing.T) {
		seq1 := mustSeq(t, "ATGCATGC")
		seq2 := mustSeq(t, "ATGATGC")

		bands := make(align.BandLimits, seq1.Len())
		for i := range bands {
			bands[i] = align.BandWindow{Left: 0, Right: seq2.Len() - 1}
		}

		banded, err := BandedAlign(seq1, seq2, nil, bands)
		require.NoError(t, err)

		local, err := SmithWaterman(seq1, seq2, nil)
		require.NoError(t, err)

		assert.Equal(t, local.Score, banded.Score)
		assert.Equal(t, local.ToCIGAR(), banded.ToCIGAR())
		assert.Equal(t, Banded, banded.AlignmentType)
	})

	t.Run("band length mismatch rejected", func(t *testing.T) {
		_, err := BandedAlign(mustSeq(t, "ATGC"), mustSeq(t, "ATGC"), nil, align.BandLimits{})
		require.Error(t, err)
	})
}

func TestSeededAlign(t *testing.T) {
	t.Run("seeds recover the embedded match", func(t *testing.T) {
		a, err := SeededAlign(mustSeq(t, "ACGTAC"), mustSeq(t, "TTACGTAC"), nil, 4, 2)
		require.NoError(t, err)
		assert.Equal(t, int32(12), a.Score)
		assert.Equal(t, "6M", a.ToCIGAR())
		assert.Equal(t, 2, a.Start2)
		assert.Equal(t, Banded, a.AlignmentType)
	})

	t.Run("no shared k-mers fails", func(t *testing.T) {
		_, err := SeededAlign(mustSeq(t, "AAAAAAAA"), mustSeq(t, "TTTTTTTT"), nil, 4, 2)
		require.Error(t, err)
	})
}

func TestAlignmentResult(t *testing.T) {
	a, err := SmithWaterman(mustSeq(t, "TTATGCTT"), mustSeq(t, "ATGC"), nil)
	require.NoError(t, err)

	t.Run("soft clips in CIGAR", func(t *testing.T) {
		assert.Equal(t, "2S4M2S", a.ToCIGAR())
	})

	t.Run("spans", func(t *testing.T) {
		assert.Equal(t, 2, a.Start1)
		assert.Equal(t, 5, a.End1)
		assert.Equal(t, 0, a.Start2)
		assert.Equal(t, 3, a.End2)
	})

	t.Run("counts", func(t *testing.T) {
		assert.Equal(t, 4, a.MatchCount())
		assert.Equal(t, 0, a.MismatchCount())
		assert.Equal(t, 0, a.TotalGaps())
		assert.Equal(t, 0, a.EditDistance())
		assert.Equal(t, 1.0, a.Identity)
	})

	t.Run("format", func(t *testing.T) {
		out := a.Format()
		assert.Contains(t, out, "ATGC")
		assert.Contains(t, out, "Score: 8")
		assert.Contains(t, out, "CIGAR: 2S4M2S")
	})
}

func TestAlignAgainstMultiple(t *testing.T) {
	query := mustSeq(t, "ATGC")
	targets := []*sequence.Sequence{
		mustSeq(t, "TTTT"),
		mustSeq(t, "ATGC"),
		mustSeq(t, "ATGG"),
	}

	results, err := AlignAgainstMultiple(query, targets, nil)
	require.NoError(t, err)
	require.Len(t, results, 3)

	best, err := FindBestAlignment(query, targets, nil)
	require.NoError(t, err)
	require.NotNil(t, best)
	assert.Equal(t, 1, best.Index)
	assert.Equal(t, int32(8), best.Alignment.Score)

	t.Run("empty target list rejected", func(t *testing.T) {
		_, err := AlignAgainstMultiple(query, nil, nil)
		require.Error(t, err)
	})
}

func TestPercentIdentity(t *testing.T) {
	t.Run("full identity", func(t *testing.T) {
		pid, err := PercentIdentity("ATGC", "ATGC")
		require.NoError(t, err)
		assert.Equal(t, 100.0, pid)
	})

	t.Run("half identity", func(t *testing.T) {
		pid, err := PercentIdentity("ATGC", "ATTT")
		require.NoError(t, err)
		assert.Equal(t, 50.0, pid)
	})

	t.Run("gaps are not identical", func(t *testing.T) {
		pid, err := PercentIdentity("AT-C", "ATGC")
		require.NoError(t, err)
		assert.Equal(t, 75.0, pid)
	})

	t.Run("length mismatch rejected", func(t *testing.T) {
		_, err := PercentIdentity("AT", "ATGC")
		require.Error(t, err)
	})
}
