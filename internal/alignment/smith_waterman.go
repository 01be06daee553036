package alignment

import (
	"fmt"
	"strings"

	"github.com/aria-lang/bioflow-go/internal/align"
	"github.com/aria-lang/bioflow-go/internal/kmer"
	"github.com/aria-lang/bioflow-go/internal/sequence"
)

// Alignment represents the result of an alignment between two sequences.
//
// Aria equivalent:
//
//	struct Alignment
//	  aligned_seq1: String
//	  aligned_seq2: String
//	  score: Int
//	  start1: Int
//	  end1: Int
//	  start2: Int
//	  end2: Int
//	  alignment_type: AlignmentType
//	  identity: Float
//	  invariant self.aligned_seq1.len() == self.aligned_seq2.len()
//	  invariant self.identity >= 0.0 and self.identity <= 1.0
type Alignment struct {
	AlignedSeq1   string
	AlignedSeq2   string
	Score         int32
	Start1        int
	End1          int
	Start2        int
	End2          int
	AlignmentType AlignmentType
	Identity      float64

	cigar   *align.Cigar
	query   []byte
	subject []byte
}

// newAlignment wraps a kernel-produced Cigar into an Alignment result.
func newAlignment(c *align.Cigar, query, subject []byte, scoring *ScoringMatrix, alignType AlignmentType) *Alignment {
	aq, as := c.ToAlign(query, subject)

	a := &Alignment{
		AlignedSeq1:   string(aq),
		AlignedSeq2:   string(as),
		Score:         c.Score(query, subject, scoring.GapOpenPenalty, scoring.GapExtendPenalty, scoring.Matrix()),
		Start1:        c.QFrom,
		End1:          c.QTo,
		Start2:        c.SFrom,
		End2:          c.STo,
		AlignmentType: alignType,
		cigar:         c,
		query:         query,
		subject:       subject,
	}
	if len(aq) > 0 {
		a.Identity = float64(c.Matches(query, subject)) / float64(len(aq))
	}
	return a
}

// Cigar returns the underlying alignment operations.
func (a *Alignment) Cigar() *align.Cigar {
	return a.cigar
}

// Length returns the length of the alignment (including gap columns).
func (a *Alignment) Length() int {
	return len(a.AlignedSeq1)
}

// MatchCount returns the number of matching columns.
func (a *Alignment) MatchCount() int {
	return a.cigar.Matches(a.query, a.subject)
}

// MismatchCount returns the number of mismatching columns.
func (a *Alignment) MismatchCount() int {
	return a.cigar.Distance(a.query, a.subject) - a.TotalGaps()
}

// GapsSeq1 returns the number of gap columns in sequence 1.
func (a *Alignment) GapsSeq1() int {
	return strings.Count(a.AlignedSeq1, "-")
}

// GapsSeq2 returns the number of gap columns in sequence 2.
func (a *Alignment) GapsSeq2() int {
	return strings.Count(a.AlignedSeq2, "-")
}

// TotalGaps returns the total number of gap columns.
func (a *Alignment) TotalGaps() int {
	return a.GapsSeq1() + a.GapsSeq2()
}

// GapOpenings counts the number of gap openings.
func (a *Alignment) GapOpenings() int {
	openings := 0
	for _, e := range a.cigar.Elements {
		if e.Kind != align.OpMatch {
			openings++
		}
	}
	return openings
}

// EditDistance returns mismatches plus gap columns.
func (a *Alignment) EditDistance() int {
	return a.cigar.Distance(a.query, a.subject)
}

// ToCIGAR generates the compact CIGAR string, soft-clipping the
// unaligned ends of sequence 1.
func (a *Alignment) ToCIGAR() string {
	return a.cigar.CigarString(0, len(a.query))
}

// ToDetailedCIGAR generates the CIGAR string with match runs split into
// `=` and `X` runs.
func (a *Alignment) ToDetailedCIGAR() string {
	return a.cigar.DetailedCigarString(0, len(a.query), a.query, a.subject)
}

// Format returns a formatted string representation of the alignment.
func (a *Alignment) Format() string {
	var matchLine strings.Builder
	for i := 0; i < len(a.AlignedSeq1); i++ {
		if a.AlignedSeq1[i] == a.AlignedSeq2[i] && a.AlignedSeq1[i] != '-' {
			matchLine.WriteByte('|')
		} else if a.AlignedSeq1[i] == '-' || a.AlignedSeq2[i] == '-' {
			matchLine.WriteByte(' ')
		} else {
			matchLine.WriteByte('.')
		}
	}

	return fmt.Sprintf("Seq1: %s\n      %s\nSeq2: %s\nScore: %d\nIdentity: %.1f%%\nCIGAR: %s",
		a.AlignedSeq1, matchLine.String(), a.AlignedSeq2,
		a.Score, a.Identity*100, a.ToCIGAR())
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { type: %s, score: %d, identity: %.1f%%, length: %d }",
		a.AlignmentType, a.Score, a.Identity*100, a.Length())
}

// SmithWaterman performs local alignment using the Smith-Waterman
// algorithm with affine gap penalties.
//
// Finds the optimal local alignment between two sequences.
//
// Aria equivalent:
//
//	fn smith_waterman(seq1: Sequence, seq2: Sequence, scoring: ScoringMatrix) -> Alignment
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
//	  ensures result.score >= 0
//	  ensures result.aligned_seq1.len() == result.aligned_seq2.len()
func SmithWaterman(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	q, s := []byte(seq1.Bases), []byte(seq2.Bases)
	c, err := align.LocalAlign(q, s, scoring.GapOpenPenalty, scoring.GapExtendPenalty, scoring.Matrix())
	if err != nil {
		return nil, err
	}

	return newAlignment(c, q, s, scoring, Local), nil
}

// BandedAlign performs local alignment restricted, per row of seq1, to
// the column window of seq2 that bands supplies.
func BandedAlign(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix, bands align.BandLimits) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	q, s := []byte(seq1.Bases), []byte(seq2.Bases)
	c, err := align.VariableBandAlign(q, s, scoring.GapOpenPenalty, scoring.GapExtendPenalty, scoring.Matrix(), bands)
	if err != nil {
		return nil, err
	}

	return newAlignment(c, q, s, scoring, Banded), nil
}

// SeededAlign performs banded local alignment with the band derived
// from shared k-mers: seed matches between seq1 and seq2 fix the
// diagonals the alignment can follow, and the DP is restricted to that
// diagonal range widened by pad columns. Much cheaper than a full
// Smith-Waterman when the sequences are long and similar; fails when
// the sequences share no k-mer of length k.
func SeededAlign(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix, k, pad int) (*Alignment, error) {
	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	bands, err := kmer.SeedBands(seq1, seq2, k, pad)
	if err != nil {
		return nil, err
	}

	return BandedAlign(seq1, seq2, scoring, bands)
}

// AlignAgainstMultiple aligns a sequence against multiple targets.
//
// Aria equivalent:
//
//	fn align_against_multiple(query: Sequence, targets: [Sequence], scoring: ScoringMatrix)
//	  -> [(Int, Alignment)]
//	  requires query.is_valid()
//	  requires targets.len() > 0
//	  ensures result.len() == targets.len()
func AlignAgainstMultiple(query *sequence.Sequence, targets []*sequence.Sequence,
	scoring *ScoringMatrix) ([]IndexedAlignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("target list cannot be empty")
	}

	results := make([]IndexedAlignment, len(targets))
	for i, target := range targets {
		alignment, err := SmithWaterman(query, target, scoring)
		if err != nil {
			return nil, err
		}
		results[i] = IndexedAlignment{Index: i, Alignment: alignment}
	}

	return results, nil
}

// IndexedAlignment pairs an alignment with its index.
type IndexedAlignment struct {
	Index     int
	Alignment *Alignment
}

// FindBestAlignment finds the best alignment among multiple targets.
//
// Aria equivalent:
//
//	fn find_best_alignment(query: Sequence, targets: [Sequence], scoring: ScoringMatrix)
//	  -> Option<(Int, Alignment)>
//	  requires query.is_valid()
//	  requires targets.len() > 0
func FindBestAlignment(query *sequence.Sequence, targets []*sequence.Sequence,
	scoring *ScoringMatrix) (*IndexedAlignment, error) {
	alignments, err := AlignAgainstMultiple(query, targets, scoring)
	if err != nil {
		return nil, err
	}

	if len(alignments) == 0 {
		return nil, nil
	}

	best := alignments[0]
	for _, a := range alignments[1:] {
		if a.Alignment.Score > best.Alignment.Score {
			best = a
		}
	}

	return &best, nil
}

// PercentIdentity calculates percent identity between two aligned strings.
//
// Aria equivalent:
//
//	fn percent_identity(aligned1: String, aligned2: String) -> Float
//	  requires aligned1.len() == aligned2.len()
//	  requires aligned1.len() > 0
//	  ensures result >= 0.0 and result <= 100.0
func PercentIdentity(aligned1, aligned2 string) (float64, error) {
	if len(aligned1) != len(aligned2) {
		return 0, fmt.Errorf("aligned sequences must have equal length")
	}
	if len(aligned1) == 0 {
		return 0, fmt.Errorf("aligned sequences cannot be empty")
	}

	matches := 0
	for i := 0; i < len(aligned1); i++ {
		if aligned1[i] == aligned2[i] && aligned1[i] != '-' {
			matches++
		}
	}

	return float64(matches) / float64(len(aligned1)) * 100.0, nil
}
