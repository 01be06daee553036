package alignment

import (
	"fmt"

	"github.com/aria-lang/bioflow-go/internal/align"
	"github.com/aria-lang/bioflow-go/internal/sequence"
)

// NeedlemanWunsch performs global alignment using affine gap penalties.
//
// Aligns the entire length of both sequences.
//
// Aria equivalent:
//
//	fn needleman_wunsch(seq1: Sequence, seq2: Sequence, scoring: ScoringMatrix) -> Alignment
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
//	  ensures result.aligned_seq1.len() == result.aligned_seq2.len()
func NeedlemanWunsch(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	q, s := []byte(seq1.Bases), []byte(seq2.Bases)
	c, err := align.GlobalAlign(q, s, scoring.GapOpenPenalty, scoring.GapExtendPenalty, scoring.Matrix())
	if err != nil {
		return nil, err
	}

	return newAlignment(c, q, s, scoring, Global), nil
}

// SemiGlobalAlignment performs semi-global alignment with independently
// selectable ends: pinLeft forces the alignment to start at the
// beginning of both sequences, pinRight forces it to end at the end of
// both.
//
// This is useful when one sequence should fit entirely within another,
// like aligning a read to a reference.
func SemiGlobalAlignment(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix,
	pinLeft, pinRight bool) (*Alignment, error) {
	if scoring == nil {
		scoring = DefaultDNA()
	}

	if seq1.Len() == 0 || seq2.Len() == 0 {
		return nil, fmt.Errorf("sequences must be non-empty")
	}

	q, s := []byte(seq1.Bases), []byte(seq2.Bases)
	c, err := align.SemiGlobalAlign(q, s, scoring.GapOpenPenalty, scoring.GapExtendPenalty,
		scoring.Matrix(), pinLeft, pinRight)
	if err != nil {
		return nil, err
	}

	return newAlignment(c, q, s, scoring, SemiGlobal), nil
}

// GlobalAlignmentScoreOnly calculates the global alignment score.
func GlobalAlignmentScoreOnly(seq1, seq2 *sequence.Sequence, scoring *ScoringMatrix) (int32, error) {
	alignment, err := NeedlemanWunsch(seq1, seq2, scoring)
	if err != nil {
		return 0, err
	}
	return alignment.Score, nil
}

// SimpleAlign performs local alignment using default settings.
//
// Aria equivalent:
//
//	fn simple_align(seq1: Sequence, seq2: Sequence) -> Alignment
//	  requires seq1.is_valid() and seq2.is_valid()
//	  requires seq1.len() > 0 and seq2.len() > 0
func SimpleAlign(seq1, seq2 *sequence.Sequence) (*Alignment, error) {
	return SmithWaterman(seq1, seq2, DefaultDNA())
}
