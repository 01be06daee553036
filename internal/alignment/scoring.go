// Package alignment provides sequence alignment algorithms.
//
// This package wraps the affine-gap alignment kernels in internal/align
// with sequence-aware result types: global (Needleman-Wunsch), local
// (Smith-Waterman), semi-global, and banded alignment of validated
// sequences, each producing an Alignment with aligned strings, identity,
// and CIGAR rendering.
package alignment

import (
	"fmt"

	"github.com/aria-lang/bioflow-go/internal/align"
)

// AlignmentType represents the type of alignment.
type AlignmentType int

const (
	// Local represents Smith-Waterman local alignment
	Local AlignmentType = iota
	// Global represents Needleman-Wunsch global alignment
	Global
	// SemiGlobal represents alignment with selectable free ends
	SemiGlobal
	// Banded represents local alignment restricted to per-row column windows
	Banded
)

func (t AlignmentType) String() string {
	switch t {
	case Local:
		return "local"
	case Global:
		return "global"
	case SemiGlobal:
		return "semi-global"
	case Banded:
		return "banded"
	default:
		return "unknown"
	}
}

// ScoringMatrix represents the scoring parameters for alignment: the
// substitution scores plus the affine gap penalties. A gap of length L
// costs GapOpenPenalty + GapExtendPenalty*L. All penalties are positive
// magnitudes.
//
// Aria equivalent:
//
//	struct ScoringMatrix
//	  match_score: Int
//	  mismatch_penalty: Int
//	  gap_open_penalty: Int
//	  gap_extend_penalty: Int
//	  invariant self.match_score > 0
//	  invariant self.mismatch_penalty >= 0
//	  invariant self.gap_open_penalty >= 0
//	  invariant self.gap_extend_penalty >= 0
type ScoringMatrix struct {
	MatchScore       int32
	MismatchPenalty  int32
	GapOpenPenalty   int32
	GapExtendPenalty int32
	Protein          bool

	matrix *align.ScoreMatrix
}

// NewScoringMatrix creates a new DNA scoring matrix with validation.
func NewScoringMatrix(match, mismatch, gapOpen, gapExtend int32) (*ScoringMatrix, error) {
	if match <= 0 {
		return nil, fmt.Errorf("match score must be positive")
	}
	if mismatch < 0 {
		return nil, fmt.Errorf("mismatch penalty must be non-negative")
	}
	if gapOpen < 0 {
		return nil, fmt.Errorf("gap open penalty must be non-negative")
	}
	if gapExtend < 0 {
		return nil, fmt.Errorf("gap extend penalty must be non-negative")
	}

	return &ScoringMatrix{
		MatchScore:       match,
		MismatchPenalty:  mismatch,
		GapOpenPenalty:   gapOpen,
		GapExtendPenalty: gapExtend,
		matrix:           align.NewDNAScoreMatrix(match, mismatch),
	}, nil
}

// DefaultDNA creates a default DNA scoring matrix.
func DefaultDNA() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:       2,
		MismatchPenalty:  1,
		GapOpenPenalty:   2,
		GapExtendPenalty: 1,
		matrix:           align.NewDNAScoreMatrix(2, 1),
	}
}

// BLASTLike creates a BLAST-like DNA scoring matrix.
func BLASTLike() *ScoringMatrix {
	return &ScoringMatrix{
		MatchScore:       1,
		MismatchPenalty:  3,
		GapOpenPenalty:   5,
		GapExtendPenalty: 2,
		matrix:           align.NewDNAScoreMatrix(1, 3),
	}
}

// BLOSUM62 creates a protein scoring matrix using the BLOSUM62
// substitution table with standard protein gap penalties.
func BLOSUM62() *ScoringMatrix {
	return &ScoringMatrix{
		GapOpenPenalty:   11,
		GapExtendPenalty: 1,
		Protein:          true,
		matrix:           align.NewProteinScoreMatrix(),
	}
}

// Matrix returns the substitution table backing this scoring scheme.
func (s *ScoringMatrix) Matrix() *align.ScoreMatrix {
	if s.matrix == nil {
		if s.Protein {
			s.matrix = align.NewProteinScoreMatrix()
		} else {
			s.matrix = align.NewDNAScoreMatrix(s.MatchScore, s.MismatchPenalty)
		}
	}
	return s.matrix
}

// String returns a string representation of the scoring matrix.
func (s *ScoringMatrix) String() string {
	if s.Protein {
		return fmt.Sprintf("ScoringMatrix { BLOSUM62, gap_open: %d, gap_extend: %d }",
			s.GapOpenPenalty, s.GapExtendPenalty)
	}
	return fmt.Sprintf("ScoringMatrix { match: %d, mismatch: %d, gap_open: %d, gap_extend: %d }",
		s.MatchScore, s.MismatchPenalty, s.GapOpenPenalty, s.GapExtendPenalty)
}
