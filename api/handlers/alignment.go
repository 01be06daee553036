package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aria-lang/bioflow-go/pkg/bioflow"
)

// AlignmentRequest represents an alignment request. Scoring fields are
// optional; zero values fall back to the default DNA scheme (or BLOSUM62
// when protein is set). Bands is only consulted by the banded endpoint
// and must carry one [left, right] window per base of sequence1.
type AlignmentRequest struct {
	Sequence1 string   `json:"sequence1"`
	Sequence2 string   `json:"sequence2"`
	Protein   bool     `json:"protein,omitempty"`
	Match     int32    `json:"match,omitempty"`
	Mismatch  int32    `json:"mismatch,omitempty"`
	GapOpen   int32    `json:"gap_open,omitempty"`
	GapExtend int32    `json:"gap_extend,omitempty"`
	PinLeft   bool     `json:"pin_left,omitempty"`
	PinRight  bool     `json:"pin_right,omitempty"`
	Bands     [][2]int `json:"bands,omitempty"`
}

// AlignmentResponse represents the response for alignment.
type AlignmentResponse struct {
	AlignedSeq1   string  `json:"aligned_seq1"`
	AlignedSeq2   string  `json:"aligned_seq2"`
	Score         int32   `json:"score"`
	Identity      float64 `json:"identity"`
	CIGAR         string  `json:"cigar"`
	DetailedCIGAR string  `json:"detailed_cigar"`
	Matches       int     `json:"matches"`
	Mismatches    int     `json:"mismatches"`
	Gaps          int     `json:"gaps"`
	QueryFrom     int     `json:"query_from"`
	QueryTo       int     `json:"query_to"`
	SubjectFrom   int     `json:"subject_from"`
	SubjectTo     int     `json:"subject_to"`
}

func (req *AlignmentRequest) scoring() (*bioflow.ScoringMatrix, error) {
	if req.Protein {
		s := bioflow.ProteinScoring()
		if req.GapOpen > 0 {
			s.GapOpenPenalty = req.GapOpen
		}
		if req.GapExtend > 0 {
			s.GapExtendPenalty = req.GapExtend
		}
		return s, nil
	}

	s := bioflow.DefaultScoring()
	if req.Match == 0 && req.Mismatch == 0 && req.GapOpen == 0 && req.GapExtend == 0 {
		return s, nil
	}
	match, mismatch := s.MatchScore, s.MismatchPenalty
	gapOpen, gapExtend := s.GapOpenPenalty, s.GapExtendPenalty
	if req.Match != 0 {
		match = req.Match
	}
	if req.Mismatch != 0 {
		mismatch = req.Mismatch
	}
	if req.GapOpen != 0 {
		gapOpen = req.GapOpen
	}
	if req.GapExtend != 0 {
		gapExtend = req.GapExtend
	}
	return bioflow.NewScoringMatrix(match, mismatch, gapOpen, gapExtend)
}

func (req *AlignmentRequest) sequences() (*bioflow.Sequence, *bioflow.Sequence, error) {
	newSeq := bioflow.NewSequence
	if req.Protein {
		newSeq = bioflow.NewProteinSequence
	}

	seq1, err := newSeq(req.Sequence1)
	if err != nil {
		return nil, nil, err
	}
	seq2, err := newSeq(req.Sequence2)
	if err != nil {
		return nil, nil, err
	}
	return seq1, seq2, nil
}

func writeAlignment(w http.ResponseWriter, alignment *bioflow.Alignment) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(AlignmentResponse{
		AlignedSeq1:   alignment.AlignedSeq1,
		AlignedSeq2:   alignment.AlignedSeq2,
		Score:         alignment.Score,
		Identity:      alignment.Identity,
		CIGAR:         alignment.ToCIGAR(),
		DetailedCIGAR: alignment.ToDetailedCIGAR(),
		Matches:       alignment.MatchCount(),
		Mismatches:    alignment.MismatchCount(),
		Gaps:          alignment.TotalGaps(),
		QueryFrom:     alignment.Start1,
		QueryTo:       alignment.End1,
		SubjectFrom:   alignment.Start2,
		SubjectTo:     alignment.End2,
	})
}

type alignFunc func(seq1, seq2 *bioflow.Sequence, req *AlignmentRequest) (*bioflow.Alignment, error)

func handleAlignment(w http.ResponseWriter, r *http.Request, fn alignFunc) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, seq2, err := req.sequences()
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := fn(seq1, seq2, &req)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	writeAlignment(w, alignment)
}

// LocalAlignHandler handles local alignment requests.
func LocalAlignHandler(w http.ResponseWriter, r *http.Request) {
	handleAlignment(w, r, func(seq1, seq2 *bioflow.Sequence, req *AlignmentRequest) (*bioflow.Alignment, error) {
		scoring, err := req.scoring()
		if err != nil {
			return nil, err
		}
		return bioflow.AlignWithScoring(seq1, seq2, scoring)
	})
}

// GlobalAlignHandler handles global alignment requests.
func GlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	handleAlignment(w, r, func(seq1, seq2 *bioflow.Sequence, req *AlignmentRequest) (*bioflow.Alignment, error) {
		scoring, err := req.scoring()
		if err != nil {
			return nil, err
		}
		return bioflow.AlignGlobalWithScoring(seq1, seq2, scoring)
	})
}

// SemiGlobalAlignHandler handles semi-global alignment requests with
// selectable pinned ends.
func SemiGlobalAlignHandler(w http.ResponseWriter, r *http.Request) {
	handleAlignment(w, r, func(seq1, seq2 *bioflow.Sequence, req *AlignmentRequest) (*bioflow.Alignment, error) {
		scoring, err := req.scoring()
		if err != nil {
			return nil, err
		}
		return bioflow.AlignSemiGlobalWithScoring(seq1, seq2, scoring, req.PinLeft, req.PinRight)
	})
}

// BandedAlignHandler handles banded local alignment requests.
func BandedAlignHandler(w http.ResponseWriter, r *http.Request) {
	handleAlignment(w, r, func(seq1, seq2 *bioflow.Sequence, req *AlignmentRequest) (*bioflow.Alignment, error) {
		scoring, err := req.scoring()
		if err != nil {
			return nil, err
		}
		bands := make(bioflow.BandLimits, len(req.Bands))
		for i, b := range req.Bands {
			bands[i] = bioflow.BandWindow{Left: b[0], Right: b[1]}
		}
		return bioflow.AlignBandedWithScoring(seq1, seq2, scoring, bands)
	})
}

// ScoreResponse represents the response for alignment score.
type ScoreResponse struct {
	Score int32 `json:"score"`
}

// AlignmentScoreHandler handles alignment score requests.
func AlignmentScoreHandler(w http.ResponseWriter, r *http.Request) {
	var req AlignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq1, seq2, err := req.sequences()
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	scoring, err := req.scoring()
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	alignment, err := bioflow.AlignWithScoring(seq1, seq2, scoring)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScoreResponse{Score: alignment.Score})
}

// EntropyRequest represents an entropy request.
type EntropyRequest struct {
	Sequence string `json:"sequence"`
}

// EntropyResponse represents the response for sequence entropy.
type EntropyResponse struct {
	Entropy float64 `json:"entropy"`
}

// EntropyHandler handles DNA entropy requests.
func EntropyHandler(w http.ResponseWriter, r *http.Request) {
	var req EntropyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	seq, err := bioflow.NewSequence(req.Sequence)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(EntropyResponse{Entropy: bioflow.Entropy(seq)})
}
