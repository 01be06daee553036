package align

import "fmt"

// AlignError is the base error type for alignment operations.
type AlignError interface {
	error
	IsAlignError()
}

// BandCountError is returned when the number of band windows supplied
// to the variable-band kernel does not match the query length.
type BandCountError struct {
	QueryLen  int
	BandCount int
}

func (e *BandCountError) Error() string {
	return fmt.Sprintf("align: %d band windows for query length %d", e.BandCount, e.QueryLen)
}

func (e *BandCountError) IsAlignError() {}

// InvalidGapError is returned when a gap-open or gap-extend penalty is
// negative.
type InvalidGapError struct {
	Which string
	Value int32
}

func (e *InvalidGapError) Error() string {
	return fmt.Sprintf("align: %s must be non-negative, got %d", e.Which, e.Value)
}

func (e *InvalidGapError) IsAlignError() {}

// InvalidBandError is returned when a non-empty BandLimits window falls
// outside the subject.
type InvalidBandError struct {
	Row        int
	Left       int
	Right      int
	SubjectLen int
}

func (e *InvalidBandError) Error() string {
	return fmt.Sprintf("align: band row %d has invalid window [%d,%d] for subject length %d",
		e.Row, e.Left, e.Right, e.SubjectLen)
}

func (e *InvalidBandError) IsAlignError() {}
