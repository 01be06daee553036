package align

import "math"

// CompoundScore is a lexicographic (score, tiebreak) pair packed into a
// single signed 64-bit word so it fits a machine register in the kernel's
// inner loop.
//
// The packed layout is `(score << 32) | tiebreak`, with score the upper
// 32 bits (sign-extended) and tiebreak the lower 32 bits (always
// non-negative). Ordinary int64 comparison then gives exactly the
// lexicographic ordering by score, then by tiebreak.
//
// Aria equivalent:
//
//	struct CompoundScore
//	  score: Int32
//	  tiebreak: UInt32
//	  invariant self.tiebreak >= 0
type CompoundScore int64

// NewCompoundScore packs a score and a non-negative tiebreak. It panics if
// tiebreak is negative: a negative tiebreak would carry into the score
// half and silently corrupt every comparison downstream, so this is a
// programmer error, not a recoverable one.
func NewCompoundScore(score int32, tiebreak int32) CompoundScore {
	if tiebreak < 0 {
		panic("align: CompoundScore tiebreak must be non-negative")
	}
	return CompoundScore(int64(score)<<32 | int64(uint32(tiebreak)))
}

// Score returns the primary score component.
func (c CompoundScore) Score() int32 {
	return int32(int64(c) >> 32)
}

// Tiebreak returns the tiebreak component.
func (c CompoundScore) Tiebreak() uint32 {
	return uint32(int64(c) & 0xFFFFFFFF)
}

// Add returns the componentwise sum, computed directly on the packed
// word: score halves add as ordinary signed 64-bit arithmetic, tiebreak
// halves add as the low 32 bits, exactly as int64 addition already does.
func (c CompoundScore) Add(o CompoundScore) CompoundScore {
	return CompoundScore(int64(c) + int64(o))
}

// GreaterThan is strict lexicographic ordering: score first, tiebreak to
// break ties.
func (c CompoundScore) GreaterThan(o CompoundScore) bool {
	return int64(c) > int64(o)
}

// zeroScore is the neutral CompoundScore used by local-style resets.
var zeroScore = NewCompoundScore(0, 0)

// bigNeg is a value so far below any attainable score that it never wins
// a comparison against a real cell; used to seed gap accumulators that
// must not be selected before any real candidate exists.
var bigNeg = NewCompoundScore(math.MinInt32/2, 0)
