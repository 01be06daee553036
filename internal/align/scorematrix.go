package align

// ScoreMatrix is a dense 256x256 substitution table indexed directly by
// raw byte value, avoiding a map lookup in the kernel's inner loop — the
// same technique a classic Needleman-Wunsch implementation uses a
// precomputed value-to-code lookup table for (rather than hashing an
// alphabet on every cell).
//
// Immutable after construction; safe to share by read-only reference
// across concurrent kernel calls.
type ScoreMatrix struct {
	table [256][256]int32
}

func upperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 32
	}
	return b
}

// NewDNAScoreMatrix builds a matrix where any byte whose uppercased form
// equals another's (and neither uppercases to 'N') scores +match;
// everything else scores -mismatch. Case is folded transparently; 'N'
// never matches, including itself.
func NewDNAScoreMatrix(match, mismatch int32) *ScoreMatrix {
	m := &ScoreMatrix{}
	for i := 0; i < 256; i++ {
		ci := upperByte(byte(i))
		for j := 0; j < 256; j++ {
			cj := upperByte(byte(j))
			if ci != 'N' && ci == cj {
				m.table[i][j] = match
			} else {
				m.table[i][j] = -mismatch
			}
		}
	}
	return m
}

// blosum62Alphabet is the 24-symbol amino acid alphabet backing
// NewProteinScoreMatrix, in the canonical BLOSUM62 row/column order.
const blosum62Alphabet = "ARNDCQEGHILKMFPSTWYVBZX*"

func lowerAA(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 32
	}
	return b
}

// NewProteinScoreMatrix builds the standard BLOSUM62 substitution matrix
// over blosum62Alphabet, written into all four case combinations of each
// symbol pair (upper/upper, upper/lower, lower/upper, lower/lower). Any
// byte pair outside the alphabet scores zero.
func NewProteinScoreMatrix() *ScoreMatrix {
	m := &ScoreMatrix{}
	n := len(blosum62Alphabet)
	for i := 0; i < n; i++ {
		ui := blosum62Alphabet[i]
		li := lowerAA(ui)
		for j := 0; j < n; j++ {
			v := blosum62Table[i][j]
			uj := blosum62Alphabet[j]
			lj := lowerAA(uj)
			m.table[ui][uj] = v
			m.table[ui][lj] = v
			m.table[li][uj] = v
			m.table[li][lj] = v
		}
	}
	return m
}

// Score returns the substitution score for comparing two raw bytes.
func (m *ScoreMatrix) Score(a, b byte) int32 {
	return m.table[a][b]
}
