package align

import (
	"fmt"
	"strings"
)

// OpKind is the kind of a single Cigar element.
type OpKind uint8

const (
	// OpMatch consumes one base of both query and subject (a match or
	// mismatch; which one is determined later by comparing the bytes).
	OpMatch OpKind = iota
	// OpInsert consumes query only (a gap in the subject).
	OpInsert
	// OpDelete consumes subject only (a gap in the query).
	OpDelete
)

func (k OpKind) char() byte {
	switch k {
	case OpMatch:
		return 'M'
	case OpInsert:
		return 'I'
	case OpDelete:
		return 'D'
	default:
		return '?'
	}
}

// SElement is a single run-length-encoded alignment operation.
type SElement struct {
	Len  int
	Kind OpKind
}

// Cigar is an ordered sequence of SElements together with the query and
// subject coordinate span they cover. QFrom/SFrom are 0-based start
// offsets, QTo/STo are 0-based inclusive end offsets.
//
// A freshly constructed Cigar anchored at (ia, ib) is empty: QFrom =
// ia+1, QTo = ia, SFrom = ib+1, STo = ib. Growing it via PushFront /
// PushBack decreases the `from` or increases the `to` side accordingly.
// Adjacent elements never share a kind — pushes merge into the boundary
// element when kinds match.
type Cigar struct {
	Elements []SElement
	QFrom    int
	QTo      int
	SFrom    int
	STo      int
}

// NewCigar anchors an empty Cigar just past (ia, ib).
func NewCigar(ia, ib int) *Cigar {
	return &Cigar{QFrom: ia + 1, QTo: ia, SFrom: ib + 1, STo: ib}
}

// PushFront prepends length units of kind, merging with the current
// first element when it already has the same kind.
func (c *Cigar) PushFront(kind OpKind, length int) {
	if length <= 0 {
		return
	}
	if len(c.Elements) > 0 && c.Elements[0].Kind == kind {
		c.Elements[0].Len += length
	} else {
		c.Elements = append(c.Elements, SElement{})
		copy(c.Elements[1:], c.Elements)
		c.Elements[0] = SElement{Len: length, Kind: kind}
	}
	switch kind {
	case OpMatch:
		c.QFrom -= length
		c.SFrom -= length
	case OpInsert:
		c.QFrom -= length
	case OpDelete:
		c.SFrom -= length
	}
}

// PushBack appends length units of kind, merging with the current last
// element when it already has the same kind.
func (c *Cigar) PushBack(kind OpKind, length int) {
	if length <= 0 {
		return
	}
	if n := len(c.Elements); n > 0 && c.Elements[n-1].Kind == kind {
		c.Elements[n-1].Len += length
	} else {
		c.Elements = append(c.Elements, SElement{Len: length, Kind: kind})
	}
	switch kind {
	case OpMatch:
		c.QTo += length
		c.STo += length
	case OpInsert:
		c.QTo += length
	case OpDelete:
		c.STo += length
	}
}

// CigarString renders the compact CIGAR: `{length}{op}` tokens with
// op in {M, I, D}, prefixed/suffixed by a soft-clip `S` token when the
// untrimmed query side (relative to qstart/qlen) is non-empty.
func (c *Cigar) CigarString(qstart, qlen int) string {
	var sb strings.Builder

	if lead := qstart + c.QFrom; lead > 0 {
		fmt.Fprintf(&sb, "%dS", lead)
	}
	for _, e := range c.Elements {
		fmt.Fprintf(&sb, "%d%c", e.Len, e.Kind.char())
	}
	if trail := qlen - 1 - c.QTo - qstart; trail > 0 {
		fmt.Fprintf(&sb, "%dS", trail)
	}
	return sb.String()
}

// DetailedCigarString renders the CIGAR with every Match run split into
// alternating `=`/`X` runs by comparing query and subject bytes.
func (c *Cigar) DetailedCigarString(qstart, qlen int, query, subject []byte) string {
	var sb strings.Builder

	if lead := qstart + c.QFrom; lead > 0 {
		fmt.Fprintf(&sb, "%dS", lead)
	}

	qi, si := c.QFrom, c.SFrom
	for _, e := range c.Elements {
		switch e.Kind {
		case OpMatch:
			var runOp byte
			runLen := 0
			for k := 0; k < e.Len; k++ {
				op := byte('X')
				if query[qi] == subject[si] {
					op = '='
				}
				if runLen > 0 && op == runOp {
					runLen++
				} else {
					if runLen > 0 {
						fmt.Fprintf(&sb, "%d%c", runLen, runOp)
					}
					runOp, runLen = op, 1
				}
				qi++
				si++
			}
			if runLen > 0 {
				fmt.Fprintf(&sb, "%d%c", runLen, runOp)
			}
		case OpInsert:
			fmt.Fprintf(&sb, "%dI", e.Len)
			qi += e.Len
		case OpDelete:
			fmt.Fprintf(&sb, "%dD", e.Len)
			si += e.Len
		}
	}

	if trail := qlen - 1 - c.QTo - qstart; trail > 0 {
		fmt.Fprintf(&sb, "%dS", trail)
	}
	return sb.String()
}

// ToAlign renders the alignment as two equal-length byte strings, gaps
// written as '-'.
func (c *Cigar) ToAlign(query, subject []byte) ([]byte, []byte) {
	var aq, as []byte
	qi, si := c.QFrom, c.SFrom
	for _, e := range c.Elements {
		switch e.Kind {
		case OpMatch:
			aq = append(aq, query[qi:qi+e.Len]...)
			as = append(as, subject[si:si+e.Len]...)
			qi += e.Len
			si += e.Len
		case OpInsert:
			aq = append(aq, query[qi:qi+e.Len]...)
			as = append(as, gapBytes(e.Len)...)
			qi += e.Len
		case OpDelete:
			aq = append(aq, gapBytes(e.Len)...)
			as = append(as, subject[si:si+e.Len]...)
			si += e.Len
		}
	}
	return aq, as
}

func gapBytes(n int) []byte {
	g := make([]byte, n)
	for i := range g {
		g[i] = '-'
	}
	return g
}

// Matches counts equal bases within Match elements.
func (c *Cigar) Matches(query, subject []byte) int {
	matches := 0
	qi, si := c.QFrom, c.SFrom
	for _, e := range c.Elements {
		if e.Kind == OpMatch {
			for k := 0; k < e.Len; k++ {
				if query[qi+k] == subject[si+k] {
					matches++
				}
			}
		}
		qi, si = advance(qi, si, e)
	}
	return matches
}

// Distance counts mismatches within Match elements plus every gap
// position (each Insert/Delete base counts once).
func (c *Cigar) Distance(query, subject []byte) int {
	dist := 0
	qi, si := c.QFrom, c.SFrom
	for _, e := range c.Elements {
		switch e.Kind {
		case OpMatch:
			for k := 0; k < e.Len; k++ {
				if query[qi+k] != subject[si+k] {
					dist++
				}
			}
		case OpInsert, OpDelete:
			dist += e.Len
		}
		qi, si = advance(qi, si, e)
	}
	return dist
}

// Score sums matrix entries over Match elements plus -(rho + sigma*len)
// per gap element.
func (c *Cigar) Score(query, subject []byte, rho, sigma int32, matrix *ScoreMatrix) int32 {
	var score int32
	qi, si := c.QFrom, c.SFrom
	for _, e := range c.Elements {
		switch e.Kind {
		case OpMatch:
			for k := 0; k < e.Len; k++ {
				score += matrix.Score(query[qi+k], subject[si+k])
			}
		case OpInsert, OpDelete:
			score -= rho + sigma*int32(e.Len)
		}
		qi, si = advance(qi, si, e)
	}
	return score
}

func advance(qi, si int, e SElement) (int, int) {
	switch e.Kind {
	case OpMatch:
		return qi + e.Len, si + e.Len
	case OpInsert:
		return qi + e.Len, si
	case OpDelete:
		return qi, si + e.Len
	default:
		return qi, si
	}
}
