package align

// scratch holds the row buffers and traceback bitmap for one kernel
// invocation. Callers own exactly one scratch per call; nothing is
// retained across calls.
type scratch struct {
	s, sm, gapb []CompoundScore
	bmp         bitmap
	na, nb      int
}

func newScratch(na, nb int) *scratch {
	return &scratch{
		s:    make([]CompoundScore, nb+1),
		sm:   make([]CompoundScore, nb+1),
		gapb: make([]CompoundScore, nb+1),
		bmp:  newBitmap(na+1, nb+1),
		na:   na,
		nb:   nb,
	}
}

// kernelParams selects how the shared recurrence behaves as Global,
// Local, or either half of Semi-global: a single cell-update routine
// parameterized by a handful of booleans rather than four copies of the
// same inner loop.
type kernelParams struct {
	pinnedBoundary   bool // row 0 / column 0 carry accumulated gap penalties instead of zeros
	zeroSeeds        bool // gap accumulators seed at zero rather than the unreachable floor
	resetNonpositive bool // non-positive cells reset to the zero sentinel and terminate backtrack
	extendLeftColumn bool // each row's column-0 score extends a running left-edge B-gap
}

func validateGapPenalties(rho, sigma int32) error {
	if rho < 0 {
		return &InvalidGapError{Which: "rho", Value: rho}
	}
	if sigma < 0 {
		return &InvalidGapError{Which: "sigma", Value: sigma}
	}
	return nil
}

// fillRows runs the shared affine-gap recurrence over the full (na x nb)
// grid and returns the scratch (with a completed bitmap and the final
// row pair in s/sm) together with the best diagonal-winning cell seen.
// The maximum is tracked only when the diagonal candidate wins a cell,
// and a later cell must beat it strictly, so ties keep the first
// occurrence.
func fillRows(a, b []byte, rho, sigma int32, matrix *ScoreMatrix, p kernelParams) (*scratch, int, int) {
	na, nb := len(a), len(b)
	sc := newScratch(na, nb)

	rsa := NewCompoundScore(-(rho + sigma), 0)
	rsb := NewCompoundScore(-(rho + sigma), 1)
	rsbExt := NewCompoundScore(-sigma, 1)
	gapaStep := NewCompoundScore(-sigma, 0)
	gapbStep := NewCompoundScore(-sigma, 1)

	gapaSeed := bigNeg
	if p.zeroSeeds {
		gapaSeed = zeroScore
	}

	maxScore := zeroScore
	maxRow, maxCol := 0, 0

	if p.pinnedBoundary {
		sc.sm[0] = zeroScore
		if nb >= 1 {
			sc.sm[1] = rsa
		}
		for j := 2; j <= nb; j++ {
			sc.sm[j] = sc.sm[j-1].Add(gapaStep)
		}
		for j := range sc.gapb {
			sc.gapb[j] = bigNeg
		}
		sc.s[0] = rsb

		sc.bmp.assign(0, 0, 0)
		for j := 1; j <= nb; j++ {
			sc.bmp.assign(0, j, flagAgap)
		}
		if nb >= 1 {
			sc.bmp.set(0, 1, flagAstart)
		}
	} else {
		gapbSeed := bigNeg
		if p.zeroSeeds {
			gapbSeed = zeroScore
		}
		for j := range sc.sm {
			sc.sm[j] = zeroScore
		}
		for j := range sc.gapb {
			sc.gapb[j] = gapbSeed
		}
		sc.s[0] = zeroScore

		if p.zeroSeeds {
			sc.bmp.assign(0, 0, flagZero)
		} else {
			sc.bmp.assign(0, 0, 0)
		}
		for j := 1; j <= nb; j++ {
			sc.bmp.assign(0, j, flagZero)
		}
	}

	for i := 0; i < na; i++ {
		if p.extendLeftColumn {
			sc.bmp.assign(i+1, 0, flagBstart|flagBgap)
		} else {
			sc.bmp.assign(i+1, 0, flagZero)
		}

		gapa := gapaSeed

		for j := 0; j < nb; j++ {
			flags := byte(0)
			ss := sc.sm[j].Add(NewCompoundScore(matrix.Score(a[i], b[j]), 1))

			gapa = gapa.Add(gapaStep)
			if cand := sc.s[j].Add(rsa); cand.GreaterThan(gapa) {
				gapa = cand
				flags |= flagAstart
			}

			sc.gapb[j+1] = sc.gapb[j+1].Add(gapbStep)
			if cand := sc.sm[j+1].Add(rsb); cand.GreaterThan(sc.gapb[j+1]) {
				sc.gapb[j+1] = cand
				flags |= flagBstart
			}

			var best CompoundScore
			if gapa.GreaterThan(sc.gapb[j+1]) {
				if ss.GreaterThan(gapa) {
					best = ss
					if ss.GreaterThan(maxScore) {
						maxScore = ss
						maxRow, maxCol = i+1, j+1
					}
				} else {
					best = gapa
					flags |= flagAgap
				}
			} else {
				if ss.GreaterThan(sc.gapb[j+1]) {
					best = ss
					if ss.GreaterThan(maxScore) {
						maxScore = ss
						maxRow, maxCol = i+1, j+1
					}
				} else {
					best = sc.gapb[j+1]
					flags |= flagBgap
				}
			}

			if p.resetNonpositive && best.Score() <= 0 {
				best = zeroScore
				flags |= flagZero
			}
			sc.s[j+1] = best
			sc.bmp.assign(i+1, j+1, flags)
		}

		sc.s, sc.sm = sc.sm, sc.s
		if p.extendLeftColumn {
			sc.s[0] = sc.sm[0].Add(rsbExt)
		}
	}

	return sc, maxRow, maxCol
}

// backtrack walks the bitmap from bitmap cell (ia+1, ib+1) back to a
// terminating Zero cell or the grid origin, emitting a Cigar.
func (sc *scratch) backtrack(ia, ib int) *Cigar {
	c := NewCigar(ia, ib)
	row, col := ia+1, ib+1

	for ia >= 0 || ib >= 0 {
		flags := sc.bmp.at(row, col)
		if flags&flagZero != 0 {
			break
		}

		switch {
		case flags&flagAgap != 0:
			length := 1
			for sc.bmp.at(row, col)&flagAstart == 0 {
				col--
				length++
			}
			col--
			ib -= length
			c.PushFront(OpDelete, length)
		case flags&flagBgap != 0:
			length := 1
			for sc.bmp.at(row, col)&flagBstart == 0 {
				row--
				length++
			}
			row--
			ia -= length
			c.PushFront(OpInsert, length)
		default:
			c.PushFront(OpMatch, 1)
			row--
			col--
			ia--
			ib--
		}
	}

	return c
}

// GlobalAlign produces an end-to-end (Needleman-Wunsch-style) alignment
// of a against b.
func GlobalAlign(a, b []byte, rho, sigma int32, matrix *ScoreMatrix) (*Cigar, error) {
	if err := validateGapPenalties(rho, sigma); err != nil {
		return nil, err
	}
	if len(a) == 0 || len(b) == 0 {
		return NewCigar(len(a)-1, len(b)-1), nil
	}
	sc, _, _ := fillRows(a, b, rho, sigma, matrix, kernelParams{
		pinnedBoundary:   true,
		extendLeftColumn: true,
	})
	return sc.backtrack(len(a)-1, len(b)-1), nil
}

// LocalAlign produces the best-scoring Smith-Waterman sub-alignment of a
// against b.
func LocalAlign(a, b []byte, rho, sigma int32, matrix *ScoreMatrix) (*Cigar, error) {
	if err := validateGapPenalties(rho, sigma); err != nil {
		return nil, err
	}
	sc, maxRow, maxCol := fillRows(a, b, rho, sigma, matrix, kernelParams{
		zeroSeeds:        true,
		resetNonpositive: true,
	})
	return sc.backtrack(maxRow-1, maxCol-1), nil
}

// SemiGlobalAlign aligns a against b with independently selectable free
// or pinned ends on each side: pinleft forces the alignment to start at
// (0,0), pinright forces it to end at (na-1, nb-1).
func SemiGlobalAlign(a, b []byte, rho, sigma int32, matrix *ScoreMatrix, pinleft, pinright bool) (*Cigar, error) {
	if err := validateGapPenalties(rho, sigma); err != nil {
		return nil, err
	}
	if pinright && (len(a) == 0 || len(b) == 0) {
		return NewCigar(len(a)-1, len(b)-1), nil
	}
	sc, maxRow, maxCol := fillRows(a, b, rho, sigma, matrix, kernelParams{
		pinnedBoundary:   pinleft,
		resetNonpositive: !pinleft,
		extendLeftColumn: pinleft,
	})
	if pinright {
		return sc.backtrack(len(a)-1, len(b)-1), nil
	}
	return sc.backtrack(maxRow-1, maxCol-1), nil
}
