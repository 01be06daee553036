package align

// BandWindow is the inclusive column range `[Left, Right]` permitted for
// one row of the variable-band kernel. Right < Left marks a row that
// contributes nothing to the alignment.
type BandWindow struct {
	Left  int
	Right int
}

// BandLimits supplies one BandWindow per row of the query sequence, in
// row order.
type BandLimits []BandWindow

func (bl BandLimits) window(i int) (left, right int, nonEmpty bool) {
	w := bl[i]
	return w.Left, w.Right, w.Left <= w.Right
}

// VariableBandAlign computes the best-scoring local alignment of a
// against b restricted, per row, to the column window bands supplies.
// Rows whose window is empty (Right < Left) contribute nothing and the
// backtrack never crosses them.
func VariableBandAlign(a, b []byte, rho, sigma int32, matrix *ScoreMatrix, bands BandLimits) (*Cigar, error) {
	if err := validateGapPenalties(rho, sigma); err != nil {
		return nil, err
	}
	na, nb := len(a), len(b)
	if len(bands) != na {
		return nil, &BandCountError{QueryLen: na, BandCount: len(bands)}
	}

	sc := newScratch(na, nb)
	for j := 0; j <= nb; j++ {
		sc.s[j] = zeroScore
		sc.sm[j] = zeroScore
		sc.gapb[j] = zeroScore
		sc.bmp.assign(0, j, flagZero)
	}

	rsa := NewCompoundScore(-(rho + sigma), 0)
	rsb := NewCompoundScore(-(rho + sigma), 1)
	gapaStep := NewCompoundScore(-sigma, 0)
	gapbStep := NewCompoundScore(-sigma, 1)

	maxScore := zeroScore
	maxRow, maxCol := 0, 0

	for i := 0; i < na; i++ {
		left, right, nonEmpty := bands.window(i)
		if nonEmpty && (left < 0 || right > nb-1) {
			return nil, &InvalidBandError{Row: i, Left: left, Right: right, SubjectLen: nb}
		}

		if nonEmpty {
			sc.bmp.assign(i+1, left, flagZero)
			sc.s[left] = zeroScore
			gapa := zeroScore

			for j := left; j <= right; j++ {
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

				if best.Score() <= 0 {
					best = zeroScore
					flags |= flagZero
				}
				sc.s[j+1] = best
				sc.bmp.assign(i+1, j+1, flags)
			}
		}

		sc.s, sc.sm = sc.sm, sc.s

		// Scrub the scratch and bitmap cells the next row's window will
		// see but this row did not compute; stale values there would
		// leak scores across the band edge or let a backtrack escape it.
		if i+1 < na {
			nLeft, nRight, nNonEmpty := bands.window(i + 1)
			switch {
			case nonEmpty && nNonEmpty:
				// widened on the right
				for l := right + 1; l <= nRight; l++ {
					sc.bmp.assign(i+1, l+1, flagZero)
				}
				// narrowed on the right
				for l := nRight + 1; l <= right; l++ {
					sc.gapb[l+1] = zeroScore
					sc.sm[l+1] = zeroScore
				}
				// widened on the left
				for l := nLeft - 1; l <= left-1; l++ {
					sc.gapb[l+1] = zeroScore
					sc.sm[l+1] = zeroScore
					sc.bmp.assign(i+1, l+1, flagZero)
				}
			case nNonEmpty:
				// The row just finished contributed nothing: the next
				// row's whole window is unvisited stale scratch, so
				// clear all of it rather than diffing window edges.
				for l := nLeft; l <= nRight+1; l++ {
					sc.gapb[l] = zeroScore
					sc.sm[l] = zeroScore
					sc.bmp.assign(i+1, l, flagZero)
				}
			}
		}
	}

	return sc.backtrack(maxRow-1, maxCol-1), nil
}
