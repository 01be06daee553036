package align

import "math"

// DNAEntropy returns the Shannon entropy of seq over the 4-letter DNA
// alphabet, normalized to base 4 so the result falls in [0, 1] (up to
// rounding) for long sequences. Bytes other than uppercase A/C/G/T are
// ignored in the count but still count toward length.
func DNAEntropy(seq []byte) float64 {
	if len(seq) == 0 {
		return 0
	}

	counts := [4]float64{1e-8, 1e-8, 1e-8, 1e-8}
	for _, b := range seq {
		switch b {
		case 'A':
			counts[0]++
		case 'C':
			counts[1]++
		case 'G':
			counts[2]++
		case 'T':
			counts[3]++
		}
	}

	length := float64(len(seq))
	var sum float64
	for _, c := range counts {
		sum += c * math.Log(c/length)
	}
	return -sum / (length * math.Log(4))
}
