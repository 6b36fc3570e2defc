package scoring

// divRound divides n by d and rounds half away from zero. d must be positive.
func divRound(n, d int) int {
	q, r := n/d, n%d
	if r < 0 {
		r = -r
	}
	if r >= d-r {
		if n < 0 {
			return q - 1
		}
		return q + 1
	}
	return q
}

// tenthsToFloat converts an integer count of tenths to its decimal value.
func tenthsToFloat(t int) float64 {
	return float64(t) / 10
}
