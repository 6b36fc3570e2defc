package scoring

import "strconv"

// RankDistribution splits a player's finishes into four proportional segments.
// A non-positive games total is treated as 1.
func RankDistribution(counts [Seats]int, games int) [Seats]Segment {
	total := games
	if total <= 0 {
		total = 1
	}

	var segs [Seats]Segment
	for i, count := range counts {
		seg := Segment{
			Rank:       i + 1,
			Count:      count,
			Percentage: float64(count) * 100 / float64(total),
		}
		width := tenthsToFloat(divRound(count*1000, total))
		seg.Width = strconv.FormatFloat(width, 'f', 1, 64) + "%"
		if count > 0 {
			seg.Label = strconv.Itoa(divRound(count*100, total)) + "%"
		}
		segs[i] = seg
	}
	return segs
}
