package scoring

import (
	"cmp"
	"fmt"
	"slices"
)

// Calculate ranks four scores and converts them to placement points.
//
// Ranking is by descending score. Equal scores keep their input order, so
// the entrant listed first gets the better rank.
func Calculate(scores []int) (Placement, error) {
	var p Placement
	if len(scores) != Seats {
		return p, fmt.Errorf("expected %d scores, got %d: %w", Seats, len(scores), ErrInvalidInput)
	}
	for seat, score := range scores {
		if score > MaxScore || score < -MaxScore {
			return p, fmt.Errorf("seat %d score %d out of range: %w", seat+1, score, ErrInvalidInput)
		}
	}

	order := []int{0, 1, 2, 3}
	slices.SortStableFunc(order, func(a, b int) int {
		// higher score first, equal scores stay in seat order
		return cmp.Compare(scores[b], scores[a])
	})

	for rank, seat := range order {
		p.Ranks[seat] = rank + 1
	}

	for seat, score := range scores {
		// thousandths of a point, exact
		milli := score - ReturnScore + Uma[p.Ranks[seat]-1]*1000
		p.RawPoints[seat] = float64(milli) / 1000
		p.tenths[seat] = divRound(milli, 100)
		p.Points[seat] = tenthsToFloat(p.tenths[seat])
	}
	return p, nil
}

// Points returns the rounded placement points for four scores.
func Points(scores []int) ([]float64, error) {
	p, err := Calculate(scores)
	if err != nil {
		return nil, err
	}
	return p.Points[:], nil
}

// Scores extracts the scores of a game in seat order.
func (g GameRecord) Scores() []int {
	scores := make([]int, len(g.Entrants))
	for i, e := range g.Entrants {
		scores[i] = e.Score
	}
	return scores
}

// Place computes the placement of a game record.
func (g GameRecord) Place() (Placement, error) {
	return Calculate(g.Scores())
}
