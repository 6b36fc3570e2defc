package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/scoring"
)

// scoreUnit is the smallest score step in a final tally.
const scoreUnit = 100

func playerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Seeder Player %02d", i+1)
	}
	return names
}

// randomScores splits StartingTotal into four non-negative multiples of scoreUnit.
func randomScores(rng *rand.Rand) [scoring.Seats]int {
	units := scoring.StartingTotal / scoreUnit
	cuts := []int{rng.IntN(units + 1), rng.IntN(units + 1), rng.IntN(units + 1)}
	slices.Sort(cuts)

	var scores [scoring.Seats]int
	prev := 0
	for i, c := range cuts {
		scores[i] = (c - prev) * scoreUnit
		prev = c
	}
	scores[scoring.Seats-1] = (units - prev) * scoreUnit
	return scores
}

// randomGame seats four distinct players in random order.
func randomGame(rng *rand.Rand, players []string, playedAt time.Time) records.Game {
	perm := rng.Perm(len(players))[:scoring.Seats]
	scores := randomScores(rng)
	return records.Game{
		CreatedAt:    playedAt.Format(records.TimeLayout),
		Player1Name:  players[perm[0]],
		Player2Name:  players[perm[1]],
		Player3Name:  players[perm[2]],
		Player4Name:  players[perm[3]],
		Player1Score: scores[0],
		Player2Score: scores[1],
		Player3Score: scores[2],
		Player4Score: scores[3],
	}
}
