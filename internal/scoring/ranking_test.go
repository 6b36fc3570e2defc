package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func game(names [Seats]string, scores [Seats]int) GameRecord {
	g := GameRecord{Entrants: make([]Entrant, Seats)}
	for i := range names {
		g.Entrants[i] = Entrant{Name: names[i], Score: scores[i]}
	}
	return g
}

func TestBuildRanking(t *testing.T) {
	games := []GameRecord{
		game([Seats]string{"Alice", "Bob", "Carol", "Dave"}, [Seats]int{45000, 30000, 15000, 10000}),
		game([Seats]string{"Bob", "Alice", "Dave", "Carol"}, [Seats]int{40000, 35000, 20000, 5000}),
	}

	rows, err := BuildRanking(games)
	require.NoError(t, err)
	require.Len(t, rows, 4)

	// Alice: 65.0 + 15.0, Bob: 10.0 + 60.0, Dave: -50.0 - 20.0, Carol: -25.0 - 55.0
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 80.0, rows[0].TotalPt)
	assert.Equal(t, 40.0, rows[0].AvgPt)
	assert.Equal(t, 100.0, rows[0].YondeRate)
	assert.Equal(t, [Seats]int{1, 1, 0, 0}, rows[0].RankCounts)

	assert.Equal(t, "Bob", rows[1].Name)
	assert.Equal(t, 70.0, rows[1].TotalPt)

	assert.Equal(t, "Dave", rows[2].Name)
	assert.Equal(t, -70.0, rows[2].TotalPt)
	assert.Equal(t, 0.0, rows[2].YondeRate)
	assert.Equal(t, [Seats]int{0, 0, 1, 1}, rows[2].RankCounts)

	assert.Equal(t, "Carol", rows[3].Name)
	assert.Equal(t, -80.0, rows[3].TotalPt)
	assert.Equal(t, 2, rows[3].Games)
}

func TestBuildRanking_TopTwoRate(t *testing.T) {
	a := NewAggregator()
	finishes := [][Seats]int{
		{40000, 30000, 20000, 10000}, // Alice first
		{40000, 30000, 20000, 10000}, // Alice first
		{30000, 40000, 20000, 10000}, // Alice second
		{20000, 40000, 30000, 10000}, // Alice third
	}
	for _, scores := range finishes {
		_, err := a.Add(game([Seats]string{"Alice", "x", "y", "z"}, scores))
		require.NoError(t, err)
	}

	st, ok := a.Stats("Alice")
	require.True(t, ok)
	assert.Equal(t, 4, st.Games)
	assert.Equal(t, [Seats]int{2, 1, 1, 0}, st.RankCounts)
	assert.Equal(t, 75.0, st.TopTwoRate())
}

func TestBuildRanking_TopTwoRateRounding(t *testing.T) {
	a := NewAggregator()
	scores := [][Seats]int{
		{40000, 30000, 20000, 10000},
		{10000, 30000, 20000, 40000},
		{10000, 30000, 20000, 40000},
	}
	for _, s := range scores {
		_, err := a.Add(game([Seats]string{"Alice", "x", "y", "z"}, s))
		require.NoError(t, err)
	}
	st, _ := a.Stats("Alice")
	// 1 of 3 -> 33.333.. -> 33.3
	assert.Equal(t, 33.3, st.TopTwoRate())
}

func TestBuildRanking_SkipsBlankNames(t *testing.T) {
	rows, err := BuildRanking([]GameRecord{
		game([Seats]string{"Alice", "  ", "Carol", "Dave"}, [Seats]int{45000, 30000, 15000, 10000}),
	})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.NotEmpty(t, r.Name)
		assert.Equal(t, 1, r.Games)
	}
}

func TestBuildRanking_TrimsNames(t *testing.T) {
	rows, err := BuildRanking([]GameRecord{
		game([Seats]string{" Alice", "Alice ", "Bob", "Bob"}, [Seats]int{45000, 30000, 15000, 10000}),
	})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 2, rows[0].Games)
	assert.Equal(t, 75.0, rows[0].TotalPt)
}

func TestBuildRanking_TieBreakByName(t *testing.T) {
	rows, err := BuildRanking([]GameRecord{
		game([Seats]string{"Zed", "Amy", "Kim", "Lee"}, [Seats]int{25000, 25000, 25000, 25000}),
		game([Seats]string{"Amy", "Zed", "Lee", "Kim"}, [Seats]int{25000, 25000, 25000, 25000}),
	})
	require.NoError(t, err)
	require.Len(t, rows, 4)
	// Amy and Zed both 50.0, Kim and Lee both -50.0
	assert.Equal(t, []string{"Amy", "Zed", "Kim", "Lee"}, []string{rows[0].Name, rows[1].Name, rows[2].Name, rows[3].Name})
}

func TestBuildRanking_AccumulatesRoundedPoints(t *testing.T) {
	rows, err := BuildRanking([]GameRecord{
		game([Seats]string{"Alice", "b", "c", "d"}, [Seats]int{30050, 29950, 25000, 15000}),
		game([Seats]string{"Alice", "b", "c", "d"}, [Seats]int{30050, 29950, 25000, 15000}),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", rows[0].Name)
	assert.Equal(t, 100.2, rows[0].TotalPt)
	assert.Equal(t, 50.1, rows[0].AvgPt)
}

func TestBuildRanking_InvalidGame(t *testing.T) {
	_, err := BuildRanking([]GameRecord{{Entrants: []Entrant{{Name: "solo", Score: 100000}}}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAggregator_Ensure(t *testing.T) {
	a := NewAggregator()
	a.Ensure("Empty Team")
	a.Ensure("   ")
	_, err := a.Add(game([Seats]string{"Red", "Blue", "Red", "Blue"}, [Seats]int{40000, 30000, 20000, 10000}))
	require.NoError(t, err)

	rows := a.Ranking()
	require.Len(t, rows, 3)
	assert.Equal(t, "Red", rows[0].Name)
	assert.Equal(t, "Empty Team", rows[1].Name)
	assert.Equal(t, 0, rows[1].Games)
	assert.Equal(t, 0.0, rows[1].YondeRate)
	assert.Equal(t, 0.0, rows[1].AvgPt)
	assert.Equal(t, "Blue", rows[2].Name)
}
