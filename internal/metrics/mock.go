package metrics

import "sync"

var _ Metrics = (*Mock)(nil)

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                sync.Mutex
	gamesRecorded     int
	gamesDeleted      int
	teamGamesRecorded int
	rowsImported      int
	rankingDurations  []float64
	slackNotifSent    int
	slackNotifFailed  int
	startupTime       float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		rankingDurations: make([]float64, 0),
	}
}

func (m *Mock) IncGamesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesRecorded++
}

func (m *Mock) IncGamesDeleted() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gamesDeleted++
}

func (m *Mock) IncTeamGamesRecorded() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.teamGamesRecorded++
}

func (m *Mock) AddRowsImported(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rowsImported += n
}

func (m *Mock) ObserveRankingDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rankingDurations = append(m.rankingDurations, seconds)
}

func (m *Mock) IncSlackNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifSent++
}

func (m *Mock) IncSlackNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slackNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// GamesRecorded returns the number of times IncGamesRecorded was called.
func (m *Mock) GamesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesRecorded
}

// GamesDeleted returns the number of times IncGamesDeleted was called.
func (m *Mock) GamesDeleted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gamesDeleted
}

// TeamGamesRecorded returns the number of times IncTeamGamesRecorded was called.
func (m *Mock) TeamGamesRecorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.teamGamesRecorded
}

// RowsImported returns the sum passed to AddRowsImported.
func (m *Mock) RowsImported() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rowsImported
}

// RankingObservations returns how many ranking durations were observed.
func (m *Mock) RankingObservations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rankingDurations)
}

// SlackNotifSent returns the number of times IncSlackNotifSent was called.
func (m *Mock) SlackNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifSent
}

// SlackNotifFailed returns the number of times IncSlackNotifFailed was called.
func (m *Mock) SlackNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.slackNotifFailed
}

var _ MetricsStore = (*StoreMock)(nil)

// StoreMock is an in-memory MetricsStore for testing.
type StoreMock struct {
	mu     sync.Mutex
	values map[string]int
}

// NewStoreMock creates an empty StoreMock.
func NewStoreMock() *StoreMock {
	return &StoreMock{values: make(map[string]int)}
}

func (m *StoreMock) Increment(key string) {
	m.Add(key, 1)
}

func (m *StoreMock) Add(key string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] += n
}

func (m *StoreMock) GetAll() (map[string]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]int, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}
