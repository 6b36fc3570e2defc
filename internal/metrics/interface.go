package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncGamesRecorded()
	IncGamesDeleted()
	IncTeamGamesRecorded()
	AddRowsImported(n int)
	ObserveRankingDuration(seconds float64)
	IncSlackNotifSent()
	IncSlackNotifFailed()
	SetStartupTime(duration float64)
}

// MetricsStore keeps counters that survive restarts.
type MetricsStore interface {
	Increment(key string)
	Add(key string, n int)
	GetAll() (map[string]int, error)
}
