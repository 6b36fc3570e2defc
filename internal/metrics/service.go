package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		GamesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mahjong_games_recorded_total",
			Help: "The total number of individual games recorded.",
		}),
		GamesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mahjong_games_deleted_total",
			Help: "The total number of individual games deleted.",
		}),
		TeamGamesRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mahjong_team_games_recorded_total",
			Help: "The total number of team games recorded.",
		}),
		RowsImported: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mahjong_csv_rows_imported_total",
			Help: "The total number of games imported from CSV uploads.",
		}),
		RankingDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mahjong_ranking_compute_duration_seconds",
			Help:    "The duration of recomputing a ranking from all records.",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mahjong_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mahjong_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mahjong_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.GamesRecorded,
		s.GamesDeleted,
		s.TeamGamesRecorded,
		s.RowsImported,
		s.RankingDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncGamesRecorded() {
	s.GamesRecorded.Inc()
}

func (s *Service) IncGamesDeleted() {
	s.GamesDeleted.Inc()
}

func (s *Service) IncTeamGamesRecorded() {
	s.TeamGamesRecorded.Inc()
}

func (s *Service) AddRowsImported(n int) {
	s.RowsImported.Add(float64(n))
}

func (s *Service) ObserveRankingDuration(seconds float64) {
	s.RankingDuration.Observe(seconds)
}

func (s *Service) IncSlackNotifSent() {
	s.SlackNotifSent.Inc()
}

func (s *Service) IncSlackNotifFailed() {
	s.SlackNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
