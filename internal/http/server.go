package http

import (
	"net/http"

	"github.com/mauv0809/mahjong-rating/internal/config"
	"github.com/mauv0809/mahjong-rating/internal/http/handlers"
	"github.com/mauv0809/mahjong-rating/internal/metrics"
	"github.com/mauv0809/mahjong-rating/internal/notifier"
	"github.com/mauv0809/mahjong-rating/internal/processor"
	"github.com/mauv0809/mahjong-rating/internal/pubsub"
	"github.com/mauv0809/mahjong-rating/internal/records"
	"github.com/mauv0809/mahjong-rating/internal/view"
)

// NewServer wires the routes. pubsub may be nil, then the push endpoint is not served.
func NewServer(store records.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, counters metrics.MetricsStore, cfg config.Config, notifier notifier.Notifier, processor *processor.Processor, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Store:          store,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Counters:       counters,
		Cfg:            cfg,
		Notifier:       notifier,
		Processor:      processor,
		Builder:        view.NewBuilder(cfg.DisplayOffset),
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	slackAuth := slackVerifyMiddleware(s.Cfg.Slack.SigningSecret)

	s.Router.Handle("GET /metrics", s.MetricsHandler)
	s.Router.Handle("GET /health", Chain(handlers.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("GET /api/counters", Chain(handlers.CountersHandler(s.Counters), paramsMiddleware))

	s.Router.Handle("GET /api/games", Chain(handlers.ListGamesHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/games", Chain(handlers.CreateGameHandler(s.Store, s.Processor, s.Counters), paramsMiddleware))
	s.Router.Handle("DELETE /api/games/{id}", Chain(handlers.DeleteGameHandler(s.Store, s.Metrics, s.Counters), paramsMiddleware))
	s.Router.Handle("GET /api/games/view", Chain(handlers.GamesViewHandler(s.Store, s.Builder), paramsMiddleware))
	s.Router.Handle("GET /api/ranking", Chain(handlers.RankingHandler(s.Processor), paramsMiddleware))
	s.Router.Handle("POST /api/ranking/post", Chain(handlers.PostRankingHandler(s.Processor), paramsMiddleware))

	s.Router.Handle("GET /api/teams", Chain(handlers.ListTeamsHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/teams", Chain(handlers.CreateTeamHandler(s.Store), paramsMiddleware))
	s.Router.Handle("DELETE /api/teams/{id}", Chain(handlers.DeleteTeamHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /api/teams/overview", Chain(handlers.TeamOverviewHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /api/team_members", Chain(handlers.ListTeamMembersHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/team_members", Chain(handlers.AddTeamMemberHandler(s.Store), paramsMiddleware))
	s.Router.Handle("DELETE /api/team_members/{id}", Chain(handlers.DeleteTeamMemberHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /api/team_games", Chain(handlers.ListTeamGamesHandler(s.Store), paramsMiddleware))
	s.Router.Handle("POST /api/team_games", Chain(handlers.CreateTeamGameHandler(s.Store, s.Processor, s.Counters), paramsMiddleware))
	s.Router.Handle("DELETE /api/team_games/{id}", Chain(handlers.DeleteTeamGameHandler(s.Store), paramsMiddleware))
	s.Router.Handle("GET /api/team_games/view", Chain(handlers.TeamGamesViewHandler(s.Store, s.Builder), paramsMiddleware))
	s.Router.Handle("GET /api/team_ranking", Chain(handlers.TeamRankingHandler(s.Store, s.Metrics), paramsMiddleware))

	s.Router.Handle("GET /export", Chain(handlers.ExportHandler(s.Store, s.Counters), paramsMiddleware))
	s.Router.Handle("GET /import", Chain(handlers.ImportFormHandler(), paramsMiddleware))
	s.Router.Handle("POST /import", Chain(handlers.ImportHandler(s.Store, s.Metrics, s.Counters), paramsMiddleware))

	s.Router.Handle("POST /slack/command/ranking", Chain(handlers.RankingCommandHandler(s.Processor, s.Store, s.Metrics, s.Notifier), paramsMiddleware, slackAuth))
	if s.pubsub != nil {
		s.Router.Handle("POST /pubsub/game-recorded", Chain(handlers.GameRecordedHandler(s.Processor, s.pubsub), paramsMiddleware))
		s.Router.Handle("POST /pubsub/team-game-recorded", Chain(handlers.GameRecordedHandler(s.Processor, s.pubsub), paramsMiddleware))
	}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
