package http

import (
	"net/http"

	"github.com/altplay/altplay/internal/auth"
	"github.com/altplay/altplay/internal/blob"
	"github.com/altplay/altplay/internal/config"
	"github.com/altplay/altplay/internal/insights"
	"github.com/altplay/altplay/internal/investment"
	"github.com/altplay/altplay/internal/metrics"
	"github.com/altplay/altplay/internal/notifier"
	"github.com/altplay/altplay/internal/player"
	"github.com/altplay/altplay/internal/pubsub"
	"github.com/altplay/altplay/internal/user"
)

func NewServer(users user.Store, authSvc *auth.Service, players player.Store, insightsSvc *insights.Service, investments *investment.Service, blobs blob.Store, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notifier notifier.Notifier, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Users:          users,
		Auth:           authSvc,
		Players:        players,
		Insights:       insightsSvc,
		Investments:    investments,
		Blobs:          blobs,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notifier,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// Authenticated routes add s.authMiddleware, which parses the bearer
	// token, and requireRole where an endpoint is role-gated.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearStoreHandler(), paramsMiddleware))

	s.Router.Handle("POST /auth/register", Chain(s.RegisterHandler(), paramsMiddleware))
	s.Router.Handle("POST /auth/login", Chain(s.LoginHandler(), paramsMiddleware))

	s.Router.Handle("GET /players", Chain(s.ListPlayersHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("POST /players", Chain(s.UpsertPlayerHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RolePlayer)))
	s.Router.Handle("POST /players/photo", Chain(s.UploadPhotoHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RolePlayer)))
	s.Router.Handle("GET /players/me", Chain(s.MyProfileHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RolePlayer)))

	s.Router.Handle("POST /investments", Chain(s.InvestHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RoleInvestor)))
	s.Router.Handle("GET /investments", Chain(s.ListInvestmentsHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RoleInvestor)))
	s.Router.Handle("GET /investments/check", Chain(s.CheckInvestmentHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RoleInvestor)))
	s.Router.Handle("GET /investors", Chain(s.ListBackersHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RolePlayer)))

	s.Router.Handle("POST /insights", Chain(s.SaveInsightHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RolePlayer)))
	s.Router.Handle("GET /insights/latest", Chain(s.LatestInsightHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RolePlayer)))
	s.Router.Handle("GET /insights/history", Chain(s.InsightHistoryHandler(), paramsMiddleware, s.authMiddleware))
	s.Router.Handle("GET /insights/charts", Chain(s.InsightChartsHandler(), paramsMiddleware, s.authMiddleware))

	s.Router.Handle("GET /admin/overview", Chain(s.AdminOverviewHandler(), paramsMiddleware, s.authMiddleware, requireRole(user.RoleAdmin)))

	s.Router.Handle("/pubsub/investment-recorded", Chain(s.InvestmentRecordedHandler(), paramsMiddleware))
	s.Router.Handle("/pubsub/insight-changed", Chain(s.InsightChangedHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
