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

type Server struct {
	Users          user.Store
	Auth           *auth.Service
	Players        player.Store
	Insights       *insights.Service
	Investments    *investment.Service
	Blobs          blob.Store
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
