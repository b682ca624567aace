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
		SnapshotsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "altplay_snapshots_saved_total",
			Help: "The total number of performance snapshots saved.",
		}),
		DeltasComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "altplay_snapshot_deltas_total",
			Help: "The total number of saves that produced a non-empty changes map.",
		}),
		InvestmentsRecorded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "altplay_investments_recorded_total",
			Help: "The total number of investment records created.",
		}),
		SaveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "altplay_snapshot_save_duration_seconds",
			Help:    "The duration of individual snapshot saves, including delta computation.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		SlackNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "altplay_slack_notifications_sent_total",
			Help: "The total number of Slack notifications successfully sent.",
		}),
		SlackNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "altplay_slack_notifications_failed_total",
			Help: "The total number of Slack notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "altplay_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.SnapshotsSaved,
		s.DeltasComputed,
		s.InvestmentsRecorded,
		s.SaveDuration,
		s.SlackNotifSent,
		s.SlackNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncSnapshotsSaved() {
	s.SnapshotsSaved.Inc()
}

func (s *Service) IncDeltasComputed() {
	s.DeltasComputed.Inc()
}

func (s *Service) IncInvestmentsRecorded() {
	s.InvestmentsRecorded.Inc()
}

func (s *Service) ObserveSaveDuration(duration float64) {
	s.SaveDuration.Observe(duration)
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
