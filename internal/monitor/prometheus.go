package monitor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	sweepsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amberwatch_sweeps_total",
		Help: "Number of price monitor sweeps started.",
	})

	sweepFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amberwatch_sweep_failures_total",
		Help: "Number of sweeps aborted because the settings batch could not be loaded.",
	})

	usersSkipped = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amberwatch_users_skipped_total",
		Help: "Number of subscribers skipped during sweeps, by reason.",
	}, []string{"reason"})

	userFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "amberwatch_user_failures_total",
		Help: "Number of subscribers whose price fetch failed during sweeps.",
	})

	alertsSent = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amberwatch_alerts_sent_total",
		Help: "Number of alert emails sent, by alert kind.",
	}, []string{"kind"})

	alertFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "amberwatch_alert_failures_total",
		Help: "Number of alert emails that failed to send, by alert kind.",
	}, []string{"kind"})
)
