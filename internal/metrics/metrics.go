package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	FeedBuildDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "jobboard_feed_build_duration_seconds",
			Help:    "Duration of each proximity feed build in seconds.",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)
	SubmissionsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "jobboard_applications_submitted_total",
			Help: "Total number of submitted applications.",
		},
	)
	EmailsSentCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_notification_emails_sent_total",
			Help: "Total number of notification emails sent.",
		},
		[]string{"kind"},
	)
	RoutingAbortsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jobboard_notification_aborts_total",
			Help: "Total number of notification routings aborted on missing referential data.",
		},
		[]string{"reason"},
	)
)

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(FeedBuildDuration)
	prometheus.MustRegister(SubmissionsCounter)
	prometheus.MustRegister(EmailsSentCounter)
	prometheus.MustRegister(RoutingAbortsCounter)

	http.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(fmt.Sprintf(":%d", port), nil))
	}()
}
