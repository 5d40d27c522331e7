package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	FanoutDispatched = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fanout_dispatched_total",
		Help: "Notification fan-out requests handed to a dispatcher",
	}, []string{"type"})

	FanoutFailed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fanout_failed_total",
		Help: "Notification fan-out requests that were dropped",
	}, []string{"type", "stage"})

	MessagesSent = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "messages_sent_total",
		Help: "Total direct messages successfully stored",
	})
)

func init() {
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(FanoutDispatched)
	prometheus.MustRegister(FanoutFailed)
	prometheus.MustRegister(MessagesSent)
}
