package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Reports          *prometheus.CounterVec
	ProviderErrors   prometheus.Counter
	RequestSeconds   *prometheus.HistogramVec
	RequestsInFlight prometheus.Gauge
	Subscribers      prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		Reports: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "location_reports_total",
			Help: "Total number of location reports by outcome.",
		}, []string{"outcome"}),
		ProviderErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "location_provider_errors_total",
			Help: "Total number of failed position requests to the location provider.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "location_provider_request_duration_seconds",
			Help:    "Duration of position requests to the location provider.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		RequestsInFlight: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "location_requests_in_flight",
			Help: "Current number of unresolved position requests.",
		}),
		Subscribers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "display_subscribers",
			Help: "Current number of clients streaming the display target.",
		}),
	}
}
