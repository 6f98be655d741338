package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type DBMetrics struct {
	QueryDuration *prometheus.HistogramVec
}

type BusinessMetrics struct {
	CustomersCreatedTotal prometheus.Counter
	CreditsCreatedTotal   prometheus.Counter
	CreditsExpiredTotal   prometheus.Counter
}

var (
	DB = DBMetrics{
		QueryDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "credit_system_db_query_duration_seconds",
				Help:    "Histogram of database query latencies.",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
			},
			[]string{"query_name", "status"},
		),
	}

	Business = BusinessMetrics{
		CustomersCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_system_customers_created_total",
				Help: "Total number of customers successfully created.",
			},
		),
		CreditsCreatedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_system_credits_created_total",
				Help: "Total number of credits successfully created.",
			},
		),
		CreditsExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "credit_system_credits_expired_total",
				Help: "Total number of pending credits rejected by the expiry job.",
			},
		),
	}
)

func RecordDBQuery(queryName, status string, duration time.Duration) {
	DB.QueryDuration.WithLabelValues(queryName, status).Observe(duration.Seconds())
}

func RecordCustomerCreated() {
	Business.CustomersCreatedTotal.Inc()
}

func RecordCreditCreated() {
	Business.CreditsCreatedTotal.Inc()
}

func RecordCreditsExpired(count int64) {
	if count > 0 {
		Business.CreditsExpiredTotal.Add(float64(count))
	}
}
