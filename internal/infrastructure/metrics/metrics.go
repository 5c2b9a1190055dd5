package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "ecotech_"

	ResultAdmitted = "admitted"
	ResultRejected = "rejected"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	transitionsTotal *prometheus.CounterVec
	admissionsTotal  *prometheus.CounterVec
	admittedKgTotal  prometheus.Counter

	reportGenerateTotal   *prometheus.CounterVec
	reportGenerateLatency *prometheus.HistogramVec

	paymentsTotal *prometheus.CounterVec
)

// Init registers the service collectors on the default registry. Calling it
// more than once is harmless.
func Init() {
	registerOnce.Do(func() {
		transitionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "request_transitions_total",
				Help: "Total disposal request transitions by target state",
			},
			[]string{"state"},
		)
		admissionsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "point_admissions_total",
				Help: "Total collection point admissions by result",
			},
			[]string{"result"},
		)
		admittedKgTotal = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "point_admitted_kg_total",
				Help: "Total weight admitted at collection points, in kilograms",
			},
		)
		reportGenerateTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "report_generate_total",
				Help: "Total report generations by result",
			},
			[]string{"result"},
		)
		reportGenerateLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "report_generate_latency_seconds",
				Help:    "Report generation latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"result"},
		)
		paymentsTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "treatment_payments_total",
				Help: "Total treatment payments by status",
			},
			[]string{"status"},
		)

		prometheus.MustRegister(
			transitionsTotal,
			admissionsTotal,
			admittedKgTotal,
			reportGenerateTotal,
			reportGenerateLatency,
			paymentsTotal,
		)
	})
}

// IncTransition counts a lifecycle transition into state.
func IncTransition(state string) {
	if state == "" {
		state = "unknown"
	}
	if transitionsTotal != nil {
		transitionsTotal.WithLabelValues(state).Inc()
	}
}

// ObserveAdmission records a point assignment attempt.
func ObserveAdmission(admitted bool, weightKg float64) {
	result := ResultRejected
	if admitted {
		result = ResultAdmitted
	}
	if admissionsTotal != nil {
		admissionsTotal.WithLabelValues(result).Inc()
	}
	if admitted && admittedKgTotal != nil && weightKg > 0 {
		admittedKgTotal.Add(weightKg)
	}
}

// ObserveReport records a report generation and its duration.
func ObserveReport(err error, duration time.Duration) {
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	if reportGenerateTotal != nil {
		reportGenerateTotal.WithLabelValues(result).Inc()
	}
	if reportGenerateLatency != nil {
		reportGenerateLatency.WithLabelValues(result).Observe(duration.Seconds())
	}
}

// IncPayment counts a treatment payment by status.
func IncPayment(status string) {
	if status == "" {
		status = "unknown"
	}
	if paymentsTotal != nil {
		paymentsTotal.WithLabelValues(status).Inc()
	}
}
