package service

import (
	"github.com/prometheus/client_golang/prometheus"

	"user-service/internal/domain"
)

var serviceResults = prometheus.NewCounterVec(
	prometheus.CounterOpts{Name: "service_results_total", Help: "Service operation outcomes"},
	[]string{"entity", "op", "outcome"},
)

func init() { prometheus.MustRegister(serviceResults) }

// observe counts one operation outcome: "success" or the error type.
func observe(entity, op string, err *domain.Error) {
	outcome := "success"
	if err != nil {
		outcome = err.Type().String()
	}
	serviceResults.WithLabelValues(entity, op, outcome).Inc()
}
