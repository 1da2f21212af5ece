// internal/service/metrics.go
package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var settlementOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "peertrade_settlement_operations_total",
		Help: "Settlement operations by kind and outcome.",
	},
	[]string{"operation", "status"},
)

func recordSettlement(operation string, err error) {
	status := "success"
	if err != nil {
		status = "failure"
	}
	settlementOps.WithLabelValues(operation, status).Inc()
}
