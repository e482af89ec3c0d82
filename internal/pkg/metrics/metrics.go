// Package metrics exposes Prometheus instruments for production activity.
// Everything registers against the default registry and is served on the
// /metrics route.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	executionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "printshop_executions_started_total",
			Help: "Work sessions started",
		},
	)

	executionsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "printshop_executions_completed_total",
			Help: "Work sessions completed",
		},
	)

	equipmentConflicts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "printshop_equipment_conflicts_total",
			Help: "Start attempts rejected because equipment was held",
		},
		[]string{"equipment"},
	)

	ordersCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "printshop_orders_completed_total",
			Help: "Orders that passed the completion gate",
		},
	)

	overdueExecutions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "printshop_overdue_executions",
			Help: "Active work sessions older than the overdue threshold",
		},
	)
)

func init() {
	prometheus.MustRegister(
		executionsStarted,
		executionsCompleted,
		equipmentConflicts,
		ordersCompleted,
		overdueExecutions,
	)
}

// ExecutionStarted records a started work session.
func ExecutionStarted() {
	executionsStarted.Inc()
}

// ExecutionCompleted records a completed work session.
func ExecutionCompleted() {
	executionsCompleted.Inc()
}

// EquipmentConflict records a start attempt rejected by the arbiter.
func EquipmentConflict(equipment string) {
	equipmentConflicts.WithLabelValues(equipment).Inc()
}

// OrderCompleted records an order passing the completion gate.
func OrderCompleted() {
	ordersCompleted.Inc()
}

// SetOverdueExecutions publishes the latest overdue-session count.
func SetOverdueExecutions(count int) {
	overdueExecutions.Set(float64(count))
}
