package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the Prometheus collectors for the order lifecycle.
type OrderMetrics struct {
	OrdersCreatedTotal       prometheus.CounterVec
	OrdersCreatedAmountTotal prometheus.CounterVec
	OrdersActivatedTotal     prometheus.CounterVec
	OrdersActivatedAmount    prometheus.CounterVec
	OrdersFailedTotal        prometheus.CounterVec
	OrdersCancelledTotal     prometheus.CounterVec
	OrderRetriesTotal        prometheus.CounterVec
	EscrowCallDuration       prometheus.HistogramVec
}

func NewOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Total number of orders created",
			},
			[]string{"product_kind", "currency"},
		),
		OrdersCreatedAmountTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_amount_total",
				Help: "Total amount of created orders in base units",
			},
			[]string{"product_kind", "currency"},
		),
		OrdersActivatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_activated_total",
				Help: "Total number of orders whose payment stream went active",
			},
			[]string{"product_kind", "currency"},
		),
		OrdersActivatedAmount: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_activated_amount_total",
				Help: "Total stream amount of activated orders in base units",
			},
			[]string{"product_kind", "currency"},
		),
		OrdersFailedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_failed_total",
				Help: "Total number of payment processing failures by stage",
			},
			[]string{"product_kind", "stage"},
		),
		OrdersCancelledTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_cancelled_total",
				Help: "Total number of cancelled orders",
			},
			[]string{"product_kind", "currency"},
		),
		OrderRetriesTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_retries_total",
				Help: "Total number of explicit payment retries",
			},
			[]string{"product_kind"},
		),
		EscrowCallDuration: *promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "escrow_call_duration_seconds",
				Help:    "Duration of escrow provider calls in seconds",
				Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
			},
			[]string{"call", "outcome"},
		),
	}
}

func (m *OrderMetrics) RecordOrderCreated(productKind, currency string, amount int64) {
	m.OrdersCreatedTotal.WithLabelValues(productKind, currency).Inc()
	m.OrdersCreatedAmountTotal.WithLabelValues(productKind, currency).Add(float64(amount))
}

func (m *OrderMetrics) RecordOrderActivated(productKind, currency string, streamAmount int64) {
	m.OrdersActivatedTotal.WithLabelValues(productKind, currency).Inc()
	m.OrdersActivatedAmount.WithLabelValues(productKind, currency).Add(float64(streamAmount))
}

func (m *OrderMetrics) RecordOrderFailed(productKind, stage string) {
	m.OrdersFailedTotal.WithLabelValues(productKind, stage).Inc()
}

func (m *OrderMetrics) RecordOrderCancelled(productKind, currency string) {
	m.OrdersCancelledTotal.WithLabelValues(productKind, currency).Inc()
}

func (m *OrderMetrics) RecordOrderRetried(productKind string) {
	m.OrderRetriesTotal.WithLabelValues(productKind).Inc()
}

func (m *OrderMetrics) RecordEscrowCall(call, outcome string, durationSeconds float64) {
	m.EscrowCallDuration.WithLabelValues(call, outcome).Observe(durationSeconds)
}
