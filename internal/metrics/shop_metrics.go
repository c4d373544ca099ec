// Package metrics exposes shop activity as prometheus collectors.
package metrics

import (
	"errors"
	"fmt"

	"coffeeshop/internal/core/ports"
	"coffeeshop/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
)

// Validation failure kinds, used as the "kind" label.
const (
	KindType  = "type"
	KindRange = "range"
	KindOther = "other"
)

// DefaultNamespace prefixes every metric name when none is configured.
const DefaultNamespace = "coffeeshop"

var _ ports.OrderMetrics = (*ShopMetrics)(nil)

// ShopMetrics counts orders, registrations and rejected input.
type ShopMetrics struct {
	ordersCreated      *prometheus.CounterVec
	orderPrice         prometheus.Histogram
	entitiesCreated    *prometheus.CounterVec
	validationFailures *prometheus.CounterVec
}

// NewShopMetrics registers the shop collectors on the default registerer.
func NewShopMetrics() *ShopMetrics {
	return NewShopMetricsWithRegisterer(prometheus.DefaultRegisterer, DefaultNamespace)
}

// NewShopMetricsWithRegisterer registers the shop collectors on registerer under namespace.
// Collectors that already exist on registerer are reused, so several handlers or
// repeated wiring may share one set of metrics.
func NewShopMetricsWithRegisterer(registerer prometheus.Registerer, namespace string) *ShopMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &ShopMetrics{
		ordersCreated: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_created_total",
			Help:      "Total number of orders created, by coffee",
		}, []string{"coffee"})),
		orderPrice: register(registerer, prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_price",
			Help:      "Price of created orders",
			Buckets:   prometheus.LinearBuckets(1, 1, 10),
		})),
		entitiesCreated: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_created_total",
			Help:      "Total number of customers and coffees registered",
		}, []string{"kind"})),
		validationFailures: register(registerer, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Total number of rejected inputs, by error kind",
		}, []string{"kind"})),
	}
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) T {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(T)
			if !ok {
				panic(fmt.Sprintf("collector %T already registered with unexpected type", collector))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %T: %v", collector, err))
	}
	return collector
}

// EntityCreated increments the registration counter for kind.
func (m *ShopMetrics) EntityCreated(kind string) {
	m.entitiesCreated.WithLabelValues(kind).Inc()
}

// OrderCreated increments the order counter for coffee and observes price.
func (m *ShopMetrics) OrderCreated(coffee string, price float64) {
	m.ordersCreated.WithLabelValues(coffee).Inc()
	m.orderPrice.Observe(price)
}

// ValidationFailed increments the failure counter for the kind of err.
func (m *ShopMetrics) ValidationFailed(err error) {
	if err == nil {
		return
	}
	m.validationFailures.WithLabelValues(FailureKind(err)).Inc()
}

// FailureKind maps err to KindType, KindRange or KindOther.
func FailureKind(err error) string {
	switch {
	case errs.IsTypeKind(err):
		return KindType
	case errs.IsRangeKind(err):
		return KindRange
	default:
		return KindOther
	}
}
