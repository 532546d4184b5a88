// Package instrument provides optional logging and metrics decorators for
// the checkout pipeline. The pipeline itself carries no observability
// dependencies; these wrappers are layered on at wiring time.
package instrument

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
)

// Metrics holds the Prometheus collectors for the checkout pipeline.
type Metrics struct {
	ordersCreated prometheus.Counter
	duration      *prometheus.HistogramVec
}

// NewMetrics creates and registers the pipeline collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ordersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "shop",
			Name:      "orders_created_total",
			Help:      "Total orders created.",
		}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "shop",
			Name:      "pipeline_duration_seconds",
			Help:      "Checkout pipeline operation latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	reg.MustRegister(m.ordersCreated, m.duration)
	return m
}

type metricsPipeline struct {
	next order.Pipeline
	m    *Metrics
}

var _ order.Pipeline = (*metricsPipeline)(nil)

// WithMetrics wraps next so that every operation is timed and successful
// checkouts increment the orders-created counter.
func WithMetrics(next order.Pipeline, m *Metrics) order.Pipeline {
	return &metricsPipeline{next: next, m: m}
}

func (p *metricsPipeline) CreateOrder(ctx context.Context, req order.CheckoutRequest) (int64, error) {
	start := time.Now()
	id, err := p.next.CreateOrder(ctx, req)
	p.m.duration.WithLabelValues("create_order").Observe(time.Since(start).Seconds())
	if err == nil {
		p.m.ordersCreated.Inc()
	}
	return id, err
}

func (p *metricsPipeline) GetOrderView(ctx context.Context, orderID string) (*order.OrderView, error) {
	start := time.Now()
	view, err := p.next.GetOrderView(ctx, orderID)
	p.m.duration.WithLabelValues("get_order_view").Observe(time.Since(start).Seconds())
	return view, err
}
