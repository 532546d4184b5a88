package instrument

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
)

// stubPipeline returns canned results, recording invocations.
type stubPipeline struct {
	id        int64
	createErr error
	calls     int
}

func (s *stubPipeline) CreateOrder(_ context.Context, _ order.CheckoutRequest) (int64, error) {
	s.calls++
	return s.id, s.createErr
}

func (s *stubPipeline) GetOrderView(_ context.Context, _ string) (*order.OrderView, error) {
	s.calls++
	return &order.OrderView{}, nil
}

func TestWithMetrics_CountsSuccessfulOrders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	stub := &stubPipeline{id: 7}
	p := WithMetrics(stub, m)

	id, err := p.CreateOrder(context.Background(), order.CheckoutRequest{ProductID: "1", Quantity: "1"})
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ordersCreated))
}

func TestWithMetrics_SkipsCounterOnFailure(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	stub := &stubPipeline{createErr: errors.New("boom")}
	p := WithMetrics(stub, m)

	_, err := p.CreateOrder(context.Background(), order.CheckoutRequest{})
	require.Error(t, err)
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ordersCreated))
}

func TestWithLogging_PassesThrough(t *testing.T) {
	stub := &stubPipeline{id: 3}
	p := WithLogging(stub, zap.NewNop())

	id, err := p.CreateOrder(context.Background(), order.CheckoutRequest{ProductID: "1", Quantity: "2"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)

	view, err := p.GetOrderView(context.Background(), "3")
	require.NoError(t, err)
	assert.NotNil(t, view)
	assert.Equal(t, 2, stub.calls)
}

func TestWithLogging_PropagatesError(t *testing.T) {
	stub := &stubPipeline{createErr: errors.New("down")}
	p := WithLogging(stub, zap.NewNop())

	_, err := p.CreateOrder(context.Background(), order.CheckoutRequest{})
	assert.ErrorIs(t, err, stub.createErr)
}
