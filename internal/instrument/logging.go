package instrument

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
)

type loggingPipeline struct {
	next order.Pipeline
	lg   *zap.Logger
}

var _ order.Pipeline = (*loggingPipeline)(nil)

// WithLogging wraps next so that every pipeline operation is logged with
// its outcome and duration.
func WithLogging(next order.Pipeline, lg *zap.Logger) order.Pipeline {
	return &loggingPipeline{next: next, lg: lg}
}

func (p *loggingPipeline) CreateOrder(ctx context.Context, req order.CheckoutRequest) (int64, error) {
	start := time.Now()
	id, err := p.next.CreateOrder(ctx, req)
	if err != nil {
		p.lg.Warn("checkout failed",
			zap.String("product_id", req.ProductID),
			zap.String("quantity", req.Quantity),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return 0, err
	}
	p.lg.Info("order created",
		zap.Int64("order_id", id),
		zap.String("product_id", req.ProductID),
		zap.String("quantity", req.Quantity),
		zap.Duration("duration", time.Since(start)),
	)
	return id, nil
}

func (p *loggingPipeline) GetOrderView(ctx context.Context, orderID string) (*order.OrderView, error) {
	start := time.Now()
	view, err := p.next.GetOrderView(ctx, orderID)
	if err != nil {
		p.lg.Warn("order lookup failed",
			zap.String("order_id", orderID),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}
	return view, nil
}
