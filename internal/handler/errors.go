package handler

import (
	"net/http"

	"github.com/go-faster/errors"
	"github.com/go-faster/sdk/zctx"
	"go.uber.org/zap"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/product"
)

// writeError maps pipeline errors to HTTP responses. Validation failures
// are client errors, missing entities are 404s, and everything else
// (persistence included) is a 500 with no detail leaked to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *order.ValidationError
	if errors.As(err, &vErr) {
		http.Error(w, vErr.Error(), http.StatusBadRequest)
		return
	}

	if errors.Is(err, product.ErrNotFound) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, order.ErrNotFound) {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	logError(r, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func logError(r *http.Request, err error) {
	zctx.From(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
}
