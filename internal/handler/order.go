package handler

import (
	"net/http"
	"strconv"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
)

// Checkout accepts the storefront checkout form and runs the order pipeline.
// On success it redirects to the confirmation page keyed by the new order
// ID; on any failure no order exists and no redirect happens.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	// Only product_id and quantity are read; any other submitted field
	// (a client-supplied price, for instance) is ignored.
	id, err := h.pipeline.CreateOrder(r.Context(), order.CheckoutRequest{
		ProductID: r.PostFormValue("product_id"),
		Quantity:  r.PostFormValue("quantity"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.Redirect(w, r, "/success?order_id="+strconv.FormatInt(id, 10), http.StatusSeeOther)
}

// Success renders the order confirmation page.
func (h *Handler) Success(w http.ResponseWriter, r *http.Request) {
	view, err := h.pipeline.GetOrderView(r.Context(), r.URL.Query().Get("order_id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.render(w, r, "success.html", view)
}
