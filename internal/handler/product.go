package handler

import (
	"net/http"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/product"
)

type homeData struct {
	Products []product.Product
}

// Home renders the product list with a checkout form per product.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	products, err := h.products.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.render(w, r, "index.html", homeData{Products: products})
}
