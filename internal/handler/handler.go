// Package handler serves the storefront HTML pages: the product list, the
// checkout form target, and the order confirmation. All business decisions
// live in the checkout pipeline; handlers only parse requests, delegate,
// and render.
package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/go-faster/errors"

	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/order"
	"github.com/nitaoktaviani28/go-ecommerce/internal/domain/product"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Handler holds the storefront page handlers and their dependencies.
type Handler struct {
	pipeline order.Pipeline
	products product.Repository
	tmpl     *template.Template
}

// New constructs a Handler, parsing the embedded page templates.
func New(pipeline order.Pipeline, products product.Repository) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse templates")
	}
	return &Handler{
		pipeline: pipeline,
		products: products,
		tmpl:     tmpl,
	}, nil
}

// Register mounts the storefront routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("POST /checkout", h.Checkout)
	mux.HandleFunc("GET /success", h.Success)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, name, data); err != nil {
		// Headers are already out; all we can do is log.
		logError(r, errors.Wrapf(err, "render %s", name))
	}
}
