package employees

import (
	"github.com/go-chi/chi/v5"

	"github.com/staffdesk/staffdesk/internal/rbac"
)

// MountRoutes registers the employee routes behind the access gate. Each
// route's page/action pair is fixed here, at registration time.
func (h *Handler) MountRoutes(r chi.Router, gate rbac.Middleware) {
	r.Use(gate.Authenticate)
	r.Group(func(r chi.Router) {
		r.Use(gate.Require(Page, rbac.ActionCreate))
		r.Post("/employee-page", h.create)
	})
	r.Group(func(r chi.Router) {
		r.Use(gate.Require(Page, rbac.ActionRead))
		r.Get("/employee-page", h.list)
	})
	r.Group(func(r chi.Router) {
		r.Use(gate.Require(Page, rbac.ActionUpdate))
		r.Put("/employee-page/{id}", h.update)
	})
	r.Group(func(r chi.Router) {
		r.Use(gate.Require(Page, rbac.ActionDelete))
		r.Delete("/employee-page/{id}", h.delete)
	})
}
