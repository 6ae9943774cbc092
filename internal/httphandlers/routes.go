package httphandlers

import (
	"github.com/go-chi/chi/v5"
	"net/http"
)

func Routes(h *ApiHandler) chi.Router {
	r := chi.NewRouter()
	r.Use(h.RequestLogger)
	r.Route("/v1", func(rr chi.Router) {
		rr.Get("/h", func(writer http.ResponseWriter, request *http.Request) {
			ok(writer, "Hoi, the firewall gate is live!", struct{}{})
		})

		rr.Group(func(ar chi.Router) {
			ar.Use(h.Authenticate)
			ar.Post("/ip/block", h.BlockIP)
			ar.Post("/ip/allow", h.AllowIP)
			ar.Post("/port/block", h.BlockPort)
			ar.Post("/port/allow", h.AllowPort)
			ar.Get("/rules", h.ListRules)
			ar.Get("/ports/{port}", h.PortStatus)
		})
	})
	return r
}
