package server

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/", h.HandleHealth)
	r.Get("/stats", h.HandleStats)
	r.Get("/export", h.HandleExport)
	r.Get("/llm-websocket/{call_id}", h.HandleCall)
}
