// Package server is the HTTP/WebSocket surface: the Retell LLM websocket
// plus health, stats and intake-export endpoints.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/erikmg100/sesame-retell-integration/internal/agent"
	"github.com/erikmg100/sesame-retell-integration/internal/export"
	"github.com/erikmg100/sesame-retell-integration/internal/knowledge"
	"github.com/erikmg100/sesame-retell-integration/internal/logger"
)

const version = "1.0.0"

type Handler struct {
	agent  *agent.Agent
	intake *export.Log
}

func NewHandler(a *agent.Agent, intake *export.Log) *Handler {
	return &Handler{agent: a, intake: intake}
}

func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":             "active",
		"agent_name":         "Gabbi",
		"law_firm":           knowledge.FirmName,
		"address":            knowledge.FirmAddress,
		"founder":            knowledge.Founder,
		"attorneys":          knowledge.Attorneys,
		"version":            version,
		"practice_areas":     knowledge.PracticeAreas,
		"case_types":         knowledge.CaseTypes,
		"websocket_endpoint": "/llm-websocket/{call_id}",
		"capabilities": []string{
			"legal intake qualification",
			"empathetic client communication",
			"conversation flow management",
			"voice presence enhancement",
		},
		"active_calls": h.agent.ActiveCalls(),
	})
}

func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"agent_name":   "Gabbi",
		"law_firm":     knowledge.FirmName,
		"active_calls": h.agent.ActiveCalls(),
		"call_details": h.agent.CallDetails(),
	})
}

func (h *Handler) HandleExport(w http.ResponseWriter, r *http.Request) {
	reqLog := logger.New().WithRequest(r).WithField("handler", "export")

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="intake_log.xlsx"`)
	if err := h.intake.WriteXLSX(w); err != nil {
		reqLog.WithError(err).Error("failed to write intake workbook")
		return
	}
	reqLog.WithField("records", h.intake.Len()).Info("intake log exported")
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
