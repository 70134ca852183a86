package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-api-whatsapp/internal/application/messaging"
)

// WhatsAppHandler handles outbound message relay endpoints.
type WhatsAppHandler struct {
	svc messaging.Service
}

func NewWhatsAppHandler(svc messaging.Service) *WhatsAppHandler {
	return &WhatsAppHandler{svc: svc}
}

// Send serves both the authenticated and the open relay route; the router
// decides which one carries the bearer gate.
func (h *WhatsAppHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req messaging.SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	res, err := h.svc.Send(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SendEnvelope{
		Success:    true,
		MessageSID: res.SID,
		Status:     res.Status,
	})
}
