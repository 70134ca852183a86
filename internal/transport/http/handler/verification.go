package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-api-whatsapp/internal/application/verification"
)

// VerificationHandler handles the send-code / verify-code flow.
type VerificationHandler struct {
	svc verification.Service
}

func NewVerificationHandler(svc verification.Service) *VerificationHandler {
	return &VerificationHandler{svc: svc}
}

func (h *VerificationHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req verification.SendCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	code, sid, err := h.svc.SendCode(r.Context(), req)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SendCodeEnvelope{
		Success:    true,
		Message:    "Verification code sent",
		Code:       code,
		MessageSID: sid,
	})
}

func (h *VerificationHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req verification.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.VerifyCode(r.Context(), req); err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, VerifyCodeEnvelope{Success: true, Message: "Phone number verified"})
}
