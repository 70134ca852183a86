package handler

import (
	"encoding/json"
	"net/http"
)

// SendCodeEnvelope wraps send-code responses. The code is echoed back to the
// caller in addition to being delivered over WhatsApp.
type SendCodeEnvelope struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Code       string `json:"code"`
	MessageSID string `json:"messageSid"`
}

// VerifyCodeEnvelope wraps verify-code responses.
type VerifyCodeEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendEnvelope wraps outbound-message responses with the provider's
// identifier and status, surfaced verbatim.
type SendEnvelope struct {
	Success    bool   `json:"success"`
	MessageSID string `json:"messageSid"`
	Status     string `json:"status"`
}

// ErrorEnvelope is the generic failure wrapper. Detail carries the upstream
// provider error, when there is one.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Detail  string `json:"detail,omitempty"`
}

// HealthEnvelope wraps health-check responses.
type HealthEnvelope struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorEnvelope{Error: msg})
}
