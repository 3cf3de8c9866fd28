package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Token responses must always carry these.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DetailResponse is the error envelope every endpoint uses: {"detail": ...}.
// Detail is either a plain message or an object such as {"error": "..."}.
type DetailResponse struct {
	Detail any `json:"detail"`
}

// WriteDetail writes {"detail": detail} with the given status.
func WriteDetail(w http.ResponseWriter, code int, detail any) {
	WriteJSON(w, code, DetailResponse{Detail: detail})
}

// WriteHTML writes a small HTML body.
func WriteHTML(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
