package helpers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the body of every failed API response.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes payload as the response body.
func WriteJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// WriteJSONError writes statusCode with an {"error": message} body.
// Internal details must not be passed here; log them and send a generic message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: message})
}
