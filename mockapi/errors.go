package mockapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

const maxBodySize = 64 << 10

// ErrorResponse is the wire shape for every error the mock returns.
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message,omitempty"`
	UpgradeURL string `json:"upgradeUrl,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: code, Message: msg})
}

func writePremiumRequired(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, ErrorResponse{
		Error:      "premium_required",
		Message:    "this feature requires a premium subscription",
		UpgradeURL: "https://claimready.example/upgrade",
	})
}

// decodeJSON decodes a request body into T, enforcing the size limit
// and rejecting unknown fields. On failure it writes the error
// response itself and returns ok=false.
func decodeJSON[T any](w http.ResponseWriter, r *http.Request, maxSize int64) (T, bool) {
	var v T
	dec := json.NewDecoder(io.LimitReader(r.Body, maxSize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			writeError(w, http.StatusBadRequest, "bad_request", "request body is required")
		} else {
			writeError(w, http.StatusBadRequest, "bad_request", "invalid JSON: "+err.Error())
		}
		return v, false
	}
	return v, true
}
