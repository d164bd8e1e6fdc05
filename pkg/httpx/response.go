package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON encodes v as the response body under the given status code.
// Every JSON response from this service carries credentials or account
// data, so caching is disabled across the board.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	// The status line is already out; an encode failure here can only be
	// logged by the caller's middleware, not surfaced to the client.
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache marks the response as uncacheable for both HTTP/1.0 and
// HTTP/1.1 intermediaries.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
