package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API error envelope used by every handler.
func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": code, "msg": msg})
}
