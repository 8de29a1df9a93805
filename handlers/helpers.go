package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nyumbani-farms/herdbook/validators"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeSaveError maps a failed business rule to a 400 with the structured
// {field, code, message} payload; anything else is a plain 500.
func writeSaveError(w http.ResponseWriter, err error) {
	var verr *validators.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, verr)
		return
	}
	http.Error(w, "db error: "+err.Error(), http.StatusInternalServerError)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	return true
}
