package utils

import (
	"encoding/json"
	"net/http"
)

type M map[string]interface{}

func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// RespondWithDetail replies with the {"detail": ...} body the API uses for
// non-field errors.
func RespondWithDetail(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"detail": msg})
}

// RespondWithFieldErrors replies with a field -> messages body for
// validation failures.
func RespondWithFieldErrors(w http.ResponseWriter, errs map[string][]string) {
	RespondWithJSON(w, http.StatusBadRequest, errs)
}
