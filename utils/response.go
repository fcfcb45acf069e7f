package utils

import (
	"encoding/json"
	"net/http"

	"tripsculptor/errs"
)

type M map[string]interface{}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// Fail writes the uniform failure envelope with the status the error maps to.
func Fail(w http.ResponseWriter, err error) {
	RespondWithJSON(w, errs.StatusOf(err), M{
		"status":  false,
		"message": err.Error(),
	})
}

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, M{"status": false, "message": msg})
}
