package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/pillarcoach/coachengine/internal/domain"
)

const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeBody reads a JSON request body. An empty body leaves dst untouched.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// writeEngineError maps engine errors onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, err error) {
	var serr *domain.SerializationError
	switch {
	case errors.Is(err, domain.ErrUnknownModel):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &serr):
		writeError(w, http.StatusUnprocessableEntity, serr.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
