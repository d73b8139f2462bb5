package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/birmacher/content-gen/generate"
	"github.com/birmacher/content-gen/logger"
	"github.com/birmacher/content-gen/store"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, statusCode int, response any) {
	data, err := json.Marshal(response)
	if err != nil {
		logger.Errorw("Failed to marshal JSON response", "error", err)
		data = []byte(`{"error":"internal server error"}`)
		statusCode = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(data); err != nil {
		logger.Errorw("Failed to write JSON response", "error", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, msg string) {
	writeJSON(w, statusCode, errorResponse{Error: msg})
}

// writeErr maps domain errors onto HTTP status codes
func writeErr(w http.ResponseWriter, err error) {
	var remoteErr *generate.RemoteCallError
	switch {
	case errors.Is(err, generate.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &remoteErr):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		logger.Errorw("Request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
