// pkg/api/respond.go
package api

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// ErrorResponse is the body of every JSON error the API writes itself.
type ErrorResponse struct {
	Error string `json:"error"`
}

// writeJSON marshals v and writes it with the given status. The body is
// written without a trailing newline so identical values give identical bytes.
func writeJSON(w http.ResponseWriter, logger logrus.FieldLogger, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.WithError(err).Error("Failed to encode response")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil {
		logger.WithError(err).Debug("Failed to write response body")
	}
}

func writeError(w http.ResponseWriter, logger logrus.FieldLogger, status int, message string) {
	writeJSON(w, logger, status, ErrorResponse{Error: message})
}
