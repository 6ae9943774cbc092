package httphandlers

import (
	"encoding/json"
	"fwgate/internal/types"
	"net/http"
)

const (
	authorizationHeader = "X-Access-Token"
	requestIDHeader     = "X-Request-Id"
)

type (
	response struct {
		Error   bool        `json:"error"`
		Message string      `json:"message"`
		Data    interface{} `json:"data"`
	}
)

func unauthorized(w http.ResponseWriter, err error) {
	writeError(w, http.StatusUnauthorized, err)
}

func ok(w http.ResponseWriter, message string, data interface{}) {
	write(w, http.StatusOK, response{Message: message, Data: data})
}

// outcome writes a control outcome. The outcome travels in data even when
// the status code reports a failure.
func outcome(w http.ResponseWriter, o types.Outcome, data interface{}) {
	write(w, statusCode(o.Status), response{
		Error:   !o.OK(),
		Message: o.Message,
		Data:    data,
	})
}

func statusCode(s types.Status) int {
	switch s {
	case types.StatusOK:
		return http.StatusOK
	case types.StatusValidationError:
		return http.StatusBadRequest
	case types.StatusPermissionError:
		return http.StatusForbidden
	default:
		return http.StatusServiceUnavailable
	}
}

func writeError(w http.ResponseWriter, errorCode int, err error) {
	errmsg := ""
	if err != nil {
		errmsg = err.Error()
	}
	write(w, errorCode, response{Error: true, Message: errmsg})
}

func write(w http.ResponseWriter, code int, r response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	data, _ := json.Marshal(r)
	_, _ = w.Write(data)
}
