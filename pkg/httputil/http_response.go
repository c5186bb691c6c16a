package httputil

import (
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

type ErrorResponse struct {
	Error     bool   `json:"error"`
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string, details error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	resp := ErrorResponse{
		Error:     true,
		Code:      statusCode,
		Message:   message,
		Timestamp: time.Now().UnixMilli(),
	}

	if details != nil {
		resp.Details = details.Error()
	}

	sonic.ConfigFastest.NewEncoder(w).Encode(resp)
}

func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if body != nil {
		sonic.ConfigDefault.NewEncoder(w).Encode(body)
	}
}

// WriteMessage writes {"message": msg} with given status.
func WriteMessage(w http.ResponseWriter, statusCode int, msg string) {
	WriteJSONResponse(w, statusCode, map[string]any{"message": msg})
}
