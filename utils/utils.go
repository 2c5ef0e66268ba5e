package utils

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func ParseJSONBody(r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

func RespondJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to serialize JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(response)
}

// RespondError writes {"error", "message"}; err may be nil.
func RespondError(w http.ResponseWriter, statusCode int, err error, message string) {
	res := errorResponse{Message: message}
	if err != nil {
		res.Error = err.Error()
		if statusCode >= http.StatusInternalServerError {
			zap.L().Error(message, zap.Error(err))
		}
	}
	RespondJSON(w, statusCode, res)
}
