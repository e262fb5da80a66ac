package utils

import (
	"encoding/json"
	"net/http"
)

// Response is the error envelope. Successful calls return their payload
// as-is so existing clients keep reading the same shapes.
type Response struct {
	Status  bool      `json:"status"`
	Message string    `json:"message"`
	Code    ErrorKind `json:"error,omitempty"`
	Errors  any       `json:"errors,omitempty"`
}

// ResponseJSON writes data as JSON with a custom status code
func ResponseJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(data)
}

// ------------- Success responses -------------

// returns 200 OK
func ResponseSuccess(w http.ResponseWriter, data any) {
	ResponseJSON(w, http.StatusOK, data)
}

// ResponseText writes a plain text body, used by the liveness route.
func ResponseText(w http.ResponseWriter, code int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	w.Write([]byte(text))
}

// ------------- Error responses -------------

// ResponseError writes err as the error envelope with its mapped status.
func ResponseError(w http.ResponseWriter, err error) {
	appErr := AsAppError(err)

	resp := Response{
		Status:  false,
		Message: appErr.Message,
		Code:    appErr.Kind,
	}
	if len(appErr.Fields) > 0 {
		resp.Errors = appErr.Fields
	}

	ResponseJSON(w, appErr.Status, resp)
}

// returns 400 Bad Request
func ResponseBadRequest(w http.ResponseWriter, message string, errors map[string]string) {
	ResponseError(w, ErrInvalidInput(message, errors))
}

// returns 401 Unauthorized
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	ResponseError(w, ErrUnauthenticated(message, nil))
}

// returns 403 Forbidden
func ResponseForbidden(w http.ResponseWriter, message string) {
	ResponseError(w, ErrForbidden(message))
}
