package http

import (
	"encoding/json"
	"net/http"
)

var errorStatus = map[ErrorCode]int{
	BADREQUEST:      http.StatusBadRequest,
	NOTFOUND:        http.StatusNotFound,
	CONFLICT:        http.StatusConflict,
	GONE:            http.StatusGone,
	UNPROCESSABLE:   http.StatusUnprocessableEntity,
	PROVIDERFAILURE: http.StatusBadGateway,
}

func respondJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, err ErrorResp) {
	statusCode, ok := errorStatus[err.Error.Code]
	if !ok {
		statusCode = http.StatusInternalServerError
	}
	respondJSON(w, statusCode, err)
}

func badRequest(message string) ErrorResp {
	return ErrorResp{Error: Error{Code: BADREQUEST, Message: message}}
}
