package dto

import "net/http"

type BaseResponse struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func NewBaseResponse(code int, message string, data interface{}) *BaseResponse {
	return &BaseResponse{
		Code:    code,
		Message: message,
		Data:    data,
	}
}

func NewBadRequestResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusBadRequest, message, nil)
}

func NewNotFoundResponse(message string) *BaseResponse {
	return NewBaseResponse(http.StatusNotFound, message, nil)
}

// NewDegradedResponse signals an upstream failure while still carrying a
// renderable fallback payload. The detail string is only filled outside
// production.
func NewDegradedResponse(message string, data interface{}, detail string) *BaseResponse {
	return &BaseResponse{
		Code:    http.StatusInternalServerError,
		Message: message,
		Data:    data,
		Error:   detail,
	}
}
