package dto

import "vidtube/domain/apperror"

// Response is the envelope every endpoint answers with.
type Response struct {
	StatusCode int                   `json:"statusCode"`
	Data       interface{}           `json:"data"`
	Message    string                `json:"message"`
	Success    bool                  `json:"success"`
	Errors     []apperror.FieldError `json:"errors,omitempty"`
}

func NewResponse(status int, data interface{}, message string) Response {
	return Response{
		StatusCode: status,
		Data:       data,
		Message:    message,
		Success:    status < 400,
	}
}

func NewErrorResponse(err *apperror.Error) Response {
	res := NewResponse(err.StatusCode, nil, err.Message)
	res.Errors = err.Errors
	return res
}
