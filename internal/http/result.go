package httpapi

import "tolet-api/internal/domain"

// Status envelope types. Every endpoint wraps its payload in a
// {status, ...} object; the exact shape differs per endpoint and is part of
// the wire contract.
const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// listResponse is the GET /collections envelope.
type listResponse struct {
	Status  string              `json:"status"`
	Results int                 `json:"results"`
	Data    []domain.Collection `json:"data"`
}

// itemResponse is the POST /collections and GET /collections/{id} envelope.
type itemResponse struct {
	Status  string             `json:"status"`
	Results *domain.Collection `json:"results"`
}

// updateResponse is the PATCH /collections/{id} envelope.
type updateResponse struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Data    *domain.Collection `json:"data"`
}

// messageResponse is the healthchecker / DELETE / failure envelope.
type messageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func Fail(message string) messageResponse {
	return messageResponse{Status: statusFail, Message: message}
}
