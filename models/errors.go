package models

import "net/http"

// ErrorKind tags an APIError so callers can branch on the class of failure
// without string-matching messages.
type ErrorKind string

const (
	KindInvalidIdentifier    ErrorKind = "invalid_identifier"
	KindInvalidField         ErrorKind = "invalid_field"
	KindEmptyBody            ErrorKind = "empty_body"
	KindNotFound             ErrorKind = "not_found"
	KindReferentialViolation ErrorKind = "referential_violation"
	KindUnhandled            ErrorKind = "unhandled"
)

// APIError is the domain rejection type. Every validator, existence check
// and repository operation fails with one of these; the helper package maps
// them onto HTTP responses.
type APIError struct {
	Kind   ErrorKind `json:"-"`
	Status int       `json:"-"`
	Msg    string    `json:"msg"`
}

func (e *APIError) Error() string {
	return e.Msg
}

func InvalidIdentifier(msg string) *APIError {
	return &APIError{Kind: KindInvalidIdentifier, Status: http.StatusBadRequest, Msg: "400 - Bad Request: " + msg}
}

func InvalidField(msg string) *APIError {
	return &APIError{Kind: KindInvalidField, Status: http.StatusBadRequest, Msg: "400 - Bad Request: " + msg}
}

func EmptyBody(msg string) *APIError {
	return &APIError{Kind: KindEmptyBody, Status: http.StatusBadRequest, Msg: "400 - Bad Request: " + msg}
}

func NotFound(msg string) *APIError {
	return &APIError{Kind: KindNotFound, Status: http.StatusNotFound, Msg: "404 - Not Found: " + msg}
}

func ReferentialViolation() *APIError {
	return &APIError{Kind: KindReferentialViolation, Status: http.StatusNotFound, Msg: "404 - Not Found: Article or User does not exist"}
}

func Unhandled() *APIError {
	return &APIError{Kind: KindUnhandled, Status: http.StatusInternalServerError, Msg: "Internal Server Error"}
}
