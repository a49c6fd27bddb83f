package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var NotFound = errors.New("Not found")
var WrongPassword = errors.New("Bad password")

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

// Check if err is instance of T for custom error types
func Is[T error](err error) bool {
	if _, ok := err.(T); ok {
		return true
	}
	return false
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Validation error: %s", e.Message)
}

func NewNotFound(what string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{Message: what + " not found", StatusCode: http.StatusNotFound}
}
