package api

import (
	"encoding/json"
	"net/http"

	"github.com/nguyentantai21042004/script-extractor/internal/processor"
)

// Error is the JSON body of every failed request.
type Error struct {
	Code     int    `json:"code"`
	Category string `json:"category,omitempty"`
	Message  string `json:"error"`
}

func (e Error) Error() string {
	return e.Message
}

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Status int               `json:"status"`
	Errors map[string]string `json:"errors"`
}

func (e ValidationError) Error() string {
	return "validation failed"
}

func NewValidationError(errors map[string]string) ValidationError {
	return ValidationError{
		Status: http.StatusUnprocessableEntity,
		Errors: errors,
	}
}

func NewError(code int, msg string) Error {
	return Error{Code: code, Message: msg}
}

func ErrBadRequest() Error {
	return NewError(http.StatusBadRequest, "invalid JSON request")
}

func ErrUnauthorized(msg string) Error {
	return NewError(http.StatusUnauthorized, msg)
}

func ErrUnavailable(msg string) Error {
	return NewError(http.StatusServiceUnavailable, msg)
}

// pipelineError converts a processor failure into its HTTP form.
func pipelineError(err error) Error {
	category := processor.Categorize(err)
	return Error{
		Code:     statusFor(category),
		Category: string(category),
		Message:  category.Message(),
	}
}

func statusFor(c processor.Category) int {
	switch c {
	case processor.CategoryNoCaptions, processor.CategoryVideoUnavailable:
		return http.StatusNotFound
	case processor.CategoryPrivateVideo:
		return http.StatusForbidden
	case processor.CategoryInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch e := err.(type) {
	case Error:
		writeJSON(w, e.Code, e)
	case ValidationError:
		writeJSON(w, e.Status, e)
	default:
		writeJSON(w, http.StatusInternalServerError, NewError(http.StatusInternalServerError, err.Error()))
	}
}
