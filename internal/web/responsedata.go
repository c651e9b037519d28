package web

import (
	"errors"
)

type errorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

func newErrorResponse(message string) errorResponse {
	return errorResponse{Message: message}
}

func (r errorResponse) WithErrors(err error) errorResponse {
	for _, err := range unwrap(err) {
		r.Errors = append(r.Errors, err.Error())
	}
	return r
}

type multierr interface {
	Unwrap() []error
}

// unwrap flattens joined errors, looking through single wrappers.
func unwrap(err error) []error {
	var merr multierr
	if errors.As(err, &merr) {
		var errs []error
		for _, err := range merr.Unwrap() {
			errs = append(errs, unwrap(err)...)
		}
		return errs
	}
	return []error{err}
}
