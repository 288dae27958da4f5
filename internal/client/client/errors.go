package client

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/dataguard/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptyBaseURL = errors.New("api base url is empty")
)

// APIError is a non-2xx response. Error returns exactly the backend message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// Is makes errors.Is(err, ErrUnauthorized) true for 401 and 403.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden)
}

// TransportError is a request that never produced a response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return common.MsgUnexpectedError
	}
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes every transport failure match ErrUnavailable.
func (e *TransportError) Is(target error) bool {
	return target == ErrUnavailable
}
