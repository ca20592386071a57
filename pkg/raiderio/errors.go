package raiderio

import (
	"errors"
	"fmt"
)

// ErrTransport matches every failure to exchange or decode a response
var ErrTransport = errors.New("http request failed")

// TransportError is a network level failure, including a cancelled or expired context
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTransport.Error(), e.Err.Error())
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrTransport
func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DecodeError is a response body that does not match the expected schema
type DecodeError struct {
	StatusCode int
	Err        error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("could not decode response with status %d: %s", e.StatusCode, e.Err.Error())
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrTransport
func (e *DecodeError) Is(target error) bool {
	return target == ErrTransport
}

// APIError is an error reported by the api itself
type APIError struct {
	StatusCode int    `json:"statusCode"`
	ErrorCode  string `json:"error"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: %s", e.Message)
}

// bodyExcerptLength caps how much of an unexpected body is kept
const bodyExcerptLength = 256

// UnexpectedStatusError is a response that is neither a success nor a client error
type UnexpectedStatusError struct {
	StatusCode int
	Body       string
}

func newUnexpectedStatusError(status int, body []byte) *UnexpectedStatusError {
	if len(body) > bodyExcerptLength {
		body = body[:bodyExcerptLength]
	}

	return &UnexpectedStatusError{StatusCode: status, Body: string(body)}
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("unexpected response status %d", e.StatusCode)
}
