package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrUpstreamUnavailable = errors.New("loan api unavailable")
var ErrBadUpstreamResponse = errors.New("malformed loan api response")

// UpstreamError is a non-2xx reply from the loan API, carrying the
// server-supplied detail message so pages can surface it inline.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return e.Message
}
