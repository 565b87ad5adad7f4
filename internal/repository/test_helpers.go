package repository

import (
	"io"
	"net/http"
	"strings"
)

// RoundTripperFunc allows us to easily mock http.Client responses in tests.
type RoundTripperFunc func(*http.Request) *http.Response

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req), nil
}

// NewStubClient returns an http.Client that answers every request with the given status and body.
func NewStubClient(statusCode int, body string) *http.Client {
	return &http.Client{
		Transport: RoundTripperFunc(func(req *http.Request) *http.Response {
			return &http.Response{
				StatusCode: statusCode,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     http.Header{"Content-Type": []string{"application/json"}},
				Request:    req,
			}
		}),
	}
}
