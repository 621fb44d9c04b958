package testutil

import (
	"net/http"
	"time"

	"coverline/pkg/requestcontext"
)

// WithRequestID attaches a request ID the way the RequestID middleware does.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}

// WithTime pins the request clock the way the requesttime middleware does.
func WithTime(req *http.Request, now time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), now))
}
