// Package httpserver builds the listener shared by every entrypoint.
package httpserver

import (
	"net/http"
	"time"
)

const writeGrace = 5 * time.Second

// New builds an HTTP server. The write deadline leaves room for a handler
// that runs up to requestTimeout to still write its error response.
func New(addr string, handler http.Handler, requestTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      requestTimeout + writeGrace,
		IdleTimeout:       120 * time.Second,
	}
}
