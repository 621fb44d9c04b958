package httpserver

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	srv := New(":0", http.NotFoundHandler(), 30*time.Second)

	assert.Equal(t, ":0", srv.Addr)
	assert.Equal(t, 35*time.Second, srv.WriteTimeout)
	assert.NotZero(t, srv.ReadHeaderTimeout)
}
