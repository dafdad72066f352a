package httpserver

import (
	"bytes"
	"log/slog"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roster/internal/platform/config"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	srv := New(config.Server{Addr: ":9090"}, http.NotFoundHandler(), logger)
	assert.Equal(t, ":9090", srv.Addr)
	assert.NotZero(t, srv.ReadHeaderTimeout)
	require.NotNil(t, srv.ErrorLog)

	srv.ErrorLog.Print("http: TLS handshake error")
	assert.Contains(t, buf.String(), `"level":"ERROR"`)
	assert.Contains(t, buf.String(), "TLS handshake error")

	assert.Nil(t, New(config.Server{}, http.NotFoundHandler(), nil).ErrorLog)
}
