package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weisetech/booking-admin/internal/config"
	"github.com/weisetech/booking-admin/internal/logger"
)

func TestNewServer_RequiresAddress(t *testing.T) {
	_, err := NewServer(http.NewServeMux(), config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_CreatesHTTPServer(t *testing.T) {
	srv, err := NewServer(http.NewServeMux(), config.Server{HTTPAddress: "localhost:0"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, srv)

	impl, ok := srv.(*server)
	require.True(t, ok)
	assert.NotNil(t, impl.httpServer)
}
