package handler

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/MKhiriev/go-resin-keeper/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// http.NewHandler only stores the services pointer, so nil is safe for
// construction-time tests.
var noServices *service.ClientServices

func TestNewHandlers_WithAddress(t *testing.T) {
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:8787", RequestTimeout: time.Second}

	h, err := NewHandlers(noServices, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(noServices, config.ClientServer{}, logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:8787"}

	h1, err1 := NewHandlers(noServices, cfg, logger.Nop())
	h2, err2 := NewHandlers(noServices, cfg, logger.Nop())

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotSame(t, h1, h2)
	assert.NotSame(t, h1.HTTP, h2.HTTP)
}
