package server

import (
	"context"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/config"
	"github.com/MKhiriev/go-resin-keeper/internal/handler"
	myHTTP "github.com/MKhiriev/go-resin-keeper/internal/handler/http"
	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoHandlers(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.ClientServer{HTTPAddress: "127.0.0.1:0"}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestNewServer_NoAddress(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, 0, logger.Nop())}

	_, err := NewServer(handlers, config.ClientServer{}, logger.Nop())

	require.ErrorIs(t, err, errNoServersAreCreated)
}

func TestRunServer_BindError(t *testing.T) {
	handlers := &handler.Handlers{HTTP: myHTTP.NewHandler(nil, 0, logger.Nop())}
	s, err := NewServer(handlers, config.ClientServer{HTTPAddress: "not-an-address"}, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())

	assert.Error(t, err)
}

func TestRun_ServesUntilCancelled(t *testing.T) {
	router := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	cfg := config.ClientServer{HTTPAddress: "127.0.0.1:0"}
	s := &server{httpServer: newHTTPServer(router, cfg, logger.Nop()), logger: logger.Nop()}

	ln, err := net.Listen("tcp", cfg.HTTPAddress)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.run(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, "ok", string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout + time.Second):
		t.Fatal("server did not stop after cancellation")
	}
}
