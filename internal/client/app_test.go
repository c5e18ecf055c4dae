package client

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-resin-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) add(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *recorder) list() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

type fakeWorkers struct{ rec *recorder }

func (w fakeWorkers) Run(context.Context) { w.rec.add("workers.run") }
func (w fakeWorkers) Stop()               { w.rec.add("workers.stop") }

type fakeUI struct {
	rec *recorder
	err error
}

func (u fakeUI) Run(context.Context) error {
	u.rec.add("ui.run")
	return u.err
}

// fakeServer blocks until ctx is cancelled, like the real one.
type fakeServer struct {
	rec *recorder
	err error
}

func (s fakeServer) RunServer(ctx context.Context) error {
	s.rec.add("server.run")
	<-ctx.Done()
	s.rec.add("server.stop")
	return s.err
}

func TestNewApp_RequiresParts(t *testing.T) {
	_, err := NewApp(nil, fakeWorkers{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrIncompleteApp)

	_, err = NewApp(fakeUI{}, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrIncompleteApp)
}

func TestApp_Run_WithoutServer(t *testing.T) {
	rec := &recorder{}
	app, err := NewApp(fakeUI{rec: rec}, fakeWorkers{rec: rec}, nil, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"workers.run", "ui.run", "workers.stop"}, rec.list())
}

func TestApp_Run_StopsServerWhenUIExits(t *testing.T) {
	rec := &recorder{}
	app, err := NewApp(fakeUI{rec: rec}, fakeWorkers{rec: rec}, fakeServer{rec: rec}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("app did not exit after the ui returned")
	}

	calls := rec.list()
	assert.Contains(t, calls, "server.stop")
	assert.Equal(t, "workers.stop", calls[len(calls)-1])
}

func TestApp_Run_UIError(t *testing.T) {
	rec := &recorder{}
	uiErr := errors.New("terminal gone")
	app, err := NewApp(fakeUI{rec: rec, err: uiErr}, fakeWorkers{rec: rec}, nil, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(context.Background()), uiErr)
}

func TestDaemon_Run(t *testing.T) {
	rec := &recorder{}
	d, err := NewDaemon(fakeWorkers{rec: rec}, fakeServer{rec: rec}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- d.Run(ctx) }()

	require.Eventually(t, func() bool {
		return len(rec.list()) >= 2
	}, time.Second, 10*time.Millisecond)
	cancel()

	require.NoError(t, <-done)
	assert.Equal(t, []string{"workers.run", "server.run", "server.stop", "workers.stop"}, rec.list())
}

func TestDaemon_Run_ServerError(t *testing.T) {
	rec := &recorder{}
	srvErr := errors.New("address in use")
	d, err := NewDaemon(fakeWorkers{rec: rec}, fakeServer{rec: rec, err: srvErr}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, d.Run(ctx), srvErr)
}

func TestNewDaemon_RequiresServer(t *testing.T) {
	_, err := NewDaemon(fakeWorkers{}, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrIncompleteApp)
}
