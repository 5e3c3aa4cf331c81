// Package lifecycle coordinates subsystem startup, readiness, and graceful
// shutdown for a long-running process.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/JaimeStill/verdant/pkg/handlers"
)

// ErrShutdownTimeout is returned when shutdown hooks outlive the timeout.
var ErrShutdownTimeout = errors.New("shutdown timeout")

// Coordinator runs registered hooks at startup and shutdown and tracks
// whether the process is ready for traffic.
type Coordinator struct {
	ctx      context.Context
	cancel   context.CancelFunc
	starting sync.WaitGroup
	stopping sync.WaitGroup
	ready    atomic.Bool

	shutdownOnce sync.Once
	shutdownErr  error
}

// New returns a Coordinator whose context stays live until Shutdown.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// OnStartup runs fn in its own goroutine; WaitForStartup waits for it.
func (c *Coordinator) OnStartup(fn func()) {
	c.starting.Go(fn)
}

// OnShutdown runs fn in its own goroutine immediately. fn is expected to
// wait on Context().Done() and then release its resources; Shutdown waits
// for it to return.
func (c *Coordinator) OnShutdown(fn func()) {
	c.stopping.Go(fn)
}

// Ready holds between WaitForStartup and Shutdown.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// WaitForStartup blocks on the startup hooks, then marks the process ready
// unless shutdown already started.
func (c *Coordinator) WaitForStartup() {
	c.starting.Wait()
	if c.ctx.Err() == nil {
		c.ready.Store(true)
	}
}

// Shutdown cancels Context and gives the shutdown hooks up to timeout to
// finish. Only the first call does any work; later calls return its result.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.shutdownOnce.Do(func() {
		c.ready.Store(false)
		c.cancel()

		done := make(chan struct{})
		go func() {
			c.stopping.Wait()
			close(done)
		}()

		timer := time.NewTimer(timeout)
		defer timer.Stop()

		select {
		case <-done:
		case <-timer.C:
			c.shutdownErr = fmt.Errorf("%w after %v", ErrShutdownTimeout, timeout)
		}
	})
	return c.shutdownErr
}

// Healthz reports liveness. It answers 200 for as long as the process serves.
func (c *Coordinator) Healthz(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz answers 200 once startup completes and 503 before that or once
// shutdown has begun.
func (c *Coordinator) Readyz(w http.ResponseWriter, r *http.Request) {
	if !c.Ready() {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}
