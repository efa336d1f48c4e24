// Package oneshot is a minimal HTTP/1.x server library speaking one request
// per connection: accept, parse, invoke the handler, close. No keep-alive, no
// pipelining, no chunked transfer encoding, no TLS.
package oneshot

import (
	"fmt"
	"net"

	"github.com/indigo-web/oneshot/config"
	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/internal/address"
	httpserver "github.com/indigo-web/oneshot/internal/server/http"
	"github.com/indigo-web/oneshot/internal/server/tcp"
)

type ListenerConstructor func(network, addr string) (net.Listener, error)

// App ties the listener, the dispatcher and the user handler together.
type App struct {
	addr        address.Address
	cfg         *config.Config
	hooks       hooks
	constructor ListenerConstructor
	errCh       chan error
}

// New returns a new App instance. Missing parts of addr (or an empty addr
// altogether) fall back to the configured defaults, 127.0.0.1:8080 unless
// tuned otherwise.
func New(addr string) *App {
	parsed, err := address.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("oneshot: listen: bad addr: %v", err))
	}

	return &App{
		addr:  parsed,
		cfg:   config.Default(),
		errCh: make(chan error),
	}
}

// Tune replaces the default configuration. Zero values are filled in with
// defaults.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = config.Fill(cfg)
	return a
}

// NotifyOnStart calls the callback once the listener is bound and the accept
// loop is about to run.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback when the server is down: no new connections
// are accepted anymore by that point.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Listener overrides how the listening socket is constructed, e.g. to plug in
// socket options or a pre-bound descriptor.
func (a *App) Listener(constructor ListenerConstructor) *App {
	a.constructor = constructor
	return a
}

// Serve binds the listener and blocks in the accept loop, spawning one
// connection task per accepted connection. An Accept() failure is fatal and
// returned as-is; per-connection failures never surface here. Stop and
// GracefulStop make Serve return status.ErrShutdown and
// status.ErrGracefulShutdown respectively.
func (a *App) Serve(handler http.Handler) error {
	if handler == nil {
		handler = func(request *http.Request) error {
			return request.Respond(status.OK, nil, nil)
		}
	}

	constructor := a.constructor
	if constructor == nil {
		constructor = net.Listen
	}

	addr := a.addr.Fill(a.cfg.NET.Address, a.cfg.NET.Port)
	sock, err := constructor("tcp", addr.String())
	if err != nil {
		return err
	}

	server := tcp.NewServer(sock, httpserver.NewServer(a.cfg, handler).ServeConn)

	return a.run(server)
}

func (a *App) run(server *tcp.Server) error {
	go func() {
		a.errCh <- server.Start()
	}()

	callIfNotNil(a.hooks.OnStart)
	err := <-a.errCh

	switch err {
	case status.ErrGracefulShutdown:
		// stop listening to new clients and process till the end all the old ones
		_ = server.GracefulShutdown()
		<-a.errCh
	case status.ErrShutdown:
		_ = server.Stop()
		<-a.errCh
	}

	callIfNotNil(a.hooks.OnStop)

	return err
}

// GracefulStop stops accepting new connections, but keeps serving old ones.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the
// server may still be working
func (a *App) GracefulStop() {
	a.errCh <- status.ErrGracefulShutdown
}

// Stop stops the whole application immediately.
//
// NOTE: the call isn't blocking. So by that, after the method returned, the
// server may still be working
func (a *App) Stop() {
	a.errCh <- status.ErrShutdown
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
