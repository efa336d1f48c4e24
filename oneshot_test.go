package oneshot

import (
	"fmt"
	"io"
	"net"
	"sync"
	"testing"

	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func echoPath(request *http.Request) error {
	return request.RespondString(status.OK, nil, "hello "+request.Path)
}

// startApp runs the app in background and tears it down with the test.
func startApp(t *testing.T, addr string, handler http.Handler) (serveErr chan error) {
	t.Helper()

	app := New(addr)
	started := make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})

	serveErr = make(chan error, 1)
	go func() {
		serveErr <- app.Serve(handler)
	}()
	<-started

	t.Cleanup(func() {
		app.Stop()
		<-serveErr
	})

	return serveErr
}

func send(t *testing.T, addr, request string) string {
	t.Helper()

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()

	_, err = conn.Write([]byte(request))
	require.NoError(t, err)
	response, err := io.ReadAll(conn)
	require.NoError(t, err)

	return string(response)
}

func TestServe(t *testing.T) {
	const addr = "localhost:18080"
	startApp(t, addr, func(request *http.Request) error {
		headers := kv.New().Set("Server", "oneshot")
		return request.RespondString(status.OK, headers, "hello "+request.Path)
	})

	response := send(t, addr, "GET /foo HTTP/1.1\r\nHost: x\r\n\r\n")
	assert.Equal(t, "HTTP/1.1 200 OK\r\nServer: oneshot\n\r\nhello /foo", response)
}

func TestConcurrentConnections(t *testing.T) {
	const addr = "localhost:18081"
	startApp(t, addr, echoPath)

	wg := new(sync.WaitGroup)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			path := fmt.Sprintf("/client/%d", i)
			response := send(t, addr, fmt.Sprintf("GET %s HTTP/1.1\r\n\r\n", path))
			assert.Equal(t, "HTTP/1.1 200 OK\r\n\r\nhello "+path, response)
		}(i)
	}
	wg.Wait()
}

func TestParseFailureIsolation(t *testing.T) {
	const addr = "localhost:18082"
	startApp(t, addr, echoPath)

	// leave a half-written request in flight on its own connection
	inflight, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = inflight.Close()
	}()
	_, err = inflight.Write([]byte("GET /inflight HTTP/1.1\r\nHost: b\r\n"))
	require.NoError(t, err)

	// a malformed request elsewhere gets an abrupt close and nothing else
	assert.Empty(t, send(t, addr, "BLAH\r\n"))

	// ...while the pending connection finishes undisturbed
	_, err = inflight.Write([]byte("\r\n"))
	require.NoError(t, err)
	response, err := io.ReadAll(inflight)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\n\r\nhello /inflight", string(response))
}

func TestGracefulStop(t *testing.T) {
	const addr = "localhost:18083"

	entered := make(chan struct{})
	release := make(chan struct{})
	app := New(addr)
	started := make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})

	serveErr := make(chan error)
	go func() {
		serveErr <- app.Serve(func(request *http.Request) error {
			close(entered)
			<-release
			return request.RespondString(status.OK, nil, "late")
		})
	}()
	<-started

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()
	_, err = conn.Write([]byte("GET / HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)
	<-entered

	app.GracefulStop()
	close(release)

	response, err := io.ReadAll(conn)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\n\r\nlate", string(response))
	require.ErrorIs(t, <-serveErr, status.ErrGracefulShutdown)
}

func TestStop(t *testing.T) {
	const addr = "localhost:18084"

	entered := make(chan struct{})
	app := New(addr)
	started := make(chan struct{})
	app.NotifyOnStart(func() {
		close(started)
	})

	serveErr := make(chan error)
	go func() {
		serveErr <- app.Serve(func(request *http.Request) error {
			close(entered)
			// hang on the connection until Stop tears it down
			_, err := io.ReadAll(request.Body())
			return err
		})
	}()
	<-started

	conn, err := net.Dial("tcp", addr)
	require.NoError(t, err)
	defer func() {
		_ = conn.Close()
	}()
	_, err = conn.Write([]byte("POST /hang HTTP/1.1\r\n\r\n"))
	require.NoError(t, err)
	<-entered

	app.Stop()
	require.ErrorIs(t, <-serveErr, status.ErrShutdown)
}
