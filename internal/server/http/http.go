package http

import (
	"bufio"
	"log"
	"net"

	"github.com/indigo-web/oneshot/config"
	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/internal/parser/http1"
	"github.com/indigo-web/oneshot/kv"
)

// Server is the body of a single connection task: parse one request, hand it
// to the handler once, close the connection. Instances are shared across
// tasks, therefore hold no per-connection state.
type Server struct {
	cfg     *config.Config
	handler http.Handler
}

func NewServer(cfg *config.Config, handler http.Handler) *Server {
	return &Server{
		cfg:     cfg,
		handler: handler,
	}
}

// ServeConn serves the connection from the first byte to the close. The close
// is guaranteed on every exit path, including a panicking handler; whatever
// goes wrong here dies here and never reaches the accept loop or any other
// connection.
func (s *Server) ServeConn(conn net.Conn) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("oneshot: http: %s: panic: %v", conn.RemoteAddr(), p)
		}

		_ = conn.Close()
	}()

	reader := bufio.NewReaderSize(conn, s.cfg.NET.ReadBufferSize)
	request := http.NewRequest(
		reader, conn, conn.RemoteAddr(), kv.NewPrealloc(s.cfg.Headers.Prealloc),
	)

	if err := http1.Parse(reader, request); err != nil {
		// no error response is generated: the peer gets an abrupt close
		log.Printf("oneshot: http: %s: parse: %s", conn.RemoteAddr(), err)
		return
	}

	if err := s.handler(request); err != nil {
		log.Printf("oneshot: http: %s: handler: %s", conn.RemoteAddr(), err)
	}
}
