package http

import (
	"bufio"
	"io"
	"net"

	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/http/proto"
	"github.com/indigo-web/oneshot/http/status"
	"github.com/indigo-web/oneshot/internal/render"
	"github.com/indigo-web/oneshot/kv"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

// Request represents a single parsed HTTP request together with the means of
// responding to it. It lives exactly as long as the handler invocation and
// never owns the underlying socket: closing it is the connection task's job,
// so neither the Request nor a handler may do so.
type Request struct {
	// Method is an enum representing the request method.
	Method method.Method
	// Path is the request URI exactly as received. No decoding, normalization
	// or validation is performed on it.
	Path string
	// Proto is the protocol announced in the request line. Note that HTTP/2 is
	// recognized as a token, but responses are framed as HTTP/1.x regardless.
	Proto proto.Proto
	// Headers holds non-normalized header pairs. Keys are case-sensitive as
	// received, values of repeated keys are overridden by the latest occurrence.
	Headers *kv.Storage
	// Remote holds the remote address. Please note that this is generally not a
	// good parameter to identify a user, as there might be proxies in the middle.
	Remote net.Addr

	reader   *bufio.Reader
	writer   io.Writer
	renderer *render.Engine
}

func NewRequest(reader *bufio.Reader, writer io.Writer, remote net.Addr, headers *kv.Storage) *Request {
	return &Request{
		Method:   method.Unknown,
		Proto:    proto.HTTP11,
		Headers:  headers,
		Remote:   remote,
		reader:   reader,
		writer:   writer,
		renderer: render.NewEngine(),
	}
}

// Body returns a reader over the message body. The body is never consumed by
// the library itself: whatever follows the header terminator stays in the
// stream for the handler to read on its own terms.
func (r *Request) Body() io.Reader {
	return r.reader
}

// Reader is an alias to Body, for symmetry with Writer.
func (r *Request) Reader() io.Reader {
	return r.reader
}

// Writer exposes the raw connection writer for full manual control over the
// response, e.g. streaming. When used, the wire format is entirely up to the
// caller.
func (r *Request) Writer() io.Writer {
	return r.writer
}

// Respond serializes the response head and body onto the wire: a status line,
// the passed headers (nil is a valid empty set), a blank line and the body
// verbatim. No Content-Length is computed and no chunking is applied. Calling
// Respond twice emits two concatenated blocks, which clients will treat as
// garbage; responding at most once is the caller's discipline.
func (r *Request) Respond(code status.Code, headers *kv.Storage, body []byte) error {
	return r.renderer.Write(r.writer, r.Proto, code, headers, body)
}

// RespondString is Respond for string bodies, avoiding the copy.
func (r *Request) RespondString(code status.Code, headers *kv.Storage, body string) error {
	return r.Respond(code, headers, uf.S2B(body))
}

// RespondJSON marshals the model and responds with it, attaching the
// Content-Type header to the passed header set (created when nil).
func (r *Request) RespondJSON(code status.Code, headers *kv.Storage, model any) error {
	body, err := json.ConfigDefault.Marshal(model)
	if err != nil {
		return err
	}

	if headers == nil {
		headers = kv.New()
	}

	return r.Respond(code, headers.Set("Content-Type", "application/json"), body)
}
