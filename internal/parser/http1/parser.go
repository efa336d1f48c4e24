package http1

import (
	"bufio"
	"strings"

	"github.com/indigo-web/oneshot/http"
	"github.com/indigo-web/oneshot/http/method"
	"github.com/indigo-web/oneshot/http/proto"
	"github.com/indigo-web/oneshot/http/status"
)

// Parse reads exactly one request head off the reader and fills the request
// object in place. Body bytes, if any, are left in the reader untouched.
//
// Lines are delimited by \n with an optional preceding \r, except the header
// section terminator, which must be the exact two bytes \r\n. There is no
// bound on line length or header count: a hostile peer can stream forever and
// the parser will keep reading (see config.NET.ReadBufferSize on why).
func Parse(r *bufio.Reader, request *http.Request) error {
	line, err := r.ReadString('\n')
	if err != nil {
		return err
	}

	if err = parseRequestLine(trimLine(line), request); err != nil {
		return err
	}

	for {
		line, err = r.ReadString('\n')
		switch {
		case err != nil:
			return err
		case line == "\r\n":
			return nil
		}

		key, value, err := parseHeaderLine(trimLine(line))
		if err != nil {
			return err
		}

		request.Headers.Set(key, value)
	}
}

func parseRequestLine(line string, request *http.Request) error {
	tokens := strings.Split(line, " ")
	if len(tokens) < 3 {
		return status.ErrMalformedRequestLine
	}

	request.Method = method.Parse(tokens[0])
	if request.Method == method.Unknown {
		return status.ErrMethodNotValid
	}

	// the URI stays an opaque string: no decoding, no validation
	request.Path = tokens[1]

	request.Proto = proto.Parse(tokens[2])
	if request.Proto == proto.Unknown {
		return status.ErrVersionNotValid
	}

	return nil
}

func parseHeaderLine(line string) (key, value string, err error) {
	colon := strings.IndexByte(line, ':')
	if colon == -1 {
		return "", "", status.ErrMalformedHeaderLine
	}

	// at most one leading space is stripped off the value, further whitespace
	// is preserved verbatim
	return line[:colon], strings.TrimPrefix(line[colon+1:], " "), nil
}

// trimLine cuts the trailing \n and at most one \r preceding it.
func trimLine(line string) string {
	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r")
}
