package status

import "errors"

type HTTPError struct {
	Message string
	Code    Code
}

func NewError(code Code, message string) error {
	return HTTPError{
		Code:    code,
		Message: message,
	}
}

func (h HTTPError) Error() string {
	return h.Message
}

var (
	// ErrMethodNotValid and ErrVersionNotValid carry which request line token
	// failed to parse, so callers can branch on the entity.
	ErrMethodNotValid  = NewError(NotImplemented, "request method is not valid")
	ErrVersionNotValid = NewError(HTTPVersionNotSupported, "protocol version is not valid")

	ErrMalformedRequestLine = NewError(BadRequest, "malformed request line")
	ErrMalformedHeaderLine  = NewError(BadRequest, "malformed header line")
)

// Shutdown signals travel through the same error channels as ordinary
// failures, but aren't HTTP errors themselves.
var (
	ErrShutdown         = errors.New("shutdown")
	ErrGracefulShutdown = errors.New("graceful shutdown")
)
