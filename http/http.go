// Package http holds the domain types shared between the library and user
// handlers: the Request object and the Handler callback.
package http

// Handler is invoked once per connection after its request was successfully
// parsed. A returned error makes the dispatcher abandon the connection; it is
// never propagated further.
type Handler func(request *Request) error
