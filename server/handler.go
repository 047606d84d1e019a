package server

import (
	"minihttp/lib/types/pointer"
	"minihttp/route"
	"minihttp/wire"
)

// Handler turns a request into a response. Returning an error means
// "no response could be produced"; the server answers 500 on the
// handler's behalf.
type Handler func(*Request) (*Response, error)

// Route and Table fix the router's handler parameter to this server's
// handler type.
type (
	Route = route.Route[Handler]
	Table = route.Table[Handler]
)

// The constructors below panic on a malformed pattern: tables are
// built once at server start, where a bad pattern is a programming
// error.

func Get(pattern string, h Handler) Route     { return newRoute(wire.MethodGet, pattern, h) }
func Head(pattern string, h Handler) Route    { return newRoute(wire.MethodHead, pattern, h) }
func Post(pattern string, h Handler) Route    { return newRoute(wire.MethodPost, pattern, h) }
func Put(pattern string, h Handler) Route     { return newRoute(wire.MethodPut, pattern, h) }
func Delete(pattern string, h Handler) Route  { return newRoute(wire.MethodDelete, pattern, h) }
func Options(pattern string, h Handler) Route { return newRoute(wire.MethodOptions, pattern, h) }

func newRoute(method wire.Method, pattern string, h Handler) Route {
	return Route{Method: method, Pattern: route.MustParse(pattern), Handler: h}
}

// notFound is the built-in handler selected when no table entry
// matches. Never an error: any unrouted request gets this response.
func notFound(*Request) (*Response, error) {
	return &Response{
		Status: pointer.To(uint(404)),
		Body:   Text("Not found"),
	}, nil
}

// internalError is the response served when a handler reports failure.
func internalError() *Response {
	return &Response{
		Status: pointer.To(uint(500)),
		Body:   Text("Internal server error"),
	}
}
