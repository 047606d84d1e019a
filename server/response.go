package server

import (
	"strings"

	"minihttp/wire"
)

// Response is the value a handler produces.
type Response struct {
	// Status of nil means "unset" and serializes as 200.
	Status *uint

	// Headers go to the wire in order, case as supplied.
	Headers []wire.Field

	// Body of nil serializes like an empty [Binary].
	Body Body
}

const defaultStatus uint = 200

// toWire applies the header merge policy and builds the raw response.
// The merge never mutates the handler's header list; it builds a new
// one. Order of operations: Connection is forced to "close"
// (overwrite: replace if present, append if absent), then Content-Type
// is derived from the body variant (default: only set if absent).
func (res *Response) toWire() wire.Response {
	headers := make([]wire.Field, len(res.Headers))
	copy(headers, res.Headers)

	headers = setOverwrite(headers, "Connection", "close")
	headers = setDefault(headers, "Content-Type", contentTypeFor(res.Body))

	status := defaultStatus
	if res.Status != nil {
		status = *res.Status
	}

	// Only text-like variants are emitted by the grammar; binary and
	// file bodies are copied to the stream after the head.
	var body []byte
	switch b := res.Body.(type) {
	case Text:
		body = []byte(b)
	case HTML:
		body = []byte(b)
	}

	return wire.Response{Status: status, Headers: headers, Body: body}
}

const octetStream = "application/octet-stream"

func contentTypeFor(body Body) string {
	switch b := body.(type) {
	case Text:
		return "text/plain"
	case HTML:
		return "text/html"
	case File:
		if b.MIME != "" {
			return b.MIME
		}
		return octetStream
	default: // Binary, or no body at all.
		return octetStream
	}
}

// setOverwrite replaces the value of the first field named name
// (compared case-insensitively), or appends the field if absent.
func setOverwrite(headers []wire.Field, name, value string) []wire.Field {
	for idx, f := range headers {
		if strings.EqualFold(f.Name, name) {
			headers[idx].Value = value
			return headers
		}
	}
	return append(headers, wire.Field{Name: name, Value: value})
}

// setDefault appends the field only when no field named name exists
// (compared case-insensitively). A handler-supplied value always wins.
func setDefault(headers []wire.Field, name, value string) []wire.Field {
	for _, f := range headers {
		if strings.EqualFold(f.Name, name) {
			return headers
		}
	}
	return append(headers, wire.Field{Name: name, Value: value})
}
