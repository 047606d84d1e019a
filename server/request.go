package server

import (
	"strings"

	"minihttp/route"
	"minihttp/urlcodec"
	"minihttp/wire"

	"github.com/pkg/errors"
)

// Headers is an ordered header list. Parsed names are lowercase;
// duplicates are preserved in arrival order and the first match wins
// on lookup.
type Headers []wire.Field

// Get returns the value of the first field whose name equals the
// lowercase folding of name.
func (h Headers) Get(name string) (string, bool) {
	name = strings.ToLower(name)
	for _, f := range h {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// Request is the value a handler receives. It is fully constructed
// before the handler runs and never mutated afterwards.
type Request struct {
	Method  wire.Method
	Headers Headers

	// Path is the request target up to the first '?', raw: percent
	// escapes in it are NOT decoded.
	Path string

	// Query holds the decoded key-value pairs after the first '?',
	// in order. Empty when the target has no query component.
	Query []urlcodec.Pair

	Body Body

	// PathParams holds the router's variable bindings for this request.
	PathParams route.Params
}

const formContentType = "application/x-www-form-urlencoded"

// Form reinterprets the raw body as form pairs. It requires the
// content-type to equal [formContentType] exactly; any other
// content-type is an error.
func (r *Request) Form() ([]urlcodec.Pair, error) {
	ct, ok := r.Headers.Get("content-type")
	if !ok || ct != formContentType {
		return nil, errors.Errorf("content-type is not %s: %q", formContentType, ct)
	}

	raw, ok := r.Body.(Binary)
	if !ok {
		return nil, errors.New("body is not binary")
	}

	return urlcodec.DecodeQuery(string(raw))
}

// requestFrom builds the semantic request from a decoded head: the
// target splits on the first '?' into raw path and query, the query is
// decoded, and the body is read off the stream.
func requestFrom(raw *wire.Request) (*Request, error) {
	path, rawQuery, _ := strings.Cut(raw.Target, "?")

	query, err := urlcodec.DecodeQuery(rawQuery)
	if err != nil {
		return nil, errors.Wrap(err, "decoding query")
	}

	headers := Headers(raw.Headers)

	body, err := readBody(raw.Body, headers)
	if err != nil {
		return nil, errors.Wrap(err, "reading body")
	}

	return &Request{
		Method:  raw.Method,
		Headers: headers,
		Path:    path,
		Query:   query,
		Body:    body,
	}, nil
}
