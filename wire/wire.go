// Package wire implements the HTTP/1.0 message grammar: it decodes a
// request head from raw bytes and encodes a response head back. Only
// the decode direction exists for requests and only the encode
// direction for responses.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc1945
package wire

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	CR   byte = '\r'
	LF   byte = '\n'
	SP   byte = ' '
	HTAB byte = '\t'
)

var (
	OWS  = []byte{SP, HTAB}
	CRLF = []byte{CR, LF}
)

// Method is one of the six request methods the grammar accepts.
// Any other token, including a lowercase spelling, fails the parse.
type Method string

const (
	MethodOptions Method = "OPTIONS"
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
)

var methods = map[Method]struct{}{
	MethodOptions: {},
	MethodGet:     {},
	MethodHead:    {},
	MethodPost:    {},
	MethodPut:     {},
	MethodDelete:  {},
}

func ParseMethod(s string) (Method, error) {
	m := Method(s)
	if _, ok := methods[m]; !ok {
		return "", errors.Errorf("unknown method: %q", s)
	}
	return m, nil
}

// [Major, Minor]
type Version [2]uint

// Version10 is the only version this engine speaks on responses.
var Version10 = Version{1, 0}

// ParseVersion parses http version text(e.g. "HTTP/1.0") into [Version].
func ParseVersion(b []byte) (Version, error) {
	prefix := []byte("HTTP/")
	if !bytes.HasPrefix(b, prefix) {
		return Version{}, errors.Errorf("http version prefix not found: %s", b)
	}

	// Get major and minor version.
	first, second, found := bytes.Cut(b[len(prefix):], []byte{'.'})
	if !found {
		return Version{}, errors.Errorf("dot seperator not found on version: %s", b)
	}

	major, err1 := strconv.ParseUint(string(first), 10, 64)
	minor, err2 := strconv.ParseUint(string(second), 10, 64)
	if err1 != nil || err2 != nil {
		return Version{}, errors.Errorf("http version is not convertable to int: %s", b)
	}

	return Version{uint(major), uint(minor)}, nil
}

func (ver Version) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write([]byte("HTTP/"))
	buf.Write([]byte(strconv.FormatUint(uint64(ver[0]), 10)))
	buf.Write([]byte{'.'})
	buf.Write([]byte(strconv.FormatUint(uint64(ver[1]), 10)))
	return buf.Bytes()
}

func (ver Version) String() string { return string(ver.Text()) }

// Field is one header line. Names of parsed fields are folded to
// lowercase; names supplied by handlers keep their case on output.
type Field struct{ Name, Value string }

// ParseField parses a "name: value" line, folding the name to
// lowercase.
func ParseField(fieldLine []byte) (Field, error) {
	name, value, found := bytes.Cut(fieldLine, []byte{':'})
	if !found {
		return Field{}, errors.Errorf("colon seperator not found on header: %q", string(fieldLine))
	}

	if len(name) == 0 {
		return Field{}, errors.New("field name is empty")
	}

	// No whitespace is allowed between field name and colon.
	// Reference: https://datatracker.ietf.org/doc/html/rfc9112#section-5.1-2
	for _, c := range OWS {
		if bytes.HasSuffix(name, []byte{c}) {
			return Field{}, errors.New("field name has trailing whitespace")
		}
	}

	for _, c := range OWS {
		value = bytes.Trim(value, string([]byte{c}))
	}

	return Field{
		Name:  strings.ToLower(string(name)),
		Value: string(value),
	}, nil
}

func (f *Field) Text() []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write([]byte(f.Name))
	buf.Write([]byte(": "))
	buf.Write([]byte(f.Value))
	return buf.Bytes()
}
