package wire

import (
	"bufio"
	"bytes"
	"io"

	bytesutil "minihttp/util/bytes"

	"github.com/pkg/errors"
)

// Request is the raw result of decoding a request head. Target is the
// request URI exactly as received; Body is the transport positioned at
// the first byte after the header terminator, still unread.
type Request struct {
	Method  Method
	Target  string
	Version Version

	Headers []Field

	Body io.Reader
}

var (
	ErrMalformedRequestLine = errors.New("request line is malformed")
	ErrMalformedFieldLine   = errors.New("field line is malformed")
	ErrMissingCRBeforeLF    = errors.New("missing CR before LF")
)

// RequestDecoder decodes one request head from a stream. The header
// block is consumed line by line until the empty terminator line; the
// body is left on the stream for the caller.
type RequestDecoder struct {
	br *bufio.Reader
}

func NewRequestDecoder(r io.Reader) *RequestDecoder {
	return &RequestDecoder{br: bufio.NewReader(r)}
}

// r MUST be a non-nil pointer
func (rd *RequestDecoder) Decode(r *Request) error {
	line, err := rd.readLine()
	if err != nil {
		return errors.Wrap(err, "reading request line")
	}

	method, target, ver, err := parseRequestLine(line)
	if err != nil {
		return ErrMalformedRequestLine
	}

	headers, err := rd.decodeHeaders()
	if err != nil {
		return errors.Wrap(err, "parsing headers")
	}

	r.Method = method
	r.Target = target
	r.Version = ver
	r.Headers = headers
	r.Body = rd.br

	return nil
}

// readLine reads up to the next LF and strips the CRLF terminator.
// A line without CR before its LF fails, as does EOF before any LF.
func (rd *RequestDecoder) readLine() ([]byte, error) {
	b, err := bytesutil.ReadUntil(rd.br, []byte{LF})
	if err != nil {
		return nil, err
	}

	b = b[:len(b)-1] // Remove LF.

	if len(b) == 0 || b[len(b)-1] != CR {
		return nil, ErrMissingCRBeforeLF
	}
	b = b[:len(b)-1] // Remove CR.

	return b, nil
}

func (rd *RequestDecoder) decodeHeaders() ([]Field, error) {
	headers := make([]Field, 0)
	for {
		fieldLine, err := rd.readLine()
		if err != nil {
			return nil, errors.Wrap(err, "reading line")
		}

		if len(fieldLine) == 0 {
			// An empty line. This means that there are no more headers.
			return headers, nil
		}

		field, err := ParseField(fieldLine)
		if err != nil {
			return nil, ErrMalformedFieldLine
		}

		headers = append(headers, field)
	}
}

func parseRequestLine(line []byte) (Method, string, Version, error) {
	parts := bytes.Split(line, []byte{SP})
	if len(parts) != 3 {
		return "", "", Version{}, errors.New("request line is malformed")
	}

	method, err := ParseMethod(string(parts[0]))
	if err != nil {
		return "", "", Version{}, errors.Wrap(err, "parsing method")
	}

	target := string(parts[1])
	if len(target) == 0 {
		return "", "", Version{}, errors.New("request target should not be empty")
	}

	ver, err := ParseVersion(parts[2])
	if err != nil {
		return "", "", Version{}, errors.Wrap(err, "parsing version")
	}

	return method, target, ver, nil
}
