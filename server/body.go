package server

import (
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Body is a tagged payload variant. Requests carry [Text] or [Binary];
// responses may additionally carry [HTML] or [File].
type Body interface{ isBody() }

// Text is a plain-text payload.
type Text string

// HTML is a text payload served as text/html by default.
type HTML string

// Binary is a raw byte payload.
type Binary []byte

// File is a payload streamed from the file system when the response is
// written. An empty MIME falls back to application/octet-stream.
type File struct {
	Path string
	MIME string
}

func (Text) isBody()   {}
func (HTML) isBody()   {}
func (Binary) isBody() {}
func (File) isBody()   {}

// readBody reads the request payload: without a content-length header
// there is no body; otherwise exactly that many bytes are read, a
// short stream being an error. The payload is classified as [Text]
// when content-type starts with "text", [Binary] otherwise (including
// when content-type is absent).
func readBody(r io.Reader, headers Headers) (Body, error) {
	v, ok := headers.Get("content-length")
	if !ok {
		return Binary(nil), nil
	}

	length, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parsing content-length")
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, errors.Wrap(err, "reading body")
	}

	if ct, ok := headers.Get("content-type"); ok && strings.HasPrefix(ct, "text") {
		return Text(buf), nil
	}

	return Binary(buf), nil
}
