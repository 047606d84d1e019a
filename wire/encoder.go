package wire

import (
	"bufio"
	"bytes"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Response is a response head ready for the wire, plus the body bytes
// the grammar itself emits. Only text-like bodies travel through the
// encoder; binary and file-backed bodies are copied to the stream by
// the caller after the head.
type Response struct {
	Status  uint
	Headers []Field

	Body []byte
}

// ResponseEncoder serializes a response head: status line, header
// lines in list order (duplicates included), a blank terminator line,
// then the in-grammar body bytes.
type ResponseEncoder struct {
	bw *bufio.Writer
}

func NewResponseEncoder(w io.Writer) *ResponseEncoder {
	return &ResponseEncoder{bw: bufio.NewWriter(w)}
}

func (re *ResponseEncoder) Encode(response Response) error {
	if err := re.encodeStatusLine(response.Status); err != nil {
		return errors.Wrap(err, "encoding status line")
	}

	for _, field := range response.Headers {
		if err := re.writeLine(field.Text()); err != nil {
			return errors.Wrap(err, "writing field")
		}
	}

	// Write a empty line as all the headers are written.
	if err := re.writeLine(nil); err != nil {
		return errors.Wrap(err, "writing header terminator")
	}

	if _, err := re.bw.Write(response.Body); err != nil {
		return errors.Wrap(err, "writing response body")
	}

	if err := re.bw.Flush(); err != nil {
		return errors.Wrap(err, "flushing response")
	}

	return nil
}

// Status line has no reason phrase: "HTTP/1.0 <status>".
func (re *ResponseEncoder) encodeStatusLine(status uint) error {
	buf := bytes.NewBuffer(nil)

	buf.Write(Version10.Text())
	buf.WriteByte(SP)
	buf.Write([]byte(strconv.FormatUint(uint64(status), 10)))

	if err := re.writeLine(buf.Bytes()); err != nil {
		return errors.Wrap(err, "writing line")
	}

	return nil
}

func (re *ResponseEncoder) writeLine(line []byte) error {
	if _, err := re.bw.Write(line); err != nil {
		return errors.Wrap(err, "writing line")
	}

	if _, err := re.bw.Write(CRLF); err != nil {
		return errors.Wrap(err, "writing line terminator")
	}

	return nil
}
