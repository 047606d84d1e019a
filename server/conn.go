package server

import (
	"io"
	"log/slog"
	"os"

	"minihttp/transport"
	"minihttp/wire"

	"github.com/pkg/errors"
)

type conn struct {
	con   transport.Conn
	table Table

	logger *slog.Logger
}

// serve runs the whole pipeline for one connection: decode, route,
// handle, respond, close. The stream is closed on every exit path. A
// panicking handler is recovered here: the connection dies with no
// response bytes, the server keeps accepting.
func (c *conn) serve() {
	defer func() {
		if e := recover(); e != nil {
			c.logger.Error("handler panicked", "panic", e)
		}

		c.logger.Debug("closing connection")
		if err := c.con.Close(); err != nil {
			c.logger.Error("error when closing connection", "error", err)
		}
	}()

	dec := wire.NewRequestDecoder(c.con)

	var raw wire.Request
	if err := dec.Decode(&raw); err != nil {
		// Malformed head: close with zero response bytes.
		c.logger.Debug("dropping unparsable request", "error", err)
		return
	}

	request, err := requestFrom(&raw)
	if err != nil {
		// Bad query or short body: same silent close as a parse failure.
		c.logger.Debug("dropping malformed request", "error", err)
		return
	}

	handler, params, ok := c.table.Match(request.Method, request.Path)
	if !ok {
		handler = notFound
	}
	request.PathParams = params

	response, err := handler(request)
	if err != nil || response == nil {
		c.logger.Error("handler failed", "error", err)
		response = internalError()
	}

	if err := c.writeResponse(response); err != nil {
		c.logger.Error("writing response", "error", err)
	}
}

func (c *conn) writeResponse(response *Response) error {
	enc := wire.NewResponseEncoder(c.con)
	if err := enc.Encode(response.toWire()); err != nil {
		return errors.Wrap(err, "encoding response head")
	}

	// Binary and file bodies bypass the grammar: their bytes are
	// copied to the stream directly after the head.
	switch b := response.Body.(type) {
	case Binary:
		if _, err := c.con.Write(b); err != nil {
			return errors.Wrap(err, "writing binary body")
		}
	case File:
		f, err := os.Open(b.Path)
		if err != nil {
			// The head is already on the wire; the body is silently
			// omitted. A known sharp edge, kept.
			c.logger.Debug("file body could not be opened", "path", b.Path, "error", err)
			return nil
		}
		defer f.Close()

		if _, err := io.Copy(writerTo{c.con}, f); err != nil {
			return errors.Wrap(err, "copying file body")
		}
	}

	return nil
}

// writerTo narrows the connection to io.Writer so io.Copy cannot pick
// up any other of its methods.
type writerTo struct{ con transport.Conn }

func (w writerTo) Write(p []byte) (int, error) { return w.con.Write(p) }
