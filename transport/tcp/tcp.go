// Package tcp adapts the operating system's TCP sockets to the
// transport interfaces. It is a thin wrapper over [net]; the engine
// itself never touches sockets.
package tcp

import (
	"context"
	"io"
	"net"
	"time"

	"minihttp/transport"

	"github.com/pkg/errors"
)

// Listen opens a TCP listener on addr (e.g. ":7890").
func Listen(addr string) (transport.ConnListener, error) {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "listening on tcp")
	}

	return &listener{l: l}, nil
}

type listener struct {
	l net.Listener
}

var _ transport.ConnListener = (*listener)(nil)

func (l *listener) Accept(ctx context.Context) (transport.Conn, error) {
	type result struct {
		conn net.Conn
		err  error
	}

	ch := make(chan result, 1)
	go func() {
		c, err := l.l.Accept()
		ch <- result{conn: c, err: err}
	}()

	select {
	case <-ctx.Done():
		// The pending accept stays blocked until the listener closes;
		// whatever it yields by then must not leak.
		go func() {
			if r := <-ch; r.conn != nil {
				r.conn.Close()
			}
		}()
		return nil, ctx.Err()
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, net.ErrClosed) {
				return nil, transport.ErrConnListenerClosed
			}
			return nil, errors.Wrap(r.err, "accepting connection")
		}
		return &conn{c: r.conn}, nil
	}
}

func (l *listener) Close() error { return l.l.Close() }

// Dial connects to a TCP address (e.g. "localhost:7890").
func Dial(ctx context.Context, addr string) (transport.Conn, error) {
	var d net.Dialer
	c, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, errors.Wrap(err, "dialing tcp")
	}

	return &conn{c: c}, nil
}

type conn struct {
	c net.Conn
}

var _ transport.Conn = (*conn)(nil)

func (c *conn) Read(p []byte) (int, error) {
	n, err := c.c.Read(p)
	return n, mapErr(err)
}

func (c *conn) Write(p []byte) (int, error) {
	n, err := c.c.Write(p)
	return n, mapErr(err)
}

func (c *conn) Close() error { return c.c.Close() }

func (c *conn) LocalAddr() transport.Addr  { return c.c.LocalAddr() }
func (c *conn) RemoteAddr() transport.Addr { return c.c.RemoteAddr() }

func (c *conn) SetReadDeadLine(t time.Time)  { _ = c.c.SetReadDeadline(t) }
func (c *conn) SetWriteDeadLine(t time.Time) { _ = c.c.SetWriteDeadline(t) }

// mapErr folds net's error vocabulary into the transport's.
// io.EOF passes through: an orderly stream end is not a failure.
func mapErr(err error) error {
	switch {
	case err == nil, err == io.EOF:
		return err
	case errors.Is(err, net.ErrClosed):
		return transport.ErrConnClosed
	}

	if ne, ok := err.(net.Error); ok && ne.Timeout() {
		return transport.ErrDeadLineExceeded
	}

	return err
}
