// Package transport defines the byte-stream boundary the server core
// runs on. The core never opens or accepts sockets itself; it consumes
// these interfaces.
package transport

import (
	"context"
	"errors"
	"time"
)

var (
	ErrConnClosed         = errors.New("connection is closed")
	ErrConnListenerClosed = errors.New("conn listener is closed")
	ErrConnRefused        = errors.New("connection refused")
	ErrDeadLineExceeded   = errors.New("deadline exceeded")
	ErrAddrAlreadyInUse   = errors.New("address is already in use")
	ErrNetUnreachable     = errors.New("network is unreachable")
)

type Addr interface {
	Network() string
	String() string
}

type Conn interface {
	Read(p []byte) (n int, err error)
	Write(p []byte) (n int, err error)
	Close() error

	LocalAddr() Addr
	RemoteAddr() Addr

	SetReadDeadLine(t time.Time)
	SetWriteDeadLine(t time.Time)
}

type ConnListener interface {
	Accept(ctx context.Context) (Conn, error)
	Close() error
}

type ConnDialer interface {
	Dial(ctx context.Context, addr Addr) (Conn, error)
}
