// Package server runs the request pipeline: it accepts streams from a
// listener, decodes one HTTP/1.0 request per connection, dispatches it
// through the route table, and serializes the handler's response.
package server

import (
	"context"
	"log/slog"
	"sync"

	"minihttp/transport"

	"github.com/pkg/errors"
)

type Server struct {
	l transport.ConnListener

	closeListener func()
	wg            sync.WaitGroup

	logger *slog.Logger
	table  Table
}

func New(l transport.ConnListener, logger *slog.Logger, table Table) *Server {
	return &Server{
		l:      l,
		logger: logger,
		table:  table,
	}
}

// Start begins accepting. Each connection is served on its own
// goroutine; within a connection the pipeline stays strictly
// sequential and its stream is never shared.
func (s *Server) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	s.closeListener = cancel
	go func() {
		for {
			conn, err := s.acceptConn(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					s.logger.Error(
						"unexpected error when accepting connection",
						"error", err.Error(),
					)
				}
				return
			}

			s.wg.Add(1)
			go func() {
				defer s.wg.Done()
				conn.serve()
			}()
		}
	}()
}

func (s *Server) acceptConn(ctx context.Context) (*conn, error) {
	con, err := s.l.Accept(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "listening for connection")
	}

	return &conn{
		con:    con,
		table:  s.table,
		logger: s.logger.With("conn", con.RemoteAddr()),
	}, nil
}

// Close stops accepting and waits for in-flight connections to finish.
func (s *Server) Close() error {
	s.closeListener()
	s.wg.Wait()
	return nil
}
