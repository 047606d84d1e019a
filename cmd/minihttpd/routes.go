package main

import (
	"mime"
	"path/filepath"

	"github.com/pkg/errors"

	"minihttp/server"
	"minihttp/wire"
)

// routes builds the demo route table. dir is the directory that backs
// the /files route.
func routes(dir string) server.Table {
	return server.Table{
		server.Get("/", func(*server.Request) (*server.Response, error) {
			return &server.Response{Body: server.Text("Welcome to minihttpd!")}, nil
		}),
		server.Get("/user-agent", func(r *server.Request) (*server.Response, error) {
			ua, _ := r.Headers.Get("user-agent")
			return &server.Response{Body: server.Text(ua)}, nil
		}),
		server.Get("/user/:name", func(r *server.Request) (*server.Response, error) {
			name, _ := r.PathParams.Get("name")
			return &server.Response{Body: server.Text(name)}, nil
		}),
		server.Post("/echo-text", func(r *server.Request) (*server.Response, error) {
			text, ok := r.Body.(server.Text)
			if !ok {
				return nil, errors.New("expected a text body")
			}
			return &server.Response{Body: text}, nil
		}),
		server.Post("/echo", echo),
		server.Get("/files/:name", files(dir)),
	}
}

// echo sends the raw request body back with the request's content-type.
func echo(r *server.Request) (*server.Response, error) {
	resp := &server.Response{}
	if ct, ok := r.Headers.Get("content-type"); ok {
		resp.Headers = append(resp.Headers, wire.Field{Name: "Content-Type", Value: ct})
	}

	switch body := r.Body.(type) {
	case server.Text:
		resp.Body = server.Binary(body)
	case server.HTML:
		resp.Body = server.Binary(body)
	case server.Binary:
		resp.Body = body
	default:
		resp.Body = server.Binary(nil)
	}

	return resp, nil
}

// files serves a single file from dir by its base name. The name is a
// single path segment, so it cannot reach outside dir.
func files(dir string) server.Handler {
	return func(r *server.Request) (*server.Response, error) {
		name, _ := r.PathParams.Get("name")
		name = filepath.Base(name)

		return &server.Response{
			Body: server.File{
				Path: filepath.Join(dir, name),
				MIME: mime.TypeByExtension(filepath.Ext(name)),
			},
		}, nil
	}
}
