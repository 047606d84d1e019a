// Command minihttpd serves a small demo route table over the HTTP/1.0
// engine in this module.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"

	"minihttp/server"
	"minihttp/transport/tcp"
)

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("minihttpd"),
		kong.Description("A tiny HTTP/1.0 server."),
	)

	cfg, err := loadConfig(&cli)
	if err != nil {
		slog.Error("loading config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	lis, err := tcp.Listen(cfg.Server.Addr())
	if err != nil {
		logger.Error("binding listener", "addr", cfg.Server.Addr(), "error", err)
		os.Exit(1)
	}

	srv := server.New(lis, logger, routes(cfg.Files.Dir))
	srv.Start()
	logger.Info("listening", "addr", cfg.Server.Addr(), "dir", cfg.Files.Dir)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down")
	if err := srv.Close(); err != nil {
		logger.Error("closing server", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *Config) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(h)
}
