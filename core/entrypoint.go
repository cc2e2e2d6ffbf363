package core

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"path"
	"runtime/trace"
	"syscall"

	"github.com/encodeous/routesim/state"
	"github.com/encodeous/tint"
	slogmulti "github.com/samber/slog-multi"
)

func setupDebugging() {
	if state.DBG_trace {
		f, err := os.Create("trace.out")
		if err != nil {
			log.Fatal(err)
		}
		err = trace.Start(f)
		defer trace.Stop()
		if err != nil {
			return
		}
		log.Println("Started tracing")
	}
	if state.DBG_debug {
		go func() {
			log.Println(http.ListenAndServe("0.0.0.0:6060", nil))
		}()
	}
}

// NewLogger builds the stderr logger, fanned out to an optional
// append-mode log file.
func NewLogger(level slog.Level, logPath string) (*slog.Logger, error) {
	handlers := make([]slog.Handler, 0)
	handlers = append(handlers,
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:        level,
			AddSource:    false,
			CustomPrefix: "routesim",
			ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
				if attr.Key == "time" {
					return slog.Attr{}
				}
				return attr
			},
		}))

	if logPath != "" {
		err := os.MkdirAll(path.Dir(logPath), 0700)
		if err != nil {
			return nil, err
		}
		f, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0700)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	}

	return slog.New(slogmulti.Fanout(handlers...)), nil
}

// RunConfig is one complete batch simulation.
type RunConfig struct {
	Protocol state.Protocol
	Workers  int
	Links    []state.Link
	Messages []state.Message
	Changes  []state.Change
	Output   io.Writer
	LogLevel slog.Level
	LogPath  string
}

// Run executes a full simulation: initial tables and replay, then tables
// and replay after each change, rendered to cfg.Output. It blocks until
// the run completes, fails, or a shutdown signal arrives.
func Run(cfg RunConfig) error {
	setupDebugging()

	logger, err := NewLogger(cfg.LogLevel, cfg.LogPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	defer cancel(context.Canceled)

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(c)
	go func() {
		select {
		case <-c:
			cancel(errors.New("received shutdown signal"))
		case <-ctx.Done():
		}
	}()

	engine, err := NewEngine(cfg.Protocol, cfg.Workers)
	if err != nil {
		return err
	}

	sim := &Simulator{
		Env: &state.Env{
			Context: ctx,
			Cancel:  cancel,
			Log:     logger,
		},
		Engine:   engine,
		Topology: state.TopologyFromLinks(cfg.Links),
		Messages: cfg.Messages,
		Changes:  cfg.Changes,
	}
	return sim.Run(&Renderer{W: cfg.Output})
}
