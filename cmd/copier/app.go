package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/ATenderholt/rainbow-copier/internal/domain"
	"github.com/ATenderholt/rainbow-copier/internal/service"
	"github.com/ATenderholt/rainbow-copier/internal/settings"
	"github.com/go-chi/chi/v5"
)

type App struct {
	cfg     *settings.Config
	service *service.CopyService
	router  *chi.Mux
	server  *http.Server
}

func NewApp(cfg *settings.Config, service *service.CopyService, router *chi.Mux) *App {
	return &App{
		cfg:     cfg,
		service: service,
		router:  router,
	}
}

// HandleEvent is the Lambda entry point.
func (app *App) HandleEvent(ctx context.Context, event domain.Event) error {
	return app.service.Handle(ctx, event)
}

// HandleReader decodes a single envelope and handles it.
func (app *App) HandleReader(ctx context.Context, reader io.Reader) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}

	event, err := domain.ParseEvent(data)
	if err != nil {
		return fmt.Errorf("unable to parse event: %w", err)
	}

	return app.HandleEvent(ctx, event)
}

func (app *App) HandleFile(ctx context.Context, path string) error {
	if path == "-" {
		return app.HandleReader(ctx, os.Stdin)
	}

	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return app.HandleReader(ctx, file)
}

// Start serves the local invoke endpoint in the background.
func (app *App) Start() (err error) {
	app.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", app.cfg.Port),
		Handler: app.router,
	}

	listener, err := net.Listen("tcp", app.server.Addr)
	if err != nil {
		return err
	}

	logger.Infof("Listening for invocations on %s", listener.Addr())

	go func() {
		err := app.server.Serve(listener)
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Errorf("Invoke endpoint stopped: %v", err)
		}
	}()

	return nil
}

func (app *App) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if app.server == nil {
		return nil
	}

	return app.server.Shutdown(ctx)
}
