package httpapp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	relay_http "github.com/jon890/order-slack-relay/internal/delivery/http"
)

type App struct {
	log        *slog.Logger
	httpServer *http.Server
	port       int
}

func NewApp(
	log *slog.Logger,
	orderCreated relay_http.OrderCreated,
	statusChanged relay_http.OrderStatusChanged,
	cafe24 relay_http.Cafe24,
	port int,
) *App {
	handler := relay_http.NewHandler(log, orderCreated, statusChanged, cafe24)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: handler.InitRoutes(),
	}

	return &App{
		log:        log,
		httpServer: httpServer,
		port:       port,
	}
}

func (a *App) RunWithPanic() {
	if err := a.Run(); err != nil && err != http.ErrServerClosed {
		panic(fmt.Sprintf("failed to run http server: %v", err))
	}
}

func (a *App) Run() error {
	const op = "httpapp.run"

	log := a.log.With(slog.String("op", op), slog.Int("port", a.port))

	log.Info("starting http server")

	return a.httpServer.ListenAndServe()
}

func (a *App) Stop() error {
	const op = "httpapp.stop"

	log := a.log.With(slog.String("op", op))

	log.Info("stopping http server")

	return a.httpServer.Shutdown(context.Background())
}
