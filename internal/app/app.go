package app

import (
	"fmt"
	"log/slog"

	httpapp "github.com/jon890/order-slack-relay/internal/app/http"
	"github.com/jon890/order-slack-relay/internal/config"
	"github.com/jon890/order-slack-relay/internal/parser"
	cafe24Service "github.com/jon890/order-slack-relay/internal/services/event/cafe24"
	orderCreatedService "github.com/jon890/order-slack-relay/internal/services/event/create"
	statusChangedService "github.com/jon890/order-slack-relay/internal/services/event/statuschange"
	"github.com/jon890/order-slack-relay/pkg/slack"
)

type App struct {
	HTTPServer *httpapp.App
}

// NewApp wires the relay: two webhook clients, one parser and one service per
// event type, and the HTTP server on top. Client construction fails here when
// a webhook URL is missing.
func NewApp(log *slog.Logger, cfg *config.Config) (*App, error) {
	creationChannel, err := slack.New(log, cfg.Slack.OrderCreateWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("order creation channel: %w", err)
	}

	statusChannel, err := slack.New(log, cfg.Slack.OrderStatusChangeWebhookURL)
	if err != nil {
		return nil, fmt.Errorf("status change channel: %w", err)
	}

	orderCreatedSvc := orderCreatedService.New(log, parser.NewOrderCreated(), creationChannel)
	statusChangedSvc := statusChangedService.New(log, parser.NewStatusChange(), creationChannel, statusChannel)
	cafe24Svc := cafe24Service.New(
		log,
		parser.NewCafe24Order(),
		parser.NewCafe24Cancel(),
		creationChannel,
		statusChannel,
	)

	httpServer := httpapp.NewApp(log, orderCreatedSvc, statusChangedSvc, cafe24Svc, cfg.HTTP.Port)

	return &App{
		HTTPServer: httpServer,
	}, nil
}

func (a *App) Stop() error {
	return a.HTTPServer.Stop()
}
