package create

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/services/event"
)

type orderParser interface {
	Parse(data models.OrderEvent) models.SlackMessage
}

// Service handles the standard order-created event: one message to the
// creation channel.
type Service struct {
	log *slog.Logger

	parser          orderParser
	creationChannel event.Sender
}

func New(log *slog.Logger, parser orderParser, creationChannel event.Sender) *Service {
	return &Service{
		log:             log,
		parser:          parser,
		creationChannel: creationChannel,
	}
}

func (s *Service) Handle(ctx context.Context, data models.OrderEvent) error {
	const op = "services.event.create.Handle"

	message := s.parser.Parse(data)

	if err := s.creationChannel.SendMessage(ctx, message); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.InfoContext(ctx, op, slog.String("order_no", data.Order.OrderNo))

	return nil
}
