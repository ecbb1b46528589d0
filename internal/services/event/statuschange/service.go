package statuschange

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/services/event"
)

const statusCancelDone = "CANCEL_DONE"

type statusParser interface {
	Parse(data models.OrderStatusChange) models.SlackMessage
}

// Service handles the order-status-changed event. The payload is an array of
// per-line events; each is dispatched in order, one at a time. A cancelled
// line goes to both the creation and status-change channels, every other
// status to the status-change channel only. Any element failure fails the
// whole request; errors are joined, already-sent messages stay sent.
type Service struct {
	log *slog.Logger

	parser          statusParser
	creationChannel event.Sender
	statusChannel   event.Sender
}

func New(
	log *slog.Logger,
	parser statusParser,
	creationChannel event.Sender,
	statusChannel event.Sender,
) *Service {
	return &Service{
		log:             log,
		parser:          parser,
		creationChannel: creationChannel,
		statusChannel:   statusChannel,
	}
}

func (s *Service) Handle(ctx context.Context, events []models.OrderStatusChange) error {
	const op = "services.event.statuschange.Handle"

	var errs []error

	for _, statusEvent := range events {
		message := s.parser.Parse(statusEvent)

		if statusEvent.OrderStatusType == statusCancelDone {
			if err := s.creationChannel.SendMessage(ctx, message); err != nil {
				errs = append(errs, fmt.Errorf("order %s: creation channel: %w", statusEvent.OrderNo, err))
			}
		}

		if err := s.statusChannel.SendMessage(ctx, message); err != nil {
			errs = append(errs, fmt.Errorf("order %s: status channel: %w", statusEvent.OrderNo, err))
		}

		s.log.DebugContext(ctx, op,
			slog.String("order_no", statusEvent.OrderNo),
			slog.String("status", statusEvent.OrderStatusType),
		)
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
