package cafe24

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/eventtype"
	apperrors "github.com/jon890/order-slack-relay/internal/lib/errors"
	"github.com/jon890/order-slack-relay/internal/services/event"
)

type cafe24Parser interface {
	Parse(data models.Cafe24Event) models.SlackMessage
}

// Service handles cafe24 events. Order placed goes to the creation channel;
// a cancellation goes to both channels, same routing as a standard
// CANCEL_DONE status.
type Service struct {
	log *slog.Logger

	orderParser     cafe24Parser
	cancelParser    cafe24Parser
	creationChannel event.Sender
	statusChannel   event.Sender
}

func New(
	log *slog.Logger,
	orderParser cafe24Parser,
	cancelParser cafe24Parser,
	creationChannel event.Sender,
	statusChannel event.Sender,
) *Service {
	return &Service{
		log:             log,
		orderParser:     orderParser,
		cancelParser:    cancelParser,
		creationChannel: creationChannel,
		statusChannel:   statusChannel,
	}
}

func (s *Service) Handle(ctx context.Context, eventType eventtype.EventType, data models.Cafe24Event) error {
	const op = "services.event.cafe24.Handle"

	switch eventType {
	case eventtype.Cafe24OrderCreated:
		message := s.orderParser.Parse(data)

		if err := s.creationChannel.SendMessage(ctx, message); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	case eventtype.Cafe24OrderCancelled:
		message := s.cancelParser.Parse(data)

		var errs []error
		if err := s.creationChannel.SendMessage(ctx, message); err != nil {
			errs = append(errs, fmt.Errorf("creation channel: %w", err))
		}
		if err := s.statusChannel.SendMessage(ctx, message); err != nil {
			errs = append(errs, fmt.Errorf("status channel: %w", err))
		}

		if err := errors.Join(errs...); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	default:
		return fmt.Errorf("%s: %w: %s", op, apperrors.ErrUnsupportedEventType, eventType)
	}

	s.log.InfoContext(ctx, op,
		slog.String("order_id", data.Resource.OrderID),
		slog.Int("event_no", data.EventNo),
	)

	return nil
}
