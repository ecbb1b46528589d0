package event

import (
	"context"

	"github.com/jon890/order-slack-relay/internal/domain/models"
)

//go:generate mockgen -source=sender.go -destination=mocks/mock_sender.go -package=mocks

// Sender is an outbound chat destination. *slack.Client satisfies it.
type Sender interface {
	SendMessage(ctx context.Context, message models.SlackMessage) error
}
