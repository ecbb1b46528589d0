package relay_http

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/eventtype"
)

type OrderCreated interface {
	Handle(ctx context.Context, data models.OrderEvent) error
}

type OrderStatusChanged interface {
	Handle(ctx context.Context, events []models.OrderStatusChange) error
}

type Cafe24 interface {
	Handle(ctx context.Context, eventType eventtype.EventType, data models.Cafe24Event) error
}

type Handler struct {
	log      *slog.Logger
	validate *validator.Validate

	orderCreated  OrderCreated
	statusChanged OrderStatusChanged
	cafe24        Cafe24
}

func NewHandler(
	log *slog.Logger,
	orderCreated OrderCreated,
	statusChanged OrderStatusChanged,
	cafe24 Cafe24,
) *Handler {
	return &Handler{
		log:           log,
		validate:      validator.New(),
		orderCreated:  orderCreated,
		statusChanged: statusChanged,
		cafe24:        cafe24,
	}
}

func (h *Handler) InitRoutes() http.Handler {
	mux := chi.NewRouter()

	mux.Use(requestID)

	mux.Post("/webhook", h.webhook)
	mux.Get("/health", h.health)

	return mux
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
