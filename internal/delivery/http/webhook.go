package relay_http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/eventtype"
	apperrors "github.com/jon890/order-slack-relay/internal/lib/errors"
	httpresponse "github.com/jon890/order-slack-relay/internal/lib/http"
)

const (
	msgSendSuccess    = "메시지가 성공적으로 전송되었습니다."
	msgSendFailure    = "메시지 전송 중 오류가 발생했습니다."
	msgInternalError  = "요청 처리 중 오류가 발생했습니다."
	msgInvalidPayload = "이벤트 데이터 형식이 올바르지 않습니다."
)

func (h *Handler) webhook(w http.ResponseWriter, r *http.Request) {
	const op = "delivery.http.webhook"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", requestIDFromContext(r.Context())),
	)

	// All failures surface here; nothing is allowed to escape the entry point.
	defer func() {
		if rec := recover(); rec != nil {
			log.Error("panic while handling webhook", slog.Any("panic", rec))
			httpresponse.Error(w, http.StatusInternalServerError, msgInternalError)
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil || len(bytes.TrimSpace(body)) == 0 {
		httpresponse.Error(w, http.StatusBadRequest, apperrors.ErrEmptyBody.Error())
		return
	}

	resolved, err := eventtype.Resolve(r.URL.Query(), body)
	if err != nil {
		log.Warn("failed to resolve event type", slog.String("error", err.Error()))
		httpresponse.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	log = log.With(slog.String("event_type", string(resolved)))

	switch resolved {
	case eventtype.OrderCreated:
		h.handleOrderCreated(w, r, log, body)
	case eventtype.OrderStatusChanged:
		h.handleStatusChanged(w, r, log, body)
	case eventtype.Cafe24OrderCreated, eventtype.Cafe24OrderCancelled:
		h.handleCafe24(w, r, log, resolved, body)
	}
}

func (h *Handler) handleOrderCreated(w http.ResponseWriter, r *http.Request, log *slog.Logger, body []byte) {
	var data models.OrderEvent
	if !h.decodePayload(w, body, &data) {
		return
	}

	h.respond(w, log, h.orderCreated.Handle(r.Context(), data))
}

func (h *Handler) handleStatusChanged(w http.ResponseWriter, r *http.Request, log *slog.Logger, body []byte) {
	var events []models.OrderStatusChange
	if err := json.Unmarshal(body, &events); err != nil {
		httpresponse.Error(w, http.StatusBadRequest, apperrors.ErrMalformedBody.Error())
		return
	}

	if len(events) == 0 {
		httpresponse.Error(w, http.StatusBadRequest, apperrors.ErrEmptyStatusEvents.Error())
		return
	}

	for i := range events {
		if err := h.validate.Struct(&events[i]); err != nil {
			httpresponse.Error(w, http.StatusBadRequest, msgInvalidPayload)
			return
		}
	}

	h.respond(w, log, h.statusChanged.Handle(r.Context(), events))
}

func (h *Handler) handleCafe24(w http.ResponseWriter, r *http.Request, log *slog.Logger, resolved eventtype.EventType, body []byte) {
	var data models.Cafe24Event
	if !h.decodePayload(w, body, &data) {
		return
	}

	h.respond(w, log, h.cafe24.Handle(r.Context(), resolved, data))
}

// respond maps the dispatch outcome to the response envelope. The per-call
// webhook error is logged but not echoed to the caller.
func (h *Handler) respond(w http.ResponseWriter, log *slog.Logger, err error) {
	if err != nil {
		log.Error("failed to dispatch event", slog.String("error", err.Error()))
		httpresponse.Error(w, http.StatusInternalServerError, msgSendFailure)
		return
	}

	httpresponse.Success(w, msgSendSuccess)
}

// decodePayload unmarshals and shape-checks the body, answering 400 itself
// when the payload is unusable.
func (h *Handler) decodePayload(w http.ResponseWriter, body []byte, target interface{}) bool {
	if err := json.Unmarshal(body, target); err != nil {
		httpresponse.Error(w, http.StatusBadRequest, apperrors.ErrMalformedBody.Error())
		return false
	}

	if err := h.validate.Struct(target); err != nil {
		httpresponse.Error(w, http.StatusBadRequest, msgInvalidPayload)
		return false
	}

	return true
}
