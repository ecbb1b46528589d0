// Package eventtype decides which inbound event a request carries.
package eventtype

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	apperrors "github.com/jon890/order-slack-relay/internal/lib/errors"
)

type EventType string

const (
	OrderCreated         EventType = "CREATE_ORDER"
	OrderStatusChanged   EventType = "ORDER_STATUS_CHANGE"
	Cafe24OrderCreated   EventType = "CAFE24_ORDER_CREATED"
	Cafe24OrderCancelled EventType = "CAFE24_ORDER_CANCELLED"
)

const shopTypeCafe24 = "CAFE24"

// cafe24EventCodes is the fixed event_no lookup table. Codes outside it are
// unresolved, never defaulted.
var cafe24EventCodes = map[int]EventType{
	90023: Cafe24OrderCreated,
	90026: Cafe24OrderCancelled,
}

var standardEventTypes = map[string]EventType{
	string(OrderCreated):       OrderCreated,
	string(OrderStatusChanged): OrderStatusChanged,
}

// Resolve picks the event type from the request. A shopType=CAFE24 query
// parameter switches to the cafe24 path, where the discriminant is the
// numeric event_no inside the body; otherwise the eventType query parameter
// is matched against the closed enumeration.
func Resolve(query url.Values, body []byte) (EventType, error) {
	if strings.EqualFold(query.Get("shopType"), shopTypeCafe24) {
		return resolveCafe24(body)
	}

	rawEventType := query.Get("eventType")
	if rawEventType == "" {
		return "", apperrors.ErrEventTypeRequired
	}

	eventType, ok := standardEventTypes[rawEventType]
	if !ok {
		return "", fmt.Errorf("%w: %s", apperrors.ErrUnsupportedEventType, rawEventType)
	}

	return eventType, nil
}

func resolveCafe24(body []byte) (EventType, error) {
	var envelope struct {
		EventNo int `json:"event_no"`
	}

	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrMalformedBody, err.Error())
	}

	if envelope.EventNo == 0 {
		return "", apperrors.ErrEventNoRequired
	}

	eventType, ok := cafe24EventCodes[envelope.EventNo]
	if !ok {
		return "", fmt.Errorf("%w: %d", apperrors.ErrUnsupportedEventNo, envelope.EventNo)
	}

	return eventType, nil
}
