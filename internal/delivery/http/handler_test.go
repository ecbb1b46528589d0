package relay_http_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	relay_http "github.com/jon890/order-slack-relay/internal/delivery/http"
	"github.com/jon890/order-slack-relay/internal/parser"
	cafe24Service "github.com/jon890/order-slack-relay/internal/services/event/cafe24"
	orderCreatedService "github.com/jon890/order-slack-relay/internal/services/event/create"
	statusChangedService "github.com/jon890/order-slack-relay/internal/services/event/statuschange"
	"github.com/jon890/order-slack-relay/pkg/slack"
)

type webhookSink struct {
	server *httptest.Server
	hits   atomic.Int64
	status int
}

func newWebhookSink(status int) *webhookSink {
	sink := &webhookSink{status: status}
	sink.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		sink.hits.Add(1)
		w.WriteHeader(sink.status)
	}))

	return sink
}

type relayFixture struct {
	handler      http.Handler
	creationSink *webhookSink
	statusSink   *webhookSink
}

func newRelayFixture(t *testing.T) *relayFixture {
	t.Helper()

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	creationSink := newWebhookSink(http.StatusOK)
	statusSink := newWebhookSink(http.StatusOK)
	t.Cleanup(creationSink.server.Close)
	t.Cleanup(statusSink.server.Close)

	creationChannel, err := slack.New(log, creationSink.server.URL)
	require.NoError(t, err)
	statusChannel, err := slack.New(log, statusSink.server.URL)
	require.NoError(t, err)

	orderCreatedSvc := orderCreatedService.New(log, parser.NewOrderCreated(), creationChannel)
	statusChangedSvc := statusChangedService.New(log, parser.NewStatusChange(), creationChannel, statusChannel)
	cafe24Svc := cafe24Service.New(log, parser.NewCafe24Order(), parser.NewCafe24Cancel(), creationChannel, statusChannel)

	handler := relay_http.NewHandler(log, orderCreatedSvc, statusChangedSvc, cafe24Svc)

	return &relayFixture{
		handler:      handler.InitRoutes(),
		creationSink: creationSink,
		statusSink:   statusSink,
	}
}

func (f *relayFixture) post(t *testing.T, target string, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	rec := httptest.NewRecorder()

	f.handler.ServeHTTP(rec, req)

	return rec
}

const orderCreatedBody = `{
	"eventType": "CREATE_ORDER",
	"order": {
		"orderNo": "20230101-0000001",
		"memberYn": "Y",
		"ordererName": "김주문",
		"ordererEmail": "orderer@example.com",
		"platformType": "PC",
		"lastPayAmt": 50000,
		"orderProducts": [
			{
				"productName": "티셔츠",
				"orderProductOptions": [
					{"optionUseYn": "Y", "optionName": "색상", "optionValue": "블랙", "orderCnt": 2, "adjustedAmt": 25000}
				]
			}
		]
	},
	"pay": {"payType": "CREDIT_CARD"}
}`

func statusChangedBody(statusType string) string {
	event := map[string]interface{}{
		"eventType":       "ORDER_STATUS_CHANGE",
		"orderNo":         "20230101-0000002",
		"productName":     "머그컵",
		"orderCnt":        1,
		"adjustedAmt":     12000,
		"orderStatusType": statusType,
		"receiverName":    "박수령",
	}

	body, _ := json.Marshal([]interface{}{event})

	return string(body)
}

func TestWebhookOrderCreated(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=CREATE_ORDER", orderCreatedBody)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "메시지가 성공적으로 전송되었습니다.")
	require.EqualValues(t, 1, f.creationSink.hits.Load())
	require.EqualValues(t, 0, f.statusSink.hits.Load())
}

func TestWebhookCancelDispatchesToBothChannels(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=ORDER_STATUS_CHANGE", statusChangedBody("CANCEL_DONE"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, f.creationSink.hits.Load())
	require.EqualValues(t, 1, f.statusSink.hits.Load())
}

func TestWebhookDeliveryDispatchesToStatusChannelOnly(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=ORDER_STATUS_CHANGE", statusChangedBody("DELIVERY_ING"))

	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 0, f.creationSink.hits.Load())
	require.EqualValues(t, 1, f.statusSink.hits.Load())
}

func TestWebhookCafe24Events(t *testing.T) {
	f := newRelayFixture(t)

	created := `{"event_no": 90023, "resource": {"order_id": "20230101-0000003", "buyer_name": "이구매", "payment_method": "card", "actual_payment_amount": "27500.00", "ordering_product_name": "노트", "ordering_product_code": "P0001"}}`

	rec := f.post(t, "/webhook?shopType=CAFE24", created)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 1, f.creationSink.hits.Load())
	require.EqualValues(t, 0, f.statusSink.hits.Load())

	cancelled := `{"event_no": 90026, "resource": {"order_id": "20230101-0000003", "buyer_name": "이구매", "event_code": "order_cancel"}}`

	rec = f.post(t, "/webhook?shopType=CAFE24", cancelled)
	require.Equal(t, http.StatusOK, rec.Code)
	require.EqualValues(t, 2, f.creationSink.hits.Load())
	require.EqualValues(t, 1, f.statusSink.hits.Load())
}

func TestWebhookMissingBody(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=CREATE_ORDER", "")

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "요청 본문이 필요합니다.")
}

func TestWebhookMissingEventType(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook", orderCreatedBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "eventType")
}

func TestWebhookUnsupportedEventType(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=DELETE_ORDER", orderCreatedBody)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "지원하지 않는 이벤트 타입")
	require.Contains(t, rec.Body.String(), "DELETE_ORDER")
}

func TestWebhookUnmappedCafe24EventNo(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?shopType=CAFE24", `{"event_no": 11111, "resource": {"order_id": "x"}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "지원하지 않는 event_no")
}

func TestWebhookInvalidPayload(t *testing.T) {
	f := newRelayFixture(t)

	// missing orderNo and ordererName
	rec := f.post(t, "/webhook?eventType=CREATE_ORDER", `{"order": {}, "pay": {}}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "이벤트 데이터 형식이 올바르지 않습니다.")
}

func TestWebhookEmptyStatusEventArray(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=ORDER_STATUS_CHANGE", `[]`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "상태 변경 이벤트 목록이 비어 있습니다.")
}

func TestWebhookDispatchFailure(t *testing.T) {
	f := newRelayFixture(t)
	f.statusSink.status = http.StatusInternalServerError

	rec := f.post(t, "/webhook?eventType=ORDER_STATUS_CHANGE", statusChangedBody("DELIVERY_ING"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), "메시지 전송 중 오류가 발생했습니다.")
}

func TestWebhookRequestIDHeader(t *testing.T) {
	f := newRelayFixture(t)

	rec := f.post(t, "/webhook?eventType=CREATE_ORDER", orderCreatedBody)

	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHealth(t *testing.T) {
	f := newRelayFixture(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}
