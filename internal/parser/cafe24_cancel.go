package parser

import (
	"fmt"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/format"
)

const cancelDateMissing = "취소일자 정보 없음"

// Cafe24Cancel renders the cafe24 order-cancelled event (event_no 90026).
type Cafe24Cancel struct{}

func NewCafe24Cancel() *Cafe24Cancel {
	return &Cafe24Cancel{}
}

func (p *Cafe24Cancel) Parse(data models.Cafe24Event) models.SlackMessage {
	resource := data.Resource

	paymentDateText := paymentPending
	if resource.PaymentDate != "" {
		paymentDateText = format.DateString(resource.PaymentDate)
	}

	cancelDateText := cancelDateMissing
	if resource.CancelDate != "" {
		cancelDateText = format.DateString(resource.CancelDate)
	}

	messageText := fmt.Sprintf(`:x: *[CAFE24] %s님의 주문이 취소되었습니다.* :x:
*주문번호:* %s
*취소상품:* %s
*결제수단:* %s
*취소금액:* %s 원
*이메일:* %s
*연락처:* %s
%s

*추가정보:*
  - 주문일시: %s
  - 결제일시: %s
  - 취소일시: %s
  - 취소코드: %s
  - 주문경로: %s
  - 원주문금액: %s원
  - 배송비: %s원`,
		resource.BuyerName,
		resource.OrderID,
		cafe24ProductText(resource),
		format.Cafe24PaymentMethodText(resource.PaymentMethod),
		format.Price(resource.ActualPaymentAmount),
		resource.BuyerEmail,
		resource.BuyerCellphone,
		cafe24MemberText(resource),
		format.DateString(resource.OrderDate),
		paymentDateText,
		cancelDateText,
		resource.EventCode,
		resource.OrderPlaceName,
		format.Price(resource.OrderPriceAmount),
		format.Price(resource.ShippingFee),
	)

	return models.NewSectionMessage(messageText)
}
