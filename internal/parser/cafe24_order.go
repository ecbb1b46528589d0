package parser

import (
	"fmt"
	"strings"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/format"
)

const (
	paymentPending = "미결제"
	memberIDNone   = "없음"
)

// Cafe24Order renders the cafe24 order-placed event (event_no 90023).
type Cafe24Order struct{}

func NewCafe24Order() *Cafe24Order {
	return &Cafe24Order{}
}

func (p *Cafe24Order) Parse(data models.Cafe24Event) models.SlackMessage {
	resource := data.Resource

	paymentStatus := paymentPending
	if resource.Paid == "T" {
		paymentStatus = "결제완료"
	}

	paymentDateText := paymentPending
	if resource.PaymentDate != "" {
		paymentDateText = format.DateString(resource.PaymentDate)
	}

	messageText := fmt.Sprintf(`:tada: *[CAFE24] %s님이 구매하셨습니다.* :tada:
*주문번호:* %s
*주문상품:* %s
*결제수단:* %s
*실결제금액:* %s 원
*이메일:* %s
*연락처:* %s
%s

*추가정보:*
  - 쇼핑몰: %s
  - 주문일시: %s
  - 결제일시: %s
  - 결제상태: %s
  - 주문경로: %s
  - 주문금액: %s원
  - 배송비: %s원`,
		resource.BuyerName,
		resource.OrderID,
		cafe24ProductText(resource),
		format.Cafe24PaymentMethodText(resource.PaymentMethod),
		format.Price(resource.ActualPaymentAmount),
		resource.BuyerEmail,
		resource.BuyerCellphone,
		cafe24MemberText(resource),
		resource.MallID,
		format.DateString(resource.OrderDate),
		paymentDateText,
		paymentStatus,
		resource.OrderPlaceName,
		format.Price(resource.OrderPriceAmount),
		format.Price(resource.ShippingFee),
	)

	return models.NewSectionMessage(messageText)
}

// cafe24ProductText pairs the comma-separated product names with their codes,
// one line per product.
func cafe24ProductText(resource models.Cafe24Resource) string {
	names := strings.Split(resource.OrderingProductName, ",")
	codes := strings.Split(resource.OrderingProductCode, ",")

	lines := make([]string, 0, len(names))
	for i, name := range names {
		line := strings.TrimSpace(name)
		if i < len(codes) && strings.TrimSpace(codes[i]) != "" {
			line += fmt.Sprintf(" (%s)", strings.TrimSpace(codes[i]))
		}

		lines = append(lines, line)
	}

	return strings.Join(lines, "\n")
}

func cafe24MemberText(resource models.Cafe24Resource) string {
	memberStatus := "비회원"
	if resource.MemberID != "" {
		memberStatus = "회원"
	}

	memberID := resource.MemberID
	if memberID == "" {
		memberID = memberIDNone
	}

	isFirstOrder := "아니오"
	if resource.FirstOrder == "T" {
		isFirstOrder = "예"
	}

	return fmt.Sprintf(`*회원상태:*
  - 회원여부: %s
  - 회원ID: %s
  - 첫주문: %s`, memberStatus, memberID, isFirstOrder)
}
