package parser

import (
	"fmt"
	"strings"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/format"
)

const emailMissing = "이메일 미입력"

// OrderCreated renders the standard order-created event.
type OrderCreated struct{}

func NewOrderCreated() *OrderCreated {
	return &OrderCreated{}
}

func (p *OrderCreated) Parse(data models.OrderEvent) models.SlackMessage {
	order := data.Order

	platformText := format.PlatformTypeText(order.PlatformType)

	// One line per product+option combination.
	var productLines []string
	for _, product := range order.OrderProducts {
		for _, option := range product.OrderProductOptions {
			line := fmt.Sprintf("%s %d개", product.ProductName, option.OrderCnt)

			if option.OptionUseYn == "Y" && option.OptionName != "" && option.OptionValue != "" {
				line += fmt.Sprintf(" (%s: %s)", option.OptionName, option.OptionValue)
			}

			if userInputs := joinUserInputs(option.UserInputs); userInputs != "" {
				line += fmt.Sprintf(" [%s]", userInputs)
			}

			line += fmt.Sprintf(" - %s원", format.Amount(option.AdjustedAmt))

			productLines = append(productLines, line)
		}
	}

	memberText := "아니오"
	if order.MemberYn == "Y" {
		memberText = "예"
	}

	emailText := order.OrdererEmail
	if emailText == "" {
		emailText = emailMissing
	}

	messageText := fmt.Sprintf(`:tada: *[%s] %s님이 구매하셨습니다.* :tada:
*주문번호:* %s
*주문상품:* %s
*결제수단:* %s
*실결제금액:* %s 원
*회원상태:*
  - 회원: %s
  - 이메일: %s`,
		platformText,
		order.OrdererName,
		order.OrderNo,
		strings.Join(productLines, "\n"),
		format.PaymentMethodText(data.Pay.PayType),
		format.Amount(order.LastPayAmt),
		memberText,
		emailText,
	)

	return models.NewSectionMessage(messageText)
}
