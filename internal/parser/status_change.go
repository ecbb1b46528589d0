package parser

import (
	"fmt"

	"github.com/jon890/order-slack-relay/internal/domain/models"
	"github.com/jon890/order-slack-relay/internal/format"
)

const invoiceMissing = "송장번호 미등록"

// statusAnnouncements maps a status code to its announcement template. The
// single verb slot is the receiver name. Unknown codes fall back to the raw
// code so nothing is silently dropped.
var statusAnnouncements = map[string]string{
	"DEPOSIT_WAIT":     ":hourglass: *[웹] %s님의 입금을 기다리고 있습니다.* :hourglass:",
	"PAY_DONE":         ":white_check_mark: *[웹] %s님의 결제가 완료되었습니다.* :white_check_mark:",
	"PRODUCT_PREPARE":  ":package: *[웹] %s님의 상품을 준비중입니다.* :package:",
	"DELIVERY_PREPARE": ":inbox_tray: *[웹] %s님의 배송을 준비중입니다.* :inbox_tray:",
	"DELIVERY_ING":     ":truck: *[웹] %s님의 상품이 배송중입니다.* :truck:",
	"DELIVERY_DONE":    ":mailbox_with_mail: *[웹] %s님의 상품이 배달완료되었습니다.* :mailbox_with_mail:",
	"BUY_CONFIRM":      ":sparkles: *[웹] %s님이 주문을 확정하셨습니다.* :sparkles:",
	"CANCEL_DONE":      ":sweat_drops: *[웹] %s님이 주문을 취소하였습니다.* :sweat_drops:",
}

// StatusChange renders one per-line order status event.
type StatusChange struct{}

func NewStatusChange() *StatusChange {
	return &StatusChange{}
}

func (p *StatusChange) Parse(data models.OrderStatusChange) models.SlackMessage {
	announcement := data.OrderStatusType
	if template, ok := statusAnnouncements[data.OrderStatusType]; ok {
		announcement = fmt.Sprintf(template, data.ReceiverName)
	}

	invoiceText := invoiceMissing
	if data.InvoiceNo != "" {
		invoiceText = fmt.Sprintf("%s %s",
			format.DeliveryCompanyText(data.DeliveryCompanyType), data.InvoiceNo)
	}

	orderCnt := data.OrderCnt
	if orderCnt == 0 {
		orderCnt = 1
	}

	productText := fmt.Sprintf("%s %d개", data.ProductName, orderCnt)

	if data.OptionName != "" && data.OptionValue != "" {
		productText += fmt.Sprintf(" (%s: %s)", data.OptionName, data.OptionValue)
	}

	if userInputs := joinUserInputs(data.UserInputs); userInputs != "" {
		productText += fmt.Sprintf(" [%s]", userInputs)
	}

	productText += fmt.Sprintf(" - %s원", format.Amount(data.AdjustedAmt))

	messageText := fmt.Sprintf(`%s
*주문번호:* %s
*주문상품:* %s
*수령인:* %s
*송장정보:* %s`,
		announcement,
		data.OrderNo,
		productText,
		data.ReceiverName,
		invoiceText,
	)

	return models.NewSectionMessage(messageText)
}
