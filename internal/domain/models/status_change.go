package models

// OrderStatusChange is one per-line status event. The inbound payload is an
// array of these, one element per order line, not one event per order.
type OrderStatusChange struct {
	EventType           string      `json:"eventType"`
	OrderNo             string      `json:"orderNo" validate:"required"`
	ProductName         string      `json:"productName"`
	OptionName          string      `json:"optionName"`
	OptionValue         string      `json:"optionValue"`
	OrderCnt            int         `json:"orderCnt"`
	AdjustedAmt         float64     `json:"adjustedAmt"`
	OrderStatusType     string      `json:"orderStatusType" validate:"required"`
	ReceiverName        string      `json:"receiverName"`
	InvoiceNo           string      `json:"invoiceNo"`
	DeliveryCompanyType string      `json:"deliveryCompanyType"`
	UserInputs          []UserInput `json:"userInputs,omitempty"`
}
