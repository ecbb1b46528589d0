package models

// Cafe24Event is the cafe24 webhook envelope. The event_no field carries the
// numeric event code (90023 order placed, 90026 order cancelled); the flat
// resource object is shared by both, the cancel event additionally fills
// cancel_date and event_code.
type Cafe24Event struct {
	EventNo  int            `json:"event_no" validate:"required"`
	Resource Cafe24Resource `json:"resource"`
}

type Cafe24Resource struct {
	MallID              string `json:"mall_id"`
	EventShopNo         string `json:"event_shop_no"`
	EventCode           string `json:"event_code"`
	OrderID             string `json:"order_id" validate:"required"`
	OrderDate           string `json:"order_date"`
	OrderPlaceName      string `json:"order_place_name"`
	MemberID            string `json:"member_id"`
	BuyerName           string `json:"buyer_name"`
	BuyerEmail          string `json:"buyer_email"`
	BuyerCellphone      string `json:"buyer_cellphone"`
	FirstOrder          string `json:"first_order"`
	Paid                string `json:"paid"`
	PaymentDate         string `json:"payment_date"`
	PaymentMethod       string `json:"payment_method"`
	OrderPriceAmount    string `json:"order_price_amount"`
	ActualPaymentAmount string `json:"actual_payment_amount"`
	ShippingFee         string `json:"shipping_fee"`
	OrderingProductName string `json:"ordering_product_name"`
	OrderingProductCode string `json:"ordering_product_code"`
	CancelDate          string `json:"cancel_date"`
}
