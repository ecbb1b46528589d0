package models

// OrderEvent is the standard shop's order-created payload.
type OrderEvent struct {
	EventType string `json:"eventType"`
	Order     Order  `json:"order"`
	Pay       Pay    `json:"pay"`
}

type Order struct {
	OrderNo         string         `json:"orderNo" validate:"required"`
	MemberYn        string         `json:"memberYn"`
	OrdererName     string         `json:"ordererName" validate:"required"`
	OrdererContact1 string         `json:"ordererContact1"`
	OrdererEmail    string         `json:"ordererEmail"`
	PayType         string         `json:"payType"`
	PgType          string         `json:"pgType"`
	PlatformType    string         `json:"platformType"`
	LastPayAmt      float64        `json:"lastPayAmt"`
	RegisterYmdt    string         `json:"registerYmdt"`
	OrderProducts   []OrderProduct `json:"orderProducts" validate:"required,min=1,dive"`
}

type OrderProduct struct {
	OrderProductNo      int                  `json:"orderProductNo"`
	ProductName         string               `json:"productName" validate:"required"`
	OrderProductOptions []OrderProductOption `json:"orderProductOptions"`
}

type OrderProductOption struct {
	OrderProductOptionNo int         `json:"orderProductOptionNo"`
	OptionUseYn          string      `json:"optionUseYn"`
	OptionName           string      `json:"optionName"`
	OptionValue          string      `json:"optionValue"`
	OrderCnt             int         `json:"orderCnt"`
	SalePrice            float64     `json:"salePrice"`
	AdjustedAmt          float64     `json:"adjustedAmt"`
	UserInputs           []UserInput `json:"userInputs,omitempty"`
}

// UserInput is a buyer-supplied free-text option (engraving, gift note, ...).
type UserInput struct {
	InputLabel string `json:"inputLabel"`
	InputValue string `json:"inputValue"`
}

type Pay struct {
	PgType  string `json:"pgType"`
	PayType string `json:"payType"`
	PayYmdt string `json:"payYmdt"`
}
