// Package format renders raw payload values as Korean display strings.
// Everything here is a pure lookup or a locale/timezone conversion.
package format

import (
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var kst = time.FixedZone("KST", 9*60*60)

var korean = message.NewPrinter(language.Korean)

// Amount renders an amount with ko-KR thousands grouping. Fractional digits
// are kept as-is, never rounded away to an integer.
func Amount(amount float64) string {
	return korean.Sprint(number.Decimal(amount))
}

// Price renders a numeric string the same way Amount does. A malformed string
// renders as "NaN" rather than being masked.
func Price(price string) string {
	value, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil {
		value = math.NaN()
	}

	return Amount(value)
}

const dateLayout = "2006-01-02 15:04"

// DateString converts an ISO-8601 timestamp to "YYYY-MM-DD HH:mm" in KST.
// The input offset is converted, not truncated: "2020-07-17T06:28:14Z" and
// "2020-07-17T15:28:14+09:00" render identically. An empty input yields an
// empty string; an unparseable one is logged and returned unchanged.
func DateString(isoDateString string) string {
	if isoDateString == "" {
		return ""
	}

	parsed, err := time.Parse(time.RFC3339, isoDateString)
	if err != nil {
		slog.Error("failed to parse date string",
			slog.String("value", isoDateString),
			slog.String("error", err.Error()),
		)

		return isoDateString
	}

	return parsed.In(kst).Format(dateLayout)
}

var paymentMethods = map[string]string{
	"CREDIT_CARD":  "카드",
	"ACCOUNT":      "무통장 입금",
	"NAVER_PAY":    "네이버페이",
	"KAKAO_PAY":    "카카오페이",
	"PAYCO":        "페이코",
	"ACCUMULATION": "적립금",
	"MILEAGE":      "마일리지",
}

// PaymentMethodText maps a payment method code to its Korean label,
// case-insensitively. Unknown codes pass through verbatim.
func PaymentMethodText(payType string) string {
	if text, ok := paymentMethods[strings.ToUpper(payType)]; ok {
		return text
	}

	return payType
}

// PlatformTypeText maps a sales channel code to 웹/앱. Anything unknown is
// treated as web, by contract rather than by accident.
func PlatformTypeText(platformType string) string {
	switch strings.ToUpper(platformType) {
	case "PC", "PC_WEB", "MOBILE_WEB":
		return "웹"
	case "MOBILE_APP":
		return "앱"
	default:
		return "웹"
	}
}

var deliveryCompanies = map[string]string{
	"CJ":              "CJ대한통운",
	"LOTTE":           "롯데택배",
	"HANJIN":          "한진택배",
	"POST":            "우체국택배",
	"LOGEN":           "로젠택배",
	"KGB":             "KGB택배",
	"KYOUNG_DONG":     "경동택배",
	"DAESIN":          "대신택배",
	"ILYANG":          "일양로지스",
	"CHUNIL":          "천일택배",
	"CVSNET":          "편의점택배",
	"DONG_BU":         "동부택배",
	"AIRLIFT":         "에어리프트",
	"QUICK_START":     "퀵스타트",
	"DAILY_EXPRESS":   "일반택배",
	"HOMEPICK":        "홈픽택배",
	"HDEXP":           "합동택배",
	"SUPREME_EXPRESS": "서프림익스프레스",
	"FRESH_SOLUTION":  "프레시솔루션",
}

// DeliveryCompanyText maps a carrier code to its Korean name. Unknown codes
// pass through verbatim.
func DeliveryCompanyText(deliveryCompanyType string) string {
	if text, ok := deliveryCompanies[strings.ToUpper(deliveryCompanyType)]; ok {
		return text
	}

	return deliveryCompanyType
}

var cafe24PaymentMethods = map[string]string{
	"CARD":     "카드",
	"CASH":     "무통장 입금",
	"TCASH":    "계좌이체",
	"CELL":     "휴대폰 결제",
	"NAVERPAY": "네이버페이",
	"KAKAOPAY": "카카오페이",
	"PAYCO":    "페이코",
	"POINT":    "적립금",
	"MILEAGE":  "마일리지",
}

// Cafe24PaymentMethodText maps a cafe24 payment method code to its Korean
// label. Unknown codes pass through verbatim.
func Cafe24PaymentMethodText(paymentMethod string) string {
	if text, ok := cafe24PaymentMethods[strings.ToUpper(paymentMethod)]; ok {
		return text
	}

	return paymentMethod
}
