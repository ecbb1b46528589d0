package errors

import "errors"

var (
	ErrEmptyBody            = errors.New("요청 본문이 필요합니다.")
	ErrMalformedBody        = errors.New("요청 본문을 파싱할 수 없습니다.")
	ErrEventTypeRequired    = errors.New("eventType 쿼리 파라미터가 필요합니다.")
	ErrUnsupportedEventType = errors.New("지원하지 않는 이벤트 타입")
	ErrEventNoRequired      = errors.New("event_no 필드가 필요합니다.")
	ErrUnsupportedEventNo   = errors.New("지원하지 않는 event_no")
	ErrEmptyStatusEvents    = errors.New("상태 변경 이벤트 목록이 비어 있습니다.")
)
