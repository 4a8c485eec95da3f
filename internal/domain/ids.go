package domain

import "strings"

// OrderID는 거래소가 부여한 주문 식별자입니다
type OrderID struct {
	value string
}

// NewOrderID는 주문 식별자를 검증하고 생성합니다
func NewOrderID(v string) (OrderID, error) {
	if strings.TrimSpace(v) == "" {
		return OrderID{}, newDomainError(ErrInvalidOrderID, "주문 ID는 공백일 수 없습니다")
	}
	return OrderID{value: v}, nil
}

// Value는 주문 식별자 값을 반환합니다
func (id OrderID) Value() string { return id.value }

func (id OrderID) String() string { return id.value }

// TradeID는 개별 체결 식별자입니다. 체결 이벤트의 멱등키로 사용됩니다.
type TradeID struct {
	value string
}

// NewTradeID는 체결 식별자를 검증하고 생성합니다
func NewTradeID(v string) (TradeID, error) {
	if strings.TrimSpace(v) == "" {
		return TradeID{}, newDomainError(ErrInvalidTradeID, "체결 ID는 공백일 수 없습니다")
	}
	return TradeID{value: v}, nil
}

// Value는 체결 식별자 값을 반환합니다
func (id TradeID) Value() string { return id.value }

func (id TradeID) String() string { return id.value }

// TradeSequentialID는 체결 순번입니다. 체결 목록의 커서 페이징에 사용되며
// 0보다 커야 합니다.
type TradeSequentialID struct {
	value int64
}

// NewTradeSequentialID는 체결 순번을 검증하고 생성합니다
func NewTradeSequentialID(v int64) (TradeSequentialID, error) {
	if v <= 0 {
		return TradeSequentialID{}, newDomainError(ErrInvalidTradeSequentialID, "체결 순번은 0보다 커야 합니다: %d", v)
	}
	return TradeSequentialID{value: v}, nil
}

// Value는 체결 순번 값을 반환합니다
func (id TradeSequentialID) Value() int64 { return id.value }
