package domain

import "fmt"

// DomainErrorKind는 값 타입별 제약 위반의 종류를 나타냅니다
type DomainErrorKind int

const (
	ErrInvalidPrice DomainErrorKind = iota + 1
	ErrInvalidVolume
	ErrInvalidAmount
	ErrInvalidFeeRate
	ErrInvalidAvgBuyPrice
	ErrInvalidChangeRate
	ErrInvalidTradeSequentialID
	ErrInvalidTradingPair
	ErrInvalidCurrency
	ErrInvalidBalance
	ErrInvalidCandle
	ErrInvalidCandleUnit
	ErrInvalidOrderID
	ErrInvalidTradeID
)

// DomainError는 값 타입 생성 시 제약 위반을 표현합니다.
// 값 타입은 검증 생성자를 통해서만 만들어지므로, 이 에러가 반환되면
// 해당 인스턴스는 존재하지 않습니다.
type DomainError struct {
	Kind    DomainErrorKind
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func newDomainError(kind DomainErrorKind, format string, args ...interface{}) *DomainError {
	return &DomainError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}
