package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// 주문 검증/애그리거트 에러. 게이트웨이 경계를 넘기 전에
// 반드시 게이트웨이 에러로 변환됩니다.
var (
	// ErrOrderNotFound는 주문이 존재하지 않을 때 반환됩니다
	ErrOrderNotFound = errors.New("주문을 찾을 수 없습니다")
	// ErrOrderNotCancellable은 종결 상태의 주문을 취소하려 할 때 반환됩니다
	ErrOrderNotCancellable = errors.New("취소할 수 없는 상태의 주문입니다")
	// ErrCurrentPriceRequired는 시장가 매도/최유리 주문의 최소 금액 검증에
	// 현재가가 제공되지 않았을 때 반환됩니다
	ErrCurrentPriceRequired = errors.New("최소 주문 금액 검증에 현재가가 필요합니다")
)

// InvalidOrderRequestError는 주문 요청 필드 자체가 잘못되었을 때 반환됩니다
type InvalidOrderRequestError struct {
	Reason string
}

func (e *InvalidOrderRequestError) Error() string {
	return fmt.Sprintf("잘못된 주문 요청입니다: %s", e.Reason)
}

// ValidationFailedError는 값 타입 생성 실패를 주문 검증 실패로 감쌉니다
type ValidationFailedError struct {
	Cause error
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("주문 검증에 실패했습니다: %v", e.Cause)
}

func (e *ValidationFailedError) Unwrap() error { return e.Cause }

// InsufficientBalanceError는 주문에 필요한 잔고가 부족할 때 반환됩니다
type InsufficientBalanceError struct {
	Required  Amount
	Available Amount
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("잔고가 부족합니다: 필요 %s, 보유 %s", e.Required, e.Available)
}

// MinimumOrderAmountNotMetError는 주문 금액이 최소 주문 금액에 미달할 때 반환됩니다
type MinimumOrderAmountNotMetError struct {
	Minimum Amount
	Actual  Amount
}

func (e *MinimumOrderAmountNotMetError) Error() string {
	return fmt.Sprintf("최소 주문 금액 미달입니다: 최소 %s, 주문 %s", e.Minimum, e.Actual)
}

// InvalidPriceUnitError는 지정가가 호가 단위의 배수가 아닐 때 반환됩니다
type InvalidPriceUnitError struct {
	Price            Price
	ExpectedTickSize decimal.Decimal
}

func (e *InvalidPriceUnitError) Error() string {
	return fmt.Sprintf("가격이 호가 단위에 맞지 않습니다: 가격 %s, 호가 단위 %s", e.Price, e.ExpectedTickSize)
}
