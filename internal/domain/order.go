package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderSide는 매수/매도 방향을 나타냅니다
type OrderSide string

const (
	SideBid OrderSide = "BID" // 매수
	SideAsk OrderSide = "ASK" // 매도
)

// OrderState는 주문 상태를 나타냅니다
type OrderState string

const (
	StateWait   OrderState = "WAIT"   // 체결 대기
	StateWatch  OrderState = "WATCH"  // 예약 주문 대기
	StateDone   OrderState = "DONE"   // 전체 체결 완료
	StateCancel OrderState = "CANCEL" // 취소
)

// IsTerminal은 종결 상태(DONE, CANCEL)인지 확인합니다
func (s OrderState) IsTerminal() bool {
	return s == StateDone || s == StateCancel
}

// OrderType은 주문 유형 변형입니다. Limit/MarketBuy/MarketSell/Best 중 하나이며
// 각 변형은 자신에게 필요한 필드만 가집니다.
type OrderType interface {
	isOrderType()
	// Code는 거래소 와이어 코드(limit/price/market/best)를 반환합니다
	Code() string
}

// Limit은 지정가 주문입니다
type Limit struct {
	Volume Volume
	Price  Price
}

// MarketBuy는 시장가 매수 주문입니다. 수량 대신 총액으로 지정합니다.
type MarketBuy struct {
	TotalPrice Amount
}

// MarketSell은 시장가 매도 주문입니다
type MarketSell struct {
	Volume Volume
}

// Best는 최유리 지정가 주문입니다
type Best struct {
	Volume Volume
}

func (Limit) isOrderType()      {}
func (MarketBuy) isOrderType()  {}
func (MarketSell) isOrderType() {}
func (Best) isOrderType()       {}

func (Limit) Code() string      { return "limit" }
func (MarketBuy) Code() string  { return "price" }
func (MarketSell) Code() string { return "market" }
func (Best) Code() string       { return "best" }

// NewLimit은 지정가 주문 유형을 생성합니다. 수량은 0보다 커야 합니다.
func NewLimit(volume Volume, price Price) (Limit, error) {
	if volume.IsZero() {
		return Limit{}, &InvalidOrderRequestError{Reason: "지정가 주문의 수량은 0보다 커야 합니다"}
	}
	return Limit{Volume: volume, Price: price}, nil
}

// NewMarketBuy는 시장가 매수 주문 유형을 생성합니다. 총액은 0보다 커야 합니다.
func NewMarketBuy(totalPrice Amount) (MarketBuy, error) {
	if totalPrice.IsZero() {
		return MarketBuy{}, &InvalidOrderRequestError{Reason: "시장가 매수 주문의 총액은 0보다 커야 합니다"}
	}
	return MarketBuy{TotalPrice: totalPrice}, nil
}

// NewMarketSell은 시장가 매도 주문 유형을 생성합니다. 수량은 0보다 커야 합니다.
func NewMarketSell(volume Volume) (MarketSell, error) {
	if volume.IsZero() {
		return MarketSell{}, &InvalidOrderRequestError{Reason: "시장가 매도 주문의 수량은 0보다 커야 합니다"}
	}
	return MarketSell{Volume: volume}, nil
}

// NewBest는 최유리 지정가 주문 유형을 생성합니다. 수량은 0보다 커야 합니다.
func NewBest(volume Volume) (Best, error) {
	if volume.IsZero() {
		return Best{}, &InvalidOrderRequestError{Reason: "최유리 주문의 수량은 0보다 커야 합니다"}
	}
	return Best{Volume: volume}, nil
}

// declaredVolume은 수량 기준 주문 유형의 선언 수량을 반환합니다.
// MarketBuy는 금액 기준이므로 false를 반환합니다.
func declaredVolume(t OrderType) (Volume, bool) {
	switch v := t.(type) {
	case Limit:
		return v.Volume, true
	case MarketSell:
		return v.Volume, true
	case Best:
		return v.Volume, true
	default:
		return ZeroVolume, false
	}
}

// Order는 주문 애그리거트입니다. 생성 시 모든 교차 필드 불변식을 검증하며,
// 상태 변경은 부분 수정 없이 새 스냅샷으로 교체하는 방식만 허용합니다.
type Order struct {
	id              OrderID
	pair            TradingPair
	side            OrderSide
	orderType       OrderType
	state           OrderState
	remainingVolume Volume
	executedVolume  Volume
	executedAmount  Amount
	paidFee         Amount
	createdAt       time.Time
	doneAt          *time.Time
}

// NewOrder는 주문 애그리거트를 생성합니다.
// 불변식 위반 시 주문은 생성되지 않습니다:
//   - 시장가 매수는 매수 방향, 시장가 매도는 매도 방향이어야 합니다
//   - DONE 상태의 잔여 수량은 0이어야 합니다
//   - 종결 상태(DONE, CANCEL)는 종결 시각이 있어야 합니다
//   - 수량 기준 유형은 잔여 + 체결 수량이 선언 수량과 같아야 합니다
func NewOrder(
	id OrderID,
	pair TradingPair,
	side OrderSide,
	orderType OrderType,
	state OrderState,
	remainingVolume Volume,
	executedVolume Volume,
	executedAmount Amount,
	paidFee Amount,
	createdAt time.Time,
	doneAt *time.Time,
) (Order, error) {
	if _, ok := orderType.(MarketBuy); ok && side != SideBid {
		return Order{}, &InvalidOrderRequestError{Reason: "시장가 매수 주문은 매수 방향이어야 합니다"}
	}
	if _, ok := orderType.(MarketSell); ok && side != SideAsk {
		return Order{}, &InvalidOrderRequestError{Reason: "시장가 매도 주문은 매도 방향이어야 합니다"}
	}
	if state == StateDone && !remainingVolume.IsZero() {
		return Order{}, &InvalidOrderRequestError{Reason: "체결 완료된 주문의 잔여 수량은 0이어야 합니다"}
	}
	if state.IsTerminal() && doneAt == nil {
		return Order{}, &InvalidOrderRequestError{Reason: "종결된 주문은 종결 시각이 있어야 합니다"}
	}
	if total, ok := declaredVolume(orderType); ok {
		if !remainingVolume.Add(executedVolume).Equal(total) {
			return Order{}, &InvalidOrderRequestError{
				Reason: "잔여 수량과 체결 수량의 합이 주문 수량과 일치해야 합니다",
			}
		}
	}

	return Order{
		id:              id,
		pair:            pair,
		side:            side,
		orderType:       orderType,
		state:           state,
		remainingVolume: remainingVolume,
		executedVolume:  executedVolume,
		executedAmount:  executedAmount,
		paidFee:         paidFee,
		createdAt:       createdAt,
		doneAt:          doneAt,
	}, nil
}

// ID는 주문 식별자를 반환합니다
func (o Order) ID() OrderID { return o.id }

// Pair는 거래쌍을 반환합니다
func (o Order) Pair() TradingPair { return o.pair }

// Side는 매수/매도 방향을 반환합니다
func (o Order) Side() OrderSide { return o.side }

// Type은 주문 유형을 반환합니다
func (o Order) Type() OrderType { return o.orderType }

// State는 주문 상태를 반환합니다
func (o Order) State() OrderState { return o.state }

// RemainingVolume은 잔여 수량을 반환합니다
func (o Order) RemainingVolume() Volume { return o.remainingVolume }

// ExecutedVolume은 체결 수량을 반환합니다
func (o Order) ExecutedVolume() Volume { return o.executedVolume }

// ExecutedAmount는 체결 금액을 반환합니다
func (o Order) ExecutedAmount() Amount { return o.executedAmount }

// PaidFee는 지불한 수수료를 반환합니다
func (o Order) PaidFee() Amount { return o.paidFee }

// CreatedAt은 주문 생성 시각을 반환합니다
func (o Order) CreatedAt() time.Time { return o.createdAt }

// DoneAt은 종결 시각을 반환합니다. 미종결 주문은 nil입니다.
func (o Order) DoneAt() *time.Time { return o.doneAt }

// IsOpen은 미체결 상태(WAIT, WATCH)인지 확인합니다
func (o Order) IsOpen() bool {
	return o.state == StateWait || o.state == StateWatch
}

// IsCancellable은 취소 가능한 상태인지 확인합니다
func (o Order) IsCancellable() bool { return o.IsOpen() }

// IsClosed는 종결 상태(DONE, CANCEL)인지 확인합니다
func (o Order) IsClosed() bool { return o.state.IsTerminal() }

// RemainingAmount는 시장가 매수 주문의 미체결 금액을 반환합니다.
// 총액에서 체결 금액을 뺀 값이며 음수가 되면 0으로 고정합니다.
// 시장가 매수가 아닌 주문은 (ZeroAmount, false)를 반환합니다.
func (o Order) RemainingAmount() (Amount, bool) {
	mb, ok := o.orderType.(MarketBuy)
	if !ok {
		return ZeroAmount, false
	}
	remaining, ok := mb.TotalPrice.Sub(o.executedAmount)
	if !ok {
		return ZeroAmount, true
	}
	return remaining, true
}

// AverageExecutedPrice는 평균 체결 가격을 반환합니다.
// 체결 수량이 0이면 (Price{}, false)를 반환합니다.
func (o Order) AverageExecutedPrice() (Price, bool) {
	if o.executedVolume.IsZero() {
		return Price{}, false
	}
	avg := o.executedAmount.Value().DivRound(o.executedVolume.Value(), PriceScale)
	price, err := NewPrice(avg)
	if err != nil {
		return Price{}, false
	}
	return price, true
}

// ExecutionRate는 체결률(%)을 반환합니다. 주문 유형별 총량 기준으로
// 계산하며 소수점 둘째 자리까지 표현합니다.
func (o Order) ExecutionRate() decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if mb, ok := o.orderType.(MarketBuy); ok {
		if mb.TotalPrice.IsZero() {
			return decimal.Zero
		}
		return o.executedAmount.Value().Mul(hundred).DivRound(mb.TotalPrice.Value(), PercentScale)
	}
	total, _ := declaredVolume(o.orderType)
	if total.IsZero() {
		return decimal.Zero
	}
	return o.executedVolume.Value().Mul(hundred).DivRound(total.Value(), PercentScale)
}
