package domain

import "time"

// OrderEvent는 실시간 스트림으로 전달되는 주문 이벤트 변형입니다.
// OrderCreated/OrderExecuted/OrderCancelled 중 하나입니다.
type OrderEvent interface {
	isOrderEvent()
	// EventOrderID는 이벤트가 속한 주문의 식별자를 반환합니다
	EventOrderID() OrderID
	// OccurredAt은 이벤트 발생 시각을 반환합니다
	OccurredAt() time.Time
}

// OrderCreated는 주문이 접수되었음을 나타냅니다
type OrderCreated struct {
	OrderID   OrderID
	Pair      TradingPair
	Side      OrderSide
	OrderType OrderType
	Occurred  time.Time
}

// OrderExecuted는 개별 체결 한 건을 나타냅니다. 누적 값이 아니며
// TradeID가 체결의 멱등키입니다.
type OrderExecuted struct {
	OrderID        OrderID
	TradeID        TradeID
	ExecutedVolume Volume
	ExecutedPrice  Price
	Fee            Amount
	Occurred       time.Time
}

// OrderCancelled는 주문이 취소되었음을 나타냅니다
type OrderCancelled struct {
	OrderID  OrderID
	Occurred time.Time
}

func (OrderCreated) isOrderEvent()   {}
func (OrderExecuted) isOrderEvent()  {}
func (OrderCancelled) isOrderEvent() {}

func (e OrderCreated) EventOrderID() OrderID   { return e.OrderID }
func (e OrderExecuted) EventOrderID() OrderID  { return e.OrderID }
func (e OrderCancelled) EventOrderID() OrderID { return e.OrderID }

func (e OrderCreated) OccurredAt() time.Time   { return e.Occurred }
func (e OrderExecuted) OccurredAt() time.Time  { return e.Occurred }
func (e OrderCancelled) OccurredAt() time.Time { return e.Occurred }
