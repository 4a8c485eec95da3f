package repository

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/MALLLAG/crypto-quant/internal/domain"
)

// 주문 유형의 저장용 코드
const (
	typeLimit      = "LIMIT"
	typeMarketBuy  = "MARKET_BUY"
	typeMarketSell = "MARKET_SELL"
	typeBest       = "BEST"
)

// OrderEntity는 orders 테이블의 행입니다.
// 유형별로 쓰지 않는 수치 컬럼은 NULL로 둡니다.
type OrderEntity struct {
	ID              string           `gorm:"column:id;primaryKey"`
	Pair            string           `gorm:"column:pair"`
	Side            string           `gorm:"column:side"`
	OrderType       string           `gorm:"column:order_type"`
	State           string           `gorm:"column:state"`
	Volume          *decimal.Decimal `gorm:"column:volume;type:numeric"`
	Price           *decimal.Decimal `gorm:"column:price;type:numeric"`
	TotalPrice      *decimal.Decimal `gorm:"column:total_price;type:numeric"`
	RemainingVolume decimal.Decimal  `gorm:"column:remaining_volume;type:numeric"`
	ExecutedVolume  decimal.Decimal  `gorm:"column:executed_volume;type:numeric"`
	ExecutedAmount  decimal.Decimal  `gorm:"column:executed_amount;type:numeric"`
	PaidFee         decimal.Decimal  `gorm:"column:paid_fee;type:numeric"`
	CreatedAt       time.Time        `gorm:"column:created_at"`
	DoneAt          *time.Time       `gorm:"column:done_at"`
}

// TableName은 매핑 테이블 이름을 지정합니다
func (OrderEntity) TableName() string { return "orders" }

// toEntity는 주문 애그리거트를 저장용 행으로 변환합니다
func toEntity(order domain.Order) OrderEntity {
	var volume, price, totalPrice *decimal.Decimal

	switch t := order.Type().(type) {
	case domain.Limit:
		v := t.Volume.Value()
		p := t.Price.Value()
		volume, price = &v, &p
	case domain.MarketBuy:
		tp := t.TotalPrice.Value()
		totalPrice = &tp
	case domain.MarketSell:
		v := t.Volume.Value()
		volume = &v
	case domain.Best:
		v := t.Volume.Value()
		volume = &v
	}

	return OrderEntity{
		ID:              order.ID().Value(),
		Pair:            order.Pair().Value(),
		Side:            string(order.Side()),
		OrderType:       orderTypeCode(order.Type()),
		State:           string(order.State()),
		Volume:          volume,
		Price:           price,
		TotalPrice:      totalPrice,
		RemainingVolume: order.RemainingVolume().Value(),
		ExecutedVolume:  order.ExecutedVolume().Value(),
		ExecutedAmount:  order.ExecutedAmount().Value(),
		PaidFee:         order.PaidFee().Value(),
		CreatedAt:       order.CreatedAt(),
		DoneAt:          order.DoneAt(),
	}
}

func orderTypeCode(t domain.OrderType) string {
	switch t.(type) {
	case domain.MarketBuy:
		return typeMarketBuy
	case domain.MarketSell:
		return typeMarketSell
	case domain.Best:
		return typeBest
	default:
		return typeLimit
	}
}

// toDomain은 저장된 행을 주문 애그리거트로 복원합니다
func toDomain(entity OrderEntity) (domain.Order, error) {
	id, err := domain.NewOrderID(entity.ID)
	if err != nil {
		return domain.Order{}, err
	}
	pair, err := domain.ParseTradingPair(entity.Pair)
	if err != nil {
		return domain.Order{}, err
	}

	orderType, err := entityOrderType(entity)
	if err != nil {
		return domain.Order{}, err
	}

	remaining, err := domain.NewVolume(entity.RemainingVolume)
	if err != nil {
		return domain.Order{}, err
	}
	executed, err := domain.NewVolume(entity.ExecutedVolume)
	if err != nil {
		return domain.Order{}, err
	}
	executedAmount, err := domain.NewAmount(entity.ExecutedAmount)
	if err != nil {
		return domain.Order{}, err
	}
	paidFee, err := domain.NewAmount(entity.PaidFee)
	if err != nil {
		return domain.Order{}, err
	}

	return domain.NewOrder(
		id, pair,
		entitySide(entity.Side),
		orderType,
		entityState(entity.State),
		remaining, executed, executedAmount, paidFee,
		entity.CreatedAt, entity.DoneAt,
	)
}

func entitySide(s string) domain.OrderSide {
	if s == string(domain.SideAsk) {
		return domain.SideAsk
	}
	return domain.SideBid
}

func entityState(s string) domain.OrderState {
	switch s {
	case string(domain.StateWatch):
		return domain.StateWatch
	case string(domain.StateDone):
		return domain.StateDone
	case string(domain.StateCancel):
		return domain.StateCancel
	default:
		return domain.StateWait
	}
}

func entityOrderType(entity OrderEntity) (domain.OrderType, error) {
	volume := decimal.Zero
	if entity.Volume != nil {
		volume = *entity.Volume
	}
	price := decimal.Zero
	if entity.Price != nil {
		price = *entity.Price
	}
	totalPrice := decimal.Zero
	if entity.TotalPrice != nil {
		totalPrice = *entity.TotalPrice
	}

	switch entity.OrderType {
	case typeMarketBuy:
		total, err := domain.NewAmount(totalPrice)
		if err != nil {
			return nil, err
		}
		return domain.NewMarketBuy(total)
	case typeMarketSell:
		vol, err := domain.NewVolume(volume)
		if err != nil {
			return nil, err
		}
		return domain.NewMarketSell(vol)
	case typeBest:
		vol, err := domain.NewVolume(volume)
		if err != nil {
			return nil, err
		}
		return domain.NewBest(vol)
	default:
		vol, err := domain.NewVolume(volume)
		if err != nil {
			return nil, err
		}
		if price.Sign() <= 0 {
			price = decimal.NewFromInt(1)
		}
		p, err := domain.NewPrice(price)
		if err != nil {
			return nil, err
		}
		return domain.NewLimit(vol, p)
	}
}
