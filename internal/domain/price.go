package domain

import (
	"github.com/shopspring/decimal"
)

// Price는 양수 가격을 나타냅니다
type Price struct {
	value decimal.Decimal
}

// NewPrice는 가격을 검증하고 생성합니다. 0 이하의 가격은 허용하지 않습니다.
func NewPrice(v decimal.Decimal) (Price, error) {
	if v.Sign() <= 0 {
		return Price{}, newDomainError(ErrInvalidPrice, "가격은 0보다 커야 합니다: %s", v)
	}
	return Price{value: v}, nil
}

// NewPriceFromString은 문자열에서 가격을 생성합니다
func NewPriceFromString(s string) (Price, error) {
	d, err := parseDecimal(s, ErrInvalidPrice)
	if err != nil {
		return Price{}, err
	}
	return NewPrice(d)
}

// Value는 가격 값을 반환합니다
func (p Price) Value() decimal.Decimal { return p.value }

// Mul은 가격과 수량을 곱한 금액을 계산합니다
func (p Price) Mul(v Volume) Amount {
	return Amount{value: p.value.Mul(v.value)}
}

// AdjustToTickSize는 가격을 틱 사이즈의 내림 배수로 맞춥니다.
// 내림 결과가 0 이하이면 틱 사이즈 자체를 반환합니다.
func (p Price) AdjustToTickSize(tick decimal.Decimal) (Price, error) {
	if tick.Sign() <= 0 {
		return Price{}, newDomainError(ErrInvalidPrice, "틱 사이즈는 0보다 커야 합니다: %s", tick)
	}
	adjusted := p.value.Div(tick).Truncate(0).Mul(tick)
	if adjusted.Sign() <= 0 {
		adjusted = tick
	}
	return NewPrice(adjusted)
}

// Cmp는 두 가격을 비교합니다 (-1, 0, 1)
func (p Price) Cmp(other Price) int { return p.value.Cmp(other.value) }

// Equal은 두 가격이 같은 값인지 확인합니다
func (p Price) Equal(other Price) bool { return p.value.Equal(other.value) }

func (p Price) String() string { return p.value.String() }

// AvgBuyPrice는 평균 매수가를 나타냅니다. Price와 달리 0을 허용합니다.
type AvgBuyPrice struct {
	value decimal.Decimal
}

// NewAvgBuyPrice는 평균 매수가를 검증하고 생성합니다
func NewAvgBuyPrice(v decimal.Decimal) (AvgBuyPrice, error) {
	if v.Sign() < 0 {
		return AvgBuyPrice{}, newDomainError(ErrInvalidAvgBuyPrice, "평균 매수가는 0 이상이어야 합니다: %s", v)
	}
	return AvgBuyPrice{value: v}, nil
}

// NewAvgBuyPriceFromString은 문자열에서 평균 매수가를 생성합니다
func NewAvgBuyPriceFromString(s string) (AvgBuyPrice, error) {
	d, err := parseDecimal(s, ErrInvalidAvgBuyPrice)
	if err != nil {
		return AvgBuyPrice{}, err
	}
	return NewAvgBuyPrice(d)
}

// Value는 평균 매수가 값을 반환합니다
func (p AvgBuyPrice) Value() decimal.Decimal { return p.value }

func (p AvgBuyPrice) String() string { return p.value.String() }

// PriceChange는 부호 있는 가격 변화량을 나타냅니다. 어떤 값이든 허용합니다.
type PriceChange struct {
	value decimal.Decimal
}

// NewPriceChange는 가격 변화량을 생성합니다
func NewPriceChange(v decimal.Decimal) PriceChange {
	return PriceChange{value: v}
}

// Value는 변화량 값을 반환합니다
func (c PriceChange) Value() decimal.Decimal { return c.value }

func (c PriceChange) String() string { return c.value.String() }
