package domain

import (
	"github.com/shopspring/decimal"
)

// FeeRate는 수수료율을 나타냅니다. [0, 1] 범위만 허용합니다.
type FeeRate struct {
	value decimal.Decimal
}

// NewFeeRate는 수수료율을 검증하고 생성합니다
func NewFeeRate(v decimal.Decimal) (FeeRate, error) {
	if v.Sign() < 0 || v.GreaterThan(decimal.NewFromInt(1)) {
		return FeeRate{}, newDomainError(ErrInvalidFeeRate, "수수료율은 0 이상 1 이하이어야 합니다: %s", v)
	}
	return FeeRate{value: v}, nil
}

// NewFeeRateFromString은 문자열에서 수수료율을 생성합니다
func NewFeeRateFromString(s string) (FeeRate, error) {
	d, err := parseDecimal(s, ErrInvalidFeeRate)
	if err != nil {
		return FeeRate{}, err
	}
	return NewFeeRate(d)
}

// Value는 수수료율 값을 반환합니다
func (r FeeRate) Value() decimal.Decimal { return r.value }

func (r FeeRate) String() string { return r.value.String() }

// ChangeRate는 전일 대비 변화율을 나타냅니다. -1 미만은 허용하지 않습니다.
type ChangeRate struct {
	value decimal.Decimal
}

// NewChangeRate는 변화율을 검증하고 생성합니다
func NewChangeRate(v decimal.Decimal) (ChangeRate, error) {
	if v.LessThan(decimal.NewFromInt(-1)) {
		return ChangeRate{}, newDomainError(ErrInvalidChangeRate, "변화율은 -1 이상이어야 합니다: %s", v)
	}
	return ChangeRate{value: v}, nil
}

// Value는 변화율 값을 반환합니다
func (r ChangeRate) Value() decimal.Decimal { return r.value }

func (r ChangeRate) String() string { return r.value.String() }
