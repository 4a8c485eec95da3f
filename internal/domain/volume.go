package domain

import (
	"github.com/shopspring/decimal"
)

// Volume은 주문/체결 수량을 나타냅니다.
// 0 이상이어야 하며 소수점 8자리까지만 허용합니다.
type Volume struct {
	value decimal.Decimal
}

// ZeroVolume은 수량 0입니다
var ZeroVolume = Volume{value: decimal.Zero}

// NewVolume은 수량을 검증하고 생성합니다
func NewVolume(v decimal.Decimal) (Volume, error) {
	if v.Sign() < 0 {
		return Volume{}, newDomainError(ErrInvalidVolume, "수량은 0 이상이어야 합니다: %s", v)
	}
	if !v.Equal(v.Truncate(VolumeScale)) {
		return Volume{}, newDomainError(ErrInvalidVolume, "수량은 소수점 %d자리까지만 허용됩니다: %s", VolumeScale, v)
	}
	return Volume{value: v}, nil
}

// NewVolumeFromString은 문자열에서 수량을 생성합니다
func NewVolumeFromString(s string) (Volume, error) {
	d, err := parseDecimal(s, ErrInvalidVolume)
	if err != nil {
		return Volume{}, err
	}
	return NewVolume(d)
}

// Value는 수량 값을 반환합니다
func (v Volume) Value() decimal.Decimal { return v.value }

// IsZero는 수량이 0인지 확인합니다
func (v Volume) IsZero() bool { return v.value.IsZero() }

// Add는 두 수량의 합을 반환합니다
func (v Volume) Add(other Volume) Volume {
	return Volume{value: v.value.Add(other.value)}
}

// Sub는 두 수량의 차를 반환합니다.
// 결과가 음수가 되면 (ZeroVolume, false)를 반환합니다.
func (v Volume) Sub(other Volume) (Volume, bool) {
	diff := v.value.Sub(other.value)
	if diff.Sign() < 0 {
		return ZeroVolume, false
	}
	return Volume{value: diff}, true
}

// Cmp는 두 수량을 비교합니다 (-1, 0, 1)
func (v Volume) Cmp(other Volume) int { return v.value.Cmp(other.value) }

// Equal은 두 수량이 같은 값인지 확인합니다
func (v Volume) Equal(other Volume) bool { return v.value.Equal(other.value) }

func (v Volume) String() string { return v.value.String() }

// Amount는 명목 금액(수량 × 가격 또는 직접 지정한 총액)을 나타냅니다.
// 0 이상이어야 합니다.
type Amount struct {
	value decimal.Decimal
}

// ZeroAmount는 금액 0입니다
var ZeroAmount = Amount{value: decimal.Zero}

// NewAmount는 금액을 검증하고 생성합니다
func NewAmount(v decimal.Decimal) (Amount, error) {
	if v.Sign() < 0 {
		return Amount{}, newDomainError(ErrInvalidAmount, "금액은 0 이상이어야 합니다: %s", v)
	}
	return Amount{value: v}, nil
}

// NewAmountFromString은 문자열에서 금액을 생성합니다
func NewAmountFromString(s string) (Amount, error) {
	d, err := parseDecimal(s, ErrInvalidAmount)
	if err != nil {
		return Amount{}, err
	}
	return NewAmount(d)
}

// Value는 금액 값을 반환합니다
func (a Amount) Value() decimal.Decimal { return a.value }

// IsZero는 금액이 0인지 확인합니다
func (a Amount) IsZero() bool { return a.value.IsZero() }

// Add는 두 금액의 합을 반환합니다
func (a Amount) Add(other Amount) Amount {
	return Amount{value: a.value.Add(other.value)}
}

// Sub는 두 금액의 차를 반환합니다.
// 결과가 음수가 되면 (ZeroAmount, false)를 반환합니다.
func (a Amount) Sub(other Amount) (Amount, bool) {
	diff := a.value.Sub(other.value)
	if diff.Sign() < 0 {
		return ZeroAmount, false
	}
	return Amount{value: diff}, true
}

// Cmp는 두 금액을 비교합니다 (-1, 0, 1)
func (a Amount) Cmp(other Amount) int { return a.value.Cmp(other.value) }

// Equal은 두 금액이 같은 값인지 확인합니다
func (a Amount) Equal(other Amount) bool { return a.value.Equal(other.value) }

func (a Amount) String() string { return a.value.String() }
