package domain

import (
	"github.com/shopspring/decimal"
)

// 공통 소수점 스케일 정책
const (
	// PriceScale은 가격/평균가 계산에 사용하는 소수점 자릿수입니다
	PriceScale = 8
	// PercentScale은 비율(체결률 등) 계산에 사용하는 소수점 자릿수입니다
	PercentScale = 2
	// VolumeScale은 수량이 허용하는 최대 소수점 자릿수입니다
	VolumeScale = 8
)

// parseDecimal은 문자열을 decimal로 파싱합니다.
// 파싱 실패는 제약 위반과 구분되는 에러 종류로 보고합니다.
func parseDecimal(s string, kind DomainErrorKind) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, newDomainError(kind, "숫자 형식이 아닙니다: %s", s)
	}
	return d, nil
}
