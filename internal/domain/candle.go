package domain

import (
	"fmt"
	"time"
)

// CandleUnitKind는 캔들 단위의 종류입니다
type CandleUnitKind int

const (
	UnitSeconds CandleUnitKind = iota + 1
	UnitMinutes
	UnitDay
	UnitWeek
	UnitMonth
)

// 분봉에서 허용하는 단위 집합
var allowedMinutes = map[int]bool{1: true, 3: true, 5: true, 10: true, 15: true, 30: true, 60: true, 240: true}

// CandleUnit은 캔들 집계 단위입니다. 초봉(1초만 허용, WebSocket 전용),
// 분봉(1,3,5,10,15,30,60,240), 일봉, 주봉, 월봉 중 하나입니다.
type CandleUnit struct {
	kind    CandleUnitKind
	minutes int
}

// 고정 단위 상수
var (
	SecondsUnit = CandleUnit{kind: UnitSeconds}
	DayUnit     = CandleUnit{kind: UnitDay}
	WeekUnit    = CandleUnit{kind: UnitWeek}
	MonthUnit   = CandleUnit{kind: UnitMonth}
)

// NewMinutesUnit은 분봉 단위를 생성합니다.
// 1, 3, 5, 10, 15, 30, 60, 240 이외의 값은 거부합니다.
func NewMinutesUnit(minutes int) (CandleUnit, error) {
	if !allowedMinutes[minutes] {
		return CandleUnit{}, newDomainError(ErrInvalidCandleUnit, "지원하지 않는 분봉 단위입니다: %d", minutes)
	}
	return CandleUnit{kind: UnitMinutes, minutes: minutes}, nil
}

// Kind는 단위 종류를 반환합니다
func (u CandleUnit) Kind() CandleUnitKind { return u.kind }

// Minutes는 분봉의 분 단위를 반환합니다. 분봉이 아니면 0입니다.
func (u CandleUnit) Minutes() int { return u.minutes }

// IsWebSocketOnly는 REST로 조회할 수 없는 단위(초봉)인지 확인합니다
func (u CandleUnit) IsWebSocketOnly() bool { return u.kind == UnitSeconds }

// Code는 와이어 단위 코드를 반환합니다 (1s, 5m, 1d, 1w, 1M)
func (u CandleUnit) Code() string {
	switch u.kind {
	case UnitSeconds:
		return "1s"
	case UnitMinutes:
		return fmt.Sprintf("%dm", u.minutes)
	case UnitDay:
		return "1d"
	case UnitWeek:
		return "1w"
	case UnitMonth:
		return "1M"
	default:
		return ""
	}
}

// Candle은 한 단위 구간의 시고저종/거래량을 나타냅니다
type Candle struct {
	Pair      TradingPair
	Unit      CandleUnit
	Timestamp time.Time
	Open      Price
	High      Price
	Low       Price
	Close     Price
	Volume    Volume
	Amount    Amount
}

// NewCandle은 캔들을 검증하고 생성합니다.
// 고가는 시가/저가/종가 이상, 저가는 시가/종가 이하이어야 합니다.
func NewCandle(
	pair TradingPair,
	unit CandleUnit,
	timestamp time.Time,
	open, high, low, close Price,
	volume Volume,
	amount Amount,
) (Candle, error) {
	if high.Cmp(open) < 0 || high.Cmp(low) < 0 || high.Cmp(close) < 0 {
		return Candle{}, newDomainError(ErrInvalidCandle, "고가는 시가/저가/종가 이상이어야 합니다")
	}
	if low.Cmp(open) > 0 || low.Cmp(close) > 0 {
		return Candle{}, newDomainError(ErrInvalidCandle, "저가는 시가/종가 이하이어야 합니다")
	}
	return Candle{
		Pair:      pair,
		Unit:      unit,
		Timestamp: timestamp,
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    volume,
		Amount:    amount,
	}, nil
}
