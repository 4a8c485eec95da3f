package domain

import "time"

// Change는 전일 대비 가격 변화 방향입니다
type Change string

const (
	ChangeRise Change = "RISE" // 상승
	ChangeEven Change = "EVEN" // 보합
	ChangeFall Change = "FALL" // 하락
)

// Ticker는 현재가 스냅샷입니다. 변화량/변화율은 부호 없는 값과
// 부호 있는 값을 모두 가집니다.
type Ticker struct {
	Pair             TradingPair
	TradePrice       Price
	OpeningPrice     Price
	HighPrice        Price
	LowPrice         Price
	PrevClosingPrice Price
	Change           Change
	ChangePrice      PriceChange
	ChangeRate       ChangeRate
	SignedChangePrice PriceChange
	SignedChangeRate  ChangeRate
	AccTradeVolume   Volume
	AccTradePrice    Amount
	Timestamp        time.Time
}
