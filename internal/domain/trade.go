package domain

import "time"

// AskBid는 체결의 방향입니다
type AskBid string

const (
	Ask AskBid = "ASK" // 매도 체결
	Bid AskBid = "BID" // 매수 체결
)

// Trade는 개별 체결 틱입니다. SequentialID는 체결 목록 커서 페이징에 사용됩니다.
type Trade struct {
	Pair             TradingPair
	TradePrice       Price
	TradeVolume      Volume
	AskBid           AskBid
	PrevClosingPrice Price
	Change           Change
	Timestamp        time.Time
	SequentialID     TradeSequentialID
}
