package domain

import "time"

// OrderbookUnit은 호가창의 한 단계입니다
type OrderbookUnit struct {
	AskPrice Price
	BidPrice Price
	AskSize  Volume
	BidSize  Volume
}

// Orderbook은 호가창 스냅샷입니다
type Orderbook struct {
	Pair         TradingPair
	Timestamp    time.Time
	TotalAskSize Volume
	TotalBidSize Volume
	Units        []OrderbookUnit
}

// BestBidPrice는 가장 높은 매수 호가를 반환합니다.
// 호가가 비어 있으면 (Price{}, false)를 반환합니다.
func (b Orderbook) BestBidPrice() (Price, bool) {
	if len(b.Units) == 0 {
		return Price{}, false
	}
	best := b.Units[0].BidPrice
	for _, u := range b.Units[1:] {
		if u.BidPrice.Cmp(best) > 0 {
			best = u.BidPrice
		}
	}
	return best, true
}

// BestAskPrice는 가장 낮은 매도 호가를 반환합니다.
// 호가가 비어 있으면 (Price{}, false)를 반환합니다.
func (b Orderbook) BestAskPrice() (Price, bool) {
	if len(b.Units) == 0 {
		return Price{}, false
	}
	best := b.Units[0].AskPrice
	for _, u := range b.Units[1:] {
		if u.AskPrice.Cmp(best) < 0 {
			best = u.AskPrice
		}
	}
	return best, true
}

// Spread는 최우선 매도 호가와 최우선 매수 호가의 차이를 반환합니다.
// 호가가 비어 있으면 (PriceChange{}, false)를 반환합니다.
func (b Orderbook) Spread() (PriceChange, bool) {
	ask, okAsk := b.BestAskPrice()
	bid, okBid := b.BestBidPrice()
	if !okAsk || !okBid {
		return PriceChange{}, false
	}
	return NewPriceChange(ask.Value().Sub(bid.Value())), true
}
