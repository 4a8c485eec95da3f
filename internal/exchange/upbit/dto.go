package upbit

import (
	"github.com/shopspring/decimal"
)

// REST 응답 DTO. 수치 필드는 와이어에서 문자열로도 숫자로도 올 수 있어
// decimal.Decimal로 직접 받습니다.

type orderResponse struct {
	UUID            string           `json:"uuid"`
	Side            string           `json:"side"`
	OrdType         string           `json:"ord_type"`
	Price           *decimal.Decimal `json:"price"`
	State           string           `json:"state"`
	Market          string           `json:"market"`
	CreatedAt       string           `json:"created_at"`
	Volume          *decimal.Decimal `json:"volume"`
	RemainingVolume decimal.Decimal  `json:"remaining_volume"`
	ExecutedVolume  decimal.Decimal  `json:"executed_volume"`
	TradesCount     int              `json:"trades_count"`
	PaidFee         decimal.Decimal  `json:"paid_fee"`
	Locked          *decimal.Decimal `json:"locked"`
	ExecutedFunds   *decimal.Decimal `json:"executed_funds"`
}

type balanceResponse struct {
	Currency            string          `json:"currency"`
	Balance             decimal.Decimal `json:"balance"`
	Locked              decimal.Decimal `json:"locked"`
	AvgBuyPrice         decimal.Decimal `json:"avg_buy_price"`
	AvgBuyPriceModified bool            `json:"avg_buy_price_modified"`
	UnitCurrency        string          `json:"unit_currency"`
}

type orderChanceResponse struct {
	BidFee     decimal.Decimal `json:"bid_fee"`
	AskFee     decimal.Decimal `json:"ask_fee"`
	Market     marketInfo      `json:"market"`
	BidAccount balanceResponse `json:"bid_account"`
	AskAccount balanceResponse `json:"ask_account"`
}

type marketInfo struct {
	ID         string           `json:"id"`
	Name       string           `json:"name"`
	OrderTypes []string         `json:"order_types"`
	Ask        marketConstraint `json:"ask"`
	Bid        marketConstraint `json:"bid"`
	State      string           `json:"state"`
}

type marketConstraint struct {
	Currency string          `json:"currency"`
	MinTotal decimal.Decimal `json:"min_total"`
}

type candleResponse struct {
	Market               string          `json:"market"`
	CandleDateTimeUTC    string          `json:"candle_date_time_utc"`
	OpeningPrice         decimal.Decimal `json:"opening_price"`
	HighPrice            decimal.Decimal `json:"high_price"`
	LowPrice             decimal.Decimal `json:"low_price"`
	TradePrice           decimal.Decimal `json:"trade_price"`
	Timestamp            int64           `json:"timestamp"`
	CandleAccTradePrice  decimal.Decimal `json:"candle_acc_trade_price"`
	CandleAccTradeVolume decimal.Decimal `json:"candle_acc_trade_volume"`
}

type tickerResponse struct {
	Market            string          `json:"market"`
	TradePrice        decimal.Decimal `json:"trade_price"`
	OpeningPrice      decimal.Decimal `json:"opening_price"`
	HighPrice         decimal.Decimal `json:"high_price"`
	LowPrice          decimal.Decimal `json:"low_price"`
	PrevClosingPrice  decimal.Decimal `json:"prev_closing_price"`
	Change            string          `json:"change"`
	ChangePrice       decimal.Decimal `json:"change_price"`
	ChangeRate        decimal.Decimal `json:"change_rate"`
	SignedChangePrice decimal.Decimal `json:"signed_change_price"`
	SignedChangeRate  decimal.Decimal `json:"signed_change_rate"`
	AccTradeVolume    decimal.Decimal `json:"acc_trade_volume"`
	AccTradePrice     decimal.Decimal `json:"acc_trade_price"`
	Timestamp         int64           `json:"timestamp"`
}

type orderbookResponse struct {
	Market         string                  `json:"market"`
	Timestamp      int64                   `json:"timestamp"`
	TotalAskSize   decimal.Decimal         `json:"total_ask_size"`
	TotalBidSize   decimal.Decimal         `json:"total_bid_size"`
	OrderbookUnits []orderbookUnitResponse `json:"orderbook_units"`
}

type orderbookUnitResponse struct {
	AskPrice decimal.Decimal `json:"ask_price"`
	BidPrice decimal.Decimal `json:"bid_price"`
	AskSize  decimal.Decimal `json:"ask_size"`
	BidSize  decimal.Decimal `json:"bid_size"`
}

type tradeResponse struct {
	Market           string          `json:"market"`
	TradePrice       decimal.Decimal `json:"trade_price"`
	TradeVolume      decimal.Decimal `json:"trade_volume"`
	AskBid           string          `json:"ask_bid"`
	PrevClosingPrice decimal.Decimal `json:"prev_closing_price"`
	ChangePrice      decimal.Decimal `json:"change_price"`
	Timestamp        int64           `json:"timestamp"`
	SequentialID     int64           `json:"sequential_id"`
}
