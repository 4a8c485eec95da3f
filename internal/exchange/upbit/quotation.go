package upbit

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// 시세 조회 개수 상한 (거래소 제한)
const (
	candlesMaxCount = 200
	tradesMaxCount  = 500
)

// Quotation은 QuotationGateway의 Upbit 구현입니다
type Quotation struct {
	client *Client
}

// NewQuotation은 Upbit 시세 게이트웨이를 생성합니다
func NewQuotation(client *Client) *Quotation {
	return &Quotation{client: client}
}

// GetCandles는 캔들을 조회합니다. count는 1..200으로 보정합니다.
// 초봉은 REST로 제공되지 않습니다.
func (q *Quotation) GetCandles(ctx context.Context, pair domain.TradingPair, unit domain.CandleUnit, count int, to *time.Time) ([]domain.Candle, error) {
	path, err := candlePath(unit)
	if err != nil {
		return nil, err
	}

	if count < 1 {
		count = 1
	}
	if count > candlesMaxCount {
		count = candlesMaxCount
	}

	params := NewParams().
		Add("market", pair.Value()).
		Add("count", strconv.Itoa(count))
	if to != nil {
		params.Add("to", to.UTC().Format("2006-01-02T15:04:05Z"))
	}

	var res []candleResponse
	if err := q.client.getPublic(ctx, path, params, &res); err != nil {
		return nil, err
	}

	candles := make([]domain.Candle, 0, len(res))
	for _, r := range res {
		candle, err := toCandle(pair, unit, r)
		if err != nil {
			return nil, err
		}
		candles = append(candles, candle)
	}
	return candles, nil
}

func candlePath(unit domain.CandleUnit) (string, error) {
	switch unit.Kind() {
	case domain.UnitSeconds:
		return "", &exchange.ApiError{
			Code:    "UNSUPPORTED",
			Message: "초봉은 REST로 조회할 수 없습니다",
		}
	case domain.UnitMinutes:
		return fmt.Sprintf("/v1/candles/minutes/%d", unit.Minutes()), nil
	case domain.UnitDay:
		return "/v1/candles/days", nil
	case domain.UnitWeek:
		return "/v1/candles/weeks", nil
	case domain.UnitMonth:
		return "/v1/candles/months", nil
	default:
		return "", &exchange.ApiError{
			Code:    "UNSUPPORTED",
			Message: "지원하지 않는 캔들 단위입니다",
		}
	}
}

// GetTicker는 현재가를 조회합니다. 빈 목록 요청은 빈 결과를 반환합니다.
func (q *Quotation) GetTicker(ctx context.Context, pairs []domain.TradingPair) ([]domain.Ticker, error) {
	if len(pairs) == 0 {
		return []domain.Ticker{}, nil
	}

	params := NewParams().Add("markets", joinPairs(pairs))

	var res []tickerResponse
	if err := q.client.getPublic(ctx, "/v1/ticker", params, &res); err != nil {
		return nil, err
	}

	tickers := make([]domain.Ticker, 0, len(res))
	for _, r := range res {
		ticker, err := toTicker(r)
		if err != nil {
			return nil, err
		}
		tickers = append(tickers, ticker)
	}
	return tickers, nil
}

// GetOrderbook은 호가창을 조회합니다
func (q *Quotation) GetOrderbook(ctx context.Context, pairs []domain.TradingPair) ([]domain.Orderbook, error) {
	if len(pairs) == 0 {
		return []domain.Orderbook{}, nil
	}

	params := NewParams().Add("markets", joinPairs(pairs))

	var res []orderbookResponse
	if err := q.client.getPublic(ctx, "/v1/orderbook", params, &res); err != nil {
		return nil, err
	}

	books := make([]domain.Orderbook, 0, len(res))
	for _, r := range res {
		book, err := toOrderbook(r)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, nil
}

// GetTrades는 체결 틱을 조회합니다. count는 1..500으로 보정합니다.
func (q *Quotation) GetTrades(ctx context.Context, pair domain.TradingPair, count int, cursor *string) ([]domain.Trade, error) {
	if count < 1 {
		count = 1
	}
	if count > tradesMaxCount {
		count = tradesMaxCount
	}

	params := NewParams().
		Add("market", pair.Value()).
		Add("count", strconv.Itoa(count))
	if cursor != nil {
		params.Add("cursor", *cursor)
	}

	var res []tradeResponse
	if err := q.client.getPublic(ctx, "/v1/trades/ticks", params, &res); err != nil {
		return nil, err
	}

	trades := make([]domain.Trade, 0, len(res))
	for _, r := range res {
		trade, err := toTrade(r)
		if err != nil {
			return nil, err
		}
		trades = append(trades, trade)
	}
	return trades, nil
}

func joinPairs(pairs []domain.TradingPair) string {
	codes := make([]string, len(pairs))
	for i, p := range pairs {
		codes[i] = p.Value()
	}
	return strings.Join(codes, ",")
}
