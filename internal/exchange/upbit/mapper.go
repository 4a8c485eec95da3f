package upbit

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// DTO → 도메인 변환. 값 타입 생성 실패는 전부 InvalidResponse로 감싸서
// 게이트웨이 경계 밖으로 도메인 에러가 새어 나가지 않게 합니다.

// orderDateTimeLayout은 거래소의 기본 주문 시각 형식입니다 (UTC로 해석)
const orderDateTimeLayout = "2006-01-02T15:04:05"

func invalidResponse(err error) error {
	return &exchange.InvalidResponseError{Code: "INVALID_RESPONSE", Message: err.Error()}
}

func invalidOrderResponse(err error) error {
	return &exchange.InvalidResponseError{Code: "INVALID_ORDER_RESPONSE", Message: err.Error()}
}

func parseSide(s string) domain.OrderSide {
	if strings.EqualFold(s, "bid") {
		return domain.SideBid
	}
	return domain.SideAsk
}

func sideCode(side domain.OrderSide) string {
	if side == domain.SideBid {
		return "bid"
	}
	return "ask"
}

func parseState(s string) domain.OrderState {
	switch strings.ToLower(s) {
	case "wait":
		return domain.StateWait
	case "watch":
		return domain.StateWatch
	case "done":
		return domain.StateDone
	case "cancel":
		return domain.StateCancel
	default:
		return domain.StateWait
	}
}

func parseAskBid(s string) domain.AskBid {
	if strings.EqualFold(s, "ASK") {
		return domain.Ask
	}
	return domain.Bid
}

func parseChange(s string) domain.Change {
	switch strings.ToUpper(s) {
	case "RISE":
		return domain.ChangeRise
	case "FALL":
		return domain.ChangeFall
	default:
		return domain.ChangeEven
	}
}

// parseOrderType은 와이어 주문 유형 코드와 수량/가격 필드로 주문 유형을
// 복원합니다. 시장가 주문 응답은 유형에 따라 가격이나 수량을 생략하므로
// 생략된 필드는 0으로 취급하고, 지정가의 가격이 양수가 아니면 최소 유효
// 가격 1을 대입합니다.
func parseOrderType(code string, volume, price decimal.Decimal) (domain.OrderType, error) {
	switch strings.ToLower(code) {
	case "price":
		total, err := domain.NewAmount(price)
		if err != nil {
			return nil, err
		}
		return domain.NewMarketBuy(total)
	case "market":
		vol, err := domain.NewVolume(volume)
		if err != nil {
			return nil, err
		}
		return domain.NewMarketSell(vol)
	case "best":
		vol, err := domain.NewVolume(volume)
		if err != nil {
			return nil, err
		}
		return domain.NewBest(vol)
	default: // limit 및 알 수 없는 코드
		vol, err := domain.NewVolume(volume)
		if err != nil {
			return nil, err
		}
		if price.Sign() <= 0 {
			price = decimal.NewFromInt(1)
		}
		p, err := domain.NewPrice(price)
		if err != nil {
			return nil, err
		}
		return domain.NewLimit(vol, p)
	}
}

// parseOrderDateTime은 주문 시각을 파싱합니다.
// 기본 형식 실패 시 RFC3339를 시도하고, 그래도 실패하면 수신 시각을 씁니다.
func parseOrderDateTime(s string) time.Time {
	if t, err := time.ParseInLocation(orderDateTimeLayout, s, time.UTC); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Now().UTC()
}

func toOrder(res orderResponse) (domain.Order, error) {
	id, err := domain.NewOrderID(res.UUID)
	if err != nil {
		return domain.Order{}, invalidResponse(err)
	}
	pair, err := domain.ParseTradingPair(res.Market)
	if err != nil {
		return domain.Order{}, invalidResponse(err)
	}

	volume := decimal.Zero
	if res.Volume != nil {
		volume = *res.Volume
	}
	price := decimal.Zero
	if res.Price != nil {
		price = *res.Price
	}

	orderType, err := parseOrderType(res.OrdType, volume, price)
	if err != nil {
		return domain.Order{}, invalidOrderResponse(err)
	}

	remaining, err := domain.NewVolume(res.RemainingVolume)
	if err != nil {
		return domain.Order{}, invalidResponse(err)
	}
	executed, err := domain.NewVolume(res.ExecutedVolume)
	if err != nil {
		return domain.Order{}, invalidResponse(err)
	}

	executedFunds := res.ExecutedVolume.Mul(price)
	if res.ExecutedFunds != nil {
		executedFunds = *res.ExecutedFunds
	}
	executedAmount, err := domain.NewAmount(executedFunds)
	if err != nil {
		return domain.Order{}, invalidResponse(err)
	}

	paidFee, err := domain.NewAmount(res.PaidFee)
	if err != nil {
		return domain.Order{}, invalidResponse(err)
	}

	state := parseState(res.State)
	createdAt := parseOrderDateTime(res.CreatedAt)
	var doneAt *time.Time
	if state.IsTerminal() {
		doneAt = &createdAt
	}

	order, err := domain.NewOrder(
		id, pair, parseSide(res.Side), orderType, state,
		remaining, executed, executedAmount, paidFee, createdAt, doneAt,
	)
	if err != nil {
		return domain.Order{}, invalidOrderResponse(err)
	}
	return order, nil
}

// toBalance는 잔고 응답을 도메인 잔고로 변환합니다.
// 잔고와 잠김이 모두 0인 빈 항목은 nil을 반환해 걸러냅니다.
func toBalance(res balanceResponse) (*domain.Balance, error) {
	if res.Balance.IsZero() && res.Locked.IsZero() {
		return nil, nil
	}

	currency, err := domain.NewCurrency(res.Currency)
	if err != nil {
		return nil, invalidResponse(err)
	}
	balance, err := domain.NewAmount(res.Balance)
	if err != nil {
		return nil, invalidResponse(err)
	}
	locked, err := domain.NewAmount(res.Locked)
	if err != nil {
		return nil, invalidResponse(err)
	}
	avgBuyPrice, err := domain.NewAvgBuyPrice(res.AvgBuyPrice)
	if err != nil {
		return nil, invalidResponse(err)
	}

	b, err := domain.NewBalance(currency, balance, locked, avgBuyPrice, res.AvgBuyPriceModified)
	if err != nil {
		return nil, invalidResponse(err)
	}
	return &b, nil
}

// toAccountBalance는 주문 가능 정보의 계정 항목을 변환합니다.
// 잔고 항목과 달리 0 잔고도 유효합니다.
func toAccountBalance(res balanceResponse) (domain.Balance, error) {
	currency, err := domain.NewCurrency(res.Currency)
	if err != nil {
		return domain.Balance{}, invalidResponse(err)
	}
	balance, err := domain.NewAmount(res.Balance)
	if err != nil {
		return domain.Balance{}, invalidResponse(err)
	}
	locked, err := domain.NewAmount(res.Locked)
	if err != nil {
		return domain.Balance{}, invalidResponse(err)
	}
	avgBuyPrice, err := domain.NewAvgBuyPrice(res.AvgBuyPrice)
	if err != nil {
		return domain.Balance{}, invalidResponse(err)
	}
	b, err := domain.NewBalance(currency, balance, locked, avgBuyPrice, res.AvgBuyPriceModified)
	if err != nil {
		return domain.Balance{}, invalidResponse(err)
	}
	return b, nil
}

func toOrderChance(res orderChanceResponse) (domain.OrderChance, error) {
	pair, err := domain.ParseTradingPair(res.Market.ID)
	if err != nil {
		return domain.OrderChance{}, invalidResponse(err)
	}
	bidFee, err := domain.NewFeeRate(res.BidFee)
	if err != nil {
		return domain.OrderChance{}, invalidResponse(err)
	}
	askFee, err := domain.NewFeeRate(res.AskFee)
	if err != nil {
		return domain.OrderChance{}, invalidResponse(err)
	}
	bidAccount, err := toAccountBalance(res.BidAccount)
	if err != nil {
		return domain.OrderChance{}, err
	}
	askAccount, err := toAccountBalance(res.AskAccount)
	if err != nil {
		return domain.OrderChance{}, err
	}
	minAmount, err := domain.NewAmount(res.Market.Bid.MinTotal)
	if err != nil {
		return domain.OrderChance{}, invalidResponse(err)
	}

	return domain.OrderChance{
		Pair:           pair,
		BidFee:         bidFee,
		AskFee:         askFee,
		BidAccount:     bidAccount,
		AskAccount:     askAccount,
		MinOrderAmount: minAmount,
	}, nil
}

func toCandle(pair domain.TradingPair, unit domain.CandleUnit, res candleResponse) (domain.Candle, error) {
	open, err := domain.NewPrice(res.OpeningPrice)
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}
	high, err := domain.NewPrice(res.HighPrice)
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}
	low, err := domain.NewPrice(res.LowPrice)
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}
	clse, err := domain.NewPrice(res.TradePrice)
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}
	volume, err := domain.NewVolume(res.CandleAccTradeVolume.Truncate(domain.VolumeScale))
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}
	amount, err := domain.NewAmount(res.CandleAccTradePrice)
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}

	timestamp, err := time.Parse(time.RFC3339, res.CandleDateTimeUTC+"Z")
	if err != nil {
		timestamp = time.UnixMilli(res.Timestamp).UTC()
	}

	candle, err := domain.NewCandle(pair, unit, timestamp, open, high, low, clse, volume, amount)
	if err != nil {
		return domain.Candle{}, invalidResponse(err)
	}
	return candle, nil
}

func toTicker(res tickerResponse) (domain.Ticker, error) {
	pair, err := domain.ParseTradingPair(res.Market)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	tradePrice, err := domain.NewPrice(res.TradePrice)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	opening, err := domain.NewPrice(res.OpeningPrice)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	high, err := domain.NewPrice(res.HighPrice)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	low, err := domain.NewPrice(res.LowPrice)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	prevClosing, err := domain.NewPrice(res.PrevClosingPrice)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	changeRate, err := domain.NewChangeRate(res.ChangeRate)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	signedChangeRate, err := domain.NewChangeRate(res.SignedChangeRate)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	accVolume, err := domain.NewVolume(res.AccTradeVolume.Truncate(domain.VolumeScale))
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}
	accPrice, err := domain.NewAmount(res.AccTradePrice)
	if err != nil {
		return domain.Ticker{}, invalidResponse(err)
	}

	return domain.Ticker{
		Pair:              pair,
		TradePrice:        tradePrice,
		OpeningPrice:      opening,
		HighPrice:         high,
		LowPrice:          low,
		PrevClosingPrice:  prevClosing,
		Change:            parseChange(res.Change),
		ChangePrice:       domain.NewPriceChange(res.ChangePrice),
		ChangeRate:        changeRate,
		SignedChangePrice: domain.NewPriceChange(res.SignedChangePrice),
		SignedChangeRate:  signedChangeRate,
		AccTradeVolume:    accVolume,
		AccTradePrice:     accPrice,
		Timestamp:         time.UnixMilli(res.Timestamp).UTC(),
	}, nil
}

func toOrderbook(res orderbookResponse) (domain.Orderbook, error) {
	pair, err := domain.ParseTradingPair(res.Market)
	if err != nil {
		return domain.Orderbook{}, invalidResponse(err)
	}
	totalAsk, err := domain.NewVolume(res.TotalAskSize.Truncate(domain.VolumeScale))
	if err != nil {
		return domain.Orderbook{}, invalidResponse(err)
	}
	totalBid, err := domain.NewVolume(res.TotalBidSize.Truncate(domain.VolumeScale))
	if err != nil {
		return domain.Orderbook{}, invalidResponse(err)
	}

	units := make([]domain.OrderbookUnit, 0, len(res.OrderbookUnits))
	for _, u := range res.OrderbookUnits {
		askPrice, err := domain.NewPrice(u.AskPrice)
		if err != nil {
			return domain.Orderbook{}, invalidResponse(err)
		}
		bidPrice, err := domain.NewPrice(u.BidPrice)
		if err != nil {
			return domain.Orderbook{}, invalidResponse(err)
		}
		askSize, err := domain.NewVolume(u.AskSize.Truncate(domain.VolumeScale))
		if err != nil {
			return domain.Orderbook{}, invalidResponse(err)
		}
		bidSize, err := domain.NewVolume(u.BidSize.Truncate(domain.VolumeScale))
		if err != nil {
			return domain.Orderbook{}, invalidResponse(err)
		}
		units = append(units, domain.OrderbookUnit{
			AskPrice: askPrice,
			BidPrice: bidPrice,
			AskSize:  askSize,
			BidSize:  bidSize,
		})
	}

	return domain.Orderbook{
		Pair:         pair,
		Timestamp:    time.UnixMilli(res.Timestamp).UTC(),
		TotalAskSize: totalAsk,
		TotalBidSize: totalBid,
		Units:        units,
	}, nil
}

func toTrade(res tradeResponse) (domain.Trade, error) {
	pair, err := domain.ParseTradingPair(res.Market)
	if err != nil {
		return domain.Trade{}, invalidResponse(err)
	}
	tradePrice, err := domain.NewPrice(res.TradePrice)
	if err != nil {
		return domain.Trade{}, invalidResponse(err)
	}
	tradeVolume, err := domain.NewVolume(res.TradeVolume)
	if err != nil {
		return domain.Trade{}, invalidResponse(err)
	}
	prevClosing, err := domain.NewPrice(res.PrevClosingPrice)
	if err != nil {
		return domain.Trade{}, invalidResponse(err)
	}
	sequentialID, err := domain.NewTradeSequentialID(res.SequentialID)
	if err != nil {
		return domain.Trade{}, invalidResponse(err)
	}

	change := domain.ChangeEven
	switch res.TradePrice.Cmp(res.PrevClosingPrice) {
	case 1:
		change = domain.ChangeRise
	case -1:
		change = domain.ChangeFall
	}

	return domain.Trade{
		Pair:             pair,
		TradePrice:       tradePrice,
		TradeVolume:      tradeVolume,
		AskBid:           parseAskBid(res.AskBid),
		PrevClosingPrice: prevClosing,
		Change:           change,
		Timestamp:        time.UnixMilli(res.Timestamp).UTC(),
		SequentialID:     sequentialID,
	}, nil
}
