package upbit

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/MALLLAG/crypto-quant/internal/domain"
)

// WebSocket 프레임 DTO. REST와 필드 이름이 다른 부분이 있어 별도로 둡니다.

type wsTickerMessage struct {
	Type              string          `json:"type"`
	Code              string          `json:"code"`
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

type wsTradeMessage struct {
	Type             string          `json:"type"`
	Code             string          `json:"code"`
	TradePrice       decimal.Decimal `json:"trade_price"`
	TradeVolume      decimal.Decimal `json:"trade_volume"`
	AskBid           string          `json:"ask_bid"`
	PrevClosingPrice decimal.Decimal `json:"prev_closing_price"`
	Change           string          `json:"change"`
	Timestamp        int64           `json:"timestamp"`
	SequentialID     int64           `json:"sequential_id"`
}

type wsOrderbookMessage struct {
	Type           string                  `json:"type"`
	Code           string                  `json:"code"`
	Timestamp      int64                   `json:"timestamp"`
	TotalAskSize   decimal.Decimal         `json:"total_ask_size"`
	TotalBidSize   decimal.Decimal         `json:"total_bid_size"`
	OrderbookUnits []orderbookUnitResponse `json:"orderbook_units"`
}

type wsMyOrderMessage struct {
	Type            string           `json:"type"`
	Code            string           `json:"code"`
	UUID            string           `json:"uuid"`
	AskBid          string           `json:"ask_bid"`
	OrderType       string           `json:"order_type"`
	State           string           `json:"state"`
	TradeUUID       *string          `json:"trade_uuid"`
	Price           *decimal.Decimal `json:"price"`
	AvgPrice        *decimal.Decimal `json:"avg_price"`
	Volume          *decimal.Decimal `json:"volume"`
	RemainingVolume *decimal.Decimal `json:"remaining_volume"`
	ExecutedVolume  *decimal.Decimal `json:"executed_volume"`
	PaidFee         *decimal.Decimal `json:"paid_fee"`
	ExecutedFunds   *decimal.Decimal `json:"executed_funds"`
	TradeFee        *decimal.Decimal `json:"trade_fee"`
	TradeTimestamp  *int64           `json:"trade_timestamp"`
	OrderTimestamp  *int64           `json:"order_timestamp"`
}

func (m wsTickerMessage) toDomain() (domain.Ticker, error) {
	return toTicker(tickerResponse{
		Market:            m.Code,
		TradePrice:        m.TradePrice,
		OpeningPrice:      m.OpeningPrice,
		HighPrice:         m.HighPrice,
		LowPrice:          m.LowPrice,
		PrevClosingPrice:  m.PrevClosingPrice,
		Change:            m.Change,
		ChangePrice:       m.ChangePrice,
		ChangeRate:        m.ChangeRate,
		SignedChangePrice: m.SignedChangePrice,
		SignedChangeRate:  m.SignedChangeRate,
		AccTradeVolume:    m.AccTradeVolume,
		AccTradePrice:     m.AccTradePrice,
		Timestamp:         m.Timestamp,
	})
}

func (m wsTradeMessage) toDomain() (domain.Trade, error) {
	return toTrade(tradeResponse{
		Market:           m.Code,
		TradePrice:       m.TradePrice,
		TradeVolume:      m.TradeVolume,
		AskBid:           m.AskBid,
		PrevClosingPrice: m.PrevClosingPrice,
		Timestamp:        m.Timestamp,
		SequentialID:     m.SequentialID,
	})
}

func (m wsOrderbookMessage) toDomain() (domain.Orderbook, error) {
	return toOrderbook(orderbookResponse{
		Market:         m.Code,
		Timestamp:      m.Timestamp,
		TotalAskSize:   m.TotalAskSize,
		TotalBidSize:   m.TotalBidSize,
		OrderbookUnits: m.OrderbookUnits,
	})
}

// toOrderEvent는 myOrder 프레임을 상태 문자열에 따라 주문 이벤트로
// 분류합니다. 알 수 없는 상태는 생성 이벤트로 흘려보내되 경고를 남겨
// 운영자가 신종 상태를 발견할 수 있게 합니다.
func (m wsMyOrderMessage) toOrderEvent(logger zerolog.Logger) (domain.OrderEvent, error) {
	orderID, err := domain.NewOrderID(m.UUID)
	if err != nil {
		return nil, invalidResponse(err)
	}
	occurred := m.occurredAt()

	switch m.State {
	case "wait", "watch":
		return m.toCreated(orderID, occurred)
	case "trade", "done":
		return m.toExecuted(orderID, occurred)
	case "cancel", "prevented":
		return domain.OrderCancelled{OrderID: orderID, Occurred: occurred}, nil
	default:
		logger.Warn().
			Str("state", m.State).
			Str("order_id", m.UUID).
			Msg("알 수 없는 주문 상태, 생성 이벤트로 처리")
		return m.toCreated(orderID, occurred)
	}
}

func (m wsMyOrderMessage) occurredAt() time.Time {
	if m.TradeTimestamp != nil {
		return time.UnixMilli(*m.TradeTimestamp).UTC()
	}
	if m.OrderTimestamp != nil {
		return time.UnixMilli(*m.OrderTimestamp).UTC()
	}
	return time.Now().UTC()
}

func (m wsMyOrderMessage) toCreated(orderID domain.OrderID, occurred time.Time) (domain.OrderEvent, error) {
	pair, err := domain.ParseTradingPair(m.Code)
	if err != nil {
		return nil, invalidResponse(err)
	}

	volume := decimal.Zero
	if m.Volume != nil {
		volume = *m.Volume
	}
	price := decimal.Zero
	if m.Price != nil {
		price = *m.Price
	}
	orderType, err := parseOrderType(m.OrderType, volume, price)
	if err != nil {
		return nil, invalidOrderResponse(err)
	}

	return domain.OrderCreated{
		OrderID:   orderID,
		Pair:      pair,
		Side:      parseSide(m.AskBid),
		OrderType: orderType,
		Occurred:  occurred,
	}, nil
}

func (m wsMyOrderMessage) toExecuted(orderID domain.OrderID, occurred time.Time) (domain.OrderEvent, error) {
	tradeRef := m.UUID
	if m.TradeUUID != nil && *m.TradeUUID != "" {
		tradeRef = *m.TradeUUID
	}
	tradeID, err := domain.NewTradeID(tradeRef)
	if err != nil {
		return nil, invalidResponse(err)
	}

	rawVolume := decimal.Zero
	if m.Volume != nil {
		rawVolume = *m.Volume
	}
	volume, err := domain.NewVolume(rawVolume)
	if err != nil {
		return nil, invalidResponse(err)
	}

	rawPrice := decimal.NewFromInt(1)
	if m.Price != nil && m.Price.Sign() > 0 {
		rawPrice = *m.Price
	} else if m.AvgPrice != nil && m.AvgPrice.Sign() > 0 {
		rawPrice = *m.AvgPrice
	}
	price, err := domain.NewPrice(rawPrice)
	if err != nil {
		return nil, invalidResponse(err)
	}

	rawFee := decimal.Zero
	if m.TradeFee != nil {
		rawFee = *m.TradeFee
	} else if m.PaidFee != nil {
		rawFee = *m.PaidFee
	}
	fee, err := domain.NewAmount(rawFee)
	if err != nil {
		return nil, invalidResponse(err)
	}

	return domain.OrderExecuted{
		OrderID:        orderID,
		TradeID:        tradeID,
		ExecutedVolume: volume,
		ExecutedPrice:  price,
		Fee:            fee,
		Occurred:       occurred,
	}, nil
}

// messageType은 프레임의 타입 판별자를 읽습니다
func messageType(data []byte) (string, error) {
	var envelope struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return "", err
	}
	return envelope.Type, nil
}
