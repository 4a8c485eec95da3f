package exchange

import (
	"context"
	"time"

	"github.com/MALLLAG/crypto-quant/internal/domain"
)

// ExchangeGateway는 거래소의 주문/계정 기능에 대한 인터페이스입니다.
// 모든 연산은 실패 시 게이트웨이 에러 분류 중 하나를 반환합니다.
type ExchangeGateway interface {
	// 주문 기능
	PlaceOrder(ctx context.Context, req domain.ValidatedOrderRequest) (domain.Order, error)
	CancelOrder(ctx context.Context, id domain.OrderID) (domain.Order, error)
	GetOrder(ctx context.Context, id domain.OrderID) (domain.Order, error)
	GetOpenOrders(ctx context.Context, pair *domain.TradingPair, page PageRequest) (PageResponse[domain.Order], error)

	// 계정 기능
	GetBalances(ctx context.Context) ([]domain.Balance, error)
	GetOrderChance(ctx context.Context, pair domain.TradingPair) (domain.OrderChance, error)
}

// QuotationGateway는 시세 조회 기능에 대한 인터페이스입니다
type QuotationGateway interface {
	// GetCandles는 캔들을 조회합니다. count는 최대 200입니다.
	GetCandles(ctx context.Context, pair domain.TradingPair, unit domain.CandleUnit, count int, to *time.Time) ([]domain.Candle, error)
	GetTicker(ctx context.Context, pairs []domain.TradingPair) ([]domain.Ticker, error)
	GetOrderbook(ctx context.Context, pairs []domain.TradingPair) ([]domain.Orderbook, error)
	// GetTrades는 체결 틱을 조회합니다. count는 최대 500입니다.
	GetTrades(ctx context.Context, pair domain.TradingPair, count int, cursor *string) ([]domain.Trade, error)
}

// RealtimeStream은 실시간 구독 기능에 대한 인터페이스입니다.
// 각 구독은 독립된 연결을 소유하며 반환된 채널로 데이터를 전달합니다.
// 재연결 한도 소진 또는 컨텍스트 취소 시 채널이 닫히며, 닫힌 스트림은
// 재시작할 수 없고 새로 구독해야 합니다.
type RealtimeStream interface {
	SubscribeTicker(ctx context.Context, pairs []domain.TradingPair) (<-chan domain.Ticker, error)
	SubscribeOrderbook(ctx context.Context, pairs []domain.TradingPair) (<-chan domain.Orderbook, error)
	SubscribeTrade(ctx context.Context, pairs []domain.TradingPair) (<-chan domain.Trade, error)
	SubscribeMyOrder(ctx context.Context) (<-chan domain.OrderEvent, error)
}
