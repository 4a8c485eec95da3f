package upbit

import (
	"context"
	"strconv"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// 미체결 주문 조회의 페이지 크기 상한 (거래소 제한)
const openOrdersMaxLimit = 100

// Gateway는 ExchangeGateway의 Upbit 구현입니다
type Gateway struct {
	client *Client
}

// NewGateway는 Upbit 주문/계정 게이트웨이를 생성합니다
func NewGateway(client *Client) *Gateway {
	return &Gateway{client: client}
}

// PlaceOrder는 검증된 주문 요청을 제출합니다.
// 파라미터 순서는 서명 정규 문자열에 그대로 들어가므로 유지해야 합니다.
func (g *Gateway) PlaceOrder(ctx context.Context, req domain.ValidatedOrderRequest) (domain.Order, error) {
	params := NewParams().
		Add("market", req.Pair.Value()).
		Add("side", sideCode(req.Side)).
		Add("ord_type", req.Type.Code())

	switch t := req.Type.(type) {
	case domain.Limit:
		params.Add("volume", t.Volume.String())
		params.Add("price", t.Price.String())
	case domain.MarketBuy:
		params.Add("price", t.TotalPrice.String())
	case domain.MarketSell:
		params.Add("volume", t.Volume.String())
	case domain.Best:
		params.Add("volume", t.Volume.String())
	}

	var res orderResponse
	if err := g.client.postPrivate(ctx, "/v1/orders", params, &res); err != nil {
		return domain.Order{}, err
	}
	return toOrder(res)
}

// CancelOrder는 주문을 취소하고 취소 직후의 주문 스냅샷을 반환합니다
func (g *Gateway) CancelOrder(ctx context.Context, id domain.OrderID) (domain.Order, error) {
	params := NewParams().Add("uuid", id.Value())

	var res orderResponse
	if err := g.client.deletePrivate(ctx, "/v1/order", params, &res); err != nil {
		return domain.Order{}, err
	}
	return toOrder(res)
}

// GetOrder는 주문을 조회합니다
func (g *Gateway) GetOrder(ctx context.Context, id domain.OrderID) (domain.Order, error) {
	params := NewParams().Add("uuid", id.Value())

	var res orderResponse
	if err := g.client.getPrivate(ctx, "/v1/order", params, &res); err != nil {
		return domain.Order{}, err
	}
	return toOrder(res)
}

// GetOpenOrders는 미체결 주문을 조회합니다.
// 도메인의 불투명 커서를 거래소의 페이지 번호로 해석합니다.
// 해석할 수 없는 커서는 첫 페이지로 취급합니다.
func (g *Gateway) GetOpenOrders(ctx context.Context, pair *domain.TradingPair, page exchange.PageRequest) (exchange.PageResponse[domain.Order], error) {
	pageNum := 1
	if page.Cursor != nil {
		if parsed, err := strconv.Atoi(*page.Cursor); err == nil && parsed >= 1 {
			pageNum = parsed
		}
	}
	limit := page.Limit
	if limit > openOrdersMaxLimit {
		limit = openOrdersMaxLimit
	}

	params := NewParams()
	if pair != nil {
		params.Add("market", pair.Value())
	}
	params.Add("page", strconv.Itoa(pageNum))
	params.Add("limit", strconv.Itoa(limit))
	params.Add("order_by", "desc")

	var res []orderResponse
	if err := g.client.getPrivate(ctx, "/v1/orders/open", params, &res); err != nil {
		return exchange.EmptyPage[domain.Order](), err
	}

	orders := make([]domain.Order, 0, len(res))
	for _, r := range res {
		order, err := toOrder(r)
		if err != nil {
			return exchange.EmptyPage[domain.Order](), err
		}
		orders = append(orders, order)
	}

	var nextCursor *string
	if len(orders) >= limit {
		next := strconv.Itoa(pageNum + 1)
		nextCursor = &next
	}
	return exchange.PageResponse[domain.Order]{Items: orders, NextCursor: nextCursor}, nil
}

// GetBalances는 전체 잔고를 조회합니다. 잔고와 잠김이 모두 0인 항목은
// 걸러냅니다.
func (g *Gateway) GetBalances(ctx context.Context) ([]domain.Balance, error) {
	var res []balanceResponse
	if err := g.client.getPrivate(ctx, "/v1/accounts", nil, &res); err != nil {
		return nil, err
	}

	balances := make([]domain.Balance, 0, len(res))
	for _, r := range res {
		balance, err := toBalance(r)
		if err != nil {
			return nil, err
		}
		if balance != nil {
			balances = append(balances, *balance)
		}
	}
	return balances, nil
}

// GetOrderChance는 거래쌍의 주문 가능 정보를 조회합니다
func (g *Gateway) GetOrderChance(ctx context.Context, pair domain.TradingPair) (domain.OrderChance, error) {
	params := NewParams().Add("market", pair.Value())

	var res orderChanceResponse
	if err := g.client.getPrivate(ctx, "/v1/orders/chance", params, &res); err != nil {
		return domain.OrderChance{}, err
	}
	return toOrderChance(res)
}
