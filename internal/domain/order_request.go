package domain

import (
	"strings"
)

// UnvalidatedOrderRequest는 외부에서 들어온 원시 주문 요청입니다.
// 모든 필드가 문자열이며 Validate를 통과해야 주문에 사용할 수 있습니다.
type UnvalidatedOrderRequest struct {
	Pair      string  // 거래쌍 코드 (예: KRW-BTC)
	Side      string  // bid 또는 ask
	OrderType string  // limit, price, market, best 중 하나
	Volume    *string // 수량 (유형에 따라 필수)
	Price     *string // 가격 또는 총액 (유형에 따라 필수)
}

// ValidatedOrderRequest는 검증을 통과한 주문 요청입니다.
// 이 타입의 인스턴스는 항상 유형/방향 조합이 유효합니다.
type ValidatedOrderRequest struct {
	Pair TradingPair
	Side OrderSide
	Type OrderType
}

// Validate는 원시 요청을 검증된 요청으로 변환합니다.
// side와 orderType은 정해진 리터럴만 허용하며, 유형별 필수 필드가
// 빠져 있으면 실패합니다. 값 타입 생성 실패는 ValidationFailedError로 감쌉니다.
func (r UnvalidatedOrderRequest) Validate() (ValidatedOrderRequest, error) {
	pair, err := ParseTradingPair(r.Pair)
	if err != nil {
		return ValidatedOrderRequest{}, &ValidationFailedError{Cause: err}
	}

	var side OrderSide
	switch strings.ToLower(r.Side) {
	case "bid":
		side = SideBid
	case "ask":
		side = SideAsk
	default:
		return ValidatedOrderRequest{}, &InvalidOrderRequestError{
			Reason: "주문 방향은 bid 또는 ask 이어야 합니다: " + r.Side,
		}
	}

	var orderType OrderType
	switch strings.ToLower(r.OrderType) {
	case "limit":
		volume, err := requireVolume(r.Volume, "지정가 주문")
		if err != nil {
			return ValidatedOrderRequest{}, err
		}
		price, err := requirePrice(r.Price, "지정가 주문")
		if err != nil {
			return ValidatedOrderRequest{}, err
		}
		orderType, err = NewLimit(volume, price)
		if err != nil {
			return ValidatedOrderRequest{}, err
		}

	case "price":
		if side != SideBid {
			return ValidatedOrderRequest{}, &InvalidOrderRequestError{
				Reason: "시장가 매수 주문은 매수 방향이어야 합니다",
			}
		}
		if r.Price == nil {
			return ValidatedOrderRequest{}, &InvalidOrderRequestError{
				Reason: "시장가 매수 주문은 총액이 필요합니다",
			}
		}
		total, err := NewAmountFromString(*r.Price)
		if err != nil {
			return ValidatedOrderRequest{}, &ValidationFailedError{Cause: err}
		}
		orderType, err = NewMarketBuy(total)
		if err != nil {
			return ValidatedOrderRequest{}, err
		}

	case "market":
		if side != SideAsk {
			return ValidatedOrderRequest{}, &InvalidOrderRequestError{
				Reason: "시장가 매도 주문은 매도 방향이어야 합니다",
			}
		}
		volume, err := requireVolume(r.Volume, "시장가 매도 주문")
		if err != nil {
			return ValidatedOrderRequest{}, err
		}
		orderType, err = NewMarketSell(volume)
		if err != nil {
			return ValidatedOrderRequest{}, err
		}

	case "best":
		volume, err := requireVolume(r.Volume, "최유리 주문")
		if err != nil {
			return ValidatedOrderRequest{}, err
		}
		orderType, err = NewBest(volume)
		if err != nil {
			return ValidatedOrderRequest{}, err
		}

	default:
		return ValidatedOrderRequest{}, &InvalidOrderRequestError{
			Reason: "주문 유형은 limit, price, market, best 중 하나이어야 합니다: " + r.OrderType,
		}
	}

	return ValidatedOrderRequest{Pair: pair, Side: side, Type: orderType}, nil
}

func requireVolume(raw *string, label string) (Volume, error) {
	if raw == nil {
		return ZeroVolume, &InvalidOrderRequestError{Reason: label + "은 수량이 필요합니다"}
	}
	volume, err := NewVolumeFromString(*raw)
	if err != nil {
		return ZeroVolume, &ValidationFailedError{Cause: err}
	}
	return volume, nil
}

func requirePrice(raw *string, label string) (Price, error) {
	if raw == nil {
		return Price{}, &InvalidOrderRequestError{Reason: label + "은 가격이 필요합니다"}
	}
	price, err := NewPriceFromString(*raw)
	if err != nil {
		return Price{}, &ValidationFailedError{Cause: err}
	}
	return price, nil
}

// ValidateTickSize는 지정가 주문의 가격이 호가 단위의 정확한 배수인지
// 검증합니다. 지정가가 아닌 주문은 검증 대상이 아닙니다.
func (r ValidatedOrderRequest) ValidateTickSize() error {
	limit, ok := r.Type.(Limit)
	if !ok {
		return nil
	}
	tick := TickSizeFor(r.Pair.Market(), limit.Price)
	if !limit.Price.Value().Mod(tick).IsZero() {
		return &InvalidPriceUnitError{Price: limit.Price, ExpectedTickSize: tick}
	}
	return nil
}

// ValidateMinimumOrderAmount는 주문 명목 금액이 최소 주문 금액 이상인지
// 검증합니다. 시장가 매도/최유리 주문은 명목 금액 계산에 현재가가 필요하며,
// 제공되지 않으면 ErrCurrentPriceRequired를 반환합니다.
func (r ValidatedOrderRequest) ValidateMinimumOrderAmount(chance OrderChance, currentPrice *Price) error {
	var notional Amount
	switch t := r.Type.(type) {
	case Limit:
		notional = t.Price.Mul(t.Volume)
	case MarketBuy:
		notional = t.TotalPrice
	case MarketSell:
		if currentPrice == nil {
			return ErrCurrentPriceRequired
		}
		notional = currentPrice.Mul(t.Volume)
	case Best:
		if currentPrice == nil {
			return ErrCurrentPriceRequired
		}
		notional = currentPrice.Mul(t.Volume)
	}

	if notional.Cmp(chance.MinOrderAmount) < 0 {
		return &MinimumOrderAmountNotMetError{Minimum: chance.MinOrderAmount, Actual: notional}
	}
	return nil
}
