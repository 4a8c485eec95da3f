package domain

import (
	"github.com/shopspring/decimal"
)

// 시장별 호가 단위 구간표. 거래소 정책이 바뀌면 함께 갱신해야 합니다.
type tickBracket struct {
	threshold decimal.Decimal // 이 값 이상이면
	tick      decimal.Decimal // 이 호가 단위 적용
}

var (
	smallestTick = decimal.RequireFromString("0.00000001")

	krwBrackets = []tickBracket{
		{decimal.NewFromInt(2_000_000), decimal.NewFromInt(1000)},
		{decimal.NewFromInt(1_000_000), decimal.NewFromInt(1000)},
		{decimal.NewFromInt(500_000), decimal.NewFromInt(500)},
		{decimal.NewFromInt(100_000), decimal.NewFromInt(100)},
		{decimal.NewFromInt(50_000), decimal.NewFromInt(50)},
		{decimal.NewFromInt(10_000), decimal.NewFromInt(10)},
		{decimal.NewFromInt(5_000), decimal.NewFromInt(5)},
		{decimal.NewFromInt(1_000), decimal.NewFromInt(1)},
		{decimal.NewFromInt(100), decimal.NewFromInt(1)},
		{decimal.NewFromInt(10), decimal.RequireFromString("0.1")},
		{decimal.NewFromInt(1), decimal.RequireFromString("0.01")},
		{decimal.RequireFromString("0.1"), decimal.RequireFromString("0.001")},
		{decimal.RequireFromString("0.01"), decimal.RequireFromString("0.0001")},
		{decimal.RequireFromString("0.001"), decimal.RequireFromString("0.00001")},
		{decimal.RequireFromString("0.0001"), decimal.RequireFromString("0.000001")},
		{decimal.RequireFromString("0.00001"), decimal.RequireFromString("0.0000001")},
	}

	usdtBrackets = []tickBracket{
		{decimal.NewFromInt(10), decimal.RequireFromString("0.01")},
		{decimal.NewFromInt(1), decimal.RequireFromString("0.001")},
		{decimal.RequireFromString("0.1"), decimal.RequireFromString("0.0001")},
		{decimal.RequireFromString("0.01"), decimal.RequireFromString("0.00001")},
		{decimal.RequireFromString("0.001"), decimal.RequireFromString("0.000001")},
		{decimal.RequireFromString("0.0001"), decimal.RequireFromString("0.0000001")},
	}
)

// TickSizeFor는 시장과 가격에 해당하는 호가 단위를 반환합니다.
// BTC 마켓은 가격과 무관하게 항상 0.00000001입니다.
func TickSizeFor(market Market, price Price) decimal.Decimal {
	switch market {
	case MarketKRW:
		return lookupTick(krwBrackets, price.Value())
	case MarketBTC:
		return smallestTick
	case MarketUSDT:
		return lookupTick(usdtBrackets, price.Value())
	default:
		return smallestTick
	}
}

func lookupTick(brackets []tickBracket, price decimal.Decimal) decimal.Decimal {
	for _, b := range brackets {
		if price.GreaterThanOrEqual(b.threshold) {
			return b.tick
		}
	}
	return smallestTick
}
