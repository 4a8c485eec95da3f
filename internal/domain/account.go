package domain

import (
	"github.com/shopspring/decimal"
)

// Balance는 한 통화의 잔고 스냅샷입니다.
// 잠긴 잔고는 전체 잔고를 초과할 수 없습니다.
type Balance struct {
	currency            Currency
	balance             Amount
	locked              Amount
	avgBuyPrice         AvgBuyPrice
	avgBuyPriceModified bool
}

// NewBalance는 잔고를 검증하고 생성합니다
func NewBalance(
	currency Currency,
	balance Amount,
	locked Amount,
	avgBuyPrice AvgBuyPrice,
	avgBuyPriceModified bool,
) (Balance, error) {
	if locked.Cmp(balance) > 0 {
		return Balance{}, newDomainError(ErrInvalidBalance,
			"잠긴 잔고는 전체 잔고를 초과할 수 없습니다: 잔고 %s, 잠김 %s", balance, locked)
	}
	return Balance{
		currency:            currency,
		balance:             balance,
		locked:              locked,
		avgBuyPrice:         avgBuyPrice,
		avgBuyPriceModified: avgBuyPriceModified,
	}, nil
}

// Currency는 잔고의 통화를 반환합니다
func (b Balance) Currency() Currency { return b.currency }

// Total은 전체 잔고를 반환합니다
func (b Balance) Total() Amount { return b.balance }

// Locked는 주문 등에 잠긴 잔고를 반환합니다
func (b Balance) Locked() Amount { return b.locked }

// AvgBuyPrice는 평균 매수가를 반환합니다
func (b Balance) AvgBuyPrice() AvgBuyPrice { return b.avgBuyPrice }

// AvgBuyPriceModified는 평균 매수가가 수동 수정되었는지 반환합니다
func (b Balance) AvgBuyPriceModified() bool { return b.avgBuyPriceModified }

// Available은 사용 가능한 잔고(전체 − 잠김)를 반환합니다. 음수가 되지 않습니다.
func (b Balance) Available() Amount {
	available, ok := b.balance.Sub(b.locked)
	if !ok {
		return ZeroAmount
	}
	return available
}

// TotalValue는 현재가 기준 보유 평가 금액을 반환합니다
func (b Balance) TotalValue(currentPrice Price) Amount {
	return Amount{value: b.balance.Value().Mul(currentPrice.Value())}
}

// ProfitLoss는 현재가 기준 평가 손익을 반환합니다
func (b Balance) ProfitLoss(currentPrice Price) decimal.Decimal {
	return currentPrice.Value().Sub(b.avgBuyPrice.Value()).Mul(b.balance.Value())
}

// ProfitLossRate는 현재가 기준 수익률(%)을 반환합니다.
// 평균 매수가가 0이면 0을 반환합니다.
func (b Balance) ProfitLossRate(currentPrice Price) decimal.Decimal {
	if b.avgBuyPrice.Value().IsZero() {
		return decimal.Zero
	}
	return currentPrice.Value().Sub(b.avgBuyPrice.Value()).
		Mul(decimal.NewFromInt(100)).
		DivRound(b.avgBuyPrice.Value(), PercentScale)
}

// Account는 통화별 잔고의 모음입니다.
// 게이트웨이 스냅샷마다 전체를 새로 구성합니다.
type Account struct {
	balances map[Currency]Balance
}

// NewAccount는 잔고 목록으로 계정을 생성합니다
func NewAccount(balances []Balance) Account {
	m := make(map[Currency]Balance, len(balances))
	for _, b := range balances {
		m[b.Currency()] = b
	}
	return Account{balances: m}
}

// GetBalance는 통화의 잔고를 반환합니다
func (a Account) GetBalance(currency Currency) (Balance, bool) {
	b, ok := a.balances[currency]
	return b, ok
}

// GetAvailableBalance는 통화의 사용 가능한 잔고를 반환합니다.
// 잔고가 없으면 0입니다.
func (a Account) GetAvailableBalance(currency Currency) Amount {
	b, ok := a.balances[currency]
	if !ok {
		return ZeroAmount
	}
	return b.Available()
}

// HasBalance는 통화의 사용 가능한 잔고가 있는지 확인합니다
func (a Account) HasBalance(currency Currency) bool {
	return !a.GetAvailableBalance(currency).IsZero()
}

// OrderChance는 특정 거래쌍의 주문 가능 정보 스냅샷입니다
type OrderChance struct {
	Pair           TradingPair
	BidFee         FeeRate
	AskFee         FeeRate
	BidAccount     Balance
	AskAccount     Balance
	MinOrderAmount Amount
}
