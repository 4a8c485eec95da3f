package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBalance(t *testing.T, currency, balance, locked, avgBuyPrice string) Balance {
	t.Helper()
	cur, err := NewCurrency(currency)
	require.NoError(t, err)
	avg, err := NewAvgBuyPriceFromString(avgBuyPrice)
	require.NoError(t, err)
	b, err := NewBalance(cur, mustAmount(t, balance), mustAmount(t, locked), avg, false)
	require.NoError(t, err)
	return b
}

func TestBalance(t *testing.T) {
	t.Run("잠긴 잔고가 전체 잔고를 초과하면 거부된다", func(t *testing.T) {
		cur, err := NewCurrency("KRW")
		require.NoError(t, err)
		avg, err := NewAvgBuyPriceFromString("0")
		require.NoError(t, err)

		_, err = NewBalance(cur, mustAmount(t, "1000"), mustAmount(t, "2000"), avg, false)
		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, ErrInvalidBalance, domainErr.Kind)
	})

	t.Run("사용 가능한 잔고는 전체에서 잠김을 뺀 값이다", func(t *testing.T) {
		b := mustBalance(t, "KRW", "100000", "30000", "0")
		assert.Equal(t, "70000", b.Available().String())
	})

	t.Run("평가 금액과 손익", func(t *testing.T) {
		b := mustBalance(t, "BTC", "2", "0", "40000000")
		current := mustPrice(t, "50000000")

		assert.Equal(t, "100000000", b.TotalValue(current).String())
		assert.Equal(t, "20000000", b.ProfitLoss(current).String())
		assert.Equal(t, "25", b.ProfitLossRate(current).String())
	})

	t.Run("평균 매수가가 0이면 수익률은 0이다", func(t *testing.T) {
		b := mustBalance(t, "KRW", "100000", "0", "0")
		assert.True(t, b.ProfitLossRate(mustPrice(t, "1")).IsZero())
	})
}

func TestAccount(t *testing.T) {
	account := NewAccount([]Balance{
		mustBalance(t, "KRW", "100000", "30000", "0"),
		mustBalance(t, "BTC", "0.5", "0.5", "50000000"),
	})

	t.Run("통화별 잔고 조회", func(t *testing.T) {
		krw, ok := account.GetBalance(CurrencyKRW)
		require.True(t, ok)
		assert.Equal(t, "100000", krw.Total().String())

		_, ok = account.GetBalance(CurrencyUSDT)
		assert.False(t, ok)
	})

	t.Run("사용 가능한 잔고 조회", func(t *testing.T) {
		assert.Equal(t, "70000", account.GetAvailableBalance(CurrencyKRW).String())
		assert.True(t, account.GetAvailableBalance(CurrencyUSDT).IsZero())
	})

	t.Run("전량 잠긴 통화는 사용 가능한 잔고가 없다", func(t *testing.T) {
		assert.True(t, account.HasBalance(CurrencyKRW))
		assert.False(t, account.HasBalance(CurrencyBTC))
		assert.False(t, account.HasBalance(CurrencyUSDT))
	})
}
