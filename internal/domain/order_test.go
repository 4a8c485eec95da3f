package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPair(t *testing.T, s string) TradingPair {
	t.Helper()
	pair, err := ParseTradingPair(s)
	require.NoError(t, err)
	return pair
}

func mustVolume(t *testing.T, s string) Volume {
	t.Helper()
	volume, err := NewVolumeFromString(s)
	require.NoError(t, err)
	return volume
}

func mustAmount(t *testing.T, s string) Amount {
	t.Helper()
	amount, err := NewAmountFromString(s)
	require.NoError(t, err)
	return amount
}

func mustOrderID(t *testing.T, s string) OrderID {
	t.Helper()
	id, err := NewOrderID(s)
	require.NoError(t, err)
	return id
}

func mustLimit(t *testing.T, volume, price string) Limit {
	t.Helper()
	limit, err := NewLimit(mustVolume(t, volume), mustPrice(t, price))
	require.NoError(t, err)
	return limit
}

func TestOrderTypeConstructors(t *testing.T) {
	t.Run("수량이 0인 지정가 주문은 거부된다", func(t *testing.T) {
		_, err := NewLimit(ZeroVolume, mustPrice(t, "50000000"))
		assert.Error(t, err)
	})

	t.Run("총액이 0인 시장가 매수는 거부된다", func(t *testing.T) {
		_, err := NewMarketBuy(ZeroAmount)
		assert.Error(t, err)
	})

	t.Run("와이어 코드가 유형별로 고정된다", func(t *testing.T) {
		assert.Equal(t, "limit", Limit{}.Code())
		assert.Equal(t, "price", MarketBuy{}.Code())
		assert.Equal(t, "market", MarketSell{}.Code())
		assert.Equal(t, "best", Best{}.Code())
	})
}

func TestNewOrderInvariants(t *testing.T) {
	now := time.Now().UTC()
	pair := mustPair(t, "KRW-BTC")
	id := mustOrderID(t, "order-1")

	t.Run("시장가 매수는 매도 방향으로 생성할 수 없다", func(t *testing.T) {
		marketBuy, err := NewMarketBuy(mustAmount(t, "10000"))
		require.NoError(t, err)

		_, err = NewOrder(id, pair, SideAsk, marketBuy, StateWait,
			ZeroVolume, ZeroVolume, ZeroAmount, ZeroAmount, now, nil)
		assert.Error(t, err)
	})

	t.Run("시장가 매도는 매수 방향으로 생성할 수 없다", func(t *testing.T) {
		marketSell, err := NewMarketSell(mustVolume(t, "0.1"))
		require.NoError(t, err)

		_, err = NewOrder(id, pair, SideBid, marketSell, StateWait,
			mustVolume(t, "0.1"), ZeroVolume, ZeroAmount, ZeroAmount, now, nil)
		assert.Error(t, err)
	})

	t.Run("DONE 상태의 잔여 수량은 0이어야 한다", func(t *testing.T) {
		limit := mustLimit(t, "0.2", "50000000")

		_, err := NewOrder(id, pair, SideBid, limit, StateDone,
			mustVolume(t, "0.1"), mustVolume(t, "0.1"),
			mustAmount(t, "5000000"), ZeroAmount, now, &now)
		assert.Error(t, err)
	})

	t.Run("종결 상태는 종결 시각이 필요하다", func(t *testing.T) {
		limit := mustLimit(t, "0.1", "50000000")

		_, err := NewOrder(id, pair, SideBid, limit, StateCancel,
			mustVolume(t, "0.1"), ZeroVolume, ZeroAmount, ZeroAmount, now, nil)
		assert.Error(t, err)
	})

	t.Run("잔여와 체결의 합이 주문 수량과 달라지면 거부된다", func(t *testing.T) {
		limit := mustLimit(t, "0.3", "50000000")

		_, err := NewOrder(id, pair, SideBid, limit, StateWait,
			mustVolume(t, "0.1"), mustVolume(t, "0.1"), ZeroAmount, ZeroAmount, now, nil)
		assert.Error(t, err)
	})

	t.Run("모든 불변식을 만족하면 생성된다", func(t *testing.T) {
		limit := mustLimit(t, "0.3", "50000000")

		order, err := NewOrder(id, pair, SideBid, limit, StateWait,
			mustVolume(t, "0.2"), mustVolume(t, "0.1"),
			mustAmount(t, "5000000"), mustAmount(t, "2500"), now, nil)
		require.NoError(t, err)
		assert.True(t, order.IsOpen())
		assert.True(t, order.IsCancellable())
		assert.False(t, order.IsClosed())
	})

	t.Run("시장가 매수는 수량 합 불변식의 대상이 아니다", func(t *testing.T) {
		marketBuy, err := NewMarketBuy(mustAmount(t, "100000"))
		require.NoError(t, err)

		_, err = NewOrder(id, pair, SideBid, marketBuy, StateWait,
			ZeroVolume, mustVolume(t, "0.001"),
			mustAmount(t, "50000"), ZeroAmount, now, nil)
		assert.NoError(t, err)
	})
}

func TestOrderDerivedQueries(t *testing.T) {
	now := time.Now().UTC()
	pair := mustPair(t, "KRW-BTC")
	id := mustOrderID(t, "order-2")

	t.Run("시장가 매수의 미체결 금액은 총액에서 체결 금액을 뺀 값이다", func(t *testing.T) {
		marketBuy, err := NewMarketBuy(mustAmount(t, "100000"))
		require.NoError(t, err)

		order, err := NewOrder(id, pair, SideBid, marketBuy, StateWait,
			ZeroVolume, mustVolume(t, "0.001"),
			mustAmount(t, "30000"), ZeroAmount, now, nil)
		require.NoError(t, err)

		remaining, ok := order.RemainingAmount()
		require.True(t, ok)
		assert.Equal(t, "70000", remaining.String())
	})

	t.Run("지정가 주문은 미체결 금액을 제공하지 않는다", func(t *testing.T) {
		limit := mustLimit(t, "0.1", "50000000")

		order, err := NewOrder(id, pair, SideBid, limit, StateWait,
			mustVolume(t, "0.1"), ZeroVolume, ZeroAmount, ZeroAmount, now, nil)
		require.NoError(t, err)

		_, ok := order.RemainingAmount()
		assert.False(t, ok)
	})

	t.Run("평균 체결 가격은 체결 금액을 체결 수량으로 나눈 값이다", func(t *testing.T) {
		limit := mustLimit(t, "0.2", "50000000")

		order, err := NewOrder(id, pair, SideBid, limit, StateWait,
			mustVolume(t, "0.1"), mustVolume(t, "0.1"),
			mustAmount(t, "5000000"), ZeroAmount, now, nil)
		require.NoError(t, err)

		avg, ok := order.AverageExecutedPrice()
		require.True(t, ok)
		assert.True(t, avg.Value().Equal(decimal.NewFromInt(50000000)), "평균가: %s", avg)
	})

	t.Run("체결 수량이 0이면 평균 체결 가격이 없다", func(t *testing.T) {
		limit := mustLimit(t, "0.1", "50000000")

		order, err := NewOrder(id, pair, SideBid, limit, StateWait,
			mustVolume(t, "0.1"), ZeroVolume, ZeroAmount, ZeroAmount, now, nil)
		require.NoError(t, err)

		_, ok := order.AverageExecutedPrice()
		assert.False(t, ok)
	})

	t.Run("체결률은 유형별 총량 기준 퍼센트다", func(t *testing.T) {
		limit := mustLimit(t, "0.4", "50000000")

		order, err := NewOrder(id, pair, SideBid, limit, StateWait,
			mustVolume(t, "0.3"), mustVolume(t, "0.1"),
			mustAmount(t, "5000000"), ZeroAmount, now, nil)
		require.NoError(t, err)

		assert.Equal(t, "25", order.ExecutionRate().String())
	})

	t.Run("시장가 매수의 체결률은 금액 기준이다", func(t *testing.T) {
		marketBuy, err := NewMarketBuy(mustAmount(t, "100000"))
		require.NoError(t, err)

		order, err := NewOrder(id, pair, SideBid, marketBuy, StateWait,
			ZeroVolume, mustVolume(t, "0.001"),
			mustAmount(t, "50000"), ZeroAmount, now, nil)
		require.NoError(t, err)

		assert.Equal(t, "50", order.ExecutionRate().String())
	})

	t.Run("종결 주문의 상태 질의", func(t *testing.T) {
		limit := mustLimit(t, "0.1", "50000000")

		order, err := NewOrder(id, pair, SideBid, limit, StateDone,
			ZeroVolume, mustVolume(t, "0.1"),
			mustAmount(t, "5000000"), mustAmount(t, "2500"), now, &now)
		require.NoError(t, err)

		assert.False(t, order.IsOpen())
		assert.False(t, order.IsCancellable())
		assert.True(t, order.IsClosed())
		assert.NotNil(t, order.DoneAt())
	})
}
