package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandleUnit(t *testing.T) {
	t.Run("허용된 분봉 단위만 생성된다", func(t *testing.T) {
		for _, minutes := range []int{1, 3, 5, 10, 15, 30, 60, 240} {
			unit, err := NewMinutesUnit(minutes)
			require.NoError(t, err, "분봉 단위: %d", minutes)
			assert.Equal(t, UnitMinutes, unit.Kind())
			assert.Equal(t, minutes, unit.Minutes())
		}
	})

	t.Run("허용되지 않은 분봉 단위는 거부된다", func(t *testing.T) {
		for _, minutes := range []int{0, 2, 7, 120, 1440} {
			_, err := NewMinutesUnit(minutes)
			var domainErr *DomainError
			require.ErrorAs(t, err, &domainErr, "분봉 단위: %d", minutes)
			assert.Equal(t, ErrInvalidCandleUnit, domainErr.Kind)
		}
	})

	t.Run("와이어 단위 코드", func(t *testing.T) {
		fiveMinutes, err := NewMinutesUnit(5)
		require.NoError(t, err)

		assert.Equal(t, "1s", SecondsUnit.Code())
		assert.Equal(t, "5m", fiveMinutes.Code())
		assert.Equal(t, "1d", DayUnit.Code())
		assert.Equal(t, "1w", WeekUnit.Code())
		assert.Equal(t, "1M", MonthUnit.Code())
	})

	t.Run("초봉은 WebSocket 전용이다", func(t *testing.T) {
		assert.True(t, SecondsUnit.IsWebSocketOnly())
		assert.False(t, DayUnit.IsWebSocketOnly())
	})
}

func TestNewCandle(t *testing.T) {
	pair := mustPair(t, "KRW-BTC")
	now := time.Now().UTC()

	t.Run("시고저종 관계를 만족하면 생성된다", func(t *testing.T) {
		candle, err := NewCandle(pair, DayUnit, now,
			mustPrice(t, "50000000"), mustPrice(t, "51000000"),
			mustPrice(t, "49000000"), mustPrice(t, "50500000"),
			mustVolume(t, "12.5"), mustAmount(t, "630000000"))
		require.NoError(t, err)
		assert.Equal(t, "51000000", candle.High.String())
	})

	t.Run("고가가 종가보다 낮으면 거부된다", func(t *testing.T) {
		_, err := NewCandle(pair, DayUnit, now,
			mustPrice(t, "50000000"), mustPrice(t, "50000000"),
			mustPrice(t, "49000000"), mustPrice(t, "50500000"),
			mustVolume(t, "1"), mustAmount(t, "50000000"))
		assert.Error(t, err)
	})

	t.Run("저가가 시가보다 높으면 거부된다", func(t *testing.T) {
		_, err := NewCandle(pair, DayUnit, now,
			mustPrice(t, "50000000"), mustPrice(t, "52000000"),
			mustPrice(t, "51000000"), mustPrice(t, "51500000"),
			mustVolume(t, "1"), mustAmount(t, "50000000"))
		assert.Error(t, err)
	})
}
