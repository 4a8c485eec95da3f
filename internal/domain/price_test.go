package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("양수 가격은 생성된다", func(t *testing.T) {
		price, err := NewPrice(decimal.NewFromInt(50000000))
		require.NoError(t, err)
		assert.True(t, price.Value().Equal(decimal.NewFromInt(50000000)))
	})

	t.Run("0 가격은 거부된다", func(t *testing.T) {
		_, err := NewPrice(decimal.Zero)
		require.Error(t, err)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, ErrInvalidPrice, domainErr.Kind)
	})

	t.Run("음수 가격은 거부된다", func(t *testing.T) {
		_, err := NewPrice(decimal.NewFromInt(-100))
		assert.Error(t, err)
	})
}

func TestNewPriceFromString(t *testing.T) {
	t.Run("숫자 문자열은 파싱된다", func(t *testing.T) {
		price, err := NewPriceFromString("50000000.5")
		require.NoError(t, err)
		assert.Equal(t, "50000000.5", price.String())
	})

	t.Run("숫자가 아닌 문자열은 거부된다", func(t *testing.T) {
		_, err := NewPriceFromString("abc")
		require.Error(t, err)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Contains(t, domainErr.Message, "숫자 형식이 아닙니다")
	})
}

func TestAdjustToTickSize(t *testing.T) {
	t.Run("호가 단위의 내림 배수로 맞춘다", func(t *testing.T) {
		price, err := NewPrice(decimal.NewFromInt(1_234_567))
		require.NoError(t, err)

		tick := TickSizeFor(MarketKRW, price)
		adjusted, err := price.AdjustToTickSize(tick)
		require.NoError(t, err)
		assert.True(t, adjusted.Value().Equal(decimal.NewFromInt(1_234_000)),
			"조정 결과: %s", adjusted)
	})

	t.Run("내림 결과가 0이면 호가 단위 자체를 반환한다", func(t *testing.T) {
		price, err := NewPrice(decimal.RequireFromString("0.5"))
		require.NoError(t, err)

		adjusted, err := price.AdjustToTickSize(decimal.NewFromInt(1))
		require.NoError(t, err)
		assert.True(t, adjusted.Value().Equal(decimal.NewFromInt(1)))
	})

	t.Run("0 이하의 호가 단위는 거부된다", func(t *testing.T) {
		price, err := NewPrice(decimal.NewFromInt(1000))
		require.NoError(t, err)

		_, err = price.AdjustToTickSize(decimal.Zero)
		assert.Error(t, err)
	})
}

func TestAvgBuyPrice(t *testing.T) {
	t.Run("0을 허용한다", func(t *testing.T) {
		avg, err := NewAvgBuyPrice(decimal.Zero)
		require.NoError(t, err)
		assert.True(t, avg.Value().IsZero())
	})

	t.Run("음수는 거부된다", func(t *testing.T) {
		_, err := NewAvgBuyPrice(decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}
