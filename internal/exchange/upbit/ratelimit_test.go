package upbit

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

func TestRateLimiter(t *testing.T) {
	t.Run("버킷 고갈 시 즉시 RateLimitError를 반환한다", func(t *testing.T) {
		limiter := NewRateLimiter()

		for i := 0; i < orderPerSec; i++ {
			require.NoError(t, limiter.Allow(GroupOrder), "호출 번호: %d", i)
		}

		err := limiter.Allow(GroupOrder)
		var rateErr *exchange.RateLimitError
		require.True(t, errors.As(err, &rateErr))
		assert.Equal(t, "RATE_LIMIT_EXCEEDED", rateErr.Code)
	})

	t.Run("그룹별 버킷은 서로 독립이다", func(t *testing.T) {
		limiter := NewRateLimiter()

		for i := 0; i < orderPerSec; i++ {
			require.NoError(t, limiter.Allow(GroupOrder))
		}
		require.Error(t, limiter.Allow(GroupOrder))

		assert.NoError(t, limiter.Allow(GroupQuotation))
		assert.NoError(t, limiter.Allow(GroupExchangeDefault))
	})

	t.Run("그룹별 초기 버킷 용량", func(t *testing.T) {
		limiter := NewRateLimiter()

		assert.InDelta(t, float64(quotationPerSec), limiter.Tokens(GroupQuotation), 0.01)
		assert.InDelta(t, float64(exchangeDefaultPerSec), limiter.Tokens(GroupExchangeDefault), 0.01)
		assert.InDelta(t, float64(orderPerSec), limiter.Tokens(GroupOrder), 0.01)
	})
}
