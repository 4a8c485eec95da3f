package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVolume(t *testing.T) {
	t.Run("0 이상이고 소수점 8자리 이하면 생성된다", func(t *testing.T) {
		for _, s := range []string{"0", "0.00000001", "1.12345678", "100"} {
			volume, err := NewVolumeFromString(s)
			require.NoError(t, err, "수량 %s", s)
			assert.True(t, volume.Value().GreaterThanOrEqual(decimal.Zero))
		}
	})

	t.Run("음수는 거부된다", func(t *testing.T) {
		_, err := NewVolume(decimal.NewFromInt(-1))
		require.Error(t, err)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, ErrInvalidVolume, domainErr.Kind)
	})

	t.Run("소수점 9자리는 거부된다", func(t *testing.T) {
		_, err := NewVolumeFromString("0.000000001")
		assert.Error(t, err)
	})

	t.Run("뒤쪽 0은 자릿수로 치지 않는다", func(t *testing.T) {
		_, err := NewVolumeFromString("0.100000000")
		assert.NoError(t, err)
	})
}

func TestVolumeSub(t *testing.T) {
	a, err := NewVolumeFromString("1.5")
	require.NoError(t, err)
	b, err := NewVolumeFromString("0.5")
	require.NoError(t, err)

	t.Run("결과가 0 이상이면 성공한다", func(t *testing.T) {
		diff, ok := a.Sub(b)
		require.True(t, ok)
		assert.Equal(t, "1", diff.String())
	})

	t.Run("결과가 음수면 실패를 알린다", func(t *testing.T) {
		_, ok := b.Sub(a)
		assert.False(t, ok)
	})
}

func TestAmount(t *testing.T) {
	t.Run("음수 금액은 거부된다", func(t *testing.T) {
		_, err := NewAmount(decimal.NewFromInt(-1000))
		require.Error(t, err)

		var domainErr *DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Contains(t, domainErr.Message, "금액은 0 이상이어야 합니다")
	})

	t.Run("차감 결과가 음수면 실패를 알린다", func(t *testing.T) {
		small, err := NewAmount(decimal.NewFromInt(100))
		require.NoError(t, err)
		big, err := NewAmount(decimal.NewFromInt(200))
		require.NoError(t, err)

		_, ok := small.Sub(big)
		assert.False(t, ok)

		diff, ok := big.Sub(small)
		require.True(t, ok)
		assert.Equal(t, "100", diff.String())
	})
}

func TestFeeRate(t *testing.T) {
	t.Run("0과 1 사이만 허용한다", func(t *testing.T) {
		for _, s := range []string{"0", "0.0005", "1"} {
			_, err := NewFeeRateFromString(s)
			assert.NoError(t, err, "수수료율 %s", s)
		}
		for _, s := range []string{"-0.1", "1.1"} {
			_, err := NewFeeRateFromString(s)
			assert.Error(t, err, "수수료율 %s", s)
		}
	})
}

func TestChangeRate(t *testing.T) {
	t.Run("-1 미만은 거부된다", func(t *testing.T) {
		_, err := NewChangeRate(decimal.RequireFromString("-1.01"))
		assert.Error(t, err)

		_, err = NewChangeRate(decimal.NewFromInt(-1))
		assert.NoError(t, err)
	})
}

func TestTradeSequentialID(t *testing.T) {
	_, err := NewTradeSequentialID(0)
	assert.Error(t, err)

	id, err := NewTradeSequentialID(1234567890)
	require.NoError(t, err)
	assert.Equal(t, int64(1234567890), id.Value())
}
