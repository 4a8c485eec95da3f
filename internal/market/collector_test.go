package market

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// fakeQuotation은 호출 횟수를 세며 준비된 응답이나 에러를 돌려줍니다
type fakeQuotation struct {
	tickerCalls int
	candleCalls int
	tickerErrs  []error
	candleErr   error
}

func (f *fakeQuotation) GetTicker(ctx context.Context, pairs []domain.TradingPair) ([]domain.Ticker, error) {
	f.tickerCalls++
	if len(f.tickerErrs) > 0 {
		err := f.tickerErrs[0]
		f.tickerErrs = f.tickerErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	return []domain.Ticker{}, nil
}

func (f *fakeQuotation) GetCandles(ctx context.Context, pair domain.TradingPair, unit domain.CandleUnit, count int, to *time.Time) ([]domain.Candle, error) {
	f.candleCalls++
	if f.candleErr != nil {
		return nil, f.candleErr
	}
	price, err := domain.NewPrice(decimal.NewFromInt(50000000))
	if err != nil {
		return nil, err
	}
	candle, err := domain.NewCandle(pair, unit, time.Now().UTC(),
		price, price, price, price, domain.ZeroVolume, domain.ZeroAmount)
	if err != nil {
		return nil, err
	}
	return []domain.Candle{candle}, nil
}

func (f *fakeQuotation) GetOrderbook(ctx context.Context, pairs []domain.TradingPair) ([]domain.Orderbook, error) {
	return nil, nil
}

func (f *fakeQuotation) GetTrades(ctx context.Context, pair domain.TradingPair, count int, cursor *string) ([]domain.Trade, error) {
	return nil, nil
}

func testPairs(t *testing.T) []domain.TradingPair {
	t.Helper()
	pair, err := domain.ParseTradingPair("KRW-BTC")
	require.NoError(t, err)
	return []domain.TradingPair{pair}
}

func fastRetry(maxRetries int) RetryConfig {
	return RetryConfig{
		MaxRetries: maxRetries,
		BaseDelay:  time.Millisecond,
		MaxDelay:   10 * time.Millisecond,
		Factor:     2.0,
	}
}

func TestCollectorCollect(t *testing.T) {
	ctx := context.Background()

	t.Run("현재가와 캔들을 한 번씩 수집한다", func(t *testing.T) {
		quotation := &fakeQuotation{}
		collector := NewCollector(quotation, testPairs(t), zerolog.Nop())

		require.NoError(t, collector.Collect(ctx))
		assert.Equal(t, 1, quotation.tickerCalls)
		assert.Equal(t, 1, quotation.candleCalls)
	})

	t.Run("네트워크 오류는 재시도 후 성공한다", func(t *testing.T) {
		quotation := &fakeQuotation{
			tickerErrs: []error{
				&exchange.NetworkError{Code: "NETWORK_ERROR", Message: "일시 장애"},
				nil,
			},
		}
		collector := NewCollector(quotation, testPairs(t), zerolog.Nop(),
			WithRetryConfig(fastRetry(3)))

		require.NoError(t, collector.Collect(ctx))
		assert.Equal(t, 2, quotation.tickerCalls)
	})

	t.Run("네트워크 오류가 계속되면 한도 초과로 실패한다", func(t *testing.T) {
		netErr := &exchange.NetworkError{Code: "NETWORK_ERROR", Message: "지속 장애"}
		quotation := &fakeQuotation{
			tickerErrs: []error{netErr, netErr, netErr},
		}
		collector := NewCollector(quotation, testPairs(t), zerolog.Nop(),
			WithRetryConfig(fastRetry(2)))

		err := collector.Collect(ctx)
		require.Error(t, err)
		assert.Equal(t, 3, quotation.tickerCalls)
	})

	t.Run("업무 오류는 재시도하지 않는다", func(t *testing.T) {
		quotation := &fakeQuotation{
			tickerErrs: []error{
				&exchange.ApiError{Code: "CLIENT_ERROR", Message: "잘못된 요청"},
			},
		}
		collector := NewCollector(quotation, testPairs(t), zerolog.Nop(),
			WithRetryConfig(fastRetry(3)))

		require.Error(t, collector.Collect(ctx))
		assert.Equal(t, 1, quotation.tickerCalls)
	})

	t.Run("캔들 조회 실패도 수집 실패다", func(t *testing.T) {
		quotation := &fakeQuotation{
			candleErr: &exchange.ApiError{Code: "CLIENT_ERROR", Message: "잘못된 요청"},
		}
		collector := NewCollector(quotation, testPairs(t), zerolog.Nop())

		assert.Error(t, collector.Collect(ctx))
	})
}
