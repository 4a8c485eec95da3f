package market

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// RetryConfig는 일시적 실패에 대한 재시도 설정입니다
type RetryConfig struct {
	MaxRetries int           // 최대 재시도 횟수
	BaseDelay  time.Duration // 초기 대기 시간
	MaxDelay   time.Duration // 최대 대기 시간
	Factor     float64       // 대기 시간 증가 계수
}

// Collector는 시세 게이트웨이를 주기적으로 폴링해 캔들과 현재가를 수집합니다
type Collector struct {
	quotation   exchange.QuotationGateway
	pairs       []domain.TradingPair
	candleUnit  domain.CandleUnit
	candleLimit int
	retry       RetryConfig
	logger      zerolog.Logger
}

// CollectorOption은 수집기 옵션입니다
type CollectorOption func(*Collector)

// WithCandleUnit은 수집할 캔들 단위를 설정합니다
func WithCandleUnit(unit domain.CandleUnit) CollectorOption {
	return func(c *Collector) {
		c.candleUnit = unit
	}
}

// WithCandleLimit은 한 번에 가져올 캔들 개수를 설정합니다
func WithCandleLimit(limit int) CollectorOption {
	return func(c *Collector) {
		c.candleLimit = limit
	}
}

// WithRetryConfig는 재시도 설정을 변경합니다
func WithRetryConfig(retry RetryConfig) CollectorOption {
	return func(c *Collector) {
		c.retry = retry
	}
}

// NewCollector는 새로운 시세 수집기를 생성합니다
func NewCollector(quotation exchange.QuotationGateway, pairs []domain.TradingPair, logger zerolog.Logger, opts ...CollectorOption) *Collector {
	unit, _ := domain.NewMinutesUnit(1)

	c := &Collector{
		quotation:   quotation,
		pairs:       pairs,
		candleUnit:  unit,
		candleLimit: 100,
		retry: RetryConfig{
			MaxRetries: 3,
			BaseDelay:  1 * time.Second,
			MaxDelay:   30 * time.Second,
			Factor:     2.0,
		},
		logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Execute는 스케줄러 Task 인터페이스 구현입니다
func (c *Collector) Execute(ctx context.Context) error {
	return c.Collect(ctx)
}

// Collect는 모든 거래쌍의 캔들과 현재가를 수집합니다
func (c *Collector) Collect(ctx context.Context) error {
	tickers, err := c.fetchTickers(ctx)
	if err != nil {
		return fmt.Errorf("현재가 조회 실패: %w", err)
	}

	for _, ticker := range tickers {
		c.logger.Info().
			Str("pair", ticker.Pair.Value()).
			Str("trade_price", ticker.TradePrice.String()).
			Str("change", string(ticker.Change)).
			Str("signed_change_rate", ticker.SignedChangeRate.String()).
			Msg("현재가 수집")
	}

	for _, pair := range c.pairs {
		candles, err := c.fetchCandles(ctx, pair)
		if err != nil {
			return fmt.Errorf("%s 캔들 조회 실패: %w", pair.Value(), err)
		}
		if len(candles) == 0 {
			continue
		}

		latest := candles[0]
		c.logger.Info().
			Str("pair", pair.Value()).
			Str("unit", c.candleUnit.Code()).
			Int("count", len(candles)).
			Str("close", latest.Close.String()).
			Time("timestamp", latest.Timestamp).
			Msg("캔들 수집")
	}

	return nil
}

func (c *Collector) fetchTickers(ctx context.Context) ([]domain.Ticker, error) {
	var tickers []domain.Ticker
	err := c.withRetry(ctx, func() error {
		var err error
		tickers, err = c.quotation.GetTicker(ctx, c.pairs)
		return err
	})
	return tickers, err
}

func (c *Collector) fetchCandles(ctx context.Context, pair domain.TradingPair) ([]domain.Candle, error) {
	var candles []domain.Candle
	err := c.withRetry(ctx, func() error {
		var err error
		candles, err = c.quotation.GetCandles(ctx, pair, c.candleUnit, c.candleLimit, nil)
		return err
	})
	return candles, err
}

// withRetry는 일시적 실패(네트워크 오류)에 한해 지수 백오프로 재시도합니다.
// 레이트리밋/인증/업무 오류는 재시도하지 않고 즉시 반환합니다.
func (c *Collector) withRetry(ctx context.Context, fn func() error) error {
	delay := c.retry.BaseDelay
	var lastErr error

	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Warn().
				Int("attempt", attempt).
				Dur("delay", delay).
				Err(lastErr).
				Msg("재시도 대기")

			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}

			delay = time.Duration(float64(delay) * c.retry.Factor)
			if delay > c.retry.MaxDelay {
				delay = c.retry.MaxDelay
			}
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		var netErr *exchange.NetworkError
		if !errors.As(lastErr, &netErr) {
			return lastErr
		}
	}

	return fmt.Errorf("재시도 한도 초과: %w", lastErr)
}
