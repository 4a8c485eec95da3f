package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("UPBIT_ACCESS_KEY", "test-access-key")
	t.Setenv("UPBIT_SECRET_KEY", "test-secret-key")
}

func TestLoadConfig(t *testing.T) {
	t.Run("필수 키와 기본값으로 로드된다", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "test-access-key", cfg.Upbit.AccessKey)
		assert.Equal(t, "https://api.upbit.com", cfg.Upbit.BaseURL)
		assert.Equal(t, []string{"KRW-BTC"}, cfg.App.Pairs)
		assert.Equal(t, time.Minute, cfg.App.FetchInterval)
		assert.Equal(t, 100, cfg.App.CandleLimit)
		assert.Equal(t, 60*time.Second, cfg.Websocket.PingInterval)
		assert.Equal(t, 10, cfg.Websocket.MaxReconnectAttempts)
		assert.Empty(t, cfg.Database.DSN)
	})

	t.Run("환경변수로 기본값을 덮어쓴다", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TRADING_PAIRS", "KRW-BTC,KRW-ETH")
		t.Setenv("FETCH_INTERVAL", "30s")
		t.Setenv("WS_RECONNECT_DELAY", "2s")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, []string{"KRW-BTC", "KRW-ETH"}, cfg.App.Pairs)
		assert.Equal(t, 30*time.Second, cfg.App.FetchInterval)
		assert.Equal(t, 2*time.Second, cfg.Websocket.ReconnectDelay)
	})

	t.Run("접근 키가 없으면 실패한다", func(t *testing.T) {
		t.Setenv("UPBIT_ACCESS_KEY", "")
		t.Setenv("UPBIT_SECRET_KEY", "")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		var cfg Config
		cfg.App.Pairs = []string{"KRW-BTC"}
		cfg.App.FetchInterval = time.Minute
		cfg.App.CandleLimit = 100
		cfg.Websocket.MaxReconnectAttempts = 10
		return &cfg
	}

	t.Run("유효한 설정은 통과한다", func(t *testing.T) {
		assert.NoError(t, ValidateConfig(valid()))
	})

	t.Run("거래쌍이 없으면 실패한다", func(t *testing.T) {
		cfg := valid()
		cfg.App.Pairs = nil
		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("수집 주기가 너무 짧으면 실패한다", func(t *testing.T) {
		cfg := valid()
		cfg.App.FetchInterval = time.Second
		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("캔들 개수가 범위를 벗어나면 실패한다", func(t *testing.T) {
		cfg := valid()
		cfg.App.CandleLimit = 500
		assert.Error(t, ValidateConfig(cfg))
	})

	t.Run("재연결 횟수가 0이면 실패한다", func(t *testing.T) {
		cfg := valid()
		cfg.Websocket.MaxReconnectAttempts = 0
		assert.Error(t, ValidateConfig(cfg))
	})
}
