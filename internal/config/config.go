package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// 업비트 API 설정
	Upbit struct {
		AccessKey string `envconfig:"UPBIT_ACCESS_KEY" required:"true"`
		SecretKey string `envconfig:"UPBIT_SECRET_KEY" required:"true"`
		BaseURL   string `envconfig:"UPBIT_BASE_URL" default:"https://api.upbit.com"`
	}

	// WebSocket 설정
	Websocket struct {
		PublicURL            string        `envconfig:"UPBIT_WS_PUBLIC_URL" default:"wss://api.upbit.com/websocket/v1"`
		PrivateURL           string        `envconfig:"UPBIT_WS_PRIVATE_URL" default:"wss://api.upbit.com/websocket/v1/private"`
		PingInterval         time.Duration `envconfig:"WS_PING_INTERVAL" default:"60s"`
		ReconnectDelay       time.Duration `envconfig:"WS_RECONNECT_DELAY" default:"5s"`
		MaxReconnectAttempts int           `envconfig:"WS_MAX_RECONNECT_ATTEMPTS" default:"10"`
	}

	// 애플리케이션 설정
	App struct {
		Pairs         []string      `envconfig:"TRADING_PAIRS" default:"KRW-BTC"`
		FetchInterval time.Duration `envconfig:"FETCH_INTERVAL" default:"1m"`
		CandleLimit   int           `envconfig:"CANDLE_LIMIT" default:"100"`
	}

	// 데이터베이스 설정 (비어 있으면 주문 저장소 비활성)
	Database struct {
		DSN string `envconfig:"DATABASE_DSN"`
	}
}

// ValidateConfig는 설정이 유효한지 확인합니다.
func ValidateConfig(cfg *Config) error {
	if len(cfg.App.Pairs) == 0 {
		return fmt.Errorf("TRADING_PAIRS는 최소 한 개의 거래쌍이 필요합니다")
	}

	if cfg.App.FetchInterval < 10*time.Second {
		return fmt.Errorf("FETCH_INTERVAL은 10초 이상이어야 합니다")
	}

	if cfg.App.CandleLimit < 1 || cfg.App.CandleLimit > 200 {
		return fmt.Errorf("CANDLE_LIMIT은 1 이상 200 이하이어야 합니다")
	}

	if cfg.Websocket.MaxReconnectAttempts < 1 {
		return fmt.Errorf("WS_MAX_RECONNECT_ATTEMPTS는 1 이상이어야 합니다")
	}

	return nil
}

// LoadConfig는 환경변수에서 설정을 로드합니다.
func LoadConfig() (*Config, error) {
	// .env 파일은 있으면 로드, 없으면 환경변수만 사용
	_ = godotenv.Load()

	var cfg Config
	// 환경변수를 구조체로 파싱
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("환경변수 처리 실패: %w", err)
	}

	// 설정값 검증
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("설정값 검증 실패: %w", err)
	}

	return &cfg, nil
}
