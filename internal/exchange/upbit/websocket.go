package upbit

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// WebSocket 연결 기본값
const (
	defaultPingInterval         = 60 * time.Second
	defaultReconnectDelay       = 5 * time.Second
	defaultMaxReconnectAttempts = 10

	// 재연결 지연 배수의 시프트 상한 (2^5 = 32배)
	maxBackoffShift = 5

	wsWriteTimeout = 10 * time.Second
)

// wsConfig는 한 구독 연결의 설정입니다
type wsConfig struct {
	url                  string
	authToken            string // 프라이빗 스트림용, 비어 있으면 미사용
	subscribeMessage     []byte
	pingInterval         time.Duration
	reconnectDelay       time.Duration
	maxReconnectAttempts int
	onMessage            func(data []byte)
	logger               zerolog.Logger
}

// runWebSocket은 연결 → 구독 → 수신을 반복하는 감독 루프입니다.
// 비정상 종료 시 지수 백오프로 재연결하며, 정상 종료(코드 1000)나
// 컨텍스트 취소, 재연결 한도 소진 시 반환합니다.
func runWebSocket(ctx context.Context, cfg wsConfig) {
	attempts := 0

	for {
		normalClose := connectAndRead(ctx, cfg)
		if ctx.Err() != nil || normalClose {
			return
		}

		attempts++
		if attempts > cfg.maxReconnectAttempts {
			cfg.logger.Error().
				Int("attempts", attempts-1).
				Str("url", cfg.url).
				Msg("재연결 한도 소진, 스트림 종료")
			return
		}

		shift := attempts
		if shift > maxBackoffShift {
			shift = maxBackoffShift
		}
		delay := cfg.reconnectDelay * time.Duration(1<<shift)

		cfg.logger.Warn().
			Int("attempt", attempts).
			Dur("delay", delay).
			Msg("연결이 끊어져 재연결 대기")

		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

// connectAndRead는 한 번의 연결 수명을 처리합니다.
// 정상 종료(코드 1000)이면 true를 반환합니다.
func connectAndRead(ctx context.Context, cfg wsConfig) bool {
	header := http.Header{}
	if cfg.authToken != "" {
		header.Set("Authorization", "Bearer "+cfg.authToken)
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, cfg.url, header)
	if err != nil {
		cfg.logger.Warn().Err(err).Str("url", cfg.url).Msg("연결 실패")
		return false
	}
	defer conn.Close()

	// 전송이 열리면 즉시 구독 메시지를 보낸다
	conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, cfg.subscribeMessage); err != nil {
		cfg.logger.Warn().Err(err).Msg("구독 메시지 전송 실패")
		return false
	}

	// 컨텍스트 취소와 핑 유지를 담당하는 보조 고루틴.
	// 연결이 닫히면 readLoop가 에러로 깨어나 done으로 합류한다.
	done := make(chan struct{})
	defer close(done)

	go func() {
		ticker := time.NewTicker(cfg.pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				conn.WriteMessage(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				conn.Close()
				return
			case <-done:
				return
			case <-ticker.C:
				conn.SetWriteDeadline(time.Now().Add(wsWriteTimeout))
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					conn.Close()
					return
				}
			}
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				return true
			}
			if ctx.Err() != nil {
				return true
			}
			cfg.logger.Warn().Err(err).Msg("수신 실패")
			return false
		}
		cfg.onMessage(data)
	}
}
