package upbit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

const (
	defaultPublicWebSocketURL  = "wss://api.upbit.com/websocket/v1"
	defaultPrivateWebSocketURL = "wss://api.upbit.com/websocket/v1/private"
)

// Stream은 RealtimeStream의 Upbit 구현입니다.
// 구독마다 독립된 연결을 열고, 연결 수명(재연결 포함)을 감독하는
// 고루틴이 채널의 수명을 소유합니다.
type Stream struct {
	signer               *Signer
	publicURL            string
	privateURL           string
	pingInterval         time.Duration
	reconnectDelay       time.Duration
	maxReconnectAttempts int
	logger               zerolog.Logger
}

// StreamOption은 스트림 옵션입니다
type StreamOption func(*Stream)

// WithPublicURL은 퍼블릭 WebSocket 주소를 변경합니다
func WithPublicURL(url string) StreamOption {
	return func(s *Stream) { s.publicURL = url }
}

// WithPrivateURL은 프라이빗 WebSocket 주소를 변경합니다
func WithPrivateURL(url string) StreamOption {
	return func(s *Stream) { s.privateURL = url }
}

// WithPingInterval은 핑 주기를 설정합니다
func WithPingInterval(interval time.Duration) StreamOption {
	return func(s *Stream) { s.pingInterval = interval }
}

// WithReconnect는 재연결 기본 지연과 최대 시도 횟수를 설정합니다
func WithReconnect(delay time.Duration, maxAttempts int) StreamOption {
	return func(s *Stream) {
		s.reconnectDelay = delay
		s.maxReconnectAttempts = maxAttempts
	}
}

// WithStreamLogger는 로거를 설정합니다
func WithStreamLogger(logger zerolog.Logger) StreamOption {
	return func(s *Stream) { s.logger = logger }
}

// NewStream은 Upbit 실시간 스트림을 생성합니다
func NewStream(signer *Signer, opts ...StreamOption) *Stream {
	s := &Stream{
		signer:               signer,
		publicURL:            defaultPublicWebSocketURL,
		privateURL:           defaultPrivateWebSocketURL,
		pingInterval:         defaultPingInterval,
		reconnectDelay:       defaultReconnectDelay,
		maxReconnectAttempts: defaultMaxReconnectAttempts,
		logger:               zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// 구독 메시지 프레임: [{ticket}, {type, codes}, {format}]
type subscribeTicket struct {
	Ticket string `json:"ticket"`
}

type subscribeType struct {
	Type  string   `json:"type"`
	Codes []string `json:"codes,omitempty"`
}

type subscribeFormat struct {
	Format string `json:"format"`
}

// buildSubscribeMessage는 구독 프레임을 조립합니다.
// codes가 비어 있으면 생략됩니다 (myOrder 스트림).
func buildSubscribeMessage(streamType string, codes []string) ([]byte, error) {
	message := []interface{}{
		subscribeTicket{Ticket: uuid.NewString()},
		subscribeType{Type: streamType, Codes: codes},
		subscribeFormat{Format: "DEFAULT"},
	}
	encoded, err := json.Marshal(message)
	if err != nil {
		return nil, fmt.Errorf("구독 메시지 직렬화 실패: %w", err)
	}
	return encoded, nil
}

// SubscribeTicker는 현재가 스트림을 구독합니다
func (s *Stream) SubscribeTicker(ctx context.Context, pairs []domain.TradingPair) (<-chan domain.Ticker, error) {
	out := make(chan domain.Ticker)
	err := s.subscribePublic(ctx, "ticker", pairs, func(ctx context.Context, data []byte) {
		if !s.expectType(data, "ticker") {
			return
		}
		var msg wsTickerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.dropFrame("ticker", err)
			return
		}
		ticker, err := msg.toDomain()
		if err != nil {
			s.dropFrame("ticker", err)
			return
		}
		select {
		case out <- ticker:
		case <-ctx.Done():
		}
	}, func() { close(out) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubscribeOrderbook은 호가창 스트림을 구독합니다
func (s *Stream) SubscribeOrderbook(ctx context.Context, pairs []domain.TradingPair) (<-chan domain.Orderbook, error) {
	out := make(chan domain.Orderbook)
	err := s.subscribePublic(ctx, "orderbook", pairs, func(ctx context.Context, data []byte) {
		if !s.expectType(data, "orderbook") {
			return
		}
		var msg wsOrderbookMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.dropFrame("orderbook", err)
			return
		}
		book, err := msg.toDomain()
		if err != nil {
			s.dropFrame("orderbook", err)
			return
		}
		select {
		case out <- book:
		case <-ctx.Done():
		}
	}, func() { close(out) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubscribeTrade는 체결 스트림을 구독합니다
func (s *Stream) SubscribeTrade(ctx context.Context, pairs []domain.TradingPair) (<-chan domain.Trade, error) {
	out := make(chan domain.Trade)
	err := s.subscribePublic(ctx, "trade", pairs, func(ctx context.Context, data []byte) {
		if !s.expectType(data, "trade") {
			return
		}
		var msg wsTradeMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.dropFrame("trade", err)
			return
		}
		trade, err := msg.toDomain()
		if err != nil {
			s.dropFrame("trade", err)
			return
		}
		select {
		case out <- trade:
		case <-ctx.Done():
		}
	}, func() { close(out) })
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SubscribeMyOrder는 내 주문 이벤트 스트림을 구독합니다.
// 프라이빗 스트림이므로 연결 시 서명 토큰을 전달합니다.
func (s *Stream) SubscribeMyOrder(ctx context.Context) (<-chan domain.OrderEvent, error) {
	token, err := s.signer.GenerateToken(nil)
	if err != nil {
		return nil, &exchange.AuthenticationError{Code: "SIGNING_FAILED", Message: err.Error()}
	}

	message, err := buildSubscribeMessage("myOrder", nil)
	if err != nil {
		return nil, &exchange.InvalidResponseError{Code: "INVALID_SUBSCRIBE", Message: err.Error()}
	}

	out := make(chan domain.OrderEvent)
	cfg := wsConfig{
		url:                  s.privateURL,
		authToken:            token,
		subscribeMessage:     message,
		pingInterval:         s.pingInterval,
		reconnectDelay:       s.reconnectDelay,
		maxReconnectAttempts: s.maxReconnectAttempts,
		logger:               s.logger.With().Str("stream", "myOrder").Logger(),
	}
	cfg.onMessage = func(data []byte) {
		if !s.expectType(data, "myOrder") {
			return
		}
		var msg wsMyOrderMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			s.dropFrame("myOrder", err)
			return
		}
		event, err := msg.toOrderEvent(cfg.logger)
		if err != nil {
			s.dropFrame("myOrder", err)
			return
		}
		select {
		case out <- event:
		case <-ctx.Done():
		}
	}

	go func() {
		defer close(out)
		runWebSocket(ctx, cfg)
	}()
	return out, nil
}

// subscribePublic은 퍼블릭 스트림 구독의 공통 경로입니다.
// 감독 고루틴이 종료되면 onDone으로 채널을 닫습니다.
func (s *Stream) subscribePublic(
	ctx context.Context,
	streamType string,
	pairs []domain.TradingPair,
	handle func(ctx context.Context, data []byte),
	onDone func(),
) error {
	codes := make([]string, len(pairs))
	for i, p := range pairs {
		codes[i] = p.Value()
	}

	message, err := buildSubscribeMessage(streamType, codes)
	if err != nil {
		return &exchange.InvalidResponseError{Code: "INVALID_SUBSCRIBE", Message: err.Error()}
	}

	cfg := wsConfig{
		url:                  s.publicURL,
		subscribeMessage:     message,
		pingInterval:         s.pingInterval,
		reconnectDelay:       s.reconnectDelay,
		maxReconnectAttempts: s.maxReconnectAttempts,
		logger:               s.logger.With().Str("stream", streamType).Logger(),
		onMessage: func(data []byte) {
			handle(ctx, data)
		},
	}

	go func() {
		defer onDone()
		runWebSocket(ctx, cfg)
	}()
	return nil
}

// expectType은 프레임의 타입 판별자가 구독 타입과 일치하는지 확인합니다.
// 다른 프레임(연결 상태 알림 등)은 조용히 무시하고, 판별자가 없는
// 프레임은 경고와 함께 버립니다.
func (s *Stream) expectType(data []byte, want string) bool {
	got, err := messageType(data)
	if err != nil {
		s.dropFrame(want, err)
		return false
	}
	return got == want
}

// dropFrame은 파싱할 수 없는 프레임을 버리고 경고를 남깁니다.
// 개별 프레임의 실패는 스트림 실패로 번지지 않습니다.
func (s *Stream) dropFrame(streamType string, err error) {
	s.logger.Warn().
		Err(err).
		Str("stream", streamType).
		Msg("프레임 파싱 실패, 버림")
}
