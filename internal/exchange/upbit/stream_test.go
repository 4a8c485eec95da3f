package upbit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MALLLAG/crypto-quant/internal/domain"
)

var testUpgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// newWebSocketServer는 연결마다 handler를 호출하는 테스트 서버를 띄우고
// ws:// 주소를 반환합니다.
func newWebSocketServer(t *testing.T, handler func(conn *websocket.Conn)) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := testUpgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		handler(conn)
	}))
	t.Cleanup(server.Close)
	return "ws" + strings.TrimPrefix(server.URL, "http")
}

func mustStreamPair(t *testing.T) []domain.TradingPair {
	t.Helper()
	pair, err := domain.ParseTradingPair("KRW-BTC")
	require.NoError(t, err)
	return []domain.TradingPair{pair}
}

func TestBuildSubscribeMessage(t *testing.T) {
	t.Run("티켓, 타입, 포맷 프레임으로 조립된다", func(t *testing.T) {
		message, err := buildSubscribeMessage("ticker", []string{"KRW-BTC", "KRW-ETH"})
		require.NoError(t, err)

		var frames []map[string]interface{}
		require.NoError(t, json.Unmarshal(message, &frames))
		require.Len(t, frames, 3)

		assert.NotEmpty(t, frames[0]["ticket"])
		assert.Equal(t, "ticker", frames[1]["type"])
		assert.Equal(t, []interface{}{"KRW-BTC", "KRW-ETH"}, frames[1]["codes"])
		assert.Equal(t, "DEFAULT", frames[2]["format"])
	})

	t.Run("코드가 없으면 codes 필드를 생략한다", func(t *testing.T) {
		message, err := buildSubscribeMessage("myOrder", nil)
		require.NoError(t, err)

		var frames []map[string]interface{}
		require.NoError(t, json.Unmarshal(message, &frames))
		assert.NotContains(t, frames[1], "codes")
	})

	t.Run("호출마다 새 티켓을 발급한다", func(t *testing.T) {
		first, err := buildSubscribeMessage("ticker", nil)
		require.NoError(t, err)
		second, err := buildSubscribeMessage("ticker", nil)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})
}

func TestSubscribeTicker(t *testing.T) {
	tickerFrame := `{
		"type": "ticker",
		"code": "KRW-BTC",
		"trade_price": 50500000,
		"opening_price": 50000000,
		"high_price": 51000000,
		"low_price": 49000000,
		"prev_closing_price": 50000000,
		"change": "RISE",
		"change_price": 500000,
		"change_rate": 0.01,
		"signed_change_price": 500000,
		"signed_change_rate": 0.01,
		"acc_trade_volume": 100.5,
		"acc_trade_price": 5000000000,
		"timestamp": 1717200000000
	}`

	t.Run("구독 메시지를 받은 뒤 프레임을 도메인 타입으로 전달한다", func(t *testing.T) {
		url := newWebSocketServer(t, func(conn *websocket.Conn) {
			_, subscribe, err := conn.ReadMessage()
			if err != nil {
				return
			}
			var frames []map[string]interface{}
			if err := json.Unmarshal(subscribe, &frames); err != nil {
				return
			}
			conn.WriteMessage(websocket.TextMessage, []byte(tickerFrame))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stream := NewStream(NewSigner("access", "secret"), WithPublicURL(url))
		tickers, err := stream.SubscribeTicker(ctx, mustStreamPair(t))
		require.NoError(t, err)

		ticker, ok := <-tickers
		require.True(t, ok)
		assert.Equal(t, "KRW-BTC", ticker.Pair.Value())
		assert.Equal(t, "50500000", ticker.TradePrice.String())

		// 정상 종료 후 채널이 닫힌다
		_, ok = <-tickers
		assert.False(t, ok)
	})

	t.Run("구독 타입과 다른 프레임은 건너뛴다", func(t *testing.T) {
		url := newWebSocketServer(t, func(conn *websocket.Conn) {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"trade","code":"KRW-BTC"}`))
			conn.WriteMessage(websocket.TextMessage, []byte(`{"status":"UP"}`))
			conn.WriteMessage(websocket.TextMessage, []byte(tickerFrame))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stream := NewStream(NewSigner("access", "secret"), WithPublicURL(url))
		tickers, err := stream.SubscribeTicker(ctx, mustStreamPair(t))
		require.NoError(t, err)

		ticker, ok := <-tickers
		require.True(t, ok)
		assert.Equal(t, "50500000", ticker.TradePrice.String())
	})

	t.Run("컨텍스트 취소 시 채널이 닫힌다", func(t *testing.T) {
		url := newWebSocketServer(t, func(conn *websocket.Conn) {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			// 취소될 때까지 수신 대기
			conn.ReadMessage()
		})

		ctx, cancel := context.WithCancel(context.Background())

		stream := NewStream(NewSigner("access", "secret"), WithPublicURL(url))
		tickers, err := stream.SubscribeTicker(ctx, mustStreamPair(t))
		require.NoError(t, err)

		cancel()

		select {
		case _, ok := <-tickers:
			assert.False(t, ok)
		case <-time.After(5 * time.Second):
			t.Fatal("취소 후에도 채널이 닫히지 않음")
		}
	})
}

func TestReconnect(t *testing.T) {
	t.Run("비정상 종료 시 한도까지 재연결을 시도한다", func(t *testing.T) {
		var connections int32
		url := newWebSocketServer(t, func(conn *websocket.Conn) {
			atomic.AddInt32(&connections, 1)
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			// 정상 종료 프레임 없이 연결을 끊는다
		})

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		stream := NewStream(NewSigner("access", "secret"),
			WithPublicURL(url),
			WithReconnect(time.Millisecond, 2))
		tickers, err := stream.SubscribeTicker(ctx, mustStreamPair(t))
		require.NoError(t, err)

		select {
		case _, ok := <-tickers:
			assert.False(t, ok)
		case <-time.After(8 * time.Second):
			t.Fatal("재연결 한도 소진 후에도 채널이 닫히지 않음")
		}

		// 최초 연결 1회 + 재연결 2회
		assert.Equal(t, int32(3), atomic.LoadInt32(&connections))
	})

	t.Run("정상 종료는 재연결하지 않는다", func(t *testing.T) {
		var connections int32
		url := newWebSocketServer(t, func(conn *websocket.Conn) {
			atomic.AddInt32(&connections, 1)
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		})

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stream := NewStream(NewSigner("access", "secret"),
			WithPublicURL(url),
			WithReconnect(time.Millisecond, 5))
		tickers, err := stream.SubscribeTicker(ctx, mustStreamPair(t))
		require.NoError(t, err)

		select {
		case _, ok := <-tickers:
			assert.False(t, ok)
		case <-time.After(4 * time.Second):
			t.Fatal("정상 종료 후에도 채널이 닫히지 않음")
		}

		assert.Equal(t, int32(1), atomic.LoadInt32(&connections))
	})
}

func TestSubscribeMyOrder(t *testing.T) {
	t.Run("서명 토큰으로 연결하고 주문 이벤트를 전달한다", func(t *testing.T) {
		var authHeader atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader.Store(r.Header.Get("Authorization"))
			conn, err := testUpgrader.Upgrade(w, r, nil)
			if err != nil {
				return
			}
			defer conn.Close()

			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
			conn.WriteMessage(websocket.TextMessage, []byte(`{
				"type": "myOrder",
				"code": "KRW-BTC",
				"uuid": "order-uuid",
				"ask_bid": "BID",
				"order_type": "limit",
				"state": "trade",
				"trade_uuid": "trade-uuid",
				"price": 50000000,
				"volume": 0.001,
				"trade_fee": 25,
				"trade_timestamp": 1717200000000
			}`))
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		}))
		t.Cleanup(server.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		stream := NewStream(NewSigner("access", "secret"),
			WithPrivateURL("ws"+strings.TrimPrefix(server.URL, "http")))
		events, err := stream.SubscribeMyOrder(ctx)
		require.NoError(t, err)

		event, ok := <-events
		require.True(t, ok)

		executed, ok := event.(domain.OrderExecuted)
		require.True(t, ok)
		assert.Equal(t, "order-uuid", executed.OrderID.String())
		assert.Equal(t, "trade-uuid", executed.TradeID.String())
		assert.Equal(t, "0.001", executed.ExecutedVolume.String())

		auth, _ := authHeader.Load().(string)
		assert.True(t, strings.HasPrefix(auth, "Bearer "))
	})
}
