package main

import (
	"context"
	"os"
	osSignal "os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MALLLAG/crypto-quant/internal/config"
	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
	"github.com/MALLLAG/crypto-quant/internal/exchange/upbit"
	"github.com/MALLLAG/crypto-quant/internal/market"
	"github.com/MALLLAG/crypto-quant/internal/repository"
	"github.com/MALLLAG/crypto-quant/internal/scheduler"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	// 컨텍스트 생성: 종료 시그널로 취소
	ctx, cancel := osSignal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	logger.Info().Msg("트레이딩 클라이언트 시작")

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("설정 로드 실패")
	}

	// 거래쌍 파싱
	pairs := make([]domain.TradingPair, 0, len(cfg.App.Pairs))
	for _, raw := range cfg.App.Pairs {
		pair, err := domain.ParseTradingPair(raw)
		if err != nil {
			logger.Fatal().Err(err).Str("pair", raw).Msg("거래쌍 설정이 잘못되었습니다")
		}
		pairs = append(pairs, pair)
	}

	// 업비트 클라이언트 생성
	client := upbit.NewClient(
		cfg.Upbit.AccessKey,
		cfg.Upbit.SecretKey,
		upbit.WithBaseURL(cfg.Upbit.BaseURL),
		upbit.WithTimeout(10*time.Second),
		upbit.WithLogger(logger.With().Str("component", "rest").Logger()),
	)

	gateway := upbit.NewGateway(client)
	quotation := upbit.NewQuotation(client)

	// 계정 확인을 겸해 잔고를 한 번 조회
	balances, err := gateway.GetBalances(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("잔고 조회 실패")
	}
	for _, b := range balances {
		logger.Info().
			Str("currency", b.Currency().Value()).
			Str("available", b.Available().String()).
			Str("locked", b.Locked().String()).
			Msg("보유 잔고")
	}

	// 주문 저장소 (DSN이 있을 때만)
	var orderRepo exchange.OrderRepository
	if cfg.Database.DSN != "" {
		db, err := gorm.Open(postgres.Open(cfg.Database.DSN), &gorm.Config{})
		if err != nil {
			logger.Fatal().Err(err).Msg("데이터베이스 연결 실패")
		}
		orderRepo = repository.NewOrderGormRepository(
			db, logger.With().Str("component", "repository").Logger())
		logger.Info().Msg("주문 저장소 활성화")
	}

	// 실시간 스트림 구독
	stream := upbit.NewStream(
		upbit.NewSigner(cfg.Upbit.AccessKey, cfg.Upbit.SecretKey),
		upbit.WithPublicURL(cfg.Websocket.PublicURL),
		upbit.WithPrivateURL(cfg.Websocket.PrivateURL),
		upbit.WithPingInterval(cfg.Websocket.PingInterval),
		upbit.WithReconnect(cfg.Websocket.ReconnectDelay, cfg.Websocket.MaxReconnectAttempts),
		upbit.WithStreamLogger(logger.With().Str("component", "websocket").Logger()),
	)

	tickerCh, err := stream.SubscribeTicker(ctx, pairs)
	if err != nil {
		logger.Fatal().Err(err).Msg("현재가 구독 실패")
	}
	go func() {
		for ticker := range tickerCh {
			logger.Debug().
				Str("pair", ticker.Pair.Value()).
				Str("trade_price", ticker.TradePrice.String()).
				Msg("실시간 현재가")
		}
		logger.Warn().Msg("현재가 스트림 종료")
	}()

	eventCh, err := stream.SubscribeMyOrder(ctx)
	if err != nil {
		logger.Fatal().Err(err).Msg("주문 이벤트 구독 실패")
	}
	go func() {
		for event := range eventCh {
			logEvent := logger.Info().
				Str("order_id", event.EventOrderID().Value()).
				Time("occurred_at", event.OccurredAt())

			switch e := event.(type) {
			case domain.OrderCreated:
				logEvent.Str("pair", e.Pair.Value()).Msg("주문 접수")
			case domain.OrderExecuted:
				logEvent.
					Str("trade_id", e.TradeID.Value()).
					Str("volume", e.ExecutedVolume.String()).
					Str("price", e.ExecutedPrice.String()).
					Msg("주문 체결")
			case domain.OrderCancelled:
				logEvent.Msg("주문 취소")
			}

			if orderRepo != nil {
				syncOrder(ctx, gateway, orderRepo, event.EventOrderID(), logger)
			}
		}
		logger.Warn().Msg("주문 이벤트 스트림 종료")
	}()

	// 시세 수집 스케줄
	candleUnit, err := domain.NewMinutesUnit(1)
	if err != nil {
		logger.Fatal().Err(err).Msg("캔들 단위 설정 실패")
	}
	collector := market.NewCollector(
		quotation,
		pairs,
		logger.With().Str("component", "collector").Logger(),
		market.WithCandleUnit(candleUnit),
		market.WithCandleLimit(cfg.App.CandleLimit),
	)

	sched := scheduler.NewScheduler(
		cfg.App.FetchInterval,
		collector,
		logger.With().Str("component", "scheduler").Logger(),
	)
	defer sched.Stop()

	if err := sched.Start(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("스케줄러 종료")
	}

	logger.Info().Msg("트레이딩 클라이언트 종료")
}

// syncOrder는 이벤트가 가리키는 주문의 최신 스냅샷을 조회해 저장합니다
func syncOrder(ctx context.Context, gateway exchange.ExchangeGateway, repo exchange.OrderRepository, id domain.OrderID, logger zerolog.Logger) {
	order, err := gateway.GetOrder(ctx, id)
	if err != nil {
		logger.Warn().Err(err).Str("order_id", id.Value()).Msg("주문 조회 실패")
		return
	}
	if err := repo.Save(ctx, order); err != nil {
		logger.Warn().Err(err).Str("order_id", id.Value()).Msg("주문 저장 실패")
	}
}
