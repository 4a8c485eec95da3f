package scheduler

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Task는 스케줄러가 실행할 작업을 정의하는 인터페이스입니다
type Task interface {
	Execute(ctx context.Context) error
}

// Scheduler는 정해진 간격으로 작업을 실행하는 스케줄러입니다
type Scheduler struct {
	interval time.Duration
	task     Task
	logger   zerolog.Logger
	stopCh   chan struct{}
}

// NewScheduler는 새로운 스케줄러를 생성합니다
func NewScheduler(interval time.Duration, task Task, logger zerolog.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		task:     task,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
}

// Start는 스케줄러를 시작합니다
func (s *Scheduler) Start(ctx context.Context) error {
	// 다음 실행 시간 계산
	now := time.Now()
	nextRun := now.Truncate(s.interval).Add(s.interval)
	waitDuration := nextRun.Sub(now)

	s.logger.Info().
		Dur("wait", waitDuration.Round(time.Second)).
		Time("next_run", nextRun).
		Msg("다음 실행 대기")

	timer := time.NewTimer(waitDuration)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-s.stopCh:
			return nil

		case <-timer.C:
			// 작업 실행
			if err := s.task.Execute(ctx); err != nil {
				// 에러가 발생해도 계속 실행
				s.logger.Error().Err(err).Msg("작업 실행 실패")
			}

			// 다음 실행 시간 계산
			now := time.Now()
			nextRun = now.Truncate(s.interval).Add(s.interval)
			waitDuration = nextRun.Sub(now)

			s.logger.Info().
				Dur("wait", waitDuration.Round(time.Second)).
				Time("next_run", nextRun).
				Msg("다음 실행 대기")

			// 타이머 리셋
			timer.Reset(waitDuration)
		}
	}
}

// Stop은 스케줄러를 중지합니다
func (s *Scheduler) Stop() {
	close(s.stopCh)
}
