package upbit

import (
	"golang.org/x/time/rate"

	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// APIGroup은 레이트리밋 버킷과 1:1로 대응하는 엔드포인트 그룹입니다
type APIGroup int

const (
	// GroupQuotation은 시세 조회 엔드포인트 그룹입니다 (초당 10회)
	GroupQuotation APIGroup = iota
	// GroupExchangeDefault는 일반 계정 엔드포인트 그룹입니다 (초당 30회)
	GroupExchangeDefault
	// GroupOrder는 주문 생성/취소 엔드포인트 그룹입니다 (초당 8회)
	GroupOrder
)

// 그룹별 초당 허용 요청 수
const (
	quotationPerSec       = 10
	exchangeDefaultPerSec = 30
	orderPerSec           = 8
)

// RateLimiter는 엔드포인트 그룹별 독립 토큰 버킷입니다.
// 버킷 고갈 시 대기하지 않고 즉시 RateLimitError를 반환합니다.
// 토큰 보충은 소비 시점에 경과 시간으로 계산되므로 백그라운드 타이머가 없습니다.
type RateLimiter struct {
	limiters map[APIGroup]*rate.Limiter
}

// NewRateLimiter는 세 그룹의 버킷을 가진 레이트리미터를 생성합니다
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		limiters: map[APIGroup]*rate.Limiter{
			GroupQuotation:       rate.NewLimiter(rate.Limit(quotationPerSec), quotationPerSec),
			GroupExchangeDefault: rate.NewLimiter(rate.Limit(exchangeDefaultPerSec), exchangeDefaultPerSec),
			GroupOrder:           rate.NewLimiter(rate.Limit(orderPerSec), orderPerSec),
		},
	}
}

// Allow는 그룹의 버킷에서 토큰 하나를 소비합니다.
// 토큰이 없으면 즉시 RateLimitError를 반환합니다.
func (r *RateLimiter) Allow(group APIGroup) error {
	if !r.limiters[group].Allow() {
		return &exchange.RateLimitError{
			Code:    "RATE_LIMIT_EXCEEDED",
			Message: "요청 한도를 초과했습니다",
		}
	}
	return nil
}

// Tokens는 그룹의 현재 가용 토큰 수를 반환합니다
func (r *RateLimiter) Tokens(group APIGroup) float64 {
	return r.limiters[group].Tokens()
}
