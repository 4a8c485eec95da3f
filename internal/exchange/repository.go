package exchange

import (
	"context"

	"github.com/MALLLAG/crypto-quant/internal/domain"
)

// OrderRepository는 주문 스냅샷의 영속 저장소 인터페이스입니다.
// Save는 같은 ID의 주문을 덮어쓰는 upsert이며, 애그리거트는 부분 수정 없이
// 항상 전체 스냅샷으로 교체됩니다.
type OrderRepository interface {
	Save(ctx context.Context, order domain.Order) error
	// FindByID는 주문을 조회합니다. 없으면 (nil, nil)을 반환합니다.
	FindByID(ctx context.Context, id domain.OrderID) (*domain.Order, error)
	// FindOpenOrders는 미체결 주문을 커서 페이징으로 조회합니다.
	// 커서는 마지막 항목의 생성 시각입니다.
	FindOpenOrders(ctx context.Context, pair *domain.TradingPair, page PageRequest) (PageResponse[domain.Order], error)
}
