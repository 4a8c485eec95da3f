package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/MALLLAG/crypto-quant/internal/domain"
	"github.com/MALLLAG/crypto-quant/internal/exchange"
)

// OrderGormRepository는 OrderRepository의 PostgreSQL 구현입니다.
// 커서는 마지막 항목의 생성 시각(RFC3339Nano)이며, 대량 데이터에서도
// 오프셋 페이징 없이 일관된 성능을 냅니다.
type OrderGormRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
}

// NewOrderGormRepository는 gorm 기반 주문 저장소를 생성합니다
func NewOrderGormRepository(db *gorm.DB, logger zerolog.Logger) *OrderGormRepository {
	return &OrderGormRepository{db: db, logger: logger}
}

// Save는 주문 스냅샷을 저장합니다. 같은 ID가 있으면 상태/수량/수수료/
// 종결 시각만 덮어쓰는 upsert입니다.
func (r *OrderGormRepository) Save(ctx context.Context, order domain.Order) error {
	entity := toEntity(order)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"state", "remaining_volume", "executed_volume",
			"executed_amount", "paid_fee", "done_at",
		}),
	}).Create(&entity)

	if result.Error != nil {
		return fmt.Errorf("주문 저장 실패: %w", result.Error)
	}
	return nil
}

// FindByID는 주문을 조회합니다. 없으면 (nil, nil)을 반환합니다.
func (r *OrderGormRepository) FindByID(ctx context.Context, id domain.OrderID) (*domain.Order, error) {
	var entity OrderEntity
	result := r.db.WithContext(ctx).First(&entity, "id = ?", id.Value())
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("주문 조회 실패: %w", result.Error)
	}

	order, err := toDomain(entity)
	if err != nil {
		return nil, fmt.Errorf("저장된 주문 복원 실패: %w", err)
	}
	return &order, nil
}

// FindOpenOrders는 미체결 주문을 생성 시각 내림차순으로 조회합니다.
// limit+1건을 읽어 다음 페이지 존재 여부를 판정합니다.
// 복원할 수 없는 행은 버리고 경고를 남깁니다.
func (r *OrderGormRepository) FindOpenOrders(ctx context.Context, pair *domain.TradingPair, page exchange.PageRequest) (exchange.PageResponse[domain.Order], error) {
	query := r.db.WithContext(ctx).
		Where("state IN ?", []string{string(domain.StateWait), string(domain.StateWatch)})

	if pair != nil {
		query = query.Where("pair = ?", pair.Value())
	}
	if page.Cursor != nil {
		cursor, err := time.Parse(time.RFC3339Nano, *page.Cursor)
		if err != nil {
			return exchange.EmptyPage[domain.Order](), fmt.Errorf("커서 해석 실패: %w", err)
		}
		query = query.Where("created_at < ?", cursor)
	}

	var entities []OrderEntity
	result := query.Order("created_at DESC").Limit(page.Limit + 1).Find(&entities)
	if result.Error != nil {
		return exchange.EmptyPage[domain.Order](), fmt.Errorf("미체결 주문 조회 실패: %w", result.Error)
	}

	hasNext := len(entities) > page.Limit
	if hasNext {
		entities = entities[:page.Limit]
	}

	orders := make([]domain.Order, 0, len(entities))
	for _, entity := range entities {
		order, err := toDomain(entity)
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("order_id", entity.ID).
				Msg("저장된 주문 복원 실패, 건너뜀")
			continue
		}
		orders = append(orders, order)
	}

	var nextCursor *string
	if hasNext && len(orders) > 0 {
		cursor := orders[len(orders)-1].CreatedAt().Format(time.RFC3339Nano)
		nextCursor = &cursor
	}
	return exchange.PageResponse[domain.Order]{Items: orders, NextCursor: nextCursor}, nil
}
