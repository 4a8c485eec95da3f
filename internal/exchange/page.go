package exchange

import "fmt"

const (
	// DefaultPageLimit은 페이지 크기 기본값입니다
	DefaultPageLimit = 100
	// MaxPageLimit은 페이지 크기 상한입니다
	MaxPageLimit = 200
)

// PageRequest는 커서 기반 페이징 요청입니다.
// Cursor는 불투명한 토큰으로, 마지막 항목에서 유도됩니다.
type PageRequest struct {
	Limit  int
	Cursor *string
}

// NewPageRequest는 페이징 요청을 검증하고 생성합니다
func NewPageRequest(limit int, cursor *string) (PageRequest, error) {
	if limit < 1 || limit > MaxPageLimit {
		return PageRequest{}, fmt.Errorf("페이지 크기는 1 이상 %d 이하이어야 합니다: %d", MaxPageLimit, limit)
	}
	return PageRequest{Limit: limit, Cursor: cursor}, nil
}

// DefaultPageRequest는 기본 크기의 첫 페이지 요청을 반환합니다
func DefaultPageRequest() PageRequest {
	return PageRequest{Limit: DefaultPageLimit}
}

// PageResponse는 커서 기반 페이징 응답입니다.
// NextCursor가 nil이면 마지막 페이지입니다.
type PageResponse[T any] struct {
	Items      []T
	NextCursor *string
}

// HasNext는 다음 페이지가 있는지 확인합니다
func (p PageResponse[T]) HasNext() bool { return p.NextCursor != nil }

// Size는 조회된 항목 수를 반환합니다
func (p PageResponse[T]) Size() int { return len(p.Items) }

// IsEmpty는 항목이 없는지 확인합니다
func (p PageResponse[T]) IsEmpty() bool { return len(p.Items) == 0 }

// EmptyPage는 빈 페이지 응답을 반환합니다
func EmptyPage[T any]() PageResponse[T] {
	return PageResponse[T]{Items: nil, NextCursor: nil}
}

// PageOf는 다음 페이지가 없는 단일 페이지 응답을 반환합니다
func PageOf[T any](items []T) PageResponse[T] {
	return PageResponse[T]{Items: items, NextCursor: nil}
}
