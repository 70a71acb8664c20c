package queries

import (
	"context"

	"gorm.io/gorm"
)

type ListMyOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListMyOrdersQueryHandler creates a new ListMyOrdersQueryHandler.
func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{db: db}
}

func (h ListMyOrdersQueryHandler) Handle(ctx context.Context, query ListMyOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrderViews+`
		WHERE o.user_id = ?
		ORDER BY o.created_at DESC, o.id
	`, query.Actor().ID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanOrderViews(rows)
}
