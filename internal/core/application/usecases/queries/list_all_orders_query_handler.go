package queries

import (
	"context"

	"shop/internal/pkg/errs"

	"gorm.io/gorm"
)

type ListAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewListAllOrdersQueryHandler creates a new ListAllOrdersQueryHandler.
func NewListAllOrdersQueryHandler(db *gorm.DB) ListAllOrdersQueryHandler {
	return ListAllOrdersQueryHandler{db: db}
}

// Handle projects each owner as id and name only.
func (h ListAllOrdersQueryHandler) Handle(ctx context.Context, query ListAllOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if !query.Actor().IsAdmin {
		return nil, errs.NewUnauthorizedError("list all orders")
	}

	rows, err := h.db.WithContext(ctx).Raw(selectOrderViews + `
		ORDER BY o.created_at DESC, o.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views, err := scanOrderViews(rows)
	if err != nil {
		return nil, err
	}

	for i := range views {
		views[i].Owner.Email = ""
	}

	return views, nil
}
