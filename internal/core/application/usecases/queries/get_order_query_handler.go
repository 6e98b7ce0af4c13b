package queries

import (
	"context"

	"checkout/internal/core/domain/model/order"
)

// GetOrderQueryHandler serves the current order snapshot.
type GetOrderQueryHandler struct {
	reader OrderStateReader
}

// NewGetOrderQueryHandler creates a handler bound to the given state reader.
func NewGetOrderQueryHandler(reader OrderStateReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader}
}

// Handle validates the query and returns the present snapshot.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (order.Snapshot, error) {
	if err := query.Validate(); err != nil {
		return order.Snapshot{}, err
	}
	if err := ctx.Err(); err != nil {
		return order.Snapshot{}, err
	}

	return h.reader.Current(), nil
}
