package queries

import "context"

// GetPickupOptionsQueryHandler serves the pickup-day labels of the current
// order instance.
type GetPickupOptionsQueryHandler struct {
	reader OrderStateReader
}

// NewGetPickupOptionsQueryHandler creates a handler bound to the given
// state reader.
func NewGetPickupOptionsQueryHandler(reader OrderStateReader) GetPickupOptionsQueryHandler {
	return GetPickupOptionsQueryHandler{reader: reader}
}

// Handle validates the query and returns the labels in offer order.
func (h GetPickupOptionsQueryHandler) Handle(ctx context.Context, query GetPickupOptionsQuery) ([]string, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return h.reader.PickupOptions(), nil
}
