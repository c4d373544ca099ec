package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/core/ports"
)

// GetTopSpenderQueryHandler ranks every customer of a shop by total spend.
type GetTopSpenderQueryHandler struct {
	directory ports.ShopDirectory
}

// NewGetTopSpenderQueryHandler creates a handler for top spender lookups.
func NewGetTopSpenderQueryHandler(directory ports.ShopDirectory) GetTopSpenderQueryHandler {
	return GetTopSpenderQueryHandler{directory: directory}
}

// Handle returns the customer with the highest spend in the shop.
// Found is false when the ledger is empty. Ties go to the customer who ordered first.
func (h GetTopSpenderQueryHandler) Handle(ctx context.Context, query GetTopSpenderQuery) (SpenderResponse, error) {
	if err := query.Validate(); err != nil {
		return SpenderResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return SpenderResponse{}, err
	}

	top, ok := coffeeshop.TopSpend(h.directory.SpendByCustomer())
	if !ok {
		return SpenderResponse{}, nil
	}
	return newSpenderResponse(top), nil
}
