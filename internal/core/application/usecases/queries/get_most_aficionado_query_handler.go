package queries

import (
	"context"

	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/core/ports"
)

// GetMostAficionadoQueryHandler ranks the buyers of a coffee.
type GetMostAficionadoQueryHandler struct {
	directory ports.ShopDirectory
}

// NewGetMostAficionadoQueryHandler creates a handler for aficionado lookups.
func NewGetMostAficionadoQueryHandler(directory ports.ShopDirectory) GetMostAficionadoQueryHandler {
	return GetMostAficionadoQueryHandler{directory: directory}
}

// Handle returns the customer with the highest spend on the requested coffee.
// Found is false when the coffee has no orders. Ties go to the earliest buyer.
func (h GetMostAficionadoQueryHandler) Handle(ctx context.Context, query GetMostAficionadoQuery) (SpenderResponse, error) {
	if err := query.Validate(); err != nil {
		return SpenderResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return SpenderResponse{}, err
	}

	coffee, err := h.directory.Coffee(query.CoffeeID())
	if err != nil {
		return SpenderResponse{}, err
	}

	top, ok := coffeeshop.TopSpend(coffee.SpendByCustomer())
	if !ok {
		return SpenderResponse{}, nil
	}
	return newSpenderResponse(top), nil
}
