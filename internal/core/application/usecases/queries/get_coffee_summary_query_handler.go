package queries

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// GetCoffeeSummaryQueryHandler builds coffee read models from a shop directory.
type GetCoffeeSummaryQueryHandler struct {
	directory ports.ShopDirectory
}

// NewGetCoffeeSummaryQueryHandler creates a handler for coffee summaries.
func NewGetCoffeeSummaryQueryHandler(directory ports.ShopDirectory) GetCoffeeSummaryQueryHandler {
	return GetCoffeeSummaryQueryHandler{directory: directory}
}

// Handle returns the summary of the requested coffee.
// An unknown coffee yields errs.ObjectNotFoundError.
func (h GetCoffeeSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCoffeeSummaryQuery,
) (GetCoffeeSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCoffeeSummaryQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return GetCoffeeSummaryQueryResponse{}, err
	}

	coffee, err := h.directory.Coffee(query.CoffeeID())
	if err != nil {
		return GetCoffeeSummaryQueryResponse{}, err
	}

	customers := coffee.Customers()
	names := make([]string, 0, len(customers))
	for _, customer := range customers {
		names = append(names, customer.Name())
	}

	return GetCoffeeSummaryQueryResponse{
		ID:           coffee.ID(),
		Name:         coffee.Name(),
		NumOrders:    coffee.NumOrders(),
		AveragePrice: coffee.AveragePrice(),
		Customers:    names,
	}, nil
}
