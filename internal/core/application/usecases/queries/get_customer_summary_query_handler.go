package queries

import (
	"context"

	"coffeeshop/internal/core/ports"
)

// GetCustomerSummaryQueryHandler builds customer read models from a shop directory.
type GetCustomerSummaryQueryHandler struct {
	directory ports.ShopDirectory
}

func NewGetCustomerSummaryQueryHandler(directory ports.ShopDirectory) GetCustomerSummaryQueryHandler {
	return GetCustomerSummaryQueryHandler{directory: directory}
}

// Handle returns the summary of the requested customer.
// An unknown customer yields errs.ObjectNotFoundError.
func (h GetCustomerSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetCustomerSummaryQuery,
) (GetCustomerSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCustomerSummaryQueryResponse{}, err
	}
	if err := ctx.Err(); err != nil {
		return GetCustomerSummaryQueryResponse{}, err
	}

	customer, err := h.directory.Customer(query.CustomerID())
	if err != nil {
		return GetCustomerSummaryQueryResponse{}, err
	}

	coffees := customer.Coffees()
	names := make([]string, 0, len(coffees))
	for _, coffee := range coffees {
		names = append(names, coffee.Name())
	}

	return GetCustomerSummaryQueryResponse{
		ID:         customer.ID(),
		Name:       customer.Name(),
		NumOrders:  len(customer.Orders()),
		Coffees:    names,
		TotalSpent: customer.TotalSpent(),
	}, nil
}
