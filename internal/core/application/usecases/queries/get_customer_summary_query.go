package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetCustomerSummaryQueryIsNotConstructed = errors.New(
	"GetCustomerSummaryQuery must be created via NewGetCustomerSummaryQuery constructor",
)

// GetCustomerSummaryQuery asks for what one customer has ordered.
type GetCustomerSummaryQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCustomerSummaryQuery creates a query for the customer with the given ID.
func NewGetCustomerSummaryQuery(customerID kernel.UUID) (GetCustomerSummaryQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetCustomerSummaryQuery{}, err
	}

	return GetCustomerSummaryQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetCustomerSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerSummaryQueryIsNotConstructed)
}

func (q GetCustomerSummaryQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetCustomerSummaryQueryResponse is the read model of a customer.
// Coffees lists distinct coffees by name, in order of first purchase.
type GetCustomerSummaryQueryResponse struct {
	ID         kernel.UUID
	Name       string
	NumOrders  int
	Coffees    []string
	TotalSpent float64
}
