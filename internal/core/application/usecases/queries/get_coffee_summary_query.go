// Package queries contains read operations over shop state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return flat read models with names and totals instead of entity graphs.
package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetCoffeeSummaryQueryIsNotConstructed = errors.New(
	"GetCoffeeSummaryQuery must be created via NewGetCoffeeSummaryQuery constructor",
)

// GetCoffeeSummaryQuery asks for the order statistics of one coffee.
//
// Example:
//
//	query, err := NewGetCoffeeSummaryQuery(espressoID)
//	if err != nil {
//	    return err
//	}
//
//	summary, err := handler.Handle(ctx, query)
//	fmt.Printf("%s: %d orders, average %.2f\n", summary.Name, summary.NumOrders, summary.AveragePrice)
type GetCoffeeSummaryQuery struct {
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCoffeeSummaryQuery creates a query for the coffee with the given ID.
func NewGetCoffeeSummaryQuery(coffeeID kernel.UUID) (GetCoffeeSummaryQuery, error) {
	if err := coffeeID.Validate(); err != nil {
		return GetCoffeeSummaryQuery{}, err
	}

	return GetCoffeeSummaryQuery{
		coffeeID: coffeeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCoffeeSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetCoffeeSummaryQueryIsNotConstructed)
}

// CoffeeID returns the coffee being summarized.
func (q GetCoffeeSummaryQuery) CoffeeID() kernel.UUID {
	return q.coffeeID
}

// GetCoffeeSummaryQueryResponse is the read model of a coffee.
// Customers lists distinct buyers by name, in order of first purchase.
type GetCoffeeSummaryQueryResponse struct {
	ID           kernel.UUID
	Name         string
	NumOrders    int
	AveragePrice float64
	Customers    []string
}
