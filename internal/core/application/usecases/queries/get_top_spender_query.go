package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetTopSpenderQueryIsNotConstructed = errors.New(
	"GetTopSpenderQuery must be created via NewGetTopSpenderQuery constructor",
)

// GetTopSpenderQuery asks which customer spent the most across the whole ledger.
// This is a parameterless query.
type GetTopSpenderQuery struct {
	guard guard.ConstructorGuard
}

// NewGetTopSpenderQuery creates the query.
func NewGetTopSpenderQuery() GetTopSpenderQuery {
	return GetTopSpenderQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetTopSpenderQuery) Validate() error {
	return q.guard.Validate(ErrGetTopSpenderQueryIsNotConstructed)
}

// SpenderResponse names a customer and their total. The zero value, with Found false,
// means there was nobody to rank.
type SpenderResponse struct {
	Found      bool
	CustomerID kernel.UUID
	Name       string
	TotalSpent float64
}

func newSpenderResponse(spend coffeeshop.Spend) SpenderResponse {
	return SpenderResponse{
		Found:      true,
		CustomerID: spend.Customer.ID(),
		Name:       spend.Customer.Name(),
		TotalSpent: spend.Total.Float64(),
	}
}
