package queries

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrGetMostAficionadoQueryIsNotConstructed = errors.New(
	"GetMostAficionadoQuery must be created via NewGetMostAficionadoQuery constructor",
)

// GetMostAficionadoQuery asks which customer spent the most on one coffee.
//
// Example:
//
//	query, _ := NewGetMostAficionadoQuery(latteID)
//	fan, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if !fan.Found {
//	    fmt.Println("nobody ordered it yet")
//	}
type GetMostAficionadoQuery struct {
	coffeeID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMostAficionadoQuery creates a query for the coffee with the given ID.
func NewGetMostAficionadoQuery(coffeeID kernel.UUID) (GetMostAficionadoQuery, error) {
	if err := coffeeID.Validate(); err != nil {
		return GetMostAficionadoQuery{}, err
	}

	return GetMostAficionadoQuery{
		coffeeID: coffeeID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMostAficionadoQuery) Validate() error {
	return q.guard.Validate(ErrGetMostAficionadoQueryIsNotConstructed)
}

// CoffeeID returns the coffee being ranked.
func (q GetMostAficionadoQuery) CoffeeID() kernel.UUID {
	return q.coffeeID
}
