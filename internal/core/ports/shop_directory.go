// Package ports defines the contracts between the coffeeshop use cases and the
// components that serve them, enabling dependency inversion and testability.
package ports

import (
	"coffeeshop/internal/core/domain/model/coffeeshop"
	"coffeeshop/internal/core/domain/model/kernel"
)

// ShopDirectory registers and resolves the entities of one shop.
// *coffeeshop.Shop satisfies it.
type ShopDirectory interface {
	// NewCustomer validates name and registers a customer.
	NewCustomer(name string) (*coffeeshop.Customer, error)

	// NewCoffee validates name and registers a coffee.
	NewCoffee(name string) (*coffeeshop.Coffee, error)

	// Customer resolves a customer. Unknown IDs yield errs.ObjectNotFoundError.
	Customer(id kernel.UUID) (*coffeeshop.Customer, error)

	// Coffee resolves a coffee. Unknown IDs yield errs.ObjectNotFoundError.
	Coffee(id kernel.UUID) (*coffeeshop.Coffee, error)

	// SpendByCustomer totals the ledger per customer in order of first purchase.
	SpendByCustomer() []coffeeshop.Spend
}

var _ ShopDirectory = (*coffeeshop.Shop)(nil)
