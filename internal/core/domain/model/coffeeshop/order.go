package coffeeshop

import (
	"fmt"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

const (
	// MinPrice is the lowest accepted order price, inclusive.
	MinPrice = 1.0
	// MaxPrice is the highest accepted order price, inclusive.
	MaxPrice = 10.0
)

// ErrOrderIsNotConstructed is returned for nil or zero-value orders. It is a wrong-type error.
var ErrOrderIsNotConstructed = fmt.Errorf("%w: order must be created via Customer.CreateOrder", errs.ErrValueHasWrongType)

// Order pairs one customer with one coffee at a price. Orders are immutable.
type Order struct {
	id       kernel.UUID
	customer *Customer
	coffee   *Coffee
	price    float64
	guard    guard.ConstructorGuard
}

// newOrder validates customer, coffee and price in that order and stops at the first failure.
func newOrder(id kernel.UUID, customer *Customer, coffee *Coffee, price float64) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := order.setID(id); err != nil {
		return nil, err
	}
	if err := order.setCustomer(customer); err != nil {
		return nil, err
	}
	if err := order.setCoffee(coffee); err != nil {
		return nil, err
	}
	if err := order.setPrice(price); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate reports whether o was created by Customer.CreateOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return o != nil && other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Customer() *Customer {
	return o.customer
}

func (o *Order) Coffee() *Coffee {
	return o.coffee
}

func (o *Order) Price() float64 {
	return o.price
}

func (o *Order) String() string {
	return fmt.Sprintf("%s ordered %s at %.2f", o.customer, o.coffee, o.price)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer *Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setCoffee(coffee *Coffee) error {
	if err := coffee.Validate(); err != nil {
		return err
	}
	o.coffee = coffee
	return nil
}

// setPrice also rejects NaN, which fails both comparisons.
func (o *Order) setPrice(price float64) error {
	if !(price >= MinPrice && price <= MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price, MinPrice, MaxPrice)
	}
	o.price = price
	return nil
}
