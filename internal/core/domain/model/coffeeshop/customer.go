package coffeeshop

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

const (
	// CustomerNameMinLength is the shortest accepted customer name, in characters.
	CustomerNameMinLength = 1
	// CustomerNameMaxLength is the longest accepted customer name, in characters.
	CustomerNameMaxLength = 15
)

var (
	// ErrCustomerIsNotConstructed is returned for nil or zero-value customers. It is a wrong-type error.
	ErrCustomerIsNotConstructed = fmt.Errorf(
		"%w: customer must be created via Shop.NewCustomer", errs.ErrValueHasWrongType)

	// ErrCoffeeFromAnotherShop is the cause reported when a customer orders a coffee
	// registered in a different shop.
	ErrCoffeeFromAnotherShop = errors.New("coffee belongs to another shop")
)

// Customer is a named patron. Its name never changes; its orders only grow.
type Customer struct {
	id     kernel.UUID
	name   string
	shop   *Shop
	orders []*Order
	guard  guard.ConstructorGuard
}

func newCustomer(shop *Shop, id kernel.UUID, name string) (*Customer, error) {
	customer := &Customer{
		shop:  shop,
		guard: guard.NewConstructorGuard(),
	}

	if err := customer.setID(id); err != nil {
		return nil, err
	}
	if err := customer.setName(name); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate reports whether c was created by Shop.NewCustomer.
func (c *Customer) Validate() error {
	if c == nil || c.shop == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// IsEqual compares customers by identity.
func (c *Customer) IsEqual(other *Customer) bool {
	return c != nil && other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) String() string {
	return c.name
}

// Orders returns the orders this customer placed, oldest first.
func (c *Customer) Orders() []*Order {
	defer c.shop.rlock()()

	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Coffees returns every coffee this customer ordered once, in order of first purchase.
func (c *Customer) Coffees() []*Coffee {
	defer c.shop.rlock()()

	seen := make(map[*Coffee]struct{}, len(c.orders))
	coffees := make([]*Coffee, 0, len(c.orders))
	for _, order := range c.orders {
		if _, ok := seen[order.coffee]; ok {
			continue
		}
		seen[order.coffee] = struct{}{}
		coffees = append(coffees, order.coffee)
	}
	return coffees
}

// TotalSpent sums the prices of every order this customer placed.
func (c *Customer) TotalSpent() float64 {
	defer c.shop.rlock()()

	return sumPrices(c.orders).Float64()
}

// CreateOrder is the only way to create an Order.
//
// It checks coffee, builds the order (customer, then coffee, then price) and registers it on
// this customer, on coffee and on the shop ledger together. On failure nothing is registered.
//
// Errors:
//   - ErrCoffeeIsNotConstructed (wrong type) for a nil or zero-value coffee
//   - errs.ValueIsInvalidError wrapping ErrCoffeeFromAnotherShop for a foreign coffee
//   - errs.ValueIsOutOfRangeError for a price outside [MinPrice, MaxPrice]
func (c *Customer) CreateOrder(coffee *Coffee, price float64) (*Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := coffee.Validate(); err != nil {
		return nil, err
	}
	if coffee.shop != c.shop {
		return nil, errs.NewValueIsInvalidErrorWithCause("coffee", ErrCoffeeFromAnotherShop)
	}

	order, err := newOrder(kernel.NewUUID(), c, coffee, price)
	if err != nil {
		return nil, err
	}

	c.shop.register(order)
	return order, nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < CustomerNameMinLength || n > CustomerNameMaxLength {
		return errs.NewValueIsOutOfRangeError("customer name length", n, CustomerNameMinLength, CustomerNameMaxLength)
	}
	c.name = name
	return nil
}
