package coffeeshop

import (
	"fmt"
	"unicode/utf8"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
	"coffeeshop/internal/pkg/guard"
)

// CoffeeNameMinLength is the shortest accepted coffee name, in characters.
const CoffeeNameMinLength = 3

// ErrCoffeeIsNotConstructed is returned for nil or zero-value coffees. It is a wrong-type error.
var ErrCoffeeIsNotConstructed = fmt.Errorf("%w: coffee must be created via Shop.NewCoffee", errs.ErrValueHasWrongType)

// Coffee is a named product. Its name never changes; its orders only grow,
// and only through Customer.CreateOrder.
type Coffee struct {
	id     kernel.UUID
	name   string
	shop   *Shop
	orders []*Order
	guard  guard.ConstructorGuard
}

func newCoffee(shop *Shop, id kernel.UUID, name string) (*Coffee, error) {
	coffee := &Coffee{
		shop:  shop,
		guard: guard.NewConstructorGuard(),
	}

	if err := coffee.setID(id); err != nil {
		return nil, err
	}
	if err := coffee.setName(name); err != nil {
		return nil, err
	}

	return coffee, nil
}

// Validate reports whether c was created by Shop.NewCoffee.
func (c *Coffee) Validate() error {
	if c == nil || c.shop == nil {
		return ErrCoffeeIsNotConstructed
	}
	return c.guard.Validate(ErrCoffeeIsNotConstructed)
}

// IsEqual compares coffees by identity.
func (c *Coffee) IsEqual(other *Coffee) bool {
	return c != nil && other != nil && c.id.IsEqual(other.id)
}

func (c *Coffee) ID() kernel.UUID {
	return c.id
}

func (c *Coffee) Name() string {
	return c.name
}

func (c *Coffee) String() string {
	return c.name
}

// Orders returns the orders placed for this coffee, oldest first.
func (c *Coffee) Orders() []*Order {
	defer c.shop.rlock()()

	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// Customers returns every customer who ordered this coffee once, in order of first purchase.
func (c *Coffee) Customers() []*Customer {
	defer c.shop.rlock()()

	seen := make(map[*Customer]struct{}, len(c.orders))
	customers := make([]*Customer, 0, len(c.orders))
	for _, order := range c.orders {
		if _, ok := seen[order.customer]; ok {
			continue
		}
		seen[order.customer] = struct{}{}
		customers = append(customers, order.customer)
	}
	return customers
}

// NumOrders returns how many times this coffee was ordered.
func (c *Coffee) NumOrders() int {
	defer c.shop.rlock()()

	return len(c.orders)
}

// AveragePrice returns the mean order price, or exactly 0 when there are no orders.
func (c *Coffee) AveragePrice() float64 {
	defer c.shop.rlock()()

	if len(c.orders) == 0 {
		return 0
	}
	return sumPrices(c.orders).Mean(len(c.orders)).Float64()
}

// SpendByCustomer totals this coffee's orders per customer, in order of first purchase.
func (c *Coffee) SpendByCustomer() []Spend {
	defer c.shop.rlock()()

	return spendByCustomer(c.orders)
}

// addOrder is called by Shop.register with the shop lock held.
func (c *Coffee) addOrder(order *Order) {
	c.orders = append(c.orders, order)
}

func (c *Coffee) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Coffee) setName(name string) error {
	if n := utf8.RuneCountInString(name); n < CoffeeNameMinLength {
		return errs.NewValueIsTooShortError("coffee name", n, CoffeeNameMinLength)
	}
	c.name = name
	return nil
}
