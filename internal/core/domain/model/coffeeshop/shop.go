package coffeeshop

import (
	"sync"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/errs"
)

// Shop is the owner of the order ledger and of every customer and coffee created through it.
//
// Customers may only order coffees of their own shop. Lookups by ID return
// errs.ObjectNotFoundError for unknown identifiers.
type Shop struct {
	mu sync.RWMutex

	customers     []*Customer
	customersByID map[kernel.UUID]*Customer
	coffees       []*Coffee
	coffeesByID   map[kernel.UUID]*Coffee
	ledger        []*Order
}

// NewShop returns an empty shop.
func NewShop() *Shop {
	return &Shop{
		customersByID: make(map[kernel.UUID]*Customer),
		coffeesByID:   make(map[kernel.UUID]*Coffee),
	}
}

// NewCoffee validates name and registers a new coffee.
func (s *Shop) NewCoffee(name string) (*Coffee, error) {
	coffee, err := newCoffee(s, kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.coffees = append(s.coffees, coffee)
	s.coffeesByID[coffee.id] = coffee
	return coffee, nil
}

// NewCustomer validates name and registers a new customer.
func (s *Shop) NewCustomer(name string) (*Customer, error) {
	customer, err := newCustomer(s, kernel.NewUUID(), name)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = append(s.customers, customer)
	s.customersByID[customer.id] = customer
	return customer, nil
}

// Coffee looks a coffee up by ID.
func (s *Shop) Coffee(id kernel.UUID) (*Coffee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	coffee, ok := s.coffeesByID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("coffee", id.String())
	}
	return coffee, nil
}

// Customer looks a customer up by ID.
func (s *Shop) Customer(id kernel.UUID) (*Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	customer, ok := s.customersByID[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("customer", id.String())
	}
	return customer, nil
}

// Coffees returns the registered coffees in registration order.
func (s *Shop) Coffees() []*Coffee {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Coffee, len(s.coffees))
	copy(out, s.coffees)
	return out
}

// Customers returns the registered customers in registration order.
func (s *Shop) Customers() []*Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// Orders returns the ledger: every order created in this shop, oldest first.
func (s *Shop) Orders() []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*Order, len(s.ledger))
	copy(out, s.ledger)
	return out
}

// SpendByCustomer totals the whole ledger per customer, in order of first purchase.
func (s *Shop) SpendByCustomer() []Spend {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return spendByCustomer(s.ledger)
}

// TopSpender returns the customer with the highest spend across the ledger,
// or nil when no order exists. Ties go to the customer who ordered first.
func (s *Shop) TopSpender() *Customer {
	top, ok := TopSpend(s.SpendByCustomer())
	if !ok {
		return nil
	}
	return top.Customer
}

// MostAficionado is the package-level MostAficionado limited to this shop's coffees.
// A coffee registered elsewhere yields nil.
func (s *Shop) MostAficionado(coffee *Coffee) *Customer {
	if coffee.Validate() != nil || coffee.shop != s {
		return nil
	}
	return MostAficionado(coffee)
}

// register appends order to its customer, its coffee and the ledger in one critical section.
func (s *Shop) register(order *Order) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.customer.orders = append(order.customer.orders, order)
	order.coffee.addOrder(order)
	s.ledger = append(s.ledger, order)
}

// rlock takes the read lock and returns its release. Entities that were never
// constructed have no shop; reading them yields empty results.
func (s *Shop) rlock() func() {
	if s == nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}
