package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a customer buying a coffee at a price.
// The price arrives untyped: any Go integer or float kind is accepted and
// converted to float64, everything else is a wrong-type error. Price bounds
// are checked by the domain when the order is placed.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(aliceID, espressoID, 2.5)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	coffeeID   kernel.UUID
	price      float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// All fields are checked and every failure is reported together.
func NewCreateOrderCommand(customerID, coffeeID kernel.UUID, price any) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCoffeeID(coffeeID),
		cmd.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the buyer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// CoffeeID returns the identifier of the coffee being bought.
func (c CreateOrderCommand) CoffeeID() kernel.UUID {
	return c.coffeeID
}

// Price returns the order price as a float64.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setCoffeeID(coffeeID kernel.UUID) error {
	if err := coffeeID.Validate(); err != nil {
		return err
	}

	c.coffeeID = coffeeID
	return nil
}

func (c *CreateOrderCommand) setPrice(price any) error {
	p, err := kernel.NumberFrom("price", price)
	if err != nil {
		return err
	}

	c.price = p
	return nil
}
