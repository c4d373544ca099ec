package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand represents a request to register a customer.
// The name arrives untyped; anything but a string is rejected here, while
// length bounds are left to the domain.
//
// Example:
//
//	cmd, err := NewCreateCustomerCommand("Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
//
//	customerID, err := handler.Handle(ctx, cmd)
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a customer.
// Returns an errs.ValueHasWrongTypeError if name is not a string.
func NewCreateCustomerCommand(name any) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the requested customer name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c *CreateCustomerCommand) setName(name any) error {
	s, err := kernel.StringFrom("customer name", name)
	if err != nil {
		return err
	}

	c.name = s
	return nil
}
