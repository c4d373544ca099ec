package commands

import (
	"errors"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/pkg/guard"
)

var ErrCreateCoffeeCommandIsNotConstructed = errors.New(
	"CreateCoffeeCommand must be created via NewCreateCoffeeCommand constructor",
)

// CreateCoffeeCommand represents a request to register a coffee by name.
type CreateCoffeeCommand struct { //nolint:recvcheck //using for validation
	name string

	guard guard.ConstructorGuard
}

// NewCreateCoffeeCommand creates a command to register a coffee.
// Returns an errs.ValueHasWrongTypeError if name is not a string.
func NewCreateCoffeeCommand(name any) (CreateCoffeeCommand, error) {
	cmd := CreateCoffeeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setName(name); err != nil {
		return CreateCoffeeCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCoffeeCommand) Validate() error {
	return c.guard.Validate(ErrCreateCoffeeCommandIsNotConstructed)
}

// Name returns the requested coffee name.
func (c CreateCoffeeCommand) Name() string {
	return c.name
}

func (c *CreateCoffeeCommand) setName(name any) error {
	s, err := kernel.StringFrom("coffee name", name)
	if err != nil {
		return err
	}

	c.name = s
	return nil
}
