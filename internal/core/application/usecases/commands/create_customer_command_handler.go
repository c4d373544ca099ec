package commands

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

// CreateCustomerCommandHandler registers customers in a shop.
//
// Example:
//
//	handler := NewCreateCustomerCommandHandler(shop, metrics, logger)
//	cmd, _ := NewCreateCustomerCommand("Bob")
//
//	customerID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("customer registration failed: %w", err)
//	}
type CreateCustomerCommandHandler struct {
	directory ports.ShopDirectory
	metrics   ports.OrderMetrics
	logger    *slog.Logger
}

// NewCreateCustomerCommandHandler creates a handler for customer registration.
func NewCreateCustomerCommandHandler(
	directory ports.ShopDirectory,
	metrics ports.OrderMetrics,
	logger *slog.Logger,
) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		directory: directory,
		metrics:   metrics,
		logger:    logger.With("component", "create_customer"),
	}
}

// Handle validates the command and registers the customer.
// Returns the new customer's ID.
func (h *CreateCustomerCommandHandler) Handle(ctx context.Context, cmd CreateCustomerCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}

	customer, err := h.directory.NewCustomer(cmd.Name())
	if err != nil {
		rejected(ctx, h.logger, h.metrics, "customer rejected", err)
		return kernel.UUID{}, err
	}

	h.metrics.EntityCreated(ports.EntityCustomer)
	h.logger.InfoContext(ctx, "customer created", "customer_id", customer.ID().String(), "name", customer.Name())

	return customer.ID(), nil
}
