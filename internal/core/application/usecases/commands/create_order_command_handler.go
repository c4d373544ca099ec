package commands

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

// CreateOrderCommandHandler places orders on behalf of registered customers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(shop, metrics, logger)
//	cmd, _ := NewCreateOrderCommand(bobID, latteID, 7)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order rejected: %w", err)
//	}
type CreateOrderCommandHandler struct {
	directory ports.ShopDirectory
	metrics   ports.OrderMetrics
	logger    *slog.Logger
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(
	directory ports.ShopDirectory,
	metrics ports.OrderMetrics,
	logger *slog.Logger,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		directory: directory,
		metrics:   metrics,
		logger:    logger.With("component", "create_order"),
	}
}

// Handle resolves the customer and the coffee, then places the order through the customer.
// Unknown IDs yield errs.ObjectNotFoundError; domain rejections are returned unchanged.
// Returns the new order's ID.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}

	customer, err := h.directory.Customer(cmd.CustomerID())
	if err != nil {
		rejected(ctx, h.logger, h.metrics, "order rejected", err)
		return kernel.UUID{}, err
	}

	coffee, err := h.directory.Coffee(cmd.CoffeeID())
	if err != nil {
		rejected(ctx, h.logger, h.metrics, "order rejected", err)
		return kernel.UUID{}, err
	}

	order, err := customer.CreateOrder(coffee, cmd.Price())
	if err != nil {
		rejected(ctx, h.logger, h.metrics, "order rejected", err)
		return kernel.UUID{}, err
	}

	h.metrics.OrderCreated(coffee.Name(), order.Price())
	h.logger.InfoContext(ctx, "order created",
		"order_id", order.ID().String(),
		"customer", customer.Name(),
		"coffee", coffee.Name(),
		"price", order.Price(),
	)

	return order.ID(), nil
}
