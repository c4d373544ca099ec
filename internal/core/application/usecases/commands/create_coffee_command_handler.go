package commands

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/domain/model/kernel"
	"coffeeshop/internal/core/ports"
)

// CreateCoffeeCommandHandler registers coffees in a shop.
type CreateCoffeeCommandHandler struct {
	directory ports.ShopDirectory
	metrics   ports.OrderMetrics
	logger    *slog.Logger
}

// NewCreateCoffeeCommandHandler creates a handler for coffee registration.
func NewCreateCoffeeCommandHandler(
	directory ports.ShopDirectory,
	metrics ports.OrderMetrics,
	logger *slog.Logger,
) CreateCoffeeCommandHandler {
	return CreateCoffeeCommandHandler{
		directory: directory,
		metrics:   metrics,
		logger:    logger.With("component", "create_coffee"),
	}
}

// Handle validates the command and registers the coffee.
// Returns the new coffee's ID.
func (h *CreateCoffeeCommandHandler) Handle(ctx context.Context, cmd CreateCoffeeCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}
	if err := ctx.Err(); err != nil {
		return kernel.UUID{}, err
	}

	coffee, err := h.directory.NewCoffee(cmd.Name())
	if err != nil {
		rejected(ctx, h.logger, h.metrics, "coffee rejected", err)
		return kernel.UUID{}, err
	}

	h.metrics.EntityCreated(ports.EntityCoffee)
	h.logger.InfoContext(ctx, "coffee created", "coffee_id", coffee.ID().String(), "name", coffee.Name())

	return coffee.ID(), nil
}
