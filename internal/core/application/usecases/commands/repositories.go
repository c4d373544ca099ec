// Package commands contains business operations that modify shop state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Commands accept untyped input, so they are the place where wrong-type values are rejected;
// handlers resolve entities through ports.ShopDirectory and report outcomes to ports.OrderMetrics.
package commands

import (
	"context"
	"log/slog"

	"coffeeshop/internal/core/ports"
)

// rejected logs and counts a failed command. Cancellation is not a validation failure.
func rejected(ctx context.Context, logger *slog.Logger, metrics ports.OrderMetrics, msg string, err error) {
	if ctx.Err() == nil {
		metrics.ValidationFailed(err)
	}
	logger.WarnContext(ctx, msg, "error", err)
}
