package ports

// Entity kinds reported to OrderMetrics.EntityCreated.
const (
	EntityCustomer = "customer"
	EntityCoffee   = "coffee"
)

// OrderMetrics receives business events from the command handlers.
type OrderMetrics interface {
	// EntityCreated counts a registered customer or coffee.
	EntityCreated(kind string)

	// OrderCreated counts an order and observes its price.
	OrderCreated(coffee string, price float64)

	// ValidationFailed counts rejected input by error kind.
	ValidationFailed(err error)
}
