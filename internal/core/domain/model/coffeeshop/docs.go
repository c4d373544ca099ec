// Package coffeeshop models customers, coffees and the orders that link them.
//
// The package includes:
//   - Shop: owns the ledger of every order and the registry of its customers and coffees
//   - Coffee: a named product and the orders placed for it
//   - Customer: a named patron, the orders they placed, and the only way to create an Order
//   - Order: one customer, one coffee and a price
//
// Key business rules:
//   - Coffee names have at least 3 characters
//   - Customer names have between 1 and 15 characters
//   - Order prices lie in [1.0, 10.0]
//   - A created order is registered on its customer, its coffee and the shop ledger at once
//   - Orders are never removed; collections only grow
//
// Character counts are Unicode code points. Every slice returned by an accessor is a copy.
//
// All types are safe for concurrent use: a Shop serializes order registration and every
// read of the collections it owns.
package coffeeshop
