// Package kernel holds the value objects shared by every coffeeshop entity.
//
// The package includes:
//   - UUID: entity identity backed by github.com/google/uuid
//   - Money: exact accumulation of prices backed by github.com/shopspring/decimal
//   - StringFrom and NumberFrom: coercions used where values arrive untyped
//
// Value objects are immutable and safe for concurrent use.
package kernel
