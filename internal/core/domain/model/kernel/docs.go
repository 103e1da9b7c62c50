// Package kernel holds the value objects shared by every aggregate of the back-office:
//   - UUID: identifier of orders, establishments, actors, history entries and tiers
//   - Money: non-negative currency amount backed by shopspring/decimal
//
// Both are immutable and safe for concurrent use.
package kernel
