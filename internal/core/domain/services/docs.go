// Package services provides domain services that span an aggregate and data it does
// not own.
//
// The package includes:
//   - OrderReactivator: brings a cancelled order back to the status recorded in its
//     status history
package services
