// Package order implements the restaurant order lifecycle.
//
// The package includes:
//   - Order: the aggregate root, mutated only through status transitions
//   - Status, Action: the state machine and the buttons that drive it
//   - HistoryEntry: the append-only record written for every transition
//
// Key business rules:
//   - pendente -> aceito -> preparo -> pronto -> entrega -> concluido for deliveries
//   - pickups go straight from pronto to concluido
//   - any status but concluido and cancelado may be cancelled with a reason
//   - a cancelled order is reactivated to the status it had before the cancellation
//   - orders are never deleted, cancellation is a status
package order
