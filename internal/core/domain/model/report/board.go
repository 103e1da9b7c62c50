package report

import (
	"time"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
)

// Board is the number of orders per status of one establishment.
type Board struct {
	EstablishmentID kernel.UUID          `json:"establishmentId"`
	Counts          map[order.Status]int `json:"counts"`
	Total           int                  `json:"total"`
	GeneratedAt     time.Time            `json:"generatedAt"`
}

// NewBoard builds a board holding every status, zero when absent from counts.
func NewBoard(establishmentID kernel.UUID, counts map[order.Status]int, at time.Time) Board {
	b := Board{
		EstablishmentID: establishmentID,
		Counts:          make(map[order.Status]int, len(order.Statuses())),
		GeneratedAt:     at,
	}
	for _, s := range order.Statuses() {
		b.Counts[s] = counts[s]
		b.Total += counts[s]
	}
	return b
}

// Share is the percentage of orders in status s.
func (b Board) Share(s order.Status) float64 {
	return Percent(b.Counts[s], b.Total)
}
