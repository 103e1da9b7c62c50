// Package report aggregates order rows into dashboard figures: the sales summary
// and the per-status board. Every ratio is zero when its total is zero.
package report
