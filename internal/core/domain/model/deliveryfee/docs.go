// Package deliveryfee models how an establishment charges for delivery.
//
// A Config holds exactly one active Modality plus the data of every modality, so
// switching back and forth never loses tiers or cities. Save gating is a pure
// predicate (CanSaveModality) and saving sends only the fields that differ from the
// last saved snapshot (Diff). The Editor keeps the draft/snapshot pair for one
// editing session.
//
// Modalities and their completeness rules:
//   - NoFee: always savable
//   - FlatFee: flat fee amount > 0
//   - DistanceTiered: at least one enabled distance tier
//   - NeighborhoodTiered: at least one enabled neighborhood tier and one served city
package deliveryfee
