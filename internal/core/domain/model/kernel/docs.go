// Package kernel provides shared value objects used across all domain models.
//
// The package includes:
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - GeoPoint: validated WGS84 coordinate pair for stop addresses
//
// All kernel types are immutable value objects constructed through factory
// functions that enforce their invariants; zero values fail validation.
package kernel
