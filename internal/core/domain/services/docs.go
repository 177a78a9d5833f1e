// Package services provides domain services that orchestrate business
// operations across multiple domain entities. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QuoteCalculator: prices a prospective order against a delivery
//     service's rate card using externally resolved route distances
//   - PaymentNotification: verifies payment-gateway webhook signatures and
//     maps gateway transaction statuses to invoice statuses
package services
