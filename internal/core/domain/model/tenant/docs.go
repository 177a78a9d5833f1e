// Package tenant provides the Tenant aggregate with its Driver and Invite
// entities.
//
// A tenant (mitra) is a fleet-owning business and the unit of data
// isolation. Its subscription standing and active-driver limit together
// gate driver admission: past_due or cancelled tenants cannot invite, and
// tenants at their quota must upgrade before inviting more drivers.
//
// Invites are single-use tokens with a seven-day expiry. Acceptance checks
// status, expiry, and email match, each mapping to a distinct error kind,
// and consumes the invite exactly once.
package tenant
