// Package orderservice contains the classbay order ledger.
//
// The ledger owns the order aggregate: checkout creation, owner-scoped reads,
// status patches, and the reconciler-only paid upsert. The module keeps
// domain/application logic decoupled from runtime/platform concerns through
// ports and adapter composition.
package orderservice
