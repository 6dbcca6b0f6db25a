// Package paymentservice contains the classbay payment reconciler.
//
// The reconciler pulls the authoritative payment record from the external
// gateway and merges it into the order ledger with idempotent upsert
// semantics. The gateway, not the client, decides what counts as paid.
package paymentservice
