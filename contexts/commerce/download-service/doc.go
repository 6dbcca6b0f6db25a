// Package downloadservice guards and issues entitled file downloads.
//
// An entitlement derives from a paid order: while the order is in a paid
// status and within the entitlement window, the owner may exchange a file id
// from one of the purchased products for a short-lived signed URL. Every
// issued download is recorded in an append-only history, best effort.
package downloadservice
