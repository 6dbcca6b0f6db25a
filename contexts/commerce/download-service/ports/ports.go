// Package ports declares the injectable collaborators of the download context.
package ports

import (
	"context"
	"time"

	"classbay/contexts/commerce/download-service/domain/entities"
)

// OrderReader is the download context's read-only view of the order store.
// GetOrder is owner-scoped: a row owned by someone else reads as not found.
type OrderReader interface {
	GetOrder(ctx context.Context, orderID string, ownerID string) (entities.PurchasedOrder, error)
}

// CatalogFile pairs a descriptor with the title of the product carrying it,
// for lookups that are not scoped to one product.
type CatalogFile struct {
	File         entities.FileDescriptor
	ProductTitle string
}

// Catalog exposes product file manifests.
type Catalog interface {
	// GetManifest returns the file manifest of one product. An unknown
	// product reads as an empty manifest, not an error.
	GetManifest(ctx context.Context, productID int64) ([]entities.FileDescriptor, error)

	// FindFile scans every product's manifest for a file id. Used only by
	// the administrative path.
	FindFile(ctx context.Context, fileID string) (CatalogFile, error)
}

// ObjectStore mints time-limited signed URLs for stored objects.
type ObjectStore interface {
	SignURL(ctx context.Context, storagePath string, ttl time.Duration) (string, error)
}

// History appends download audit records. Callers treat failures as
// non-fatal; the primary download response never depends on this write.
type History interface {
	RecordDownload(ctx context.Context, record entities.DownloadRecord) error
}

// Clock allows deterministic testing of the entitlement window.
type Clock interface {
	Now() time.Time
}
