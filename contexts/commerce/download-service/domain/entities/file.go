package entities

import "time"

// FileDescriptor is a catalog file as listed in a product's manifest.
// File ids are not globally unique; a descriptor is only meaningful within
// the manifest it came from.
type FileDescriptor struct {
	ID          string
	Filename    string
	StoragePath string
	Size        int64
	Type        string
}

// DownloadRecord is one append-only history entry for an issued download.
type DownloadRecord struct {
	UserID       string
	OrderID      string
	FileID       string
	Filename     string
	DownloadedAt time.Time
}
