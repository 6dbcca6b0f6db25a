package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
	"classbay/contexts/commerce/download-service/ports"
)

// Store backs every download port in memory: order reads, catalog manifests,
// URL signing, history and the clock. Tests flip its failure switches to
// exercise upstream outages.
type Store struct {
	mu sync.Mutex

	orders    map[string]entities.PurchasedOrder
	manifests map[int64][]entities.FileDescriptor
	titles    map[int64]string
	history   []entities.DownloadRecord

	now         time.Time
	signDown    bool
	historyDown bool
}

func NewStore(now time.Time) *Store {
	return &Store{
		orders:    make(map[string]entities.PurchasedOrder),
		manifests: make(map[int64][]entities.FileDescriptor),
		titles:    make(map[int64]string),
		now:       now.UTC(),
	}
}

func (s *Store) SeedOrder(order entities.PurchasedOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[order.ID] = order
}

func (s *Store) SeedProduct(productID int64, title string, manifest []entities.FileDescriptor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.titles[productID] = title
	s.manifests[productID] = manifest
}

func (s *Store) SetSignUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.signDown = down
}

func (s *Store) SetHistoryUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.historyDown = down
}

// History returns a copy of the recorded downloads.
func (s *Store) History() []entities.DownloadRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := make([]entities.DownloadRecord, len(s.history))
	copy(records, s.history)
	return records
}

func (s *Store) GetOrder(_ context.Context, orderID string, ownerID string) (entities.PurchasedOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.orders[orderID]
	if !ok || order.OwnerID != ownerID {
		return entities.PurchasedOrder{}, domainerrors.ErrOrderNotFound
	}
	return order, nil
}

func (s *Store) GetManifest(_ context.Context, productID int64) ([]entities.FileDescriptor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	manifest := make([]entities.FileDescriptor, len(s.manifests[productID]))
	copy(manifest, s.manifests[productID])
	return manifest, nil
}

func (s *Store) FindFile(_ context.Context, fileID string) (ports.CatalogFile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Scan products in id order so a file id present under two products
	// resolves the same way the database catalog does.
	productIDs := make([]int64, 0, len(s.manifests))
	for productID := range s.manifests {
		productIDs = append(productIDs, productID)
	}
	slices.Sort(productIDs)
	for _, productID := range productIDs {
		for _, file := range s.manifests[productID] {
			if file.ID == fileID {
				return ports.CatalogFile{File: file, ProductTitle: s.titles[productID]}, nil
			}
		}
	}
	return ports.CatalogFile{}, domainerrors.ErrFileNotFound
}

func (s *Store) SignURL(_ context.Context, storagePath string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.signDown {
		return "", domainerrors.ErrStorageUnavailable
	}
	return fmt.Sprintf("https://storage.invalid/object/sign/%s?expires=%d", storagePath, int(ttl.Seconds())), nil
}

func (s *Store) RecordDownload(_ context.Context, record entities.DownloadRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.historyDown {
		return domainerrors.ErrStorageUnavailable
	}
	s.history = append(s.history, record)
	return nil
}

func (s *Store) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Advance moves the store clock forward.
func (s *Store) Advance(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = s.now.Add(d)
}
