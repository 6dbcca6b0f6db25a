package postgresadapter

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
	"classbay/contexts/commerce/download-service/ports"
)

// Catalog reads product file manifests from the catalog tables.
type Catalog struct {
	db *gorm.DB
}

func NewCatalog(db *gorm.DB) *Catalog {
	return &Catalog{db: db}
}

type productFileModel struct {
	ID          int64  `gorm:"column:id;primaryKey"`
	ProductID   int64  `gorm:"column:product_id"`
	FileID      string `gorm:"column:file_id"`
	Filename    string `gorm:"column:filename"`
	StoragePath string `gorm:"column:storage_path"`
	Size        int64  `gorm:"column:size"`
	Type        string `gorm:"column:type"`
}

func (productFileModel) TableName() string { return "product_files" }

type productModel struct {
	ID    int64  `gorm:"column:id;primaryKey"`
	Title string `gorm:"column:title"`
}

func (productModel) TableName() string { return "products" }

func (c *Catalog) GetManifest(ctx context.Context, productID int64) ([]entities.FileDescriptor, error) {
	var rows []productFileModel
	err := c.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("load product manifest: %w", err)
	}
	manifest := make([]entities.FileDescriptor, 0, len(rows))
	for _, row := range rows {
		manifest = append(manifest, row.toEntity())
	}
	return manifest, nil
}

// FindFile looks a file id up across every product. File ids are not unique
// across products; the lowest surrogate id wins, matching manifest order.
func (c *Catalog) FindFile(ctx context.Context, fileID string) (ports.CatalogFile, error) {
	var row productFileModel
	err := c.db.WithContext(ctx).
		Where("file_id = ?", fileID).
		Order("id ASC").
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.CatalogFile{}, domainerrors.ErrFileNotFound
	}
	if err != nil {
		return ports.CatalogFile{}, fmt.Errorf("find catalog file: %w", err)
	}

	var product productModel
	if err := c.db.WithContext(ctx).Where("id = ?", row.ProductID).First(&product).Error; err != nil &&
		!errors.Is(err, gorm.ErrRecordNotFound) {
		return ports.CatalogFile{}, fmt.Errorf("load product: %w", err)
	}
	return ports.CatalogFile{File: row.toEntity(), ProductTitle: product.Title}, nil
}

func (m productFileModel) toEntity() entities.FileDescriptor {
	return entities.FileDescriptor{
		ID:          m.FileID,
		Filename:    m.Filename,
		StoragePath: m.StoragePath,
		Size:        m.Size,
		Type:        m.Type,
	}
}
