package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"classbay/contexts/commerce/download-service/domain/entities"
	domainerrors "classbay/contexts/commerce/download-service/domain/errors"
)

// OrderReader projects the shared orders table into the download context's
// view. Reads are owner-scoped at the SQL level.
type OrderReader struct {
	db *gorm.DB
}

func NewOrderReader(db *gorm.DB) *OrderReader {
	return &OrderReader{db: db}
}

type purchasedOrderModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	OwnerID   string    `gorm:"column:owner_id"`
	Items     []byte    `gorm:"column:items;type:jsonb"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (purchasedOrderModel) TableName() string { return "orders" }

type purchasedItemRow struct {
	ProductID int64  `json:"product_id"`
	Title     string `json:"title"`
}

func (r *OrderReader) GetOrder(ctx context.Context, orderID string, ownerID string) (entities.PurchasedOrder, error) {
	var row purchasedOrderModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", orderID, ownerID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PurchasedOrder{}, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return entities.PurchasedOrder{}, fmt.Errorf("get order: %w", err)
	}
	return row.toEntity()
}

func (m purchasedOrderModel) toEntity() (entities.PurchasedOrder, error) {
	var rows []purchasedItemRow
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &rows); err != nil {
			return entities.PurchasedOrder{}, fmt.Errorf("decode order items: %w", err)
		}
	}
	items := make([]entities.PurchasedItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, entities.PurchasedItem{ProductID: row.ProductID, Title: row.Title})
	}
	return entities.PurchasedOrder{
		ID:        m.ID,
		OwnerID:   m.OwnerID,
		Items:     items,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}, nil
}
