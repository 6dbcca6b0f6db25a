package postgresadapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"classbay/contexts/commerce/payment-service/ports"
)

// Ledger writes reconciled payments into the shared orders table.
type Ledger struct {
	db *gorm.DB
}

func NewLedger(db *gorm.DB) *Ledger {
	return &Ledger{db: db}
}

type ledgerModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	OwnerID       string    `gorm:"column:owner_id"`
	Items         []byte    `gorm:"column:items;type:jsonb"`
	TotalAmount   int64     `gorm:"column:total_amount"`
	Status        string    `gorm:"column:status"`
	PaymentID     string    `gorm:"column:payment_id"`
	PaymentMethod string    `gorm:"column:payment_method"`
	PaymentStatus string    `gorm:"column:payment_status"`
	Shipping      string    `gorm:"column:shipping"`
	CreatedAt     time.Time `gorm:"column:created_at"`
	UpdatedAt     time.Time `gorm:"column:updated_at"`
}

func (ledgerModel) TableName() string { return "orders" }

// UpsertPaid merges a verified payment into the orders table with one
// INSERT ... ON CONFLICT statement. The conflict assignments carry the
// invariants: status never leaves processing/delivered once there, the owner
// binds only onto an empty column, and items survive from the first write
// that carried any.
func (l *Ledger) UpsertPaid(ctx context.Context, upsert ports.LedgerUpsert, now time.Time) (ports.LedgerOrder, error) {
	items, err := json.Marshal(upsert.Items)
	if err != nil {
		return ports.LedgerOrder{}, fmt.Errorf("marshal order items: %w", err)
	}
	if upsert.Items == nil {
		items = []byte("[]")
	}

	row := ledgerModel{
		ID:            upsert.OrderID,
		OwnerID:       upsert.OwnerID,
		Items:         items,
		TotalAmount:   upsert.TotalAmount,
		Status:        "processing",
		PaymentID:     upsert.PaymentID,
		PaymentMethod: upsert.PaymentMethod,
		PaymentStatus: upsert.PaymentStatus,
		CreatedAt:     now.UTC(),
		UpdatedAt:     now.UTC(),
	}

	err = l.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"status":         gorm.Expr("CASE WHEN orders.status IN ('processing','delivered') THEN orders.status ELSE 'processing' END"),
			"owner_id":       gorm.Expr("CASE WHEN orders.owner_id = '' THEN excluded.owner_id ELSE orders.owner_id END"),
			"items":          gorm.Expr("CASE WHEN orders.items IS NULL OR orders.items = '[]'::jsonb THEN excluded.items ELSE orders.items END"),
			"total_amount":   upsert.TotalAmount,
			"payment_id":     upsert.PaymentID,
			"payment_method": upsert.PaymentMethod,
			"payment_status": upsert.PaymentStatus,
			"updated_at":     now.UTC(),
		}),
	}).Create(&row).Error
	if err != nil {
		return ports.LedgerOrder{}, fmt.Errorf("upsert paid order: %w", err)
	}

	var stored ledgerModel
	if err := l.db.WithContext(ctx).Where("id = ?", upsert.OrderID).First(&stored).Error; err != nil {
		return ports.LedgerOrder{}, fmt.Errorf("reload upserted order: %w", err)
	}
	return stored.toLedgerOrder()
}

func (m ledgerModel) toLedgerOrder() (ports.LedgerOrder, error) {
	var items []ports.LedgerItem
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return ports.LedgerOrder{}, fmt.Errorf("decode order items: %w", err)
		}
	}
	return ports.LedgerOrder{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Items:         items,
		TotalAmount:   m.TotalAmount,
		Status:        m.Status,
		PaymentID:     m.PaymentID,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: m.PaymentStatus,
		Shipping:      m.Shipping,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}
