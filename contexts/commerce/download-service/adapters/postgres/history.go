package postgresadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"classbay/contexts/commerce/download-service/domain/entities"
)

// History appends download audit rows. No uniqueness beyond the surrogate id.
type History struct {
	db *gorm.DB
}

func NewHistory(db *gorm.DB) *History {
	return &History{db: db}
}

type downloadHistoryModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	UserID       string    `gorm:"column:user_id"`
	OrderID      string    `gorm:"column:order_id"`
	FileID       string    `gorm:"column:file_id"`
	Filename     string    `gorm:"column:filename"`
	DownloadedAt time.Time `gorm:"column:downloaded_at"`
}

func (downloadHistoryModel) TableName() string { return "download_history" }

func (h *History) RecordDownload(ctx context.Context, record entities.DownloadRecord) error {
	row := downloadHistoryModel{
		ID:           uuid.NewString(),
		UserID:       record.UserID,
		OrderID:      record.OrderID,
		FileID:       record.FileID,
		Filename:     record.Filename,
		DownloadedAt: record.DownloadedAt.UTC(),
	}
	if err := h.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("record download: %w", err)
	}
	return nil
}
