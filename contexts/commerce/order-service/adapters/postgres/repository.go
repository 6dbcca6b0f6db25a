package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"classbay/contexts/commerce/order-service/domain/entities"
	domainerrors "classbay/contexts/commerce/order-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateOrder(ctx context.Context, order entities.Order) (entities.Order, error) {
	row, err := orderModelFromEntity(order)
	if err != nil {
		return entities.Order{}, err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Order{}, domainerrors.ErrDuplicateOrder
		}
		return entities.Order{}, err
	}
	return row.toEntity()
}

func (r *Repository) GetOrder(ctx context.Context, orderID string, ownerID string) (entities.Order, error) {
	var row orderModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", orderID, ownerID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Order{}, domainerrors.ErrOrderNotFound
		}
		return entities.Order{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListOrders(ctx context.Context, ownerID string) ([]entities.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, order)
	}
	return items, nil
}

func (r *Repository) UpdateOrderStatus(
	ctx context.Context,
	orderID string,
	ownerID string,
	status entities.OrderStatus,
	updatedAt time.Time,
) (entities.Order, error) {
	result := r.db.WithContext(ctx).
		Model(&orderModel{}).
		Where("id = ? AND owner_id = ?", orderID, ownerID).
		Updates(map[string]any{
			"status":     string(status),
			"updated_at": updatedAt.UTC(),
		})
	if result.Error != nil {
		return entities.Order{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Order{}, domainerrors.ErrOrderNotFound
	}
	return r.GetOrder(ctx, orderID, ownerID)
}

type orderModel struct {
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

func (orderModel) TableName() string {
	return "orders"
}

func orderModelFromEntity(order entities.Order) (orderModel, error) {
	itemsJSON, err := marshalItems(order.Items)
	if err != nil {
		return orderModel{}, err
	}
	return orderModel{
		ID:            order.ID,
		OwnerID:       order.OwnerID,
		Items:         itemsJSON,
		TotalAmount:   order.TotalAmount,
		Status:        string(order.Status),
		PaymentID:     order.PaymentID,
		PaymentMethod: order.PaymentMethod,
		PaymentStatus: order.PaymentStatus,
		Shipping:      order.Shipping,
		CreatedAt:     order.CreatedAt.UTC(),
		UpdatedAt:     order.UpdatedAt.UTC(),
	}, nil
}

func (m orderModel) toEntity() (entities.Order, error) {
	var items []entities.OrderItem
	if len(m.Items) > 0 {
		if err := json.Unmarshal(m.Items, &items); err != nil {
			return entities.Order{}, err
		}
	}
	return entities.Order{
		ID:            m.ID,
		OwnerID:       m.OwnerID,
		Items:         items,
		TotalAmount:   m.TotalAmount,
		Status:        entities.OrderStatus(m.Status),
		PaymentID:     m.PaymentID,
		PaymentMethod: m.PaymentMethod,
		PaymentStatus: m.PaymentStatus,
		Shipping:      m.Shipping,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}, nil
}

func marshalItems(items []entities.OrderItem) ([]byte, error) {
	if items == nil {
		items = []entities.OrderItem{}
	}
	return json.Marshal(items)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
