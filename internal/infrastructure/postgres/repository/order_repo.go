package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/mappers"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(order *domain.Order) (string, error) {
	orderModel := mappers.ToGORMOrder(order)
	orderModel.ID = uuid.NewString()
	now := time.Now()
	orderModel.CreatedAt = now
	orderModel.UpdatedAt = now

	if err := r.DB.Create(orderModel).Error; err != nil {
		return "", err
	}
	return orderModel.ID, nil
}

func (r *DefaultOrderRepository) GetOrderByID(orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NotFoundError("order %s not found", orderID)
		}
		return nil, domain.UpstreamError("failed to load order", err)
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

// CASStatus is the single conditional write all lifecycle transitions go
// through. The WHERE clause on the current status makes racing callers lose
// with zero rows affected.
func (r *DefaultOrderRepository) CASStatus(orderID string, expected, newStatus domain.OrderStatus, update domain.OrderUpdate) (*domain.Order, error) {
	updates := map[string]interface{}{
		"status":     newStatus,
		"updated_at": time.Now(),
	}
	if update.StreamID != nil {
		updates["stream_id"] = *update.StreamID
	}
	if update.EscrowSellerID != nil {
		updates["escrow_seller_id"] = *update.EscrowSellerID
	}
	if update.ErrorMessage != nil {
		updates["error_message"] = *update.ErrorMessage
	}
	if update.IncrementRetry {
		updates["retry_count"] = gorm.Expr("retry_count + 1")
	}
	if update.LastRetryAt != nil {
		updates["last_retry_at"] = *update.LastRetryAt
	}

	result := r.DB.Model(&models.OrderModel{}).
		Where("id = ? AND status = ?", orderID, expected).
		Updates(updates)
	if result.Error != nil {
		return nil, domain.UpstreamError("failed to update order status", result.Error)
	}
	if result.RowsAffected == 0 {
		current, err := r.GetOrderByID(orderID)
		if err != nil {
			return nil, err
		}
		return nil, domain.InvalidStateError("order %s status is %s, expected %s", orderID, current.Status, expected)
	}

	return r.GetOrderByID(orderID)
}

func (r *DefaultOrderRepository) GetOrders(filter domain.OrderFilter, page, limit int32) ([]*domain.Order, int64, error) {
	userColumn := "buyer_id"
	if filter.Role == domain.RoleSeller {
		userColumn = "seller_id"
	}

	query := r.DB.Model(&models.OrderModel{}).Where(userColumn+" = ?", filter.UserID)
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN (?)", filter.Statuses)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, domain.UpstreamError("failed to count orders", err)
	}

	var orderModels []models.OrderModel
	offset := (page - 1) * limit
	if err := query.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error; err != nil {
		return nil, 0, domain.UpstreamError("failed to find orders", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, orderModel := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModel)
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) GetOrderStats(userID string, role domain.Role) (*domain.OrderStats, error) {
	userColumn := "buyer_id"
	if role == domain.RoleSeller {
		userColumn = "seller_id"
	}

	type statusCount struct {
		Status domain.OrderStatus
		Count  int64
	}
	var rows []statusCount
	if err := r.DB.Model(&models.OrderModel{}).
		Select("status, COUNT(*) as count").
		Where(userColumn+" = ?", userID).
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, domain.UpstreamError("failed to aggregate order stats", err)
	}

	stats := &domain.OrderStats{}
	for _, row := range rows {
		stats.Total += row.Count
		switch row.Status {
		case domain.StatusPending:
			stats.Pending = row.Count
		case domain.StatusProcessing:
			stats.Processing = row.Count
		case domain.StatusActive:
			stats.Active = row.Count
		case domain.StatusCompleted:
			stats.Completed = row.Count
		case domain.StatusCancelled:
			stats.Cancelled = row.Count
		case domain.StatusFailed:
			stats.Failed = row.Count
		}
	}
	return stats, nil
}

func (r *DefaultOrderRepository) UpsertSellerMapping(mapping *domain.SellerMapping) error {
	model := models.EscrowSellerModel{
		UserID:         mapping.UserID,
		EscrowSellerID: mapping.EscrowSellerID,
		WalletAddress:  mapping.WalletAddress,
		CreatedAt:      mapping.CreatedAt,
	}
	return r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&model).Error
}

func (r *DefaultOrderRepository) GetSellerMapping(userID string) (*domain.SellerMapping, error) {
	var model models.EscrowSellerModel
	if err := r.DB.First(&model, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mappers.ToDomainSellerMapping(&model), nil
}
