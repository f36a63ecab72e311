package models

import (
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
)

type OrderModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ProductID string `gorm:"type:uuid;index:idx_product"`
	BuyerID   string `gorm:"type:uuid;index:idx_buyer_status"`
	SellerID  string `gorm:"type:uuid;index:idx_seller_status"`

	TotalAmount          int64
	Currency             string
	ProductKind          domain.ProductKind
	SubscriptionPeriod   domain.SubscriptionPeriod
	SubscriptionDuration int32

	StreamID            string
	EscrowSellerID      string
	BuyerWalletAddress  string
	SellerWalletAddress string

	StreamAmount    int64
	AmountPerPeriod int64
	PeriodSeconds   int64
	StreamStartTime time.Time
	StreamEndTime   time.Time

	Status       domain.OrderStatus `gorm:"index:idx_buyer_status;index:idx_seller_status"`
	ErrorMessage string
	RetryCount   int32
	LastRetryAt  *time.Time

	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time
}
