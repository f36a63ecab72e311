package models

import (
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
)

// ProductModel and UserModel are read-only projections of the shared
// catalog and directory tables; this service never writes them.

type ProductModel struct {
	ID                   string `gorm:"primaryKey;type:uuid"`
	Name                 string
	Description          string
	Price                int64
	Currency             string
	ProductType          domain.ProductKind
	SubscriptionPeriod   domain.SubscriptionPeriod
	SubscriptionDuration int32
	AuthorID             string `gorm:"type:uuid"`
	AuthorName           string
	ImageURL             string
	Status               string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

type UserModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	Username      string
	Email         string
	Bio           string
	WalletAddress string
	SocialWechat  string
	SocialAlipay  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
