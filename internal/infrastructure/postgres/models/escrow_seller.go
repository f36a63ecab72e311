package models

import "time"

// EscrowSellerModel maps an internal seller to its escrow-provider account.
// The unique index on UserID makes concurrent onboarding converge on one
// row.
type EscrowSellerModel struct {
	UserID         string `gorm:"primaryKey;type:uuid;uniqueIndex:idx_escrow_seller_user"`
	EscrowSellerID string `gorm:"not null"`
	WalletAddress  string
	CreatedAt      time.Time
}
