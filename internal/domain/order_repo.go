package domain

import "time"

// OrderUpdate is the set of fields written together with a status
// transition. Pointer fields are left untouched when nil; a pointer to the
// empty string clears the column.
type OrderUpdate struct {
	StreamID       *string
	EscrowSellerID *string
	ErrorMessage   *string
	IncrementRetry bool
	LastRetryAt    *time.Time
}

// OrderFilter narrows order listings. Role selects which side of the order
// UserID is matched against.
type OrderFilter struct {
	UserID   string
	Role     Role
	Statuses []OrderStatus
}

// SellerMapping binds an internal seller id to its escrow-provider identity.
type SellerMapping struct {
	UserID         string
	EscrowSellerID string
	WalletAddress  string
	CreatedAt      time.Time
}

type OrderRepository interface {
	CreateOrder(order *Order) (string, error)
	GetOrderByID(orderID string) (*Order, error)
	// CASStatus atomically moves the order from expected to newStatus,
	// applying update in the same write. It fails with an invalid-state
	// error when the stored status no longer matches expected. This is the
	// sole concurrency guard for lifecycle transitions.
	CASStatus(orderID string, expected, newStatus OrderStatus, update OrderUpdate) (*Order, error)
	GetOrders(filter OrderFilter, page, limit int32) ([]*Order, int64, error)
	GetOrderStats(userID string, role Role) (*OrderStats, error)

	// UpsertSellerMapping inserts the mapping, silently keeping the existing
	// row when another writer won the race (unique user_id constraint).
	UpsertSellerMapping(mapping *SellerMapping) error
	// GetSellerMapping returns (nil, nil) when no mapping exists yet.
	GetSellerMapping(userID string) (*SellerMapping, error)
}
