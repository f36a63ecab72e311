package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusActive     OrderStatus = "active"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
	StatusFailed     OrderStatus = "failed"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type ProductKind string

const (
	KindOneTime      ProductKind = "one_time"
	KindSubscription ProductKind = "subscription"
)

type SubscriptionPeriod string

const (
	PeriodMonthly   SubscriptionPeriod = "monthly"
	PeriodQuarterly SubscriptionPeriod = "quarterly"
	PeriodYearly    SubscriptionPeriod = "yearly"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// MaxRetryCount is the ceiling on payment retries per order.
const MaxRetryCount = 3

// Order is the central entity. All money fields are integer base units
// (1e9 per whole token), never floats.
type Order struct {
	ID        string
	ProductID string
	BuyerID   string
	SellerID  string

	TotalAmount          int64
	Currency             string
	ProductKind          ProductKind
	SubscriptionPeriod   SubscriptionPeriod
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

	Status       OrderStatus
	ErrorMessage string
	RetryCount   int32
	LastRetryAt  *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderStats aggregates order counts by status for one user and role.
type OrderStats struct {
	Total      int64
	Pending    int64
	Processing int64
	Active     int64
	Completed  int64
	Cancelled  int64
	Failed     int64
}
