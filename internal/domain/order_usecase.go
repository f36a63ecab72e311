package domain

// OrderUsecase is the lifecycle orchestrator operation set. Mutating
// operations guard their transitions with a store-level CAS; queries are
// read-only projections.
type OrderUsecase interface {
	CreateOrder(productID, buyerID, buyerWalletAddress string) (*Order, error)
	ProcessPayment(orderID string) (*Order, error)
	RetryOrder(orderID, buyerID string) (*Order, error)
	CancelOrder(orderID, userID string) error
	SyncOrderStatus(orderID string) (*Order, error)

	GetOrderByID(orderID, userID string) (*Order, error)
	GetOrders(filter OrderFilter, page, limit int32) ([]*Order, int64, error)
	GetOrderStats(userID string, role Role) (*OrderStats, error)
}
