package domain

// Product is the catalog projection the orchestrator needs to price an
// order. Price is in integer base units.
type Product struct {
	ID                   string
	Name                 string
	Description          string
	Price                int64
	Currency             string
	Kind                 ProductKind
	SubscriptionPeriod   SubscriptionPeriod
	SubscriptionDuration int32
	SellerID             string
	AuthorName           string
	ImageURL             string
}

type CatalogStore interface {
	// GetActiveProduct fails with a not-found error when the product does
	// not exist or is not active.
	GetActiveProduct(productID string) (*Product, error)
	// GetProduct looks the product up regardless of status. Display
	// projections use it so an order keeps its product data after the
	// product is deactivated.
	GetProduct(productID string) (*Product, error)
}
