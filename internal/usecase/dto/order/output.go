package orderdto

import "github.com/workwork/workwork-order-service/internal/domain"

type ProductSummary struct {
	ID          string
	Name        string
	Description string
	Price       int64
	Currency    string
	AuthorName  string
	ImageURL    string
}

type UserSummary struct {
	ID       string
	Username string
	Email    string
}

// OrderOutput joins an order with the catalog and directory data needed for
// display.
type OrderOutput struct {
	Order   domain.Order
	Product ProductSummary
	Buyer   UserSummary
	Seller  UserSummary
}

type Pagination struct {
	CurrentPage  int32
	TotalPages   int32
	TotalItems   int32
	ItemsPerPage int32
}

type ListOrdersOutput struct {
	Orders     []*OrderOutput
	Pagination Pagination
}
