package orderdto

import "github.com/workwork/workwork-order-service/internal/domain"

type CreateOrderInput struct {
	ProductID          string
	BuyerID            string
	BuyerWalletAddress string
}

type ListOrdersInput struct {
	UserID   string
	Role     domain.Role
	Statuses []domain.OrderStatus
	Page     int32
	Limit    int32
}
