package usecase

import (
	"github.com/workwork/workwork-order-service/internal/domain"
	orderdto "github.com/workwork/workwork-order-service/internal/usecase/dto/order"
)

// GetOrderByID returns the order when userID is its buyer or seller.
func (uc *DefaultOrderUsecase) GetOrderByID(orderID, userID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != userID && order.SellerID != userID {
		return nil, domain.NotFoundError("order %s not found", orderID)
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrders(filter domain.OrderFilter, page, limit int32) ([]*domain.Order, int64, error) {
	return uc.OrderRepo.GetOrders(filter, page, limit)
}

// ListOrders is the display projection: orders joined with product and
// counterpart user data.
func (uc *DefaultOrderUsecase) ListOrders(input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 || input.Limit > 100 {
		input.Limit = 20
	}

	orders, total, err := uc.OrderRepo.GetOrders(domain.OrderFilter{
		UserID:   input.UserID,
		Role:     input.Role,
		Statuses: input.Statuses,
	}, input.Page, input.Limit)
	if err != nil {
		return nil, err
	}

	outputs := make([]*orderdto.OrderOutput, 0, len(orders))
	for _, order := range orders {
		output, err := uc.buildOrderOutput(order)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, output)
	}

	totalPages := int32(total) / input.Limit
	if int32(total)%input.Limit > 0 {
		totalPages++
	}

	return &orderdto.ListOrdersOutput{
		Orders: outputs,
		Pagination: orderdto.Pagination{
			CurrentPage:  input.Page,
			TotalPages:   totalPages,
			TotalItems:   int32(total),
			ItemsPerPage: input.Limit,
		},
	}, nil
}

// GetOrderDetails returns the display projection of a single order for its
// buyer or seller.
func (uc *DefaultOrderUsecase) GetOrderDetails(orderID, userID string) (*orderdto.OrderOutput, error) {
	order, err := uc.GetOrderByID(orderID, userID)
	if err != nil {
		return nil, err
	}
	return uc.buildOrderOutput(order)
}

func (uc *DefaultOrderUsecase) GetOrderStats(userID string, role domain.Role) (*domain.OrderStats, error) {
	return uc.OrderRepo.GetOrderStats(userID, role)
}

func (uc *DefaultOrderUsecase) buildOrderOutput(order *domain.Order) (*orderdto.OrderOutput, error) {
	output := &orderdto.OrderOutput{Order: *order}

	product, err := uc.Catalog.GetProduct(order.ProductID)
	if err == nil {
		output.Product = orderdto.ProductSummary{
			ID:          product.ID,
			Name:        product.Name,
			Description: product.Description,
			Price:       product.Price,
			Currency:    product.Currency,
			AuthorName:  product.AuthorName,
			ImageURL:    product.ImageURL,
		}
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	if buyer, err := uc.Users.GetProfile(order.BuyerID); err == nil {
		output.Buyer = orderdto.UserSummary{ID: buyer.ID, Username: buyer.Username, Email: buyer.Email}
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}
	if sellerProfile, err := uc.Users.GetProfile(order.SellerID); err == nil {
		output.Seller = orderdto.UserSummary{ID: sellerProfile.ID, Username: sellerProfile.Username, Email: sellerProfile.Email}
	} else if !domain.IsKind(err, domain.KindNotFound) {
		return nil, err
	}

	return output, nil
}
