package mappers

import (
	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/infrastructure/postgres/models"
)

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                   order.ID,
		ProductID:            order.ProductID,
		BuyerID:              order.BuyerID,
		SellerID:             order.SellerID,
		TotalAmount:          order.TotalAmount,
		Currency:             order.Currency,
		ProductKind:          order.ProductKind,
		SubscriptionPeriod:   order.SubscriptionPeriod,
		SubscriptionDuration: order.SubscriptionDuration,
		StreamID:             order.StreamID,
		EscrowSellerID:       order.EscrowSellerID,
		BuyerWalletAddress:   order.BuyerWalletAddress,
		SellerWalletAddress:  order.SellerWalletAddress,
		StreamAmount:         order.StreamAmount,
		AmountPerPeriod:      order.AmountPerPeriod,
		PeriodSeconds:        order.PeriodSeconds,
		StreamStartTime:      order.StreamStartTime,
		StreamEndTime:        order.StreamEndTime,
		Status:               order.Status,
		ErrorMessage:         order.ErrorMessage,
		RetryCount:           order.RetryCount,
		LastRetryAt:          order.LastRetryAt,
		CreatedAt:            order.CreatedAt,
		UpdatedAt:            order.UpdatedAt,
	}
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:                   model.ID,
		ProductID:            model.ProductID,
		BuyerID:              model.BuyerID,
		SellerID:             model.SellerID,
		TotalAmount:          model.TotalAmount,
		Currency:             model.Currency,
		ProductKind:          model.ProductKind,
		SubscriptionPeriod:   model.SubscriptionPeriod,
		SubscriptionDuration: model.SubscriptionDuration,
		StreamID:             model.StreamID,
		EscrowSellerID:       model.EscrowSellerID,
		BuyerWalletAddress:   model.BuyerWalletAddress,
		SellerWalletAddress:  model.SellerWalletAddress,
		StreamAmount:         model.StreamAmount,
		AmountPerPeriod:      model.AmountPerPeriod,
		PeriodSeconds:        model.PeriodSeconds,
		StreamStartTime:      model.StreamStartTime,
		StreamEndTime:        model.StreamEndTime,
		Status:               model.Status,
		ErrorMessage:         model.ErrorMessage,
		RetryCount:           model.RetryCount,
		LastRetryAt:          model.LastRetryAt,
		CreatedAt:            model.CreatedAt,
		UpdatedAt:            model.UpdatedAt,
	}
}

func ToDomainSellerMapping(model *models.EscrowSellerModel) *domain.SellerMapping {
	return &domain.SellerMapping{
		UserID:         model.UserID,
		EscrowSellerID: model.EscrowSellerID,
		WalletAddress:  model.WalletAddress,
		CreatedAt:      model.CreatedAt,
	}
}

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:                   model.ID,
		Name:                 model.Name,
		Description:          model.Description,
		Price:                model.Price,
		Currency:             model.Currency,
		Kind:                 model.ProductType,
		SubscriptionPeriod:   model.SubscriptionPeriod,
		SubscriptionDuration: model.SubscriptionDuration,
		SellerID:             model.AuthorID,
		AuthorName:           model.AuthorName,
		ImageURL:             model.ImageURL,
	}
}

func ToDomainProfile(model *models.UserModel) *domain.UserProfile {
	return &domain.UserProfile{
		ID:            model.ID,
		Username:      model.Username,
		Email:         model.Email,
		Bio:           model.Bio,
		WalletAddress: model.WalletAddress,
	}
}
