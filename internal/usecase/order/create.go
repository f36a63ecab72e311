package usecase

import (
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/schedule"
)

// CreateOrder validates the purchase intent and persists a pending order.
// All validation happens before the insert, so a rejected request never
// leaves a partial order behind.
func (uc *DefaultOrderUsecase) CreateOrder(productID, buyerID, buyerWalletAddress string) (*domain.Order, error) {
	product, err := uc.Catalog.GetActiveProduct(productID)
	if err != nil {
		return nil, err
	}

	if buyerWalletAddress == "" {
		buyerWalletAddress, err = uc.Users.GetWalletAddress(buyerID)
		if err != nil {
			return nil, err
		}
	}

	sellerWallet, err := uc.Users.GetWalletAddress(product.SellerID)
	if err != nil {
		return nil, err
	}

	validation, err := uc.Eligibility.Validate(buyerID)
	if err != nil {
		return nil, err
	}
	if !validation.CanPay {
		return nil, domain.PaymentRequirementsError(validation.MissingRequirements)
	}

	params, err := schedule.Calculate(
		product.Kind,
		product.Price,
		product.SubscriptionPeriod,
		product.SubscriptionDuration,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	order := &domain.Order{
		ProductID:            productID,
		BuyerID:              buyerID,
		SellerID:             product.SellerID,
		TotalAmount:          product.Price,
		Currency:             product.Currency,
		ProductKind:          product.Kind,
		SubscriptionPeriod:   product.SubscriptionPeriod,
		SubscriptionDuration: product.SubscriptionDuration,
		BuyerWalletAddress:   buyerWalletAddress,
		SellerWalletAddress:  sellerWallet,
		StreamAmount:         params.TotalAmount,
		AmountPerPeriod:      params.AmountPerPeriod,
		PeriodSeconds:        params.PeriodSeconds,
		StreamStartTime:      params.StartTime,
		StreamEndTime:        params.EndTime,
		Status:               domain.StatusPending,
		RetryCount:           0,
	}

	orderID, err := uc.OrderRepo.CreateOrder(order)
	if err != nil {
		return nil, domain.UpstreamError("failed to create order", err)
	}
	order.ID = orderID

	uc.recordOrderCreated(order)
	uc.publishOrderEvent(domain.EventOrderCreated, order)

	return order, nil
}
