package usecase

import (
	"github.com/workwork/workwork-order-service/internal/domain"
)

// SyncOrderStatus reconciles an active order with the provider. Stream
// completion happens outside this service's control surface; this read
// observes it and records it locally. Any other provider state leaves the
// order untouched.
func (uc *DefaultOrderUsecase) SyncOrderStatus(orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}
	if order.Status != domain.StatusActive || order.StreamID == "" {
		return order, nil
	}

	stream, err := uc.Escrow.GetStream(order.StreamID)
	if err != nil {
		return nil, err
	}
	if stream.Status != domain.StreamCompleted {
		return order, nil
	}

	return uc.OrderRepo.CASStatus(orderID, domain.StatusActive, domain.StatusCompleted, domain.OrderUpdate{})
}
