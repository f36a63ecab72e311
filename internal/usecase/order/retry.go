package usecase

import (
	"github.com/workwork/workwork-order-service/internal/domain"
)

// RetryOrder re-runs payment processing for a failed order. Only the buyer
// may retry, only from the failed state, and at most MaxRetryCount times in
// total. The failed -> pending reset clears the captured error;
// ProcessPayment then performs its own CAS and retry-count increment.
func (uc *DefaultOrderUsecase) RetryOrder(orderID, buyerID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	if order.BuyerID != buyerID {
		return nil, domain.AuthorizationError("only the buyer may retry order %s", orderID)
	}
	if order.Status != domain.StatusFailed {
		return nil, domain.InvalidStateError("order %s status is %s, only failed orders can be retried", orderID, order.Status)
	}
	if order.RetryCount >= domain.MaxRetryCount {
		return nil, domain.RetryLimitExceededError(orderID)
	}

	empty := ""
	order, err = uc.OrderRepo.CASStatus(orderID, domain.StatusFailed, domain.StatusPending, domain.OrderUpdate{
		ErrorMessage: &empty,
	})
	if err != nil {
		return nil, err
	}

	uc.recordOrderRetried(order)
	uc.publishOrderEvent(domain.EventOrderRetried, order)

	return uc.ProcessPayment(orderID)
}
