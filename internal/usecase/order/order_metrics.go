package usecase

import "github.com/workwork/workwork-order-service/internal/domain"

func (uc *DefaultOrderUsecase) recordOrderCreated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCreated(string(order.ProductKind), order.Currency, order.TotalAmount)
}

func (uc *DefaultOrderUsecase) recordOrderActivated(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderActivated(string(order.ProductKind), order.Currency, order.StreamAmount)
}

func (uc *DefaultOrderUsecase) recordOrderFailed(order *domain.Order, stage string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderFailed(string(order.ProductKind), stage)
}

func (uc *DefaultOrderUsecase) recordOrderCancelled(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderCancelled(string(order.ProductKind), order.Currency)
}

func (uc *DefaultOrderUsecase) recordOrderRetried(order *domain.Order) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordOrderRetried(string(order.ProductKind))
}
