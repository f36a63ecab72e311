package usecase

import (
	"log/slog"
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
)

// publishOrderEvent emits a lifecycle event asynchronously. Publishing never
// blocks or fails an order operation.
func (uc *DefaultOrderUsecase) publishOrderEvent(eventType domain.OrderEventType, order *domain.Order) {
	if uc.Publisher == nil {
		return
	}

	event := domain.OrderEvent{
		Type:        eventType,
		OrderID:     order.ID,
		BuyerID:     order.BuyerID,
		SellerID:    order.SellerID,
		Status:      order.Status,
		Amount:      order.TotalAmount,
		Currency:    order.Currency,
		ProductKind: order.ProductKind,
		StreamID:    order.StreamID,
		Error:       order.ErrorMessage,
		Timestamp:   time.Now(),
	}

	go func(event domain.OrderEvent) {
		if err := uc.Publisher.PublishOrder(event); err != nil {
			slog.Error("failed to publish order event",
				"type", string(event.Type), "order_id", event.OrderID, "error", err.Error())
		}
	}(event)
}
