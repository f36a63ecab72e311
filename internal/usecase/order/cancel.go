package usecase

import (
	"log/slog"

	"github.com/workwork/workwork-order-service/internal/domain"
)

// CancelOrder cancels a pending, failed or active order. The caller must be
// the buyer or the seller. For an active order the remote stream cancel is
// best-effort: the local order is authoritative for user-visible state, and
// a failed remote cancel is left to reconciliation.
func (uc *DefaultOrderUsecase) CancelOrder(orderID, userID string) error {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return err
	}

	if order.BuyerID != userID && order.SellerID != userID {
		return domain.AuthorizationError("user %s is neither buyer nor seller of order %s", userID, orderID)
	}
	if order.Status.IsTerminal() {
		return domain.InvalidStateError("order %s is already %s", orderID, order.Status)
	}
	// Processing is short-lived and holds the CAS; cancellation targets
	// pending, failed and active orders only.
	if order.Status == domain.StatusProcessing {
		return domain.InvalidStateError("order %s is being processed and cannot be cancelled", orderID)
	}

	if order.Status == domain.StatusActive && order.StreamID != "" {
		if err := uc.Escrow.CancelStream(order.StreamID); err != nil {
			slog.Error("failed to cancel escrow stream, cancelling order locally",
				"order_id", orderID, "stream_id", order.StreamID, "error", err.Error())
		}
	}

	// A cancelled order carries no failure message; only failed orders do.
	empty := ""
	cancelled, err := uc.OrderRepo.CASStatus(orderID, order.Status, domain.StatusCancelled, domain.OrderUpdate{
		ErrorMessage: &empty,
	})
	if err != nil {
		return err
	}

	uc.recordOrderCancelled(cancelled)
	uc.publishOrderEvent(domain.EventOrderCancelled, cancelled)

	return nil
}
