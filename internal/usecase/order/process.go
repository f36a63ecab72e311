package usecase

import (
	"log/slog"
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
)

// buyerAddressPlaceholder funds the stream when the buyer paid through a
// bound payment method instead of a settlement wallet.
const buyerAddressPlaceholder = "BUYER_PLACEHOLDER"

// ProcessPayment moves a pending order through the escrow lifecycle:
// resolve the seller's escrow identity, create the stream, activate it. The
// pending -> processing CAS is the sole concurrency guard; of N concurrent
// calls exactly one proceeds and the rest observe an invalid-state error.
//
// An escrow failure is captured on the order: the returned order reflects
// the persisted failed state and the returned error describes the cause.
// Nothing is retried here; retries are explicit via RetryOrder.
func (uc *DefaultOrderUsecase) ProcessPayment(orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(orderID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order, err = uc.OrderRepo.CASStatus(orderID, domain.StatusPending, domain.StatusProcessing, domain.OrderUpdate{
		IncrementRetry: true,
		LastRetryAt:    &now,
	})
	if err != nil {
		return nil, err
	}

	escrowSellerID, err := uc.SellerOnboarding.EnsureSeller(order.SellerID)
	if err != nil {
		return uc.failProcessing(order, "ensure_seller", err)
	}

	buyerAddress := order.BuyerWalletAddress
	if buyerAddress == "" {
		buyerAddress = buyerAddressPlaceholder
	}

	cancelable := order.ProductKind == domain.KindSubscription
	stream, err := uc.Escrow.CreateStream(domain.CreateStreamParams{
		SellerID:              escrowSellerID,
		BuyerAddress:          buyerAddress,
		TokenMint:             uc.TokenMint,
		Amount:                order.StreamAmount,
		AmountPerPeriod:       order.AmountPerPeriod,
		PeriodSeconds:         order.PeriodSeconds,
		StartTime:             order.StreamStartTime,
		EndTime:               order.StreamEndTime,
		CancelableBySender:    cancelable,
		CancelableByRecipient: cancelable,
		OrderID:               order.ID,
	})
	if err != nil {
		return uc.failProcessing(order, "create_stream", err)
	}

	if _, err := uc.Escrow.ActivateStream(stream.ID); err != nil {
		// The created stream stays inactive at the provider. A retry
		// starts a fresh escrow lifecycle instead of resuming it.
		return uc.failProcessing(order, "activate_stream", err)
	}

	empty := ""
	order, err = uc.OrderRepo.CASStatus(orderID, domain.StatusProcessing, domain.StatusActive, domain.OrderUpdate{
		StreamID:       &stream.ID,
		EscrowSellerID: &escrowSellerID,
		ErrorMessage:   &empty,
	})
	if err != nil {
		return nil, err
	}

	uc.recordOrderActivated(order)
	uc.publishOrderEvent(domain.EventOrderActive, order)

	return order, nil
}

// failProcessing persists the failed state with the captured error message,
// so the order never stays stuck in processing.
func (uc *DefaultOrderUsecase) failProcessing(order *domain.Order, stage string, cause error) (*domain.Order, error) {
	message := cause.Error()
	failed, casErr := uc.OrderRepo.CASStatus(order.ID, domain.StatusProcessing, domain.StatusFailed, domain.OrderUpdate{
		ErrorMessage: &message,
	})
	if casErr != nil {
		slog.Error("failed to persist failed order state",
			"order_id", order.ID, "stage", stage, "error", casErr.Error())
		return nil, domain.UpstreamError("payment processing failed at "+stage, cause)
	}

	uc.recordOrderFailed(failed, stage)
	uc.publishOrderEvent(domain.EventOrderFailed, failed)

	return failed, domain.UpstreamError("payment processing failed at "+stage, cause)
}
