// Package seller guarantees a 1:1 mapping between an internal seller and
// its identity at the escrow provider, registering the seller on first use.
package seller

import (
	"log/slog"
	"time"

	"github.com/workwork/workwork-order-service/internal/domain"
)

type OnboardingUsecase interface {
	EnsureSeller(userID string) (string, error)
}

type DefaultOnboardingUsecase struct {
	OrderRepo domain.OrderRepository
	Users     domain.UserDirectory
	Escrow    domain.EscrowService
}

func NewDefaultOnboardingUsecase(
	orderRepo domain.OrderRepository,
	users domain.UserDirectory,
	escrow domain.EscrowService) *DefaultOnboardingUsecase {

	return &DefaultOnboardingUsecase{
		OrderRepo: orderRepo,
		Users:     users,
		Escrow:    escrow,
	}
}

// EnsureSeller returns the escrow seller id for userID, creating the
// provider account on first use. An existing mapping short-circuits without
// any network call. When the mapping write loses, the fresh external id is
// still returned and the next call registers again; the unique constraint
// on the mapping table keeps one row per seller.
func (uc *DefaultOnboardingUsecase) EnsureSeller(userID string) (string, error) {
	mapping, err := uc.OrderRepo.GetSellerMapping(userID)
	if err != nil {
		return "", domain.UpstreamError("failed to look up seller mapping", err)
	}
	if mapping != nil {
		return mapping.EscrowSellerID, nil
	}

	profile, err := uc.Users.GetProfile(userID)
	if err != nil {
		return "", err
	}
	if profile.WalletAddress == "" {
		return "", domain.PreconditionError("seller %s has no settlement wallet address", userID)
	}

	name := profile.Username
	if name == "" {
		name = "Anonymous Seller"
	}
	description := profile.Bio
	if description == "" {
		description = "WorkWork seller"
	}

	escrowSeller, err := uc.Escrow.CreateSeller(domain.CreateSellerParams{
		WalletAddress: profile.WalletAddress,
		Name:          name,
		Email:         profile.Email,
		Description:   description,
	})
	if err != nil {
		return "", err
	}

	if err := uc.OrderRepo.UpsertSellerMapping(&domain.SellerMapping{
		UserID:         userID,
		EscrowSellerID: escrowSeller.ID,
		WalletAddress:  profile.WalletAddress,
		CreatedAt:      time.Now(),
	}); err != nil {
		slog.Warn("failed to persist seller mapping, registration will repeat on next call",
			"user_id", userID, "escrow_seller_id", escrowSeller.ID, "error", err.Error())
	}

	return escrowSeller.ID, nil
}
