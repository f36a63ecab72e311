package usecase

import (
	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/infrastructure/metrics"
	"github.com/workwork/workwork-order-service/internal/usecase/eligibility"
	"github.com/workwork/workwork-order-service/internal/usecase/seller"
)

// DefaultOrderUsecase is the order lifecycle orchestrator. It is stateless
// between calls; all durable state lives in the order store and every
// lifecycle transition goes through the store's CAS.
type DefaultOrderUsecase struct {
	OrderRepo        domain.OrderRepository
	Catalog          domain.CatalogStore
	Users            domain.UserDirectory
	Escrow           domain.EscrowService
	Eligibility      eligibility.Validator
	SellerOnboarding seller.OnboardingUsecase
	Publisher        domain.OrderEventPublisher
	Metrics          *metrics.OrderMetrics

	// TokenMint is the token identity streams are denominated in.
	TokenMint string
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	catalog domain.CatalogStore,
	users domain.UserDirectory,
	escrow domain.EscrowService,
	eligibilityValidator eligibility.Validator,
	sellerOnboarding seller.OnboardingUsecase,
	publisher domain.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	tokenMint string) *DefaultOrderUsecase {

	return &DefaultOrderUsecase{
		OrderRepo:        orderRepo,
		Catalog:          catalog,
		Users:            users,
		Escrow:           escrow,
		Eligibility:      eligibilityValidator,
		SellerOnboarding: sellerOnboarding,
		Publisher:        publisher,
		Metrics:          orderMetrics,
		TokenMint:        tokenMint,
	}
}
