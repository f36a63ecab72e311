package usecase

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/usecase/eligibility"
)

// memOrderRepo is an in-memory store with real CAS semantics, so the
// lifecycle tests exercise the same single-winner guarantee the SQL
// implementation provides.
type memOrderRepo struct {
	mu      sync.Mutex
	orders  map[string]*domain.Order
	nextID  int
	mapping map[string]*domain.SellerMapping
}

func newMemOrderRepo() *memOrderRepo {
	return &memOrderRepo{
		orders:  make(map[string]*domain.Order),
		mapping: make(map[string]*domain.SellerMapping),
	}
}

func (r *memOrderRepo) CreateOrder(order *domain.Order) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := fmt.Sprintf("order-%d", r.nextID)
	clone := *order
	clone.ID = id
	clone.CreatedAt = time.Now()
	clone.UpdatedAt = clone.CreatedAt
	r.orders[id] = &clone
	return id, nil
}

func (r *memOrderRepo) GetOrderByID(orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.NotFoundError("order %s not found", orderID)
	}
	clone := *order
	return &clone, nil
}

func (r *memOrderRepo) CASStatus(orderID string, expected, newStatus domain.OrderStatus, update domain.OrderUpdate) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.NotFoundError("order %s not found", orderID)
	}
	if order.Status != expected {
		return nil, domain.InvalidStateError("order %s status is %s, expected %s", orderID, order.Status, expected)
	}
	order.Status = newStatus
	if update.StreamID != nil {
		order.StreamID = *update.StreamID
	}
	if update.EscrowSellerID != nil {
		order.EscrowSellerID = *update.EscrowSellerID
	}
	if update.ErrorMessage != nil {
		order.ErrorMessage = *update.ErrorMessage
	}
	if update.IncrementRetry {
		order.RetryCount++
	}
	if update.LastRetryAt != nil {
		order.LastRetryAt = update.LastRetryAt
	}
	order.UpdatedAt = time.Now()
	clone := *order
	return &clone, nil
}

func (r *memOrderRepo) GetOrders(filter domain.OrderFilter, page, limit int32) ([]*domain.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Order
	for _, order := range r.orders {
		switch filter.Role {
		case domain.RoleSeller:
			if order.SellerID != filter.UserID {
				continue
			}
		default:
			if order.BuyerID != filter.UserID {
				continue
			}
		}
		clone := *order
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (r *memOrderRepo) GetOrderStats(userID string, role domain.Role) (*domain.OrderStats, error) {
	orders, _, _ := r.GetOrders(domain.OrderFilter{UserID: userID, Role: role}, 1, 1000)
	stats := &domain.OrderStats{}
	for _, order := range orders {
		stats.Total++
		switch order.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusProcessing:
			stats.Processing++
		case domain.StatusActive:
			stats.Active++
		case domain.StatusCompleted:
			stats.Completed++
		case domain.StatusCancelled:
			stats.Cancelled++
		case domain.StatusFailed:
			stats.Failed++
		}
	}
	return stats, nil
}

func (r *memOrderRepo) UpsertSellerMapping(mapping *domain.SellerMapping) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.mapping[mapping.UserID]; !ok {
		r.mapping[mapping.UserID] = mapping
	}
	return nil
}

func (r *memOrderRepo) GetSellerMapping(userID string) (*domain.SellerMapping, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mapping[userID], nil
}

type stubCatalog struct {
	products    map[string]*domain.Product
	deactivated map[string]bool
}

func (s *stubCatalog) GetActiveProduct(productID string) (*domain.Product, error) {
	product, ok := s.products[productID]
	if !ok || s.deactivated[productID] {
		return nil, domain.NotFoundError("product %s not found or inactive", productID)
	}
	return product, nil
}

func (s *stubCatalog) GetProduct(productID string) (*domain.Product, error) {
	product, ok := s.products[productID]
	if !ok {
		return nil, domain.NotFoundError("product %s not found", productID)
	}
	return product, nil
}

type stubUsers struct {
	wallets  map[string]string
	bindings map[string]*domain.PaymentBindings
	profiles map[string]*domain.UserProfile
}

func (s *stubUsers) GetWalletAddress(userID string) (string, error) {
	return s.wallets[userID], nil
}

func (s *stubUsers) GetPaymentBindings(userID string) (*domain.PaymentBindings, error) {
	if b, ok := s.bindings[userID]; ok {
		return b, nil
	}
	return &domain.PaymentBindings{}, nil
}

func (s *stubUsers) GetProfile(userID string) (*domain.UserProfile, error) {
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return nil, domain.NotFoundError("user %s not found", userID)
}

type stubEscrow struct {
	mu sync.Mutex

	createStreamErr   error
	activateErr       error
	cancelErr         error
	streamStatus      domain.StreamStatus
	createStreamCalls int
	cancelCalls       int
	lastStreamParams  *domain.CreateStreamParams
}

func (s *stubEscrow) CreateSeller(params domain.CreateSellerParams) (*domain.EscrowSeller, error) {
	return &domain.EscrowSeller{ID: "esc-seller-1", WalletAddress: params.WalletAddress}, nil
}

func (s *stubEscrow) CreateStream(params domain.CreateStreamParams) (*domain.EscrowStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createStreamCalls++
	s.lastStreamParams = &params
	if s.createStreamErr != nil {
		return nil, s.createStreamErr
	}
	return &domain.EscrowStream{
		ID:       fmt.Sprintf("stream-%d", s.createStreamCalls),
		SellerID: params.SellerID,
		Amount:   params.Amount,
		Status:   domain.StreamPending,
	}, nil
}

func (s *stubEscrow) ActivateStream(streamID string) (*domain.StreamActivation, error) {
	if s.activateErr != nil {
		return nil, s.activateErr
	}
	return &domain.StreamActivation{StreamID: streamID, TransactionID: "tx-1"}, nil
}

func (s *stubEscrow) CancelStream(streamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelCalls++
	return s.cancelErr
}

func (s *stubEscrow) GetStream(streamID string) (*domain.EscrowStream, error) {
	status := s.streamStatus
	if status == "" {
		status = domain.StreamActive
	}
	return &domain.EscrowStream{ID: streamID, Status: status}, nil
}

type capturingPublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *capturingPublisher) PublishOrder(event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

type fixture struct {
	repo    *memOrderRepo
	catalog *stubCatalog
	escrow  *stubEscrow
	uc      *DefaultOrderUsecase
}

func newFixture() *fixture {
	repo := newMemOrderRepo()
	catalog := &stubCatalog{products: map[string]*domain.Product{
		"prod-onetime": {
			ID:       "prod-onetime",
			Name:     "Logo design",
			Price:    29_990_000_000,
			Currency: "USDC",
			Kind:     domain.KindOneTime,
			SellerID: "seller-1",
		},
		"prod-sub": {
			ID:                   "prod-sub",
			Name:                 "Monthly coaching",
			Price:                10_000_000_000,
			Currency:             "USDC",
			Kind:                 domain.KindSubscription,
			SubscriptionPeriod:   domain.PeriodMonthly,
			SubscriptionDuration: 3,
			SellerID:             "seller-1",
		},
	}}
	users := &stubUsers{
		wallets: map[string]string{
			"buyer-1":  "BUYERWALLET",
			"seller-1": "SELLERWALLET",
		},
		bindings: map[string]*domain.PaymentBindings{
			"buyer-1": {HasWallet: true},
		},
		profiles: map[string]*domain.UserProfile{
			"buyer-1":  {ID: "buyer-1", Username: "bob", WalletAddress: "BUYERWALLET"},
			"seller-1": {ID: "seller-1", Username: "alice", WalletAddress: "SELLERWALLET"},
		},
	}
	escrow := &stubEscrow{}

	uc := NewDefaultOrderUsecase(
		repo,
		catalog,
		users,
		escrow,
		eligibility.NewDefaultValidator(users),
		&stubOnboarding{},
		nil,
		nil,
		"TOKENMINT",
	)
	return &fixture{repo: repo, catalog: catalog, escrow: escrow, uc: uc}
}

type stubOnboarding struct {
	err error
}

func (s *stubOnboarding) EnsureSeller(userID string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "esc-seller-1", nil
}

func TestCreateOrder_OneTime(t *testing.T) {
	f := newFixture()

	order, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	assert.Equal(t, domain.StatusPending, order.Status)
	assert.Equal(t, int64(29_990_000_000), order.TotalAmount)
	assert.Equal(t, int64(29_990_000_000), order.StreamAmount)
	assert.Equal(t, int64(29_990_000_000), order.AmountPerPeriod)
	assert.Equal(t, int64(1), order.PeriodSeconds)
	assert.Equal(t, order.StreamStartTime.Add(time.Second), order.StreamEndTime)
	assert.Equal(t, "BUYERWALLET", order.BuyerWalletAddress)
	assert.Equal(t, "SELLERWALLET", order.SellerWalletAddress)
	assert.Equal(t, int32(0), order.RetryCount)
	assert.NotEmpty(t, order.ID)
}

func TestCreateOrder_Subscription(t *testing.T) {
	f := newFixture()

	order, err := f.uc.CreateOrder("prod-sub", "buyer-1", "")
	require.NoError(t, err)

	assert.Equal(t, int64(10_000_000_000), order.TotalAmount)
	assert.Equal(t, int64(30_000_000_000), order.StreamAmount, "3 monthly periods fund the full stream")
	assert.Equal(t, int64(10_000_000_000), order.AmountPerPeriod)
	assert.Equal(t, int64(30*24*60*60), order.PeriodSeconds)
	assert.Equal(t, order.StreamStartTime.Add(90*24*time.Hour), order.StreamEndTime)
}

func TestCreateOrder_ExplicitBuyerWallet(t *testing.T) {
	f := newFixture()

	order, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "OVERRIDE")
	require.NoError(t, err)
	assert.Equal(t, "OVERRIDE", order.BuyerWalletAddress)
}

func TestCreateOrder_MissingPaymentRequirements(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateOrder("prod-onetime", "buyer-without-bindings", "")
	require.Error(t, err)

	de, ok := domain.AsDomainError(err)
	require.True(t, ok)
	assert.Equal(t, domain.KindPaymentRequirements, de.Kind)
	assert.Equal(t, []string{"wallet", "paymentMethod"}, de.Missing)

	// Rejected requests leave no order behind.
	assert.Empty(t, f.repo.orders)
}

func TestCreateOrder_UnknownProduct(t *testing.T) {
	f := newFixture()

	_, err := f.uc.CreateOrder("prod-missing", "buyer-1", "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestProcessPayment_Success(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-sub", "buyer-1", "")
	require.NoError(t, err)

	order, err := f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusActive, order.Status)
	assert.Equal(t, "stream-1", order.StreamID)
	assert.Equal(t, "esc-seller-1", order.EscrowSellerID)
	assert.Empty(t, order.ErrorMessage)
	assert.Equal(t, int32(1), order.RetryCount)
	require.NotNil(t, order.LastRetryAt)

	require.NotNil(t, f.escrow.lastStreamParams)
	assert.Equal(t, "TOKENMINT", f.escrow.lastStreamParams.TokenMint)
	assert.Equal(t, int64(30_000_000_000), f.escrow.lastStreamParams.Amount)
	assert.True(t, f.escrow.lastStreamParams.CancelableBySender)
	assert.True(t, f.escrow.lastStreamParams.CancelableByRecipient)
}

func TestProcessPayment_OneTimeStreamNotCancelable(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	_, err = f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	assert.False(t, f.escrow.lastStreamParams.CancelableBySender)
	assert.False(t, f.escrow.lastStreamParams.CancelableByRecipient)
}

func TestProcessPayment_CreateStreamFailure(t *testing.T) {
	f := newFixture()
	f.escrow.createStreamErr = domain.UpstreamError("escrow api error (503): unavailable", nil)

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	order, err := f.uc.ProcessPayment(created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUpstream))

	require.NotNil(t, order)
	assert.Equal(t, domain.StatusFailed, order.Status)
	assert.Contains(t, order.ErrorMessage, "escrow api error (503)")
	assert.Equal(t, int32(1), order.RetryCount)
	assert.Empty(t, order.StreamID)
}

func TestProcessPayment_ActivateFailure(t *testing.T) {
	f := newFixture()
	f.escrow.activateErr = domain.UpstreamError("activation rejected", nil)

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	order, err := f.uc.ProcessPayment(created.ID)
	require.Error(t, err)
	require.NotNil(t, order)
	assert.Equal(t, domain.StatusFailed, order.Status)
}

func TestProcessPayment_OnlyFromPending(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	_, err = f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	// Already active; the CAS rejects a second run.
	_, err = f.uc.ProcessPayment(created.ID)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}

func TestProcessPayment_SingleWinner(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.uc.ProcessPayment(created.ID)
		}(i)
	}
	wg.Wait()

	var succeeded int
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, domain.IsKind(err, domain.KindInvalidState))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one concurrent call wins the CAS")
	assert.Equal(t, 1, f.escrow.createStreamCalls)

	order, err := f.repo.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, order.Status)
	assert.Equal(t, int32(1), order.RetryCount)
}

func TestRetryOrder_FullCycle(t *testing.T) {
	f := newFixture()
	f.escrow.createStreamErr = errors.New("escrow down")

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	failed, err := f.uc.ProcessPayment(created.ID)
	require.Error(t, err)
	require.Equal(t, domain.StatusFailed, failed.Status)

	// Provider recovers; the buyer retries.
	f.escrow.createStreamErr = nil

	order, err := f.uc.RetryOrder(created.ID, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, order.Status)
	assert.Equal(t, int32(2), order.RetryCount)
	assert.Empty(t, order.ErrorMessage)
}

func TestRetryOrder_OnlyBuyer(t *testing.T) {
	f := newFixture()
	f.escrow.createStreamErr = errors.New("escrow down")

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)
	_, _ = f.uc.ProcessPayment(created.ID)

	_, err = f.uc.RetryOrder(created.ID, "seller-1")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))
}

func TestRetryOrder_OnlyFailedOrders(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	_, err = f.uc.RetryOrder(created.ID, "buyer-1")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}

func TestRetryOrder_LimitExceeded(t *testing.T) {
	f := newFixture()
	f.escrow.createStreamErr = errors.New("escrow down")

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	// First attempt plus two retries exhaust the limit of three.
	_, err = f.uc.ProcessPayment(created.ID)
	require.Error(t, err)
	for i := 0; i < 2; i++ {
		_, err = f.uc.RetryOrder(created.ID, "buyer-1")
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindUpstream))
	}

	_, err = f.uc.RetryOrder(created.ID, "buyer-1")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindRetryLimit))

	order, getErr := f.repo.GetOrderByID(created.ID)
	require.NoError(t, getErr)
	assert.Equal(t, domain.StatusFailed, order.Status)
	assert.Equal(t, int32(3), order.RetryCount)
}

func TestCancelOrder_Pending(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelOrder(created.ID, "buyer-1"))

	order, err := f.repo.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, order.Status)
	assert.Zero(t, f.escrow.cancelCalls, "no stream exists yet, nothing to cancel remotely")
}

func TestCancelOrder_ActiveCancelsStream(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-sub", "buyer-1", "")
	require.NoError(t, err)
	_, err = f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	require.NoError(t, f.uc.CancelOrder(created.ID, "seller-1"))
	assert.Equal(t, 1, f.escrow.cancelCalls)

	order, err := f.repo.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, order.Status)
}

func TestCancelOrder_RemoteFailureStillCancelsLocally(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-sub", "buyer-1", "")
	require.NoError(t, err)
	_, err = f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	f.escrow.cancelErr = errors.New("provider timeout")

	require.NoError(t, f.uc.CancelOrder(created.ID, "buyer-1"))

	order, err := f.repo.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, order.Status)
}

func TestCancelOrder_FailedOrderClearsErrorMessage(t *testing.T) {
	f := newFixture()
	f.escrow.createStreamErr = errors.New("escrow down")

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)
	failed, err := f.uc.ProcessPayment(created.ID)
	require.Error(t, err)
	require.Equal(t, domain.StatusFailed, failed.Status)
	require.NotEmpty(t, failed.ErrorMessage)

	require.NoError(t, f.uc.CancelOrder(created.ID, "buyer-1"))

	order, err := f.repo.GetOrderByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, order.Status)
	assert.Empty(t, order.ErrorMessage, "only failed orders carry a failure message")
}

func TestCancelOrder_Rejections(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	err = f.uc.CancelOrder(created.ID, "stranger")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindAuthorization))

	// Force the order into processing; cancellation must not interleave.
	_, err = f.repo.CASStatus(created.ID, domain.StatusPending, domain.StatusProcessing, domain.OrderUpdate{})
	require.NoError(t, err)
	err = f.uc.CancelOrder(created.ID, "buyer-1")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))

	_, err = f.repo.CASStatus(created.ID, domain.StatusProcessing, domain.StatusCancelled, domain.OrderUpdate{})
	require.NoError(t, err)
	err = f.uc.CancelOrder(created.ID, "buyer-1")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindInvalidState))
}

func TestSyncOrderStatus_CompletesActiveOrder(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-sub", "buyer-1", "")
	require.NoError(t, err)
	_, err = f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	// Provider still streaming: no change.
	f.escrow.streamStatus = domain.StreamActive
	order, err := f.uc.SyncOrderStatus(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusActive, order.Status)

	// Stream ran to completion.
	f.escrow.streamStatus = domain.StreamCompleted
	order, err = f.uc.SyncOrderStatus(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCompleted, order.Status)
}

func TestSyncOrderStatus_IgnoresNonActiveOrders(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	order, err := f.uc.SyncOrderStatus(created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, order.Status)
}

func TestGetOrderByID_PartyOnly(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	_, err = f.uc.GetOrderByID(created.ID, "buyer-1")
	require.NoError(t, err)
	_, err = f.uc.GetOrderByID(created.ID, "seller-1")
	require.NoError(t, err)

	_, err = f.uc.GetOrderByID(created.ID, "stranger")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestGetOrderDetails_KeepsDeactivatedProductSummary(t *testing.T) {
	f := newFixture()
	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)

	// The product goes off sale after purchase; the order still shows it.
	f.catalog.deactivated = map[string]bool{"prod-onetime": true}

	output, err := f.uc.GetOrderDetails(created.ID, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, "prod-onetime", output.Product.ID)
	assert.Equal(t, "Logo design", output.Product.Name)
}

func TestCreateOrder_DeactivatedProductRejected(t *testing.T) {
	f := newFixture()
	f.catalog.deactivated = map[string]bool{"prod-onetime": true}

	_, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindNotFound))
}

func TestLifecycleEventsPublished(t *testing.T) {
	f := newFixture()
	pub := &capturingPublisher{}
	f.uc.Publisher = pub

	created, err := f.uc.CreateOrder("prod-onetime", "buyer-1", "")
	require.NoError(t, err)
	_, err = f.uc.ProcessPayment(created.ID)
	require.NoError(t, err)

	// Events go out asynchronously.
	require.Eventually(t, func() bool {
		pub.mu.Lock()
		defer pub.mu.Unlock()
		return len(pub.events) >= 2
	}, time.Second, 10*time.Millisecond)

	pub.mu.Lock()
	defer pub.mu.Unlock()
	types := make(map[domain.OrderEventType]bool)
	for _, e := range pub.events {
		assert.Equal(t, created.ID, e.OrderID)
		types[e.Type] = true
	}
	assert.True(t, types[domain.EventOrderCreated])
	assert.True(t, types[domain.EventOrderActive])
}
