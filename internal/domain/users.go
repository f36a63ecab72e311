package domain

// UserProfile is the directory projection used for seller onboarding and
// order display.
type UserProfile struct {
	ID            string
	Username      string
	Email         string
	Bio           string
	WalletAddress string
}

// PaymentBindings reports which payment capabilities a user has bound.
type PaymentBindings struct {
	HasWallet        bool
	HasPaymentMethod bool
}

type UserDirectory interface {
	GetWalletAddress(userID string) (string, error)
	GetPaymentBindings(userID string) (*PaymentBindings, error)
	GetProfile(userID string) (*UserProfile, error)
}
