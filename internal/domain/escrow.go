package domain

import "time"

type StreamStatus string

const (
	StreamPending   StreamStatus = "PENDING"
	StreamActive    StreamStatus = "ACTIVE"
	StreamCompleted StreamStatus = "COMPLETED"
	StreamCancelled StreamStatus = "CANCELLED"
)

type EscrowSeller struct {
	ID            string
	WalletAddress string
	Name          string
	Email         string
	Description   string
}

type CreateSellerParams struct {
	WalletAddress string
	Name          string
	Email         string
	Description   string
}

type CreateStreamParams struct {
	SellerID              string
	BuyerAddress          string
	TokenMint             string
	Amount                int64
	AmountPerPeriod       int64
	PeriodSeconds         int64
	StartTime             time.Time
	EndTime               time.Time
	CancelableBySender    bool
	CancelableByRecipient bool
	OrderID               string
}

// EscrowStream is the provider-owned remote resource, referenced but never
// owned by this service.
type EscrowStream struct {
	ID              string
	SellerID        string
	BuyerAddress    string
	TokenMint       string
	Amount          int64
	AmountPerPeriod int64
	PeriodSeconds   int64
	StartTime       time.Time
	EndTime         time.Time
	Status          StreamStatus
	FeeAmount       string
	TreasuryAddress string
}

type StreamActivation struct {
	StreamID      string
	TransactionID string
	FeeAmount     string
	FinalAmount   string
}

// EscrowService is the streaming-payment provider. Calls are network-bound
// and may be slow; failures are surfaced with provider status and message
// preserved. CreateSeller must tolerate repeat calls for the same logical
// seller, since a lost mapping write makes the next ensure call register
// again.
type EscrowService interface {
	CreateSeller(params CreateSellerParams) (*EscrowSeller, error)
	CreateStream(params CreateStreamParams) (*EscrowStream, error)
	ActivateStream(streamID string) (*StreamActivation, error)
	CancelStream(streamID string) error
	GetStream(streamID string) (*EscrowStream, error)
}
