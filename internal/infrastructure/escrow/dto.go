package escrow

// Wire types for the StreamFlow provider API. Amounts travel as decimal
// strings of base units, times as RFC 3339 strings.

type apiEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type createSellerRequest struct {
	WalletAddress string `json:"walletAddress"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Description   string `json:"description"`
}

type sellerResponse struct {
	ID            string `json:"id"`
	WalletAddress string `json:"walletAddress"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Description   string `json:"description"`
}

type createStreamRequest struct {
	SellerID              string `json:"sellerId"`
	BuyerAddress          string `json:"buyerAddress"`
	TokenMint             string `json:"tokenMint"`
	Amount                string `json:"amount"`
	AmountPerPeriod       string `json:"amountPerPeriod"`
	Period                int64  `json:"period"`
	StartTime             string `json:"startTime"`
	EndTime               string `json:"endTime"`
	AutomaticWithdrawal   bool   `json:"automaticWithdrawal"`
	CancelableBySender    bool   `json:"cancelableBySender"`
	CancelableByRecipient bool   `json:"cancelableByRecipient"`
	OrderID               string `json:"orderId"`
}

type streamResponse struct {
	ID              string `json:"id"`
	SellerID        string `json:"sellerId"`
	BuyerAddress    string `json:"buyerAddress"`
	TokenMint       string `json:"tokenMint"`
	Amount          string `json:"amount"`
	AmountPerPeriod string `json:"amountPerPeriod"`
	Period          int64  `json:"period"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	Status          string `json:"status"`
	FeeAmount       string `json:"feeAmount"`
	TreasuryAddress string `json:"treasuryAddress"`
}

type activateStreamResponse struct {
	StreamID      string `json:"streamId"`
	TransactionID string `json:"transactionId"`
	FeeAmount     string `json:"feeAmount"`
	FinalAmount   string `json:"finalAmount"`
}
