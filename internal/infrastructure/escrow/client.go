// Package escrow is the HTTP client for the StreamFlow streaming-payment
// provider.
package escrow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/workwork/workwork-order-service/internal/domain"
	"github.com/workwork/workwork-order-service/internal/infrastructure/metrics"
)

type HTTPEscrowClient struct {
	BaseURL    string
	Metrics    *metrics.OrderMetrics
	httpClient *http.Client
	newKey     func() string
}

func NewHTTPEscrowClient(baseURL string, timeout time.Duration, orderMetrics *metrics.OrderMetrics) (*HTTPEscrowClient, error) {
	keyGenerator, err := nanoid.Standard(21)
	if err != nil {
		return nil, err
	}
	return &HTTPEscrowClient{
		BaseURL:    baseURL,
		Metrics:    orderMetrics,
		httpClient: &http.Client{Timeout: timeout},
		newKey:     keyGenerator,
	}, nil
}

// call performs one provider call, records its duration and unwraps the
// {success, data, error} envelope. Provider failures keep their HTTP status
// and message in the wrapped error.
func (c *HTTPEscrowClient) call(name, method, path string, body any, out any) error {
	start := time.Now()
	err := c.request(method, path, body, out)
	if c.Metrics != nil {
		outcome := "success"
		if err != nil {
			outcome = "error"
		}
		c.Metrics.RecordEscrowCall(name, outcome, time.Since(start).Seconds())
	}
	return err
}

func (c *HTTPEscrowClient) request(method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		requestBodyBytes, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewBuffer(requestBodyBytes)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if method == http.MethodPost {
		req.Header.Set("Idempotency-Key", c.newKey())
	}

	response, err := c.httpClient.Do(req)
	if err != nil {
		return domain.UpstreamError("escrow service unreachable", err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return domain.UpstreamError("failed to read escrow response", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return domain.UpstreamError(
			fmt.Sprintf("escrow api error (%d): %s", response.StatusCode, string(responseBodyBytes)), nil)
	}

	var envelope struct {
		apiEnvelope
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(responseBodyBytes, &envelope); err != nil {
		return domain.UpstreamError("failed to decode escrow response", err)
	}
	if !envelope.Success {
		return domain.UpstreamError("escrow api error: "+envelope.Error, nil)
	}
	if out != nil && len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, out); err != nil {
			return domain.UpstreamError("failed to decode escrow response data", err)
		}
	}
	return nil
}

func (c *HTTPEscrowClient) CreateSeller(params domain.CreateSellerParams) (*domain.EscrowSeller, error) {
	var data sellerResponse
	err := c.call("create_seller", http.MethodPost, "/api/sellers", createSellerRequest{
		WalletAddress: params.WalletAddress,
		Name:          params.Name,
		Email:         params.Email,
		Description:   params.Description,
	}, &data)
	if err != nil {
		return nil, err
	}
	return &domain.EscrowSeller{
		ID:            data.ID,
		WalletAddress: data.WalletAddress,
		Name:          data.Name,
		Email:         data.Email,
		Description:   data.Description,
	}, nil
}

func (c *HTTPEscrowClient) CreateStream(params domain.CreateStreamParams) (*domain.EscrowStream, error) {
	var data streamResponse
	err := c.call("create_stream", http.MethodPost, "/api/streams", createStreamRequest{
		SellerID:              params.SellerID,
		BuyerAddress:          params.BuyerAddress,
		TokenMint:             params.TokenMint,
		Amount:                strconv.FormatInt(params.Amount, 10),
		AmountPerPeriod:       strconv.FormatInt(params.AmountPerPeriod, 10),
		Period:                params.PeriodSeconds,
		StartTime:             params.StartTime.UTC().Format(time.RFC3339),
		EndTime:               params.EndTime.UTC().Format(time.RFC3339),
		AutomaticWithdrawal:   true,
		CancelableBySender:    params.CancelableBySender,
		CancelableByRecipient: params.CancelableByRecipient,
		OrderID:               params.OrderID,
	}, &data)
	if err != nil {
		return nil, err
	}
	return toDomainStream(&data)
}

func (c *HTTPEscrowClient) ActivateStream(streamID string) (*domain.StreamActivation, error) {
	var data activateStreamResponse
	err := c.call("activate_stream", http.MethodPost, "/api/streams/"+streamID+"/activate", nil, &data)
	if err != nil {
		return nil, err
	}
	if data.StreamID == "" {
		data.StreamID = streamID
	}
	return &domain.StreamActivation{
		StreamID:      data.StreamID,
		TransactionID: data.TransactionID,
		FeeAmount:     data.FeeAmount,
		FinalAmount:   data.FinalAmount,
	}, nil
}

func (c *HTTPEscrowClient) CancelStream(streamID string) error {
	return c.call("cancel_stream", http.MethodPost, "/api/streams/"+streamID+"/cancel", nil, nil)
}

func (c *HTTPEscrowClient) GetStream(streamID string) (*domain.EscrowStream, error) {
	var data streamResponse
	if err := c.call("get_stream", http.MethodGet, "/api/streams/"+streamID, nil, &data); err != nil {
		return nil, err
	}
	return toDomainStream(&data)
}

func toDomainStream(data *streamResponse) (*domain.EscrowStream, error) {
	stream := &domain.EscrowStream{
		ID:              data.ID,
		SellerID:        data.SellerID,
		BuyerAddress:    data.BuyerAddress,
		TokenMint:       data.TokenMint,
		PeriodSeconds:   data.Period,
		Status:          domain.StreamStatus(data.Status),
		FeeAmount:       data.FeeAmount,
		TreasuryAddress: data.TreasuryAddress,
	}
	if data.Amount != "" {
		amount, err := strconv.ParseInt(data.Amount, 10, 64)
		if err != nil {
			return nil, domain.UpstreamError("escrow returned malformed stream amount "+data.Amount, err)
		}
		stream.Amount = amount
	}
	if data.AmountPerPeriod != "" {
		perPeriod, err := strconv.ParseInt(data.AmountPerPeriod, 10, 64)
		if err != nil {
			return nil, domain.UpstreamError("escrow returned malformed per-period amount "+data.AmountPerPeriod, err)
		}
		stream.AmountPerPeriod = perPeriod
	}
	if data.StartTime != "" {
		startTime, err := time.Parse(time.RFC3339, data.StartTime)
		if err != nil {
			return nil, domain.UpstreamError("escrow returned malformed start time "+data.StartTime, err)
		}
		stream.StartTime = startTime
	}
	if data.EndTime != "" {
		endTime, err := time.Parse(time.RFC3339, data.EndTime)
		if err != nil {
			return nil, domain.UpstreamError("escrow returned malformed end time "+data.EndTime, err)
		}
		stream.EndTime = endTime
	}
	return stream, nil
}
