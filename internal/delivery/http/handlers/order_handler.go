package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/workwork/workwork-order-service/internal/domain"
	orderdto "github.com/workwork/workwork-order-service/internal/usecase/dto/order"
	orderusecase "github.com/workwork/workwork-order-service/internal/usecase/order"
)

// OrderHandler is the thin JSON surface over the orchestrator. It owns no
// business logic; it decodes requests, calls the usecase and maps domain
// error kinds to status codes.
type OrderHandler struct {
	uc *orderusecase.DefaultOrderUsecase
}

func NewOrderHandler(uc *orderusecase.DefaultOrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

func (h *OrderHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /orders", h.CreateOrder)
	mux.HandleFunc("POST /orders/{id}/process", h.ProcessPayment)
	mux.HandleFunc("POST /orders/{id}/retry", h.RetryOrder)
	mux.HandleFunc("POST /orders/{id}/cancel", h.CancelOrder)
	mux.HandleFunc("POST /orders/{id}/sync", h.SyncOrderStatus)
	mux.HandleFunc("GET /orders/{id}", h.GetOrder)
	mux.HandleFunc("GET /orders", h.ListOrders)
	mux.HandleFunc("GET /orders/stats", h.GetOrderStats)
}

type createOrderRequest struct {
	ProductID          string `json:"product_id"`
	BuyerID            string `json:"buyer_id"`
	BuyerWalletAddress string `json:"buyer_wallet_address,omitempty"`
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ValidationError("invalid request body"))
		return
	}
	order, err := h.uc.CreateOrder(req.ProductID, req.BuyerID, req.BuyerWalletAddress)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *OrderHandler) ProcessPayment(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.ProcessPayment(r.PathValue("id"))
	if err != nil && order == nil {
		writeError(w, err)
		return
	}
	// A persisted failure is reported through the order itself.
	writeJSON(w, http.StatusOK, order)
}

type retryOrderRequest struct {
	BuyerID string `json:"buyer_id"`
}

func (h *OrderHandler) RetryOrder(w http.ResponseWriter, r *http.Request) {
	var req retryOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ValidationError("invalid request body"))
		return
	}
	order, err := h.uc.RetryOrder(r.PathValue("id"), req.BuyerID)
	if err != nil && order == nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

type cancelOrderRequest struct {
	UserID string `json:"user_id"`
}

func (h *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	var req cancelOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.ValidationError("invalid request body"))
		return
	}
	if err := h.uc.CancelOrder(r.PathValue("id"), req.UserID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *OrderHandler) SyncOrderStatus(w http.ResponseWriter, r *http.Request) {
	order, err := h.uc.SyncOrderStatus(r.PathValue("id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	output, err := h.uc.GetOrderDetails(r.PathValue("id"), r.URL.Query().Get("user_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, _ := strconv.ParseInt(query.Get("page"), 10, 32)
	limit, _ := strconv.ParseInt(query.Get("limit"), 10, 32)

	role := domain.Role(query.Get("role"))
	if role == "" {
		role = domain.RoleBuyer
	}

	output, err := h.uc.ListOrders(&orderdto.ListOrdersInput{
		UserID: query.Get("user_id"),
		Role:   role,
		Page:   int32(page),
		Limit:  int32(limit),
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func (h *OrderHandler) GetOrderStats(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	role := domain.Role(query.Get("role"))
	if role == "" {
		role = domain.RoleBuyer
	}

	stats, err := h.uc.GetOrderStats(query.Get("user_id"), role)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error   string   `json:"error"`
	Kind    string   `json:"kind,omitempty"`
	Missing []string `json:"missing,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	body := errorResponse{Error: err.Error()}

	if de, ok := domain.AsDomainError(err); ok {
		body.Kind = string(de.Kind)
		body.Missing = de.Missing
		switch de.Kind {
		case domain.KindValidation:
			status = http.StatusBadRequest
		case domain.KindNotFound:
			status = http.StatusNotFound
		case domain.KindPaymentRequirements, domain.KindPrecondition:
			status = http.StatusUnprocessableEntity
		case domain.KindInvalidState:
			status = http.StatusConflict
		case domain.KindAuthorization:
			status = http.StatusForbidden
		case domain.KindRetryLimit:
			status = http.StatusTooManyRequests
		case domain.KindUpstream:
			status = http.StatusBadGateway
		}
	}

	writeJSON(w, status, body)
}
