package domain

import "time"

type OrderEventType string

const (
	EventOrderCreated   OrderEventType = "order.created"
	EventOrderActive    OrderEventType = "order.active"
	EventOrderFailed    OrderEventType = "order.failed"
	EventOrderCancelled OrderEventType = "order.cancelled"
	EventOrderRetried   OrderEventType = "order.retried"
)

type OrderEvent struct {
	EventID     string         `json:"event_id"`
	Type        OrderEventType `json:"type"`
	OrderID     string         `json:"order_id"`
	BuyerID     string         `json:"buyer_id"`
	SellerID    string         `json:"seller_id"`
	Status      OrderStatus    `json:"status"`
	Amount      int64          `json:"amount"`
	Currency    string         `json:"currency"`
	ProductKind ProductKind    `json:"product_kind"`
	StreamID    string         `json:"stream_id,omitempty"`
	Error       string         `json:"error,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

type OrderEventPublisher interface {
	PublishOrder(event OrderEvent) error
}
