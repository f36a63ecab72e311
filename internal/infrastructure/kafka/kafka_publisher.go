package publisher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/jaevor/go-nanoid"
	"github.com/segmentio/kafka-go"
	"github.com/workwork/workwork-order-service/internal/domain"
)

type DefaultKafkaPublisher struct {
	writer  *kafka.Writer
	topic   string
	eventID func() string
}

func NewDefaultKafkaPublisher(brokers []string, topic string) (*DefaultKafkaPublisher, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, err
	}
	return &DefaultKafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic:   topic,
		eventID: idGenerator,
	}, nil
}

// PublishOrder emits one lifecycle event, keyed by order id so events for
// the same order stay ordered within a partition.
func (k *DefaultKafkaPublisher) PublishOrder(event domain.OrderEvent) error {
	if event.EventID == "" {
		event.EventID = k.eventID()
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: value,
		Time:  time.Now(),
		Topic: k.topic,
	})
}

func (k *DefaultKafkaPublisher) Close() error {
	return k.writer.Close()
}
