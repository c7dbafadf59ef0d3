package events

import (
	"encoding/json"
	"log"
	"time"

	"github.com/IBM/sarama"
	"github.com/wrapcommand/wrapcommandai/internal/stage"
)

// OrderEvent is the audit record published for every observed stage change
type OrderEvent struct {
	OrderNumber string      `json:"order_number"`
	OldStage    stage.Stage `json:"old_stage"`
	NewStage    stage.Stage `json:"new_stage"`
	At          time.Time   `json:"at"`
}

// Producer publishes order lifecycle events to Kafka. A nil Producer is
// valid and drops everything, so call sites don't need broker checks.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

// NewProducer connects to the brokers. Returns nil (not an error) when no
// brokers are configured: event publishing is optional.
func NewProducer(brokers []string, topic string) (*Producer, error) {
	if len(brokers) == 0 {
		return nil, nil
	}

	config := sarama.NewConfig()
	config.Producer.Return.Successes = true
	config.Producer.Timeout = 5 * time.Second

	prod, err := sarama.NewSyncProducer(brokers, config)
	if err != nil {
		return nil, err
	}
	return &Producer{producer: prod, topic: topic}, nil
}

// PublishStageChange publishes one order event. Failures are logged, not
// returned: the event stream is an audit aid, never a write barrier.
func (p *Producer) PublishStageChange(ev OrderEvent) {
	if p == nil {
		return
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		log.Printf("events: marshal failed: %v", err)
		return
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OrderNumber),
		Value: sarama.ByteEncoder(payload),
	}
	if _, _, err := p.producer.SendMessage(msg); err != nil {
		log.Printf("events: failed to publish stage change for %s: %v", ev.OrderNumber, err)
	}
}

// Close shuts the underlying producer down
func (p *Producer) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
