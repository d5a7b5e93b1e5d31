package mykafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	TopicUserEvents     = "user_events"
	TopicHospitalEvents = "hospital_events"

	writeTimeout = 5 * time.Second
)

type Publisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{writer: &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		WriteTimeout:           writeTimeout,
	}}
}

func (p *Producer) PublishEvent(ctx context.Context, topic, key string, event any) error {
	msg, err := message(topic, key, event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: write failed: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	return p.writer.Close()
}

func message(topic, key string, event any) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: json.Marshal failed: %w", err)
	}
	return kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now().UTC(),
	}, nil
}

// FromBrokers returns a Producer, or Discard when brokers is empty.
// The returned close func is always safe to call.
func FromBrokers(brokers []string) (Publisher, func() error) {
	if len(brokers) == 0 {
		return Discard{}, func() error { return nil }
	}
	p := NewProducer(brokers)
	return p, p.Close
}

// Discard drops every event. Used when no brokers are configured.
type Discard struct{}

func (Discard) PublishEvent(context.Context, string, string, any) error { return nil }
