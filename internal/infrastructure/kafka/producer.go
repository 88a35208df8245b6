package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

const (
	defaultMaxAttempts  = 5
	defaultWriteTimeout = 10 * time.Second
)

type Config struct {
	Brokers []string
	Topic   string

	// Zero values fall back to the package defaults.
	MaxAttempts  int
	WriteTimeout time.Duration
}

// Producer publishes kitchen notifications. Messages are keyed by
// order id so one order's events stay on one partition.
type Producer struct {
	writer *kafka.Writer
}

func NewProducer(cfg Config) *Producer {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	writeTimeout := cfg.WriteTimeout
	if writeTimeout <= 0 {
		writeTimeout = defaultWriteTimeout
	}

	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		MaxAttempts:            maxAttempts,
		ReadTimeout:            writeTimeout,
		WriteTimeout:           writeTimeout,
		Async:                  false,
		AllowAutoTopicCreation: true,
	}

	return &Producer{writer: w}
}

func (p *Producer) SendMessage(ctx context.Context, key, value []byte) error {
	err := p.writer.WriteMessages(ctx,
		kafka.Message{
			Key:   key,
			Value: value,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	return nil
}

func (p *Producer) Topic() string {
	return p.writer.Topic
}

func (p *Producer) Close() error {
	return p.writer.Close()
}
