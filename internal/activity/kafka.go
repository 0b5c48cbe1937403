package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"jewelry-inventory-api/internal/metrics"
	"jewelry-inventory-api/internal/model"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// DefaultKafkaTopic is used when no topic is configured.
const DefaultKafkaTopic = "inventory-activity"

// KafkaSink publishes each report as a JSON message keyed by request id.
// Delivery is asynchronous; failures reported by the producer are logged
// and counted.
type KafkaSink struct {
	producer sarama.AsyncProducer
	topic    string
	logger   *zap.Logger
	done     chan struct{}
}

// NewKafkaSink creates an asynchronous producer for the given brokers.
func NewKafkaSink(brokers []string, topic string, logger *zap.Logger) (*KafkaSink, error) {
	if len(brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}

	producer, err := sarama.NewAsyncProducer(brokers, producerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka producer: %w", err)
	}
	return NewKafkaSinkWithProducer(producer, topic, logger), nil
}

// NewKafkaSinkWithProducer wraps an existing producer and starts draining
// its error channel.
func NewKafkaSinkWithProducer(producer sarama.AsyncProducer, topic string, logger *zap.Logger) *KafkaSink {
	if topic == "" {
		topic = DefaultKafkaTopic
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &KafkaSink{
		producer: producer,
		topic:    topic,
		logger:   logger.With(zap.String("component", "activity_kafka")),
		done:     make(chan struct{}),
	}
	go s.drainErrors()
	return s
}

func producerConfig() *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = false
	cfg.Producer.Return.Errors = true
	cfg.Producer.RequiredAcks = sarama.WaitForLocal
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 100 * time.Millisecond
	cfg.Producer.Flush.Frequency = 500 * time.Millisecond
	return cfg
}

// Name implements Sink.
func (s *KafkaSink) Name() string { return "kafka" }

// Record implements Sink. It returns once the message is handed to the
// producer, or with ctx's error if the producer input stays full.
func (s *KafkaSink) Record(ctx context.Context, report model.ActivityReport) error {
	data, err := json.Marshal(report)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic:     s.topic,
		Value:     sarama.ByteEncoder(data),
		Timestamp: report.Timestamp,
	}
	if report.RequestID != "" {
		msg.Key = sarama.StringEncoder(report.RequestID)
	}

	select {
	case s.producer.Input() <- msg:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("failed to enqueue activity for %s: %w", s.topic, ctx.Err())
	}
}

func (s *KafkaSink) drainErrors() {
	defer close(s.done)

	for perr := range s.producer.Errors() {
		metrics.ActivitySinkErrors.WithLabelValues(s.Name()).Inc()
		s.logger.Warn("failed to publish activity",
			zap.String("topic", s.topic),
			zap.Error(perr.Err),
		)
	}
}

// Close flushes pending messages and closes the producer.
func (s *KafkaSink) Close() error {
	err := s.producer.Close()
	<-s.done
	return err
}
