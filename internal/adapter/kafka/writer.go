package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/facility-resolver/internal/config"
	"github.com/couchcryptid/facility-resolver/internal/domain"
)

// Writer produces lookup responses to a Kafka topic.
// It implements pipeline.BatchLoader.
type Writer struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewWriter creates a Kafka producer for the configured response topic.
func NewWriter(cfg *config.Config, logger *slog.Logger) *Writer {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaResponseTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &Writer{writer: w, logger: logger}
}

// LoadBatch publishes responses in a single WriteMessages call. Responses
// are keyed by request id so replies for one request land on one partition.
func (w *Writer) LoadBatch(ctx context.Context, responses []domain.LookupResponse) error {
	if len(responses) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(responses))
	for i := range responses {
		msg, err := serializeToMessage(responses[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("write %d responses: %w", len(msgs), err)
	}
	w.logger.Debug("responses written", "count", len(msgs))
	return nil
}

func (w *Writer) Close() error {
	return w.writer.Close()
}

func serializeToMessage(resp domain.LookupResponse) (kafkago.Message, error) {
	data, err := json.Marshal(resp)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize lookup response: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(resp.RequestID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "kind", Value: []byte(resp.Kind)},
			{Key: "status", Value: []byte(resp.Status)},
			{Key: "resolved_at", Value: []byte(resp.ResolvedAt.Format(time.RFC3339))},
		},
	}, nil
}
