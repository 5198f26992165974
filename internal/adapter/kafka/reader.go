package kafka

import (
	"context"
	"errors"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/couchcryptid/facility-resolver/internal/config"
	"github.com/couchcryptid/facility-resolver/internal/domain"
)

// Reader consumes lookup requests from a Kafka topic.
// It implements pipeline.BatchExtractor.
type Reader struct {
	reader        *kafkago.Reader
	flushInterval time.Duration
	logger        *slog.Logger
}

// NewReader creates a consumer-group reader for the configured request topic.
// Offsets are committed explicitly through LookupMessage.Commit.
func NewReader(cfg *config.Config, logger *slog.Logger) *Reader {
	r := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:     cfg.KafkaBrokers,
		Topic:       cfg.KafkaRequestTopic,
		GroupID:     cfg.KafkaGroupID,
		StartOffset: kafkago.FirstOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
	})
	return &Reader{reader: r, flushInterval: cfg.BatchFlushInterval, logger: logger}
}

// ExtractBatch fetches up to batchSize messages. It returns early with a
// partial batch once the flush interval elapses, and an empty batch with a
// nil error when nothing arrived in time.
func (r *Reader) ExtractBatch(ctx context.Context, batchSize int) ([]domain.LookupMessage, error) {
	if batchSize <= 0 {
		batchSize = 1
	}
	fetchCtx := ctx
	if r.flushInterval > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, r.flushInterval)
		defer cancel()
	}

	batch := make([]domain.LookupMessage, 0, batchSize)
	for len(batch) < batchSize {
		msg, err := r.reader.FetchMessage(fetchCtx)
		if err != nil {
			if ctx.Err() != nil {
				return batch, ctx.Err()
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return batch, nil
			}
			return batch, err
		}
		batch = append(batch, r.withCommit(msg))
	}
	return batch, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}

func (r *Reader) withCommit(msg kafkago.Message) domain.LookupMessage {
	lm := mapMessageToLookupMessage(msg)
	lm.Commit = func(ctx context.Context) error {
		return r.reader.CommitMessages(ctx, msg)
	}
	return lm
}

// mapMessageToLookupMessage copies a Kafka message into a LookupMessage
// without a commit callback.
func mapMessageToLookupMessage(msg kafkago.Message) domain.LookupMessage {
	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	return domain.LookupMessage{
		Key:       msg.Key,
		Value:     msg.Value,
		Headers:   headers,
		Topic:     msg.Topic,
		Partition: msg.Partition,
		Offset:    msg.Offset,
		Timestamp: msg.Time,
	}
}
