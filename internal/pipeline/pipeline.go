package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
)

// BatchExtractor reads up to batchSize lookup requests from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.LookupMessage, error)
}

// Transformer answers a single lookup request. An error means the message
// carries nothing answerable and is skipped.
type Transformer interface {
	Transform(ctx context.Context, msg domain.LookupMessage) (domain.LookupResponse, error)
}

// BatchLoader publishes lookup responses to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, responses []domain.LookupResponse) error
}

// Pipeline orchestrates the consume-resolve-publish loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once the pipeline has completed a fetch from the
// broker, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not reached the broker yet")
	}
	return nil
}

// Run executes the batch lookup loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	// Exponential backoff on broker failures: 200ms doubling to 5s.
	backoff := 200 * time.Millisecond
	maxBackoff := 5 * time.Second

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processBatch(ctx, &backoff, maxBackoff) {
			return nil
		}
	}
}

// processBatch runs one consume-resolve-publish cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	start := time.Now()

	batch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return p.backoffOrStop(ctx, backoff, maxBackoff)
	}
	p.ready.Store(true)

	if len(batch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(batch)))
	p.metrics.BatchSize.Observe(float64(len(batch)))
	*backoff = 200 * time.Millisecond

	loaded, ok := p.transformAndLoad(ctx, batch, backoff, maxBackoff)
	if !ok {
		return false
	}

	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	}
	return true
}

// transformAndLoad answers each message in the batch, publishes the responses,
// and commits offsets. Returns the number of published responses and false if
// the pipeline should stop.
func (p *Pipeline) transformAndLoad(ctx context.Context, batch []domain.LookupMessage, backoff *time.Duration, maxBackoff time.Duration) (int, bool) {
	responses := make([]domain.LookupResponse, 0, len(batch))
	answered := make([]domain.LookupMessage, 0, len(batch))

	for _, msg := range batch {
		resp, err := p.transformer.Transform(ctx, msg)
		if err != nil {
			p.logger.Warn("lookup request rejected, skipping message",
				"error", err,
				"topic", msg.Topic,
				"partition", msg.Partition,
				"offset", msg.Offset,
			)
			p.metrics.TransformErrors.Inc()
			p.commitOffset(ctx, msg)
			continue
		}
		responses = append(responses, resp)
		answered = append(answered, msg)
	}

	if len(responses) == 0 {
		return 0, true
	}

	if err := p.loader.LoadBatch(ctx, responses); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(responses))
		return 0, p.backoffOrStop(ctx, backoff, maxBackoff)
	}

	p.metrics.MessagesProduced.Add(float64(len(responses)))

	for _, msg := range answered {
		p.commitOffset(ctx, msg)
	}

	return len(responses), true
}

// backoffOrStop checks for context cancellation, sleeps with the current backoff,
// and advances the backoff. Returns false if the pipeline should stop.
func (p *Pipeline) backoffOrStop(ctx context.Context, backoff *time.Duration, maxBackoff time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if !sleepWithContext(ctx, *backoff) {
		return false
	}
	*backoff = nextBackoff(*backoff, maxBackoff)
	return true
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, msg domain.LookupMessage) {
	if msg.Commit == nil {
		return
	}
	if err := msg.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", msg.Topic, "partition", msg.Partition, "offset", msg.Offset)
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
