package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/couchcryptid/facility-resolver/internal/domain"
)

// Handler answers a decoded lookup request.
type Handler interface {
	Handle(ctx context.Context, req domain.LookupRequest) (domain.LookupResponse, error)
}

// LookupTransformer implements Transformer by decoding the message payload
// and passing it to a Handler.
type LookupTransformer struct {
	handler Handler
	logger  *slog.Logger
}

// NewTransformer creates a LookupTransformer.
func NewTransformer(handler Handler, logger *slog.Logger) *LookupTransformer {
	return &LookupTransformer{handler: handler, logger: logger}
}

// Transform returns an error only for payloads that are not lookup requests.
// Failed lookups are answered with an error response.
func (t *LookupTransformer) Transform(ctx context.Context, msg domain.LookupMessage) (domain.LookupResponse, error) {
	var req domain.LookupRequest
	if err := json.Unmarshal(msg.Value, &req); err != nil {
		return domain.LookupResponse{}, fmt.Errorf("decode lookup request: %w", err)
	}
	if req.RequestID == "" && len(msg.Key) > 0 {
		req.RequestID = string(msg.Key)
	}

	resp, err := t.handler.Handle(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			return domain.LookupResponse{}, err
		}
		t.logger.Warn("lookup failed",
			"request_id", resp.RequestID,
			"facility_type", req.FacilityType,
			"error", err,
		)
	}
	return resp, nil
}
