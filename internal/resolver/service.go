// Package resolver turns lookup requests from a dialogue host into facility
// options and mailing addresses.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/couchcryptid/facility-resolver/internal/domain"
	"github.com/couchcryptid/facility-resolver/internal/observability"
)

// Service resolves searches and identifier lookups through a domain.Finder.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	finder  domain.Finder
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Service.
func New(finder domain.Finder, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		finder:  finder,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness always succeeds; the service has nothing to warm up.
func (s *Service) CheckReadiness(_ context.Context) error {
	return nil
}

// FacilityTypes lists the categories a user can choose from.
func (s *Service) FacilityTypes() []domain.FacilityType {
	return domain.FacilityTypes()
}

// Search finds facilities of the given type near a city name or postal code
// and returns at most domain.MaxResults of them.
func (s *Service) Search(ctx context.Context, facilityType, location string) (domain.SearchResult, error) {
	cat, err := domain.ParseCategory(facilityType)
	if err != nil {
		s.metrics.Lookups.WithLabelValues(domain.KindSearch, string(domain.StatusError)).Inc()
		return domain.SearchResult{}, err
	}
	location = strings.TrimSpace(location)

	records, err := s.finder.FindFacilities(ctx, cat, location)
	if err != nil {
		s.metrics.Lookups.WithLabelValues(domain.KindSearch, string(domain.StatusError)).Inc()
		return domain.SearchResult{}, fmt.Errorf("search %s in %q: %w", cat, location, err)
	}

	res := domain.SearchResult{
		Category: cat,
		Location: location,
		Total:    len(records),
	}
	if len(records) == 0 {
		res.Message = domain.NoResultsMessage(cat, location)
		s.metrics.Lookups.WithLabelValues(domain.KindSearch, string(domain.StatusEmpty)).Inc()
		s.logger.Info("no facilities found", "category", cat.String(), "location", location)
		return res, nil
	}

	if len(records) > domain.MaxResults {
		records = records[:domain.MaxResults]
	}
	res.Facilities = make([]domain.Facility, 0, len(records))
	for _, rec := range records {
		f, err := domain.Normalize(cat, rec)
		if err != nil {
			s.metrics.NormalizeErrors.WithLabelValues(cat.String()).Inc()
			s.metrics.Lookups.WithLabelValues(domain.KindSearch, string(domain.StatusError)).Inc()
			return domain.SearchResult{}, fmt.Errorf("search %s in %q: %w", cat, location, err)
		}
		res.Facilities = append(res.Facilities, f)
	}
	res.Message = domain.SearchMessage(cat, len(res.Facilities))

	s.metrics.Lookups.WithLabelValues(domain.KindSearch, string(domain.StatusFound)).Inc()
	s.logger.Info("facilities found",
		"category", cat.String(),
		"location", location,
		"total", res.Total,
		"returned", len(res.Facilities),
	)
	return res, nil
}

// ResolveAddress returns the mailing address of one facility. A missing
// identifier and an identifier unknown upstream both yield
// domain.NotFoundAddress, told apart by the result status.
func (s *Service) ResolveAddress(ctx context.Context, facilityType, facilityID string) (domain.AddressResult, error) {
	cat, err := domain.ParseCategory(facilityType)
	if err != nil {
		s.metrics.Lookups.WithLabelValues(domain.KindAddress, string(domain.StatusError)).Inc()
		return domain.AddressResult{}, err
	}

	res := domain.AddressResult{
		Category:   cat,
		FacilityID: facilityID,
		Address:    domain.NotFoundAddress,
	}

	if strings.TrimSpace(facilityID) == "" {
		res.Status = domain.StatusNotSelected
		s.metrics.Lookups.WithLabelValues(domain.KindAddress, string(res.Status)).Inc()
		s.logger.Warn("address requested before a facility was selected", "category", cat.String())
		return res, nil
	}

	rec, err := s.finder.FindByIdentifier(ctx, cat, facilityID)
	if errors.Is(err, domain.ErrNotFound) {
		res.Status = domain.StatusNotFound
		s.metrics.Lookups.WithLabelValues(domain.KindAddress, string(res.Status)).Inc()
		s.logger.Warn("no facility matches identifier", "category", cat.String(), "facility_id", facilityID)
		return res, nil
	}
	if err != nil {
		s.metrics.Lookups.WithLabelValues(domain.KindAddress, string(domain.StatusError)).Inc()
		return domain.AddressResult{}, fmt.Errorf("resolve %s %q: %w", cat, facilityID, err)
	}

	f, err := domain.Normalize(cat, rec)
	if err != nil {
		s.metrics.NormalizeErrors.WithLabelValues(cat.String()).Inc()
		s.metrics.Lookups.WithLabelValues(domain.KindAddress, string(domain.StatusError)).Inc()
		return domain.AddressResult{}, fmt.Errorf("resolve %s %q: %w", cat, facilityID, err)
	}

	res.Status = domain.StatusFound
	res.Address = f.Address
	res.Facility = &f
	s.metrics.Lookups.WithLabelValues(domain.KindAddress, string(res.Status)).Inc()
	return res, nil
}

// Handle dispatches a lookup request. A facility identifier takes precedence
// over a location. Requests without a request ID are assigned one.
func (s *Service) Handle(ctx context.Context, req domain.LookupRequest) (domain.LookupResponse, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	if req.WantsAddress() {
		res, err := s.ResolveAddress(ctx, req.FacilityType, req.FacilityID)
		if err != nil {
			return domain.ErrorResponse(req, err), err
		}
		return domain.AddressResponse(req, res), nil
	}

	if strings.TrimSpace(req.Location) == "" {
		err := fmt.Errorf("%w: location or facility_id is required", domain.ErrInvalidRequest)
		return domain.ErrorResponse(req, err), err
	}

	res, err := s.Search(ctx, req.FacilityType, req.Location)
	if err != nil {
		return domain.ErrorResponse(req, err), err
	}
	return domain.SearchResponse(req, res), nil
}
