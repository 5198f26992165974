package domain

import (
	"context"
	"time"
)

// Kind of lookup a response answers.
const (
	KindSearch  = "search"
	KindAddress = "address"
)

// Status of a lookup.
type Status string

const (
	StatusFound       Status = "found"
	StatusEmpty       Status = "empty"
	StatusNotFound    Status = "not_found"
	StatusNotSelected Status = "not_selected"
	StatusError       Status = "error"
)

// LookupRequest is what a dialogue host sends: a facility type plus either a
// location to search or a facility identifier to resolve. Kind may be left
// empty, in which case a non-empty FacilityID selects address resolution.
type LookupRequest struct {
	RequestID    string `json:"request_id,omitempty"`
	Kind         string `json:"kind,omitempty"`
	FacilityType string `json:"facility_type"`
	Location     string `json:"location,omitempty"`
	FacilityID   string `json:"facility_id,omitempty"`
}

// WantsAddress reports whether the request resolves an identifier rather
// than searching a location.
func (r LookupRequest) WantsAddress() bool {
	if r.Kind != "" {
		return r.Kind == KindAddress
	}
	return r.FacilityID != ""
}

// SearchResult is the outcome of a location search.
type SearchResult struct {
	Category   Category
	Location   string
	Total      int // upstream matches before truncation
	Facilities []Facility
	Message    string
}

// AddressResult is the outcome of an identifier lookup.
type AddressResult struct {
	Category   Category
	FacilityID string
	Status     Status
	Address    string
	Facility   *Facility
}

// LookupResponse is the serialized answer to a LookupRequest.
type LookupResponse struct {
	RequestID    string    `json:"request_id"`
	Kind         string    `json:"kind"`
	FacilityType string    `json:"facility_type"`
	Status       Status    `json:"status"`
	Message      string    `json:"message,omitempty"`
	Options      []Option  `json:"options,omitempty"`
	Address      string    `json:"address,omitempty"`
	Error        string    `json:"error,omitempty"`
	ResolvedAt   time.Time `json:"resolved_at"`
}

// SearchResponse builds the response for a completed search.
func SearchResponse(req LookupRequest, res SearchResult) LookupResponse {
	status := StatusFound
	if len(res.Facilities) == 0 {
		status = StatusEmpty
	}
	return LookupResponse{
		RequestID:    req.RequestID,
		Kind:         KindSearch,
		FacilityType: res.Category.DataSourceKey(),
		Status:       status,
		Message:      res.Message,
		Options:      Options(res.Facilities),
		ResolvedAt:   Now(),
	}
}

// AddressResponse builds the response for a completed identifier lookup.
func AddressResponse(req LookupRequest, res AddressResult) LookupResponse {
	return LookupResponse{
		RequestID:    req.RequestID,
		Kind:         KindAddress,
		FacilityType: res.Category.DataSourceKey(),
		Status:       res.Status,
		Address:      res.Address,
		ResolvedAt:   Now(),
	}
}

// ErrorResponse reports a lookup that could not be completed.
func ErrorResponse(req LookupRequest, err error) LookupResponse {
	kind := KindSearch
	if req.WantsAddress() {
		kind = KindAddress
	}
	return LookupResponse{
		RequestID:    req.RequestID,
		Kind:         kind,
		FacilityType: req.FacilityType,
		Status:       StatusError,
		Error:        err.Error(),
		ResolvedAt:   Now(),
	}
}

// LookupMessage is an unprocessed lookup request read from the message bus.
type LookupMessage struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}
