package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

func TestSearchMessage(t *testing.T) {
	assert.Equal(t, "Here is a hospital near you:", SearchMessage(Hospital, 1))
	assert.Equal(t, "Here are 3 hospitals near you:", SearchMessage(Hospital, 3))
	assert.Equal(t, "Here are 2 nursing homes near you:", SearchMessage(NursingHome, 2))
	assert.Equal(t, "Here are 3 home health agencies near you:", SearchMessage(HomeHealthAgency, 3))
	assert.Equal(t, "Here is a home health agency near you:", SearchMessage(HomeHealthAgency, 1))
}

func TestNoResultsMessage(t *testing.T) {
	assert.Equal(t, "Sorry, we could not find a nursing home in New York.", NoResultsMessage(NursingHome, "new york"))
}

func TestFacilityTypes(t *testing.T) {
	assert.Equal(t, []FacilityType{
		{Title: "Hospital", FacilityType: "xubh-q36u"},
		{Title: "Nursing Home", FacilityType: "b27b-2uc7"},
		{Title: "Home Health Agency", FacilityType: "9wzi-peqs"},
	}, FacilityTypes())
}

func TestOptions(t *testing.T) {
	got := Options([]Facility{{Name: "A", ID: "1", Address: "x"}, {Name: "B", ID: "2"}})
	assert.Equal(t, []Option{{Title: "A", FacilityID: "1"}, {Title: "B", FacilityID: "2"}}, got)
}

func TestResponses_StampedFromClock(t *testing.T) {
	at := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })

	req := LookupRequest{RequestID: "r-1", FacilityType: "xubh-q36u", Location: "boston"}

	empty := SearchResponse(req, SearchResult{Category: Hospital, Message: "none"})
	assert.Equal(t, StatusEmpty, empty.Status)
	assert.Equal(t, KindSearch, empty.Kind)
	assert.Equal(t, at, empty.ResolvedAt)

	found := SearchResponse(req, SearchResult{Category: Hospital, Facilities: []Facility{{Name: "A", ID: "1"}}})
	assert.Equal(t, StatusFound, found.Status)
	assert.Len(t, found.Options, 1)

	addr := AddressResponse(LookupRequest{RequestID: "r-2", FacilityID: "1"}, AddressResult{
		Category: NursingHome, Status: StatusNotFound, Address: NotFoundAddress,
	})
	assert.Equal(t, KindAddress, addr.Kind)
	assert.Equal(t, "b27b-2uc7", addr.FacilityType)
	assert.Equal(t, "not found", addr.Address)
	assert.Equal(t, at, addr.ResolvedAt)
}

func TestErrorResponse(t *testing.T) {
	resp := ErrorResponse(LookupRequest{RequestID: "r", FacilityType: "bad", FacilityID: "1"}, ErrUnknownDataSource)
	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, KindAddress, resp.Kind)
	assert.Equal(t, "bad", resp.FacilityType)
	assert.Equal(t, ErrUnknownDataSource.Error(), resp.Error)
}
