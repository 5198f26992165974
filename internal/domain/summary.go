package domain

import "fmt"

// MaxResults caps how many facilities are offered to the user at once.
const MaxResults = 3

// NotFoundAddress is the address reported when no facility could be resolved.
const NotFoundAddress = "not found"

// Option is a selectable search result.
type Option struct {
	Title      string `json:"title"`
	FacilityID string `json:"facility_id"`
}

// FacilityType is a selectable category.
type FacilityType struct {
	Title        string `json:"title"`
	FacilityType string `json:"facility_type"`
}

// FacilityTypes lists every category with its title-cased label and
// data-source key.
func FacilityTypes() []FacilityType {
	out := make([]FacilityType, 0, len(categories))
	for _, c := range Categories() {
		out = append(out, FacilityType{Title: Title(c.Label()), FacilityType: c.DataSourceKey()})
	}
	return out
}

// Options turns normalized facilities into selectable options.
func Options(facilities []Facility) []Option {
	out := make([]Option, len(facilities))
	for i, f := range facilities {
		out[i] = Option{Title: f.Name, FacilityID: f.ID}
	}
	return out
}

// SearchMessage is the prose that introduces n results.
func SearchMessage(c Category, n int) string {
	label := c.Label()
	if n == 1 {
		return fmt.Sprintf("Here is a %s near you:", label)
	}
	return fmt.Sprintf("Here are %d %s near you:", n, Pluralize(label))
}

// NoResultsMessage apologizes for an empty search.
func NoResultsMessage(c Category, location string) string {
	return fmt.Sprintf("Sorry, we could not find a %s in %s.", c.Label(), Title(location))
}
