package domain

import (
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RawRecord is one decoded element of an upstream JSON array.
type RawRecord map[string]any

// Facility is the category-independent view of a record.
type Facility struct {
	Name    string `json:"name"`
	ID      string `json:"facility_id"`
	Address string `json:"address"`
}

// recordFields names the columns a category's dataset uses.
type recordFields struct {
	name, id                      string
	street, city, state, postcode string
}

var fieldTables = [...]recordFields{
	Hospital: {
		name: "hospital_name", id: "provider_id",
		street: "address", city: "city", state: "state", postcode: "zip_code",
	},
	NursingHome: {
		name: "provider_name", id: "federal_provider_number",
		street: "provider_address", city: "provider_city", state: "provider_state", postcode: "provider_zip_code",
	},
	HomeHealthAgency: {
		name: "provider_name", id: "provider_number",
		street: "address", city: "city", state: "state", postcode: "zip",
	},
}

// Normalize extracts name, identifier and address from a record of the
// given category. A record from another category's dataset fails with a
// *MissingFieldError.
func Normalize(c Category, rec RawRecord) (Facility, error) {
	if !c.valid() {
		return Facility{}, fmt.Errorf("normalize: %w: %s", ErrUnknownDataSource, c)
	}
	f := fieldTables[c]

	var name, id, street, city, state, postcode string
	for _, col := range []struct {
		dst  *string
		name string
	}{
		{&name, f.name},
		{&id, f.id},
		{&street, f.street},
		{&city, f.city},
		{&state, f.state},
		{&postcode, f.postcode},
	} {
		v, err := stringField(rec, c, col.name)
		if err != nil {
			return Facility{}, err
		}
		*col.dst = v
	}

	return Facility{
		Name:    Title(name),
		ID:      id,
		Address: FormatAddress(street, city, state, postcode),
	}, nil
}

// FormatAddress renders "<Street>, <City>, <ST> <postcode>".
func FormatAddress(street, city, state, postcode string) string {
	return fmt.Sprintf("%s, %s, %s %s", Title(street), Title(city), strings.ToUpper(state), Title(postcode))
}

// Title converts upstream upper-case text to title case.
func Title(s string) string {
	// cases.Caser holds state and must not be shared across goroutines.
	return cases.Title(language.AmericanEnglish).String(s)
}

func stringField(rec RawRecord, c Category, name string) (string, error) {
	v, ok := rec[name]
	if !ok || v == nil {
		return "", &MissingFieldError{Category: c, Field: name}
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case json.Number:
		return t.String(), nil
	default:
		return fmt.Sprint(t), nil
	}
}
