package domain

import (
	"net/url"
	"strings"
)

const slot = "{}"

// TermKind distinguishes the two ways a location can be searched.
type TermKind int

const (
	CityName TermKind = iota
	PostalCode
)

func (k TermKind) String() string {
	if k == PostalCode {
		return "postal_code"
	}
	return "city"
}

// SearchTerm is a classified location ready to be substituted into a query.
type SearchTerm struct {
	Kind  TermKind
	Value string
}

// ClassifyTerm decides whether a location is a postal code or a city name.
// Postal codes keep their value; city names are upper-cased.
func ClassifyTerm(location string) SearchTerm {
	location = strings.TrimSpace(location)
	if isDigits(location) {
		return SearchTerm{Kind: PostalCode, Value: location}
	}
	return SearchTerm{Kind: CityName, Value: strings.ToUpper(location)}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// QueryValue is a filter value: either a single string or an ordered list.
type QueryValue struct {
	values []string
	list   bool
}

// Single wraps one filter value.
func Single(v string) QueryValue {
	return QueryValue{values: []string{v}}
}

// List wraps several filter values; each is double-quoted when rendered.
func List(vs ...string) QueryValue {
	return QueryValue{values: vs, list: true}
}

// String renders the value as it appears in the query, before escaping.
func (v QueryValue) String() string {
	if !v.list {
		if len(v.values) == 0 {
			return ""
		}
		return v.values[0]
	}
	quoted := make([]string, len(v.values))
	for i, s := range v.values {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, ", ")
}

// BuildPath composes the request URL for a dataset, template and value.
// The value is query-escaped so city names with spaces stay a valid URL.
func BuildPath(base, dataSourceKey string, tmpl QueryTemplate, v QueryValue) string {
	path := strings.Replace(base, slot, dataSourceKey, 1)
	query := strings.Replace(string(tmpl), slot, url.QueryEscape(v.String()), 1)
	return path + query
}

// SearchPath builds the location-search URL for a category.
func SearchPath(base string, c Category, term SearchTerm) string {
	ds := c.DataSource()
	return BuildPath(base, ds.Key, ds.Template(term.Kind), Single(term.Value))
}

// IdentifierPath builds the identifier-lookup URL for a category.
func IdentifierPath(base string, c Category, id string) string {
	ds := c.DataSource()
	return BuildPath(base, ds.Key, ds.ByIdentifier, Single(id))
}
