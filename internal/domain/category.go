package domain

import (
	"fmt"
	"strings"
)

// Category is a kind of healthcare facility. Each category is backed by
// exactly one upstream dataset.
type Category int

const (
	Hospital Category = iota
	NursingHome
	HomeHealthAgency
)

type categoryInfo struct {
	slug  string
	label string
}

// categories is indexed by Category and never mutated.
var categories = [...]categoryInfo{
	Hospital:         {slug: "hospital", label: "hospital"},
	NursingHome:      {slug: "nursing_home", label: "nursing home"},
	HomeHealthAgency: {slug: "home_health", label: "home health agency"},
}

// Categories returns every category in presentation order.
func Categories() []Category {
	return []Category{Hospital, NursingHome, HomeHealthAgency}
}

func (c Category) valid() bool {
	return c >= 0 && int(c) < len(categories)
}

// Slug returns the short machine name, e.g. "nursing_home".
func (c Category) Slug() string {
	if !c.valid() {
		return ""
	}
	return categories[c].slug
}

// Label returns the human-readable name used in messages, e.g. "nursing home".
func (c Category) Label() string {
	if !c.valid() {
		return ""
	}
	return categories[c].label
}

// DataSourceKey returns the upstream resource key for the category.
func (c Category) DataSourceKey() string {
	if !c.valid() {
		return ""
	}
	return dataSources[c].Key
}

func (c Category) String() string {
	if !c.valid() {
		return fmt.Sprintf("Category(%d)", int(c))
	}
	return categories[c].slug
}

// ParseCategory accepts either a data-source key ("xubh-q36u") or a slug
// ("hospital") and returns the matching category.
func ParseCategory(token string) (Category, error) {
	token = strings.TrimSpace(token)
	for _, c := range Categories() {
		if token == c.DataSourceKey() || token == c.Slug() {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDataSource, token)
}

// ResolveLabel returns the label of the category backed by the given
// data-source key, or "" when no category uses it.
func ResolveLabel(dataSourceKey string) string {
	for _, c := range Categories() {
		if c.DataSourceKey() == dataSourceKey {
			return c.Label()
		}
	}
	return ""
}

// Pluralize returns the plural of a category label. "home health agency" is
// the only irregular label.
func Pluralize(label string) string {
	if label == categories[HomeHealthAgency].label {
		return "home health agencies"
	}
	return label + "s"
}
