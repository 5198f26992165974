package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveLabel_InvertsDataSourceKey(t *testing.T) {
	for _, c := range Categories() {
		assert.Equal(t, c.Label(), ResolveLabel(c.DataSourceKey()), c.String())
	}
}

func TestResolveLabel_UnknownKey(t *testing.T) {
	assert.Empty(t, ResolveLabel("abcd-1234"))
	assert.Empty(t, ResolveLabel(""))
}

func TestCategoryTable(t *testing.T) {
	assert.Equal(t, "xubh-q36u", Hospital.DataSourceKey())
	assert.Equal(t, "b27b-2uc7", NursingHome.DataSourceKey())
	assert.Equal(t, "9wzi-peqs", HomeHealthAgency.DataSourceKey())

	assert.Equal(t, "hospital", Hospital.Label())
	assert.Equal(t, "nursing home", NursingHome.Label())
	assert.Equal(t, "home health agency", HomeHealthAgency.Label())
}

func TestCategory_OutOfRange(t *testing.T) {
	c := Category(7)
	assert.Empty(t, c.Label())
	assert.Empty(t, c.DataSourceKey())
	assert.Equal(t, DataSource{}, c.DataSource())
	assert.Equal(t, "Category(7)", c.String())
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		token string
		want  Category
	}{
		{"xubh-q36u", Hospital},
		{"b27b-2uc7", NursingHome},
		{"9wzi-peqs", HomeHealthAgency},
		{"hospital", Hospital},
		{"nursing_home", NursingHome},
		{" home_health ", HomeHealthAgency},
	}
	for _, tt := range tests {
		got, err := ParseCategory(tt.token)
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestParseCategory_Unknown(t *testing.T) {
	_, err := ParseCategory("pharmacy")
	require.ErrorIs(t, err, ErrUnknownDataSource)
	assert.Contains(t, err.Error(), "pharmacy")
}

func TestPluralize(t *testing.T) {
	assert.Equal(t, "home health agencies", Pluralize("home health agency"))
	assert.Equal(t, "hospitals", Pluralize("hospital"))
	assert.Equal(t, "nursing homes", Pluralize("nursing home"))
}

func TestEveryDataSourceDefinesAllTemplates(t *testing.T) {
	for _, c := range Categories() {
		ds := c.DataSource()
		assert.Equal(t, c.DataSourceKey(), ds.Key)
		for _, tmpl := range []QueryTemplate{ds.ByCity, ds.ByPostalCode, ds.ByIdentifier} {
			assert.Regexp(t, `^\?[a-z_]+=\{\}$`, string(tmpl), c.String())
		}
	}
}
