package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const testBase = "https://data.medicare.gov/resource/{}.json"

func TestClassifyTerm(t *testing.T) {
	tests := []struct {
		in   string
		want SearchTerm
	}{
		{"12345", SearchTerm{Kind: PostalCode, Value: "12345"}},
		{"02108", SearchTerm{Kind: PostalCode, Value: "02108"}},
		{" 02108 ", SearchTerm{Kind: PostalCode, Value: "02108"}},
		{"boston", SearchTerm{Kind: CityName, Value: "BOSTON"}},
		{"New York", SearchTerm{Kind: CityName, Value: "NEW YORK"}},
		{"02108-1234", SearchTerm{Kind: CityName, Value: "02108-1234"}},
		{"", SearchTerm{Kind: CityName, Value: ""}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTerm(tt.in), tt.in)
	}
}

func TestSearchPath_SelectsTemplateByTermKind(t *testing.T) {
	tests := []struct {
		category Category
		zip      string
		city     string
	}{
		{Hospital, "https://data.medicare.gov/resource/xubh-q36u.json?zip_code=12345", "https://data.medicare.gov/resource/xubh-q36u.json?city=BOSTON"},
		{NursingHome, "https://data.medicare.gov/resource/b27b-2uc7.json?provider_zip_code=12345", "https://data.medicare.gov/resource/b27b-2uc7.json?provider_city=BOSTON"},
		{HomeHealthAgency, "https://data.medicare.gov/resource/9wzi-peqs.json?zip=12345", "https://data.medicare.gov/resource/9wzi-peqs.json?city=BOSTON"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.zip, SearchPath(testBase, tt.category, ClassifyTerm("12345")))
		assert.Equal(t, tt.city, SearchPath(testBase, tt.category, ClassifyTerm("boston")))
	}
}

func TestIdentifierPath(t *testing.T) {
	assert.Equal(t, "https://data.medicare.gov/resource/xubh-q36u.json?provider_id=220071",
		IdentifierPath(testBase, Hospital, "220071"))
	assert.Equal(t, "https://data.medicare.gov/resource/b27b-2uc7.json?federal_provider_number=225001",
		IdentifierPath(testBase, NursingHome, "225001"))
	assert.Equal(t, "https://data.medicare.gov/resource/9wzi-peqs.json?provider_number=227001",
		IdentifierPath(testBase, HomeHealthAgency, "227001"))
}

func TestBuildPath_List(t *testing.T) {
	got := BuildPath(testBase, "xubh-q36u", "?city={}", List("BOSTON", "SALEM"))
	assert.Equal(t, `https://data.medicare.gov/resource/xubh-q36u.json?city=%22BOSTON%22%2C+%22SALEM%22`, got)
	assert.Equal(t, `"BOSTON", "SALEM"`, List("BOSTON", "SALEM").String())
}

func TestBuildPath_EscapesSpaces(t *testing.T) {
	got := BuildPath(testBase, "xubh-q36u", "?city={}", Single("NEW YORK"))
	assert.Equal(t, "https://data.medicare.gov/resource/xubh-q36u.json?city=NEW+YORK", got)
}

func TestQueryValue_SingleIsNotQuoted(t *testing.T) {
	assert.Equal(t, "BOSTON", Single("BOSTON").String())
	assert.Equal(t, `"BOSTON"`, List("BOSTON").String())
	assert.Empty(t, QueryValue{}.String())
}
