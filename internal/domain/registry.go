package domain

// DefaultBaseURL is the Medicare SODA endpoint pattern; {} takes the
// data-source key.
const DefaultBaseURL = "https://data.medicare.gov/resource/{}.json"

// QueryTemplate is a query-string fragment with exactly one {} slot for the
// search value, e.g. "?city={}".
type QueryTemplate string

// DataSource describes one upstream dataset and its filter columns.
type DataSource struct {
	Key          string
	ByCity       QueryTemplate
	ByPostalCode QueryTemplate
	ByIdentifier QueryTemplate
}

// Template returns the template that filters on the given term kind.
func (d DataSource) Template(kind TermKind) QueryTemplate {
	if kind == PostalCode {
		return d.ByPostalCode
	}
	return d.ByCity
}

// dataSources is indexed by Category; column names differ per dataset.
var dataSources = [...]DataSource{
	Hospital: {
		Key:          "xubh-q36u",
		ByCity:       "?city={}",
		ByPostalCode: "?zip_code={}",
		ByIdentifier: "?provider_id={}",
	},
	NursingHome: {
		Key:          "b27b-2uc7",
		ByCity:       "?provider_city={}",
		ByPostalCode: "?provider_zip_code={}",
		ByIdentifier: "?federal_provider_number={}",
	},
	HomeHealthAgency: {
		Key:          "9wzi-peqs",
		ByCity:       "?city={}",
		ByPostalCode: "?zip={}",
		ByIdentifier: "?provider_number={}",
	},
}

// DataSource returns the dataset backing the category.
func (c Category) DataSource() DataSource {
	if !c.valid() {
		return DataSource{}
	}
	return dataSources[c]
}
