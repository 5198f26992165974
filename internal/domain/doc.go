// Package domain models healthcare facility lookups against the Medicare
// open-data service.
//
// # Data Sources
//
// Facility data comes from the Socrata (SODA) API behind data.medicare.gov.
// Each facility category is published as its own dataset, addressed by an
// opaque four-by-four resource key:
//
//	hospital            xubh-q36u
//	nursing home        b27b-2uc7
//	home health agency  9wzi-peqs
//
// A dataset is queried with a single equality filter appended to the resource
// path, e.g. https://data.medicare.gov/resource/xubh-q36u.json?city=BOSTON.
// The response is a JSON array of flat objects whose keys differ per dataset.
//
// # Search Terms
//
// A location typed by the user is either a postal code or a city name:
//
//	"02108"   all decimal digits  ->  postal-code filter, value unchanged
//	"boston"  anything else       ->  city filter, value upper-cased ("BOSTON")
//
// City values are stored upper-case upstream, so the filter only matches after
// upper-casing.
//
// # Field Layout
//
// There is no shared schema. Hospital rows use address/city/state/zip_code,
// nursing home rows prefix every column with provider_ and use the federal
// provider number as identifier, and home health rows use zip and
// provider_number. The normalizer carries one field table per category.
//
// # Address Rendering
//
// Upstream text is upper-case. Addresses are rendered as
//
//	"<Street>, <City>, <ST> <zip>"  ->  e.g. "1 Main St, Boston, MA 02108"
//
// with street, city and name in title case and the state abbreviation
// upper-cased.
package domain
