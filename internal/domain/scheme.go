package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Country identifies the jurisdiction a scheme belongs to
type Country string

const (
	CountryIndia Country = "India"
	CountryJapan Country = "Japan"
	CountryUSA   Country = "USA"
	CountryUK    Country = "UK"
)

// SupportedCountries lists the countries the catalog and the estimator cover, in display order
var SupportedCountries = []Country{CountryIndia, CountryJapan, CountryUSA, CountryUK}

// ParseCountry resolves user input to a supported country (case-insensitive)
func ParseCountry(s string) (Country, error) {
	trimmed := strings.TrimSpace(s)
	for _, c := range SupportedCountries {
		if strings.EqualFold(trimmed, string(c)) {
			return c, nil
		}
	}
	return "", &UnsupportedCountryError{Country: trimmed, Supported: SupportedCountries}
}

// Valid reports whether c is one of the supported countries
func (c Country) Valid() bool {
	for _, s := range SupportedCountries {
		if c == s {
			return true
		}
	}
	return false
}

// CurrencySymbol returns the symbol used in calculation traces and warnings
func (c Country) CurrencySymbol() string {
	switch c {
	case CountryJapan:
		return "¥"
	case CountryUSA:
		return "$"
	case CountryUK:
		return "£"
	default:
		return "₹"
	}
}

// YesNo is the Yes/No flag used throughout the catalog and the profile form
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// IsYes reports whether the flag is set, ignoring case and surrounding space
func (y YesNo) IsYes() bool {
	return strings.EqualFold(strings.TrimSpace(string(y)), string(Yes))
}

// AgeBound is an optional age limit. The catalog writes a missing limit as
// null, "", "NA" or leaves the key out; numeric strings are accepted.
type AgeBound struct {
	Value int
	Set   bool
}

// Bound returns a set AgeBound for age
func Bound(age int) AgeBound {
	return AgeBound{Value: age, Set: true}
}

// Get returns the limit and whether it applies
func (b AgeBound) Get() (int, bool) {
	return b.Value, b.Set
}

func (b AgeBound) String() string {
	if !b.Set {
		return "NA"
	}
	return strconv.Itoa(b.Value)
}

// UnmarshalJSON accepts numbers, numeric strings and the "no bound" spellings
func (b *AgeBound) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("age bound: %w", err)
	}
	switch v := raw.(type) {
	case nil:
		*b = AgeBound{}
		return nil
	case float64:
		return b.setFloat(v)
	case string:
		return b.setString(v)
	default:
		return fmt.Errorf("age bound: unsupported value %s", string(data))
	}
}

// MarshalJSON writes null for an unset bound
func (b AgeBound) MarshalJSON() ([]byte, error) {
	if !b.Set {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(b.Value)), nil
}

// UnmarshalYAML mirrors UnmarshalJSON for YAML catalogs
func (b *AgeBound) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("age bound: line %d: expected a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*b = AgeBound{}
		return nil
	}
	return b.setString(node.Value)
}

// MarshalYAML writes "NA" for an unset bound
func (b AgeBound) MarshalYAML() (interface{}, error) {
	if !b.Set {
		return "NA", nil
	}
	return b.Value, nil
}

func (b *AgeBound) setString(s string) error {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NA") || s == "null" || s == "~" {
		*b = AgeBound{}
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("age bound: %q is not a number", s)
	}
	return b.setFloat(f)
}

func (b *AgeBound) setFloat(f float64) error {
	if f < 0 || f > 150 || f != math.Trunc(f) {
		return fmt.Errorf("age bound: %v is not a whole age", f)
	}
	*b = Bound(int(f))
	return nil
}

// SchemeRecord is one entry of the scheme catalog
type SchemeRecord struct {
	ID                   string   `json:"scheme_id" yaml:"scheme_id"`
	Name                 string   `json:"scheme_name" yaml:"scheme_name"`
	Country              Country  `json:"country" yaml:"country"`
	Category             string   `json:"category,omitempty" yaml:"category,omitempty"`
	Sector               string   `json:"sector,omitempty" yaml:"sector,omitempty"`
	Agency               string   `json:"agency,omitempty" yaml:"agency,omitempty"`
	EligibilityAgeMin    AgeBound `json:"eligibility_age_min" yaml:"eligibility_age_min"`
	EligibilityAgeMax    AgeBound `json:"eligibility_age_max" yaml:"eligibility_age_max"`
	MinimumAge           AgeBound `json:"minimum_age" yaml:"minimum_age"`
	MaximumAge           AgeBound `json:"maximum_age" yaml:"maximum_age"`
	IncomeCriteria       string   `json:"income_criteria,omitempty" yaml:"income_criteria,omitempty"`
	PayoutType           string   `json:"payout_type,omitempty" yaml:"payout_type,omitempty"`
	GuaranteeType        string   `json:"guarantee_type,omitempty" yaml:"guarantee_type,omitempty"`
	ContributionType     string   `json:"contribution_type,omitempty" yaml:"contribution_type,omitempty"`
	ContributionRequired YesNo    `json:"contribution_required,omitempty" yaml:"contribution_required,omitempty"`
	FamilyPension        YesNo    `json:"family_pension,omitempty" yaml:"family_pension,omitempty"`
	PensionFormula       string   `json:"pension_formula" yaml:"pension_formula"`
	OfficialLink         string   `json:"official_link,omitempty" yaml:"official_link,omitempty"`

	// EligibilityRule is an optional CEL expression over profile facts that
	// must also hold for the scheme to be offered.
	EligibilityRule string `json:"eligibility_rule,omitempty" yaml:"eligibility_rule,omitempty"`
}
