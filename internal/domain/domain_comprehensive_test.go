package domain

import (
	"errors"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestAgeBound_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    AgeBound
		wantErr bool
	}{
		{name: "number", input: `18`, want: Bound(18)},
		{name: "float whole", input: `60.0`, want: Bound(60)},
		{name: "numeric string", input: `"40"`, want: Bound(40)},
		{name: "null", input: `null`, want: AgeBound{}},
		{name: "empty string", input: `""`, want: AgeBound{}},
		{name: "NA", input: `"NA"`, want: AgeBound{}},
		{name: "lowercase na", input: `"na"`, want: AgeBound{}},
		{name: "fractional", input: `18.5`, wantErr: true},
		{name: "negative", input: `-1`, wantErr: true},
		{name: "text", input: `"eighteen"`, wantErr: true},
		{name: "object", input: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b AgeBound
			err := json.Unmarshal([]byte(tt.input), &b)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}

func TestAgeBound_MissingKeyIsUnset(t *testing.T) {
	var rec SchemeRecord
	require.NoError(t, json.Unmarshal([]byte(`{"scheme_id":"X","eligibility_age_min":18}`), &rec))

	minAge, ok := rec.EligibilityAgeMin.Get()
	assert.True(t, ok)
	assert.Equal(t, 18, minAge)

	_, ok = rec.EligibilityAgeMax.Get()
	assert.False(t, ok, "absent key should mean no bound")
}

func TestAgeBound_YAML(t *testing.T) {
	input := `
scheme_id: CEN_APY
eligibility_age_min: 18
eligibility_age_max: "40"
minimum_age: NA
maximum_age: ~
`
	var rec SchemeRecord
	require.NoError(t, yaml.Unmarshal([]byte(input), &rec))

	assert.Equal(t, Bound(18), rec.EligibilityAgeMin)
	assert.Equal(t, Bound(40), rec.EligibilityAgeMax)
	assert.False(t, rec.MinimumAge.Set)
	assert.False(t, rec.MaximumAge.Set)
}

func TestAgeBound_Marshal(t *testing.T) {
	data, err := json.Marshal(struct {
		Min AgeBound `json:"min"`
		Max AgeBound `json:"max"`
	}{Min: Bound(18)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"min":18,"max":null}`, string(data))

	assert.Equal(t, "NA", AgeBound{}.String())
	assert.Equal(t, "65", Bound(65).String())
}

func TestParseCountry(t *testing.T) {
	c, err := ParseCountry(" india ")
	require.NoError(t, err)
	assert.Equal(t, CountryIndia, c)

	c, err = ParseCountry("UK")
	require.NoError(t, err)
	assert.Equal(t, CountryUK, c)

	_, err = ParseCountry("France")
	var uce *UnsupportedCountryError
	require.True(t, errors.As(err, &uce))
	assert.Equal(t, "France", uce.Country)
	assert.Contains(t, err.Error(), "India, Japan, USA, UK")
}

func TestCountry_CurrencySymbol(t *testing.T) {
	assert.Equal(t, "₹", CountryIndia.CurrencySymbol())
	assert.Equal(t, "¥", CountryJapan.CurrencySymbol())
	assert.Equal(t, "$", CountryUSA.CurrencySymbol())
	assert.Equal(t, "£", CountryUK.CurrencySymbol())
	assert.False(t, Country("France").Valid())
	assert.True(t, CountryUSA.Valid())
}

func TestUserProfile_Categories(t *testing.T) {
	p := UserProfile{
		Sector:           "unorganised",
		EmploymentStatus: "Self-Employed",
		Categories: SpecialCategories{
			Disability:        Yes,
			DisabilityPercent: 40,
			Widow:             "yes",
			CasteCategory:     "st",
		},
	}

	assert.True(t, p.HasQualifyingDisability())
	assert.True(t, p.IsWidow())
	assert.True(t, p.IsSCST())
	assert.True(t, p.InSector(SectorUnorganised))
	assert.True(t, p.EmployedAs(EmploymentSelf))

	p.Categories.DisabilityPercent = 39
	assert.False(t, p.HasQualifyingDisability(), "below 40% does not qualify")

	p.Categories.CasteCategory = "OBC"
	assert.False(t, p.IsSCST())
}

func TestValidationError(t *testing.T) {
	var ve ValidationError
	assert.NoError(t, ve.ErrOrNil())

	ve.Add("age", "must be between %d and %d", 0, 120)
	ve.Add("origin", "is required")

	err := ve.ErrOrNil()
	require.Error(t, err)
	assert.Equal(t, "validation failed: age: must be between 0 and 120; origin: is required", err.Error())
}

func TestCalculationError_Unwrap(t *testing.T) {
	cause := errors.New("negative corpus")
	err := error(&CalculationError{SchemeID: "CEN_APY", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "CEN_APY")
}
