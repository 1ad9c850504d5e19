package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/rules"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, 25, c.Len())
	assert.Len(t, c.ByCountry(domain.CountryIndia), 12)
	assert.Len(t, c.ByCountry(domain.CountryJapan), 3)
	assert.Len(t, c.ByCountry(domain.CountryUSA), 5)
	assert.Len(t, c.ByCountry(domain.CountryUK), 5)

	apy, ok := c.Lookup("CEN_APY")
	require.True(t, ok)
	assert.Equal(t, "Atal Pension Yojana", apy.Name)
	assert.Equal(t, domain.Bound(18), apy.EligibilityAgeMin)
	assert.Equal(t, domain.Bound(40), apy.EligibilityAgeMax)

	scss, ok := c.Lookup("CEN_SCSS")
	require.True(t, ok)
	assert.False(t, scss.EligibilityAgeMax.Set, "empty string means no upper bound")

	pmvvy, ok := c.Lookup("CEN_PMVVY")
	require.True(t, ok)
	assert.Equal(t, domain.Bound(60), pmvvy.EligibilityAgeMin, "numeric strings are accepted")

	_, ok = c.Lookup("NOPE")
	assert.False(t, ok)
}

func TestDefault_RulesCompile(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	_, err = rules.NewEngineForCatalog(c.Schemes())
	assert.NoError(t, err)
}

func TestSchemes_ReturnsCopy(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	schemes := c.Schemes()
	schemes[0].Name = "mutated"

	again := c.Schemes()
	assert.NotEqual(t, "mutated", again[0].Name)
}

func TestValidate(t *testing.T) {
	valid := domain.SchemeRecord{ID: "A", Name: "A", Country: domain.CountryUK}

	tests := []struct {
		name    string
		records []domain.SchemeRecord
		wantErr string
	}{
		{name: "empty", records: nil, wantErr: "catalog is empty"},
		{name: "missing id", records: []domain.SchemeRecord{{Name: "x", Country: domain.CountryUK}}, wantErr: "scheme_id is required"},
		{name: "duplicate", records: []domain.SchemeRecord{valid, valid}, wantErr: "duplicate scheme_id"},
		{name: "missing name", records: []domain.SchemeRecord{{ID: "B", Country: domain.CountryUK}}, wantErr: "scheme_name is required"},
		{name: "bad country", records: []domain.SchemeRecord{{ID: "C", Name: "C", Country: "France"}}, wantErr: "unsupported country"},
		{
			name: "inverted bounds",
			records: []domain.SchemeRecord{{
				ID: "D", Name: "D", Country: domain.CountryIndia,
				EligibilityAgeMin: domain.Bound(60), EligibilityAgeMax: domain.Bound(18),
			}},
			wantErr: "exceeds",
		},
		{name: "valid", records: []domain.SchemeRecord{valid}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.records)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "schemes.yaml")
	content := `
- scheme_id: UK_STATE_NEW
  scheme_name: New State Pension
  country: UK
  eligibility_age_min: 66
  eligibility_age_max: NA
  sector: All
  pension_formula: Full rate for 35 qualifying years
- scheme_id: UK_EMP_DC
  scheme_name: Workplace Defined Contribution Pension
  country: UK
  eligibility_age_min: "22"
  eligibility_age_max: 74
  pension_formula: Minimum 8% total pay into the pot
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Len())

	dc, ok := c.Lookup("UK_EMP_DC")
	require.True(t, ok)
	assert.Equal(t, domain.Bound(22), dc.EligibilityAgeMin)

	state, _ := c.Lookup("UK_STATE_NEW")
	assert.False(t, state.EligibilityAgeMax.Set)
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 25, c.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParse_BadJSON(t *testing.T) {
	_, err := Parse([]byte(`[{"scheme_id": 1}]`), ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse JSON")
}
