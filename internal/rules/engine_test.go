package rules

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

func TestEngine_CompileRule(t *testing.T) {
	en, err := NewEngine()
	require.NoError(t, err)

	tests := []struct {
		name    string
		expr    string
		wantErr string
	}{
		{name: "bool expression", expr: "age >= 60 && bpl"},
		{name: "list membership", expr: "employment_status in ['Salaried', 'Government Employee']"},
		{name: "unknown variable", expr: "salary > 10.0", wantErr: "compile error"},
		{name: "non bool result", expr: "age + 1", wantErr: "must evaluate to bool"},
		{name: "type mismatch", expr: "annual_salary > 'high'", wantErr: "compile error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := en.CompileRule("X", tt.expr)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestEngine_Allows(t *testing.T) {
	en, err := NewEngineForCatalog([]domain.SchemeRecord{
		{ID: "WIDOW", EligibilityRule: "widow"},
		{ID: "LOW_INCOME", EligibilityRule: "annual_salary <= 12000.0"},
		{ID: "PLAIN"},
	})
	require.NoError(t, err)

	assert.True(t, en.Has("WIDOW"))
	assert.False(t, en.Has("PLAIN"))

	profile := domain.UserProfile{
		Age:          70,
		Country:      domain.CountryUSA,
		AnnualSalary: decimal.NewFromInt(9000),
	}
	facts := FactsFor(profile)

	ok, err := en.Allows("WIDOW", facts)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = en.Allows("LOW_INCOME", facts)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = en.Allows("PLAIN", facts)
	require.NoError(t, err)
	assert.True(t, ok, "schemes without a rule are allowed")

	profile.AnnualSalary = decimal.NewFromInt(20000)
	profile.Categories.Widow = domain.Yes
	facts = FactsFor(profile)

	ok, err = en.Allows("LOW_INCOME", facts)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = en.Allows("WIDOW", facts)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewEngineForCatalog_BadRule(t *testing.T) {
	_, err := NewEngineForCatalog([]domain.SchemeRecord{{ID: "BROKEN", EligibilityRule: "age >"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BROKEN")
}

func TestFactsFor(t *testing.T) {
	facts := FactsFor(domain.UserProfile{
		Age:           45,
		Sector:        domain.SectorAgriculture,
		LandHectares:  decimal.NewFromFloat(1.5),
		MonthlySalary: decimal.NewFromInt(10000),
		AnnualSalary:  decimal.NewFromInt(120000),
		Categories:    domain.SpecialCategories{Disability: domain.Yes, DisabilityPercent: 60},
		Detailed:      true,
	})

	assert.Equal(t, int64(45), facts["age"])
	assert.Equal(t, 1.5, facts["land_hectares"])
	assert.Equal(t, 120000.0, facts["annual_salary"])
	assert.Equal(t, true, facts["disability"])
	assert.Equal(t, int64(60), facts["disability_percent"])
	assert.Equal(t, true, facts["detailed"])
	assert.Equal(t, false, facts["widow"])
}
