package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
	"github.com/anushreedahiya/pension-benefit/internal/tui/tuimsg"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testSchemes() []domain.EstimatedScheme {
	scheme := func(id, name string, score int, monthly int64) domain.EstimatedScheme {
		return domain.EstimatedScheme{
			ScoredScheme: domain.ScoredScheme{
				EligibilityResult: domain.EligibilityResult{
					Scheme:       domain.SchemeRecord{ID: id, Name: name, Country: domain.CountryIndia},
					CountryMatch: true, AgeEligible: true, IncomeEligible: true, SectorEligible: false,
				},
				RelevanceScore: score,
				Recommendation: "Good option for retirement planning",
				Advantages:     []string{"Guaranteed pension"},
			},
			Estimate: domain.BenefitEstimate{
				Type:           domain.EstimateFixedMonthly,
				MonthlyPension: decimal.NewFromInt(monthly),
				AnnualPension:  decimal.NewFromInt(monthly * 12),
				Calculation:    "Fixed monthly pension",
			},
		}
	}
	return []domain.EstimatedScheme{
		scheme("CEN_APY", "Atal Pension Yojana", 7, 1675),
		scheme("CEN_PM_SYM", "PM Shram Yogi Maan-dhan", 6, 3000),
		scheme("CEN_PMKMY", "PM Kisan Maan-dhan", 4, 3000),
	}
}

func TestSchemesModel_Navigation(t *testing.T) {
	m := NewSchemesModel()
	m.SetSchemes(testSchemes(), "₹")

	m, _ = m.Update(keyMsg("down"))
	m, _ = m.Update(keyMsg("j"))
	assert.Equal(t, 2, m.Selected())
	m, _ = m.Update(keyMsg("down"))
	assert.Equal(t, 2, m.Selected(), "cursor stops at the last scheme")

	m, _ = m.Update(keyMsg("g"))
	assert.Equal(t, 0, m.Selected())
	m, _ = m.Update(keyMsg("up"))
	assert.Equal(t, 0, m.Selected())
	m, _ = m.Update(keyMsg("G"))
	assert.Equal(t, 2, m.Selected())

	selected, ok := m.SelectedScheme()
	require.True(t, ok)
	assert.Equal(t, "CEN_PMKMY", selected.Scheme.ID)

	_, cmd := m.Update(keyMsg("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, tuimsg.SchemeSelectedMsg{Index: 2}, cmd())
}

func TestSchemesModel_Empty(t *testing.T) {
	m := NewSchemesModel()
	_, cmd := m.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	_, ok := m.SelectedScheme()
	assert.False(t, ok)
	assert.Contains(t, m.View(), "No eligible schemes")
}

func TestSchemesModel_ResetSelection(t *testing.T) {
	m := NewSchemesModel()
	m.SetSchemes(testSchemes(), "₹")
	m, _ = m.Update(keyMsg("G"))
	m.SetSchemes(testSchemes()[:1], "₹")
	assert.Equal(t, 0, m.Selected())
}

func TestSchemesModel_View(t *testing.T) {
	m := NewSchemesModel()
	m.SetSchemes(testSchemes(), "₹")
	m.SetSize(100, 40)
	out := m.View()
	assert.Contains(t, out, "Eligible schemes (3)")
	assert.Contains(t, out, "Atal Pension Yojana")
	assert.Contains(t, out, "₹1,675/month")
	assert.Contains(t, out, "CEN_APY")
}

func TestDetailView(t *testing.T) {
	s := testSchemes()[0]
	corpus := decimal.NewFromInt(334984)
	s.Estimate.Corpus = &corpus
	s.Scheme.OfficialLink = "https://npscra.nsdl.co.in"
	s.Scheme.EligibilityAgeMin = domain.Bound(18)
	s.Scheme.EligibilityAgeMax = domain.Bound(40)

	out := DetailView(s, "₹")
	assert.Contains(t, out, "Atal Pension Yojana")
	assert.Contains(t, out, "₹1,675")
	assert.Contains(t, out, "₹20,100")
	assert.Contains(t, out, "₹334,984")
	assert.Contains(t, out, "✗ Sector")
	assert.Contains(t, out, "✓ Age")
	assert.Contains(t, out, "Ages 18-40")
	assert.Contains(t, out, "+ Guaranteed pension")
	assert.Contains(t, out, "npscra.nsdl.co.in")
}

func TestSummaryView(t *testing.T) {
	assert.Contains(t, SummaryView(nil), "No report loaded")

	ratio := decimal.NewFromFloat(0.0869)
	report := &domain.Report{
		Profile:       domain.ProfileSummary{Country: domain.CountryIndia},
		TotalEligible: 3,
		Insights: domain.InsightsSummary{
			TotalMonthlyPension: decimal.NewFromInt(7675),
			TotalAnnualPension:  decimal.NewFromInt(92100),
			ReplacementRatio:    &ratio,
			Warnings:            []string{"Your pension replacement ratio is low. Consider additional savings."},
			Tips:                []string{"Start early! Consider NPS for long-term wealth creation"},
		},
		TopRecommendations: []domain.TopRecommendation{
			{Rank: 1, Scheme: "Atal Pension Yojana", MonthlyPension: decimal.NewFromInt(1675)},
		},
		Comparison: &domain.Comparison{
			CurrentScheme:             "Atal Pension Yojana",
			CurrentMonthlyPension:     decimal.NewFromInt(1000),
			RecommendedMonthlyPension: decimal.NewFromInt(1675),
			Difference:                decimal.NewFromInt(675),
			PercentageImprovement:     decimal.NewFromFloat(67.5),
			IsBetter:                  true,
			Recommendation:            "Consider switching to this scheme for better benefits",
		},
	}

	out := SummaryView(report)
	assert.Contains(t, out, "₹7,675")
	assert.Contains(t, out, "8.7%")
	assert.Contains(t, out, "3 eligible schemes")
	assert.Contains(t, out, "! Your pension replacement ratio is low")
	assert.Contains(t, out, "* Start early!")
	assert.Contains(t, out, "1. Atal Pension Yojana")
	assert.Contains(t, out, "▲ ₹675 (67.50%)")
	assert.Contains(t, out, "Consider switching")
}

func TestScenarioModel_Defaults(t *testing.T) {
	m := NewScenarioModel(30, domain.CountryIndia)
	in := m.Inputs()
	assert.Equal(t, 60, in.RetirementAge)
	assert.True(t, in.MonthlyContribution.Equal(decimal.NewFromInt(10000)))

	p, err := m.Projection()
	require.NoError(t, err)
	assert.Equal(t, 30, p.YearsToRetirement)
	assert.InDelta(t, 22604879, p.FutureValue.InexactFloat64(), 1)
	assert.Contains(t, m.View(), "Future value")
}

func TestScenarioModel_Adjust(t *testing.T) {
	m := NewScenarioModel(30, domain.CountryIndia)

	m, cmd := m.Update(keyMsg("right"))
	require.NotNil(t, cmd)
	changed := cmd().(tuimsg.ScenarioChangedMsg)
	assert.Equal(t, 61, changed.Inputs.RetirementAge)

	m, cmd = m.Update(keyMsg("down"))
	assert.Nil(t, cmd)
	m, _ = m.Update(keyMsg("left"))
	assert.True(t, m.Inputs().MonthlyContribution.Equal(decimal.NewFromInt(9500)))

	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("up"))
	m, _ = m.Update(keyMsg("left"))
	assert.Equal(t, 60, m.Inputs().RetirementAge)

	p, err := m.Projection()
	require.NoError(t, err)
	assert.True(t, p.TotalContribution.Equal(decimal.NewFromInt(9500*12*30)))
}

func TestScenarioModel_OtherCurrencyAndOlderProfile(t *testing.T) {
	m := NewScenarioModel(64, domain.CountryUK)
	in := m.Inputs()
	assert.Equal(t, 65, in.RetirementAge)
	assert.True(t, in.MonthlyContribution.Equal(decimal.NewFromInt(1000)))
	_, err := m.Projection()
	require.NoError(t, err)
	assert.Contains(t, m.View(), "£")
}
