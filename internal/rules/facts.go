package rules

import (
	"github.com/google/cel-go/cel"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

// Facts is the activation a rule is evaluated against
type Facts map[string]any

func factDeclarations() []cel.EnvOption {
	return []cel.EnvOption{
		cel.Variable("age", cel.IntType),
		cel.Variable("country", cel.StringType),
		cel.Variable("state", cel.StringType),
		cel.Variable("sector", cel.StringType),
		cel.Variable("employment_status", cel.StringType),
		cel.Variable("annual_salary", cel.DoubleType),
		cel.Variable("monthly_income", cel.DoubleType),
		cel.Variable("land_hectares", cel.DoubleType),
		cel.Variable("disability", cel.BoolType),
		cel.Variable("disability_percent", cel.IntType),
		cel.Variable("widow", cel.BoolType),
		cel.Variable("destitute", cel.BoolType),
		cel.Variable("bpl", cel.BoolType),
		cel.Variable("tax_payer", cel.BoolType),
		cel.Variable("caste_category", cel.StringType),
		cel.Variable("detailed", cel.BoolType),
	}
}

// FactsFor flattens a profile into rule facts
func FactsFor(p domain.UserProfile) Facts {
	return Facts{
		"age":                int64(p.Age),
		"country":            string(p.Country),
		"state":              p.State,
		"sector":             p.Sector,
		"employment_status":  p.EmploymentStatus,
		"annual_salary":      p.AnnualSalary.InexactFloat64(),
		"monthly_income":     p.MonthlySalary.InexactFloat64(),
		"land_hectares":      p.LandHectares.InexactFloat64(),
		"disability":         p.Categories.Disability.IsYes(),
		"disability_percent": int64(p.Categories.DisabilityPercent),
		"widow":              p.IsWidow(),
		"destitute":          p.Categories.Destitute.IsYes(),
		"bpl":                p.BPL.IsYes(),
		"tax_payer":          p.TaxPayer.IsYes(),
		"caste_category":     p.Categories.CasteCategory,
		"detailed":           p.Detailed,
	}
}
