package eligibility

import (
	"strings"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

type predicate func(p domain.UserProfile) bool

type schemeKey struct {
	country domain.Country
	id      string
}

// specific holds the per-scheme predicates layered on top of the catalog age window
var specific = map[schemeKey]predicate{
	{domain.CountryIndia, "CEN_NPS_T1"}: ageBetween(18, 70),
	{domain.CountryIndia, "CEN_APY"}: all(ageBetween(18, 40), detailedOnly(func(p domain.UserProfile) bool {
		return p.InSector(domain.SectorUnorganised) || p.EmployedAs(domain.EmploymentSelf) || p.EmployedAs(domain.EmploymentNone)
	})),
	{domain.CountryIndia, "CEN_PM_SYM"}: all(ageBetween(18, 40), detailedOnly(func(p domain.UserProfile) bool {
		return p.InSector(domain.SectorUnorganised) || p.EmployedAs(domain.EmploymentSelf)
	})),
	{domain.CountryIndia, "CEN_PMKMY"}: all(ageBetween(18, 40), detailedOnly(func(p domain.UserProfile) bool {
		return p.InSector(domain.SectorAgriculture) || p.LandHectares.IsPositive()
	})),
	{domain.CountryIndia, "CEN_PM_LVM"}: all(ageBetween(18, 40), detailedOnly(func(p domain.UserProfile) bool {
		return p.InSector(domain.SectorTrade)
	})),
	{domain.CountryIndia, "CEN_NSAP_IGNOAPS"}: ageAtLeast(60),
	{domain.CountryIndia, "CEN_SCSS"}:         ageAtLeast(60),
	{domain.CountryIndia, "CEN_PMVVY"}:        ageAtLeast(60),

	{domain.CountryJapan, "JPN_NAT_NP_BASIC"}: ageBetween(20, 59),
	{domain.CountryJapan, "JPN_IND_IDECO"}:    ageBetween(20, 64),

	{domain.CountryUSA, "USA_FED_SS_RETIRE"}: ageBetween(62, 70),
	{domain.CountryUSA, "USA_EMP_401K"}:      ageBetween(18, 70),

	{domain.CountryUK, "UK_STATE_NEW"}:   ageAtLeast(66),
	{domain.CountryUK, "UK_STATE_BASIC"}: ageAtLeast(65),
}

// SchemeSpecific applies the scheme's own predicate and, in India, the
// special-category overrides. Schemes without a predicate pass.
func SchemeSpecific(scheme domain.SchemeRecord, profile domain.UserProfile) bool {
	ok := true
	if pred, found := specific[schemeKey{scheme.Country, scheme.ID}]; found {
		ok = pred(profile)
	}
	if scheme.Country == domain.CountryIndia && categoryOverride(scheme.ID, profile) {
		ok = true
	}
	return ok
}

// categoryOverride opens schemes reserved for widows, disabled applicants and
// scheduled castes or tribes regardless of the scheme predicate.
func categoryOverride(id string, p domain.UserProfile) bool {
	if id == "CEN_NSAP_IGNOAPS" && p.IsWidow() {
		return true
	}
	if p.HasQualifyingDisability() && (strings.Contains(id, "DISABILITY") || strings.Contains(id, "DISABLED")) {
		return true
	}
	if p.IsSCST() && (strings.Contains(id, "SC") || strings.Contains(id, "ST")) {
		return true
	}
	return false
}

func ageBetween(lo, hi int) predicate {
	return func(p domain.UserProfile) bool { return p.Age >= lo && p.Age <= hi }
}

func ageAtLeast(lo int) predicate {
	return func(p domain.UserProfile) bool { return p.Age >= lo }
}

// detailedOnly skips employment checks for basic lookups, which carry no
// sector or employment data.
func detailedOnly(pred predicate) predicate {
	return func(p domain.UserProfile) bool { return !p.Detailed || pred(p) }
}

func all(preds ...predicate) predicate {
	return func(p domain.UserProfile) bool {
		for _, pred := range preds {
			if !pred(p) {
				return false
			}
		}
		return true
	}
}
