package scoring

import (
	"github.com/shopspring/decimal"

	"github.com/anushreedahiya/pension-benefit/internal/domain"
)

const (
	RecommendLongTerm  = "Excellent for long-term retirement planning"
	RecommendMidCareer = "Good for mid-career retirement planning"
	RecommendImmediate = "Suitable for immediate pension benefits"
	RecommendDefault   = "Consider based on your specific needs"
)

// Point values of each weighted match
const (
	ageBandPoints        = 3
	incomeBandPoints     = 2
	unorganisedPoints    = 2
	farmerPoints         = 3
	traderPoints         = 3
	widowPoints          = 2
	disabilityPoints     = 2
	reservedPoints       = 1
	monthlyPayoutPoints  = 1
	govtGuaranteePoints  = 2
	monthlyContribPoints = 1
	familyPensionPoints  = 2
	allSectorPoints      = 1
)

// ageBand matches ages in [lo, hi]; hi < 0 leaves it open-ended
type ageBand struct {
	lo, hi         int
	ids            []string
	recommendation string
	advantages     []string
}

func (b ageBand) contains(age int) bool {
	return age >= b.lo && (b.hi < 0 || age <= b.hi)
}

// ageBands are tried in order and the first band containing the age is the
// only one consulted.
var ageBands = map[domain.Country][]ageBand{
	domain.CountryIndia: {
		{18, 40, []string{"CEN_APY", "CEN_PM_SYM", "CEN_PMKMY", "CEN_PM_LVM", "CEN_NPS_T1"}, RecommendLongTerm,
			[]string{"Long-term growth potential", "Government backing", "Tax benefits"}},
		{41, 59, []string{"CEN_NPS_T1", "CEN_EPF", "CEN_EPS"}, RecommendMidCareer,
			[]string{"Stable returns", "Employer contribution", "Immediate benefits"}},
		{60, -1, []string{"CEN_NSAP_IGNOAPS", "CEN_SCSS", "CEN_PMVVY"}, RecommendImmediate,
			[]string{"Immediate pension", "No contribution required", "Regular income"}},
	},
	domain.CountryJapan: {
		{20, 40, []string{"JPN_NAT_NP_BASIC", "JPN_IND_IDECO"}, RecommendLongTerm, nil},
		{41, 59, []string{"JPN_EMP_EPI", "JPN_IND_IDECO"}, RecommendMidCareer, nil},
		{60, -1, []string{"JPN_NAT_NP_BASIC", "JPN_EMP_EPI"}, RecommendImmediate, nil},
	},
	domain.CountryUSA: {
		{18, 40, []string{"USA_EMP_401K", "USA_EMP_403B"}, RecommendLongTerm, nil},
		{41, 59, []string{"USA_EMP_401K", "USA_EMP_403B", "USA_EMP_PENSION"}, RecommendMidCareer, nil},
		{62, -1, []string{"USA_FED_SS_RETIRE"}, RecommendImmediate, nil},
	},
	domain.CountryUK: {
		{18, 40, []string{"UK_EMP_DC", "UK_EMP_DB"}, RecommendLongTerm, nil},
		{41, 59, []string{"UK_EMP_DC", "UK_EMP_DB"}, RecommendMidCareer, nil},
		{66, -1, []string{"UK_STATE_NEW"}, RecommendImmediate, nil},
	},
}

// incomeBand matches annual salaries up to ceiling; a zero ceiling matches everything
type incomeBand struct {
	ceiling    decimal.Decimal
	ids        []string
	advantages []string
}

var indiaIncomeBands = []incomeBand{
	{decimal.NewFromInt(300000), []string{"CEN_APY", "CEN_PM_SYM", "CEN_PMKMY", "CEN_PM_LVM", "CEN_NSAP_IGNOAPS"},
		[]string{"Low contribution requirement", "Government subsidy"}},
	{decimal.NewFromInt(1000000), []string{"CEN_NPS_T1", "CEN_EPF", "CEN_EPS"},
		[]string{"Higher returns potential", "Flexible contribution"}},
	{decimal.Zero, []string{"CEN_NPS_T1", "CEN_SCSS", "CEN_PMVVY"},
		[]string{"Tax-efficient", "High returns potential"}},
}

func (b incomeBand) contains(salary decimal.Decimal) bool {
	return b.ceiling.IsZero() || salary.LessThanOrEqual(b.ceiling)
}

// sectorBonus rewards schemes built for the applicant's line of work
type sectorBonus struct {
	sector     string
	ids        []string
	points     int
	advantages []string
}

var indiaSectorBonuses = []sectorBonus{
	{domain.SectorUnorganised, []string{"CEN_APY", "CEN_PM_SYM"}, unorganisedPoints,
		[]string{"Specifically designed for unorganized sector"}},
	{domain.SectorAgriculture, []string{"CEN_PMKMY"}, farmerPoints,
		[]string{"Farmer-specific benefits", "Land-based eligibility"}},
	{domain.SectorTrade, []string{"CEN_PM_LVM"}, traderPoints,
		[]string{"Trader-specific benefits", "Business-friendly terms"}},
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
