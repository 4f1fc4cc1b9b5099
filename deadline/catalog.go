/*
catalog.go - Filing types, filer statuses, and the deadline rule catalog

PURPOSE:

	Defines the closed enumerations of SEC filing types and filer statuses,
	and the static rule table mapping each filing type to its deadline rule:
	the counting unit (business vs. calendar days) and the allowed day count.
	The two periodic report types (10-K, 10-Q) take their day count from a
	per-filer-status table instead of a fixed number.

THE CATALOG IS DATA, NOT LOGIC:

	Every FilingType has exactly one entry. Exhaustiveness is validated in
	init(): adding a filing type without a rule (or a periodic rule missing
	a filer status) panics at startup rather than falling back at runtime.

DAY COUNTS (Exchange Act rules 13a-1, 13a-11, 13a-13, 16a-3, 13d-1):

	10-K        60/75/90 calendar days by filer status
	10-Q        40/40/45 calendar days by filer status
	8-K         4 business days after the triggering event
	Super 8-K   4 business days after de-SPAC closing
	Form 4      2 business days after the insider transaction
	SC 13D      10 calendar days after crossing the 5% threshold
*/
package deadline

import "fmt"

// =============================================================================
// FILING TYPE - Closed enumeration
// =============================================================================

type FilingType string

const (
	Form10K     FilingType = "10-K"     // Annual report
	Form10Q     FilingType = "10-Q"     // Quarterly report
	Form8K      FilingType = "8-K"      // Current report (material event)
	FormSuper8K FilingType = "super8-K" // De-SPAC closing current report
	FormPRE14A  FilingType = "PRE14A"   // Preliminary proxy statement
	FormDEF14A  FilingType = "DEF14A"   // Definitive proxy statement
	FormDEFM14A FilingType = "DEFM14A"  // Definitive merger proxy statement
	Schedule13D FilingType = "SC13D"    // Beneficial ownership >5%, active
	Schedule13G FilingType = "SC13G"    // Beneficial ownership >5%, passive
	Form3       FilingType = "3"        // Initial insider ownership
	Form4       FilingType = "4"        // Insider transaction
	Form5       FilingType = "5"        // Annual insider summary
	FormNT10K   FilingType = "NT10-K"   // Late notification for 10-K
	FormNT10Q   FilingType = "NT10-Q"   // Late notification for 10-Q
)

// AllFilingTypes is the complete enumeration, used for exhaustiveness
// validation and by callers that iterate the catalog.
var AllFilingTypes = []FilingType{
	Form10K, Form10Q, Form8K, FormSuper8K,
	FormPRE14A, FormDEF14A, FormDEFM14A,
	Schedule13D, Schedule13G,
	Form3, Form4, Form5,
	FormNT10K, FormNT10Q,
}

// =============================================================================
// FILER STATUS - SEC size/maturity classification
// =============================================================================

type FilerStatus string

const (
	FilerNonAccelerated   FilerStatus = "non_accelerated"
	FilerAccelerated      FilerStatus = "accelerated"
	FilerLargeAccelerated FilerStatus = "large_accelerated"
	FilerEmergingGrowth   FilerStatus = "emerging_growth"
)

var AllFilerStatuses = []FilerStatus{
	FilerNonAccelerated, FilerAccelerated, FilerLargeAccelerated, FilerEmergingGrowth,
}

// DefaultFilerStatus is used when the filing type does not depend on filer
// status. Large accelerated carries the shortest windows, so an accidental
// reliance on the default can only ever report a deadline that is too
// early, never too late.
const DefaultFilerStatus = FilerLargeAccelerated

func ValidFilerStatus(s FilerStatus) bool {
	for _, v := range AllFilerStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// =============================================================================
// RULE CATALOG
// =============================================================================

// DeadlineUnit is the counting unit for a deadline rule.
type DeadlineUnit string

const (
	UnitBusinessDays DeadlineUnit = "business_days"
	UnitCalendarDays DeadlineUnit = "calendar_days"
)

// FilingRule is one catalog entry. Days holds the fixed day count;
// ByFilerStatus replaces it for the periodic report types.
type FilingRule struct {
	DisplayName   string
	Unit          DeadlineUnit
	Days          int
	ByFilerStatus map[FilerStatus]int
}

var filingRules = map[FilingType]FilingRule{
	Form10K: {
		DisplayName: "Annual Report (Form 10-K)",
		Unit:        UnitCalendarDays,
		ByFilerStatus: map[FilerStatus]int{
			FilerLargeAccelerated: 60,
			FilerAccelerated:      75,
			FilerNonAccelerated:   90,
			FilerEmergingGrowth:   90,
		},
	},
	Form10Q: {
		DisplayName: "Quarterly Report (Form 10-Q)",
		Unit:        UnitCalendarDays,
		ByFilerStatus: map[FilerStatus]int{
			FilerLargeAccelerated: 40,
			FilerAccelerated:      40,
			FilerNonAccelerated:   45,
			FilerEmergingGrowth:   45,
		},
	},
	Form8K:      {DisplayName: "Current Report (Form 8-K)", Unit: UnitBusinessDays, Days: 4},
	FormSuper8K: {DisplayName: "Super 8-K (De-SPAC Closing)", Unit: UnitBusinessDays, Days: 4},
	FormPRE14A:  {DisplayName: "Preliminary Proxy Statement", Unit: UnitCalendarDays, Days: 10},
	FormDEF14A:  {DisplayName: "Definitive Proxy Statement", Unit: UnitCalendarDays, Days: 10},
	FormDEFM14A: {DisplayName: "Definitive Merger Proxy Statement", Unit: UnitCalendarDays, Days: 10},
	Schedule13D: {DisplayName: "Schedule 13D", Unit: UnitCalendarDays, Days: 10},
	Schedule13G: {DisplayName: "Schedule 13G", Unit: UnitCalendarDays, Days: 45},
	Form3:       {DisplayName: "Initial Ownership Statement (Form 3)", Unit: UnitCalendarDays, Days: 10},
	Form4:       {DisplayName: "Insider Transaction Report (Form 4)", Unit: UnitBusinessDays, Days: 2},
	Form5:       {DisplayName: "Annual Insider Summary (Form 5)", Unit: UnitCalendarDays, Days: 45},
	FormNT10K:   {DisplayName: "Notification of Late 10-K (Form 12b-25)", Unit: UnitCalendarDays, Days: 15},
	FormNT10Q:   {DisplayName: "Notification of Late 10-Q (Form 12b-25)", Unit: UnitCalendarDays, Days: 5},
}

// RuleFor returns the catalog entry for a filing type.
func RuleFor(ft FilingType) (FilingRule, error) {
	rule, ok := filingRules[ft]
	if !ok {
		return FilingRule{}, &CatalogError{FilingType: ft}
	}
	return rule, nil
}

// DayCount resolves the allowed day count, applying the filer-status table
// where the rule carries one.
func (r FilingRule) DayCount(status FilerStatus) (int, error) {
	if r.ByFilerStatus == nil {
		return r.Days, nil
	}
	days, ok := r.ByFilerStatus[status]
	if !ok {
		return 0, &InvalidInputError{Field: "filer status", Value: string(status), Err: ErrUnknownFilerStatus}
	}
	return days, nil
}

// PeriodDependent reports whether the rule varies by filer status.
func (r FilingRule) PeriodDependent() bool { return r.ByFilerStatus != nil }

// The catalog must be exhaustive over FilingType, and every per-status
// table must be exhaustive over FilerStatus. A gap is a programming error
// caught at startup, not a runtime condition.
func init() {
	for _, ft := range AllFilingTypes {
		rule, ok := filingRules[ft]
		if !ok {
			panic(fmt.Sprintf("deadline: filing type %q has no rule catalog entry", ft))
		}
		if rule.ByFilerStatus == nil {
			continue
		}
		for _, status := range AllFilerStatuses {
			if _, ok := rule.ByFilerStatus[status]; !ok {
				panic(fmt.Sprintf("deadline: filing type %q missing day count for filer status %q", ft, status))
			}
		}
	}
}
