package domain

import "time"

// Reason names one failed suitability condition.
type Reason string

const (
	ReasonUnderage             Reason = "UNDERAGE"
	ReasonInsufficientNetWorth Reason = "INSUFFICIENT_NET_WORTH"
	ReasonInsufficientSalary   Reason = "INSUFFICIENT_SALARY"
	ReasonNotAccredited        Reason = "NOT_ACCREDITED"
	ReasonAMLNotCleared        Reason = "AML_NOT_CLEARED"
	ReasonCFTNotCleared        Reason = "CFT_NOT_CLEARED"
	ReasonCountryBanned        Reason = "COUNTRY_BANNED"
)

// Verdict is the outcome of a suitability evaluation.
type Verdict struct {
	Token       Address   `json:"token"`
	BuyerEIN    EIN       `json:"buyer_ein"`
	Eligible    bool      `json:"eligible"`
	Reasons     []Reason  `json:"reasons"`
	Age         int       `json:"age"`
	EvaluatedAt time.Time `json:"evaluated_at"`
}

// HasReason reports whether r is among the verdict's reasons.
func (v *Verdict) HasReason(r Reason) bool {
	for _, got := range v.Reasons {
		if got == r {
			return true
		}
	}
	return false
}

// Evaluate checks a buyer against a token's rule. Every failing condition
// is collected; evaluation never stops at the first deficiency.
// This is pure domain logic with no I/O.
func Evaluate(rule *SuitabilityRule, buyer *Buyer, countryBanned bool, now time.Time) *Verdict {
	age := buyer.AgeAt(now)
	reasons := make([]Reason, 0, 7)

	if age < rule.MinimumAge {
		reasons = append(reasons, ReasonUnderage)
	}
	if buyer.NetWorth < rule.MinimumNetWorth {
		reasons = append(reasons, ReasonInsufficientNetWorth)
	}
	if buyer.Salary < rule.MinimumSalary {
		reasons = append(reasons, ReasonInsufficientSalary)
	}
	if rule.AccreditedRequired && !buyer.InvestorStatus {
		reasons = append(reasons, ReasonNotAccredited)
	}
	if rule.AMLRequired && !buyer.AMLStatus {
		reasons = append(reasons, ReasonAMLNotCleared)
	}
	if rule.CFTRequired && !buyer.CFTStatus {
		reasons = append(reasons, ReasonCFTNotCleared)
	}
	if countryBanned {
		reasons = append(reasons, ReasonCountryBanned)
	}

	return &Verdict{
		Token:       rule.Token,
		BuyerEIN:    buyer.EIN,
		Eligible:    len(reasons) == 0,
		Reasons:     reasons,
		Age:         age,
		EvaluatedAt: now.UTC(),
	}
}
