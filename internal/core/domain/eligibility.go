package domain

import (
	"errors"
	"time"
)

var ErrNegativeThreshold = errors.New("suitability thresholds must not be negative")

// SuitabilityRule holds the thresholds a buyer must meet for a token.
// One rule set per token; assignment replaces it wholesale.
type SuitabilityRule struct {
	Token              Address   `json:"token"`
	MinimumAge         int       `json:"minimum_age"`
	MinimumNetWorth    int64     `json:"minimum_net_worth"`
	MinimumSalary      int64     `json:"minimum_salary"`
	AccreditedRequired bool      `json:"accredited_required"`
	AMLRequired        bool      `json:"aml_required"`
	CFTRequired        bool      `json:"cft_required"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Validate rejects negative thresholds.
func (r *SuitabilityRule) Validate() error {
	if r.MinimumAge < 0 || r.MinimumNetWorth < 0 || r.MinimumSalary < 0 {
		return ErrNegativeThreshold
	}
	return nil
}

// CountryBan is a per-token jurisdiction toggle. Lifting a ban keeps the
// record with Banned=false.
type CountryBan struct {
	Token     Address   `json:"token"`
	Country   Tag       `json:"country"`
	Banned    bool      `json:"banned"`
	UpdatedAt time.Time `json:"updated_at"`
}
