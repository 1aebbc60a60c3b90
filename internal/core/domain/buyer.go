package domain

import (
	"errors"
	"fmt"
	"time"
)

var ErrNegativeAmount = errors.New("net worth and salary must not be negative")

// Buyer is a prospective token holder keyed by identity.
type Buyer struct {
	EIN            EIN       `json:"ein"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Country        Tag       `json:"country"`
	BirthDate      time.Time `json:"birth_date"` // UTC midnight
	NetWorth       int64     `json:"net_worth"`
	Salary         int64     `json:"salary"`
	InvestorStatus bool      `json:"investor_status"` // buyer-declared accreditation
	KYCStatus      bool      `json:"kyc_status"`
	AMLStatus      bool      `json:"aml_status"`
	CFTStatus      bool      `json:"cft_status"`
	RegistrarEIN   EIN       `json:"registrar_ein"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BirthDate builds a UTC midnight date, rejecting dates that do not exist
// on the calendar (e.g. February 30).
func BirthDate(year, month, day int) (time.Time, error) {
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || int(d.Month()) != month || d.Day() != day {
		return time.Time{}, fmt.Errorf("invalid birth date %04d-%02d-%02d", year, month, day)
	}
	return d, nil
}

// BirthTimestamp returns the birth date as unix seconds.
func (b *Buyer) BirthTimestamp() int64 {
	return b.BirthDate.Unix()
}

// AgeAt returns the number of completed years at t.
func (b *Buyer) AgeAt(t time.Time) int {
	t = t.UTC()
	age := t.Year() - b.BirthDate.Year()
	if t.Month() < b.BirthDate.Month() ||
		(t.Month() == b.BirthDate.Month() && t.Day() < b.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// ComplianceStatus reports the flag for the given kind.
func (b *Buyer) ComplianceStatus(kind ComplianceKind) bool {
	switch kind {
	case ComplianceKYC:
		return b.KYCStatus
	case ComplianceAML:
		return b.AMLStatus
	case ComplianceCFT:
		return b.CFTStatus
	}
	return false
}

// MarkCompliant sets the flag for the given kind.
func (b *Buyer) MarkCompliant(kind ComplianceKind, at time.Time) {
	switch kind {
	case ComplianceKYC:
		b.KYCStatus = true
	case ComplianceAML:
		b.AMLStatus = true
	case ComplianceCFT:
		b.CFTStatus = true
	}
	b.UpdatedAt = at
}
