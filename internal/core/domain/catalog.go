package domain

import "time"

// Category is a named compliance concern scoped to a token.
type Category struct {
	Token       Address   `json:"token"`
	Tag         Tag       `json:"tag"`
	Description string    `json:"description"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ServiceAssignment binds a numbered service to a category for a token.
// Removal is a soft delete: the record stays, Category is cleared,
// Active flips to false and RemovedAt is stamped.
type ServiceAssignment struct {
	Token     Address    `json:"token"`
	ServiceID ServiceID  `json:"service_id"`
	Category  Tag        `json:"category"`
	Active    bool       `json:"active"`
	UpdatedAt time.Time  `json:"updated_at"`
	RemovedAt *time.Time `json:"removed_at,omitempty"`
}

// Remove applies the soft-delete transition.
func (s *ServiceAssignment) Remove(at time.Time) {
	s.Category = Tag{}
	s.Active = false
	s.UpdatedAt = at
	s.RemovedAt = &at
}

// IsRemoved distinguishes an explicitly removed assignment from an active one.
func (s *ServiceAssignment) IsRemoved() bool {
	return s.RemovedAt != nil
}

// ComplianceKind is a compliance check a buyer can complete.
type ComplianceKind string

const (
	ComplianceKYC ComplianceKind = "KYC"
	ComplianceAML ComplianceKind = "AML"
	ComplianceCFT ComplianceKind = "CFT"
)

// ParseComplianceKind accepts kyc, aml or cft in any case.
func ParseComplianceKind(s string) (ComplianceKind, bool) {
	switch ComplianceKind(upperASCII(s)) {
	case ComplianceKYC:
		return ComplianceKYC, true
	case ComplianceAML:
		return ComplianceAML, true
	case ComplianceCFT:
		return ComplianceCFT, true
	}
	return "", false
}

// Category returns the category tag a service must carry to satisfy the kind.
func (k ComplianceKind) Category() Tag {
	switch k {
	case ComplianceKYC:
		return TagKYC
	case ComplianceAML:
		return TagAML
	case ComplianceCFT:
		return TagCFT
	}
	return Tag{}
}

func upperASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}
