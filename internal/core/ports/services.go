package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"pst-registry/internal/core/domain"
)

// EncryptionService handles AES-256-GCM encryption/decryption.
type EncryptionService interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
}

// HashService handles passphrase hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// AccessTokenService issues and validates bearer tokens carrying the caller EIN.
type AccessTokenService interface {
	Generate(ein domain.EIN, account domain.Address) (string, time.Time, error)
	Validate(tokenString string) (*AccessClaims, error)
}

// AccessClaims holds the parsed JWT claims.
type AccessClaims struct {
	EIN     domain.EIN
	Account domain.Address
}

// AuditService records audited actions.
type AuditService interface {
	Log(ctx context.Context, entry *domain.AuditLog)
}

// EvaluationRecorder receives eligibility outcomes (metrics sink).
type EvaluationRecorder interface {
	RecordEvaluation(verdict *domain.Verdict)
	ObserveEvaluateLatency(d time.Duration)
}

// --- Service Ports (Business Logic) ---

// TokenDirectory holds token metadata and ownership.
type TokenDirectory interface {
	AppointToken(ctx context.Context, req AppointTokenRequest) (*domain.TokenRecord, error)
	GetToken(ctx context.Context, addr domain.Address) (*domain.TokenRecord, error)
	GetOwnerIdentity(ctx context.Context, addr domain.Address) (domain.EIN, error)
	GetSymbol(ctx context.Context, addr domain.Address) (string, error)
	GetName(ctx context.Context, addr domain.Address) (string, error)
	GetDescription(ctx context.Context, addr domain.Address) (string, error)
	GetDecimals(ctx context.Context, addr domain.Address) (uint8, error)
}

// AppointTokenRequest holds validated input for token registration.
type AppointTokenRequest struct {
	Address     domain.Address
	Symbol      string
	Name        string
	Description string
	Decimals    int
	CallerEIN   domain.EIN
}

// ServiceCatalog manages per-token categories and service assignments.
type ServiceCatalog interface {
	AddCategory(ctx context.Context, token domain.Address, tag domain.Tag, description string, caller domain.EIN) error
	GetCategory(ctx context.Context, token domain.Address, tag domain.Tag) (string, error)
	ListCategories(ctx context.Context, token domain.Address) ([]domain.Category, error)
	AddService(ctx context.Context, token domain.Address, id domain.ServiceID, category domain.Tag, caller domain.EIN) error
	GetService(ctx context.Context, token domain.Address, id domain.ServiceID) (string, error)
	IsProvider(ctx context.Context, token domain.Address, id domain.ServiceID) (bool, error)
	LookupService(ctx context.Context, token domain.Address, id domain.ServiceID) (*domain.ServiceAssignment, error)
	ListServices(ctx context.Context, token domain.Address) ([]domain.ServiceAssignment, error)
	RemoveService(ctx context.Context, token domain.Address, id domain.ServiceID, caller domain.EIN) error
}

// EligibilityEngine manages suitability rules and country bans.
type EligibilityEngine interface {
	AssignTokenValues(ctx context.Context, rule domain.SuitabilityRule, caller domain.EIN) error
	GetRule(ctx context.Context, token domain.Address) (*domain.SuitabilityRule, error)
	GetTokenMinimumAge(ctx context.Context, token domain.Address) (int, error)
	GetTokenMinimumNetWorth(ctx context.Context, token domain.Address) (int64, error)
	GetTokenMinimumSalary(ctx context.Context, token domain.Address) (int64, error)
	GetTokenInvestorStatusRequired(ctx context.Context, token domain.Address) (bool, error)
	GetTokenAmlRequired(ctx context.Context, token domain.Address) (bool, error)
	GetTokenCftRequired(ctx context.Context, token domain.Address) (bool, error)
	AddCountryBan(ctx context.Context, token domain.Address, country domain.Tag, caller domain.EIN) error
	LiftCountryBan(ctx context.Context, token domain.Address, country domain.Tag, caller domain.EIN) error
	GetCountryBan(ctx context.Context, token domain.Address, country domain.Tag) (bool, error)
}

// BuyerLedger manages buyer attributes and compliance flags.
type BuyerLedger interface {
	AddBuyer(ctx context.Context, in BuyerInput, caller domain.EIN) (*domain.Buyer, error)
	GetBuyer(ctx context.Context, ein domain.EIN) (*domain.Buyer, error)
	GetBuyerFirstName(ctx context.Context, ein domain.EIN) (string, error)
	GetBuyerLastName(ctx context.Context, ein domain.EIN) (string, error)
	GetBuyerIsoCountryCode(ctx context.Context, ein domain.EIN) (string, error)
	GetBuyerBirthTimestamp(ctx context.Context, ein domain.EIN) (int64, error)
	GetBuyerNetWorth(ctx context.Context, ein domain.EIN) (int64, error)
	GetBuyerSalary(ctx context.Context, ein domain.EIN) (int64, error)
	GetBuyerInvestorStatus(ctx context.Context, ein domain.EIN) (bool, error)
	GetBuyerKycStatus(ctx context.Context, ein domain.EIN) (bool, error)
	GetBuyerAmlStatus(ctx context.Context, ein domain.EIN) (bool, error)
	GetBuyerCftStatus(ctx context.Context, ein domain.EIN) (bool, error)
	SetBuyerInvestorStatus(ctx context.Context, ein domain.EIN, status bool, caller domain.EIN) error
	AddKycServiceToBuyer(ctx context.Context, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error
	AddAmlServiceToBuyer(ctx context.Context, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error
	AddCftServiceToBuyer(ctx context.Context, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error
	AttachCompliance(ctx context.Context, kind domain.ComplianceKind, ein domain.EIN, token domain.Address, id domain.ServiceID, caller domain.EIN) error
}

// BuyerInput holds validated input for buyer registration.
type BuyerInput struct {
	EIN        domain.EIN
	FirstName  string
	LastName   string
	Country    domain.Tag
	BirthYear  int
	BirthMonth int
	BirthDay   int
	NetWorth   int64
	Salary     int64
}

// EligibilityEvaluator produces suitability verdicts. It never mutates state.
type EligibilityEvaluator interface {
	Evaluate(ctx context.Context, token domain.Address, buyer domain.EIN) (*domain.Verdict, error)
}

// IdentityDirectory maps external accounts to EINs and issues access tokens.
type IdentityDirectory interface {
	RegisterAccount(ctx context.Context, account domain.Address, passphrase string) (domain.EIN, error)
	GetIdentity(ctx context.Context, account domain.Address) (domain.EIN, error)
	Login(ctx context.Context, account domain.Address, passphrase string) (string, time.Time, error) // token, expiry, error
}
