package dto

// RegisterAccountRequest is the request body for identity registration.
type RegisterAccountRequest struct {
	Account    string `json:"account" binding:"required,eth_addr"`
	Passphrase string `json:"passphrase" binding:"required,min=8,max=128"`
}

// IdentityResponse maps an account to its EIN.
type IdentityResponse struct {
	Account string `json:"account"`
	EIN     uint64 `json:"ein"`
}

// LoginRequest is the request body for access token issuance.
type LoginRequest struct {
	Account    string `json:"account" binding:"required,eth_addr"`
	Passphrase string `json:"passphrase" binding:"required"`
}

// LoginResponse is the response body for successful login.
type LoginResponse struct {
	Token  string `json:"token"`
	Expiry int64  `json:"expiry"` // Unix timestamp
}

// AppointTokenRequest is the request body for token registration.
type AppointTokenRequest struct {
	Address     string `json:"address" binding:"required,eth_addr"`
	Symbol      string `json:"symbol" binding:"required,max=32"`
	Name        string `json:"name" binding:"required,max=32"`
	Description string `json:"description" binding:"max=1024"`
	Decimals    *int   `json:"decimals" binding:"required,min=0,max=18"`
}

// TokenResponse is a token directory entry.
type TokenResponse struct {
	Address     string `json:"address"`
	Symbol      string `json:"symbol"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Decimals    uint8  `json:"decimals"`
	OwnerEIN    uint64 `json:"owner_ein"`
	CreatedAt   string `json:"created_at"`
}

// CategoryRequest is the request body for adding a category.
type CategoryRequest struct {
	Description string `json:"description" binding:"max=256"`
}

// CategoryResponse describes a category. An unset category has an empty description.
type CategoryResponse struct {
	Tag         string `json:"tag"`
	Description string `json:"description"`
}

// AddServiceRequest is the request body for assigning a service to a category.
type AddServiceRequest struct {
	Category string `json:"category" binding:"required,tag"`
}

// ServiceResponse describes a service assignment.
type ServiceResponse struct {
	ServiceID  uint64  `json:"service_id"`
	Category   string  `json:"category"`
	IsProvider bool    `json:"is_provider"`
	RemovedAt  *string `json:"removed_at,omitempty"`
}

// RuleRequest is the request body for assigning suitability thresholds.
type RuleRequest struct {
	MinimumAge         *int   `json:"minimum_age" binding:"required,min=0,max=150"`
	MinimumNetWorth    *int64 `json:"minimum_net_worth" binding:"required,min=0"`
	MinimumSalary      *int64 `json:"minimum_salary" binding:"required,min=0"`
	AccreditedRequired bool   `json:"accredited_required"`
	AMLRequired        bool   `json:"aml_required"`
	CFTRequired        bool   `json:"cft_required"`
}

// RuleResponse is a token's suitability rule.
type RuleResponse struct {
	Token              string `json:"token"`
	MinimumAge         int    `json:"minimum_age"`
	MinimumNetWorth    int64  `json:"minimum_net_worth"`
	MinimumSalary      int64  `json:"minimum_salary"`
	AccreditedRequired bool   `json:"accredited_required"`
	AMLRequired        bool   `json:"aml_required"`
	CFTRequired        bool   `json:"cft_required"`
}

// CountryBanResponse reports whether a country is banned for a token.
type CountryBanResponse struct {
	Country string `json:"country"`
	Banned  bool   `json:"banned"`
}

// VerdictResponse is the outcome of an eligibility evaluation.
type VerdictResponse struct {
	Token       string   `json:"token"`
	BuyerEIN    uint64   `json:"buyer_ein"`
	Eligible    bool     `json:"eligible"`
	Reasons     []string `json:"reasons"`
	Age         int      `json:"age"`
	EvaluatedAt string   `json:"evaluated_at"`
}

// AddBuyerRequest is the request body for buyer registration.
type AddBuyerRequest struct {
	EIN        uint64 `json:"ein" binding:"required,gt=0,max=9223372036854775807"`
	FirstName  string `json:"first_name" binding:"required,max=64"`
	LastName   string `json:"last_name" binding:"required,max=64"`
	Country    string `json:"country" binding:"required,tag"`
	BirthYear  int    `json:"birth_year" binding:"required,min=1900,max=9999"`
	BirthMonth int    `json:"birth_month" binding:"required,min=1,max=12"`
	BirthDay   int    `json:"birth_day" binding:"required,min=1,max=31"`
	NetWorth   *int64 `json:"net_worth" binding:"required,min=0"`
	Salary     *int64 `json:"salary" binding:"required,min=0"`
}

// BuyerResponse is a buyer ledger entry.
type BuyerResponse struct {
	EIN            uint64 `json:"ein"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Country        string `json:"country"`
	BirthTimestamp int64  `json:"birth_timestamp"`
	NetWorth       int64  `json:"net_worth"`
	Salary         int64  `json:"salary"`
	InvestorStatus bool   `json:"investor_status"`
	KYCStatus      bool   `json:"kyc_status"`
	AMLStatus      bool   `json:"aml_status"`
	CFTStatus      bool   `json:"cft_status"`
	RegistrarEIN   uint64 `json:"registrar_ein"`
}

// InvestorStatusRequest is the request body for setting accreditation.
type InvestorStatusRequest struct {
	Status *bool `json:"status" binding:"required"`
}

// AttachComplianceRequest names the provider that cleared a buyer.
type AttachComplianceRequest struct {
	Token     string  `json:"token" binding:"required,eth_addr"`
	ServiceID *uint64 `json:"service_id" binding:"required,max=9223372036854775807"`
}
