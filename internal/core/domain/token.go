package domain

import "time"

const (
	MaxDecimals  = 18
	MaxSymbolLen = 32
	MaxNameLen   = 32
)

// TokenRecord is the directory entry for a registered security token.
// Records are append-only: never updated or deleted after creation.
type TokenRecord struct {
	Address     Address   `json:"address"`
	Symbol      string    `json:"symbol"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Decimals    uint8     `json:"decimals"`
	OwnerEIN    EIN       `json:"owner_ein"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsOwnedBy reports whether ein registered the token.
func (t *TokenRecord) IsOwnedBy(ein EIN) bool {
	return t.OwnerEIN == ein
}
