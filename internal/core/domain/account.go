package domain

import "time"

// Account maps an external account address to its identity.
type Account struct {
	Address        Address   `json:"address"`
	EIN            EIN       `json:"ein"`
	PassphraseHash string    `json:"-"` // argon2id, never exposed
	CreatedAt      time.Time `json:"created_at"`
}
