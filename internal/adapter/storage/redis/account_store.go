package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pst-registry/internal/core/domain"
	"pst-registry/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const maxRegisterAttempts = 3

// accountRecord is the stored form; domain.Account hides the hash from JSON.
type accountRecord struct {
	EIN            uint64    `json:"ein"`
	PassphraseHash string    `json:"passphrase_hash"`
	CreatedAt      time.Time `json:"created_at"`
}

// AccountStore implements ports.AccountRepository in Redis.
// EINs are allocated from an INCR sequence.
type AccountStore struct {
	client *goredis.Client
	prefix string
	seqKey string
}

// NewAccountStore creates a new Redis-backed identity directory store.
func NewAccountStore(client *goredis.Client) *AccountStore {
	return &AccountStore{
		client: client,
		prefix: "identity:account:",
		seqKey: "identity:seq",
	}
}

func (s *AccountStore) key(address domain.Address) string {
	return s.prefix + strings.ToLower(address.Hex())
}

// Register binds address to the next EIN. The account key is WATCHed so two
// concurrent registrations of the same address cannot both succeed.
func (s *AccountStore) Register(ctx context.Context, address domain.Address, passphraseHash string, at time.Time) (*domain.Account, error) {
	key := s.key(address)
	var acct *domain.Account

	register := func(tx *goredis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return fmt.Errorf("redis account exists: %w", err)
		}
		if n > 0 {
			return ports.ErrDuplicateKey
		}

		ein, err := tx.Incr(ctx, s.seqKey).Result()
		if err != nil {
			return fmt.Errorf("redis allocate ein: %w", err)
		}
		payload, err := json.Marshal(accountRecord{
			EIN:            uint64(ein),
			PassphraseHash: passphraseHash,
			CreatedAt:      at.UTC(),
		})
		if err != nil {
			return fmt.Errorf("marshal account: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}
		acct = &domain.Account{
			Address:        address,
			EIN:            domain.EIN(ein),
			PassphraseHash: passphraseHash,
			CreatedAt:      at.UTC(),
		}
		return nil
	}

	for i := 0; i < maxRegisterAttempts; i++ {
		err := s.client.Watch(ctx, register, key)
		if err == nil {
			return acct, nil
		}
		if errors.Is(err, goredis.TxFailedErr) {
			continue
		}
		return nil, err
	}
	return nil, fmt.Errorf("redis register account: too much contention on %s", key)
}

func (s *AccountStore) GetByAddress(ctx context.Context, address domain.Address) (*domain.Account, error) {
	raw, err := s.client.Get(ctx, s.key(address)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get account: %w", err)
	}

	var rec accountRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal account: %w", err)
	}
	return &domain.Account{
		Address:        address,
		EIN:            domain.EIN(rec.EIN),
		PassphraseHash: rec.PassphraseHash,
		CreatedAt:      rec.CreatedAt,
	}, nil
}
