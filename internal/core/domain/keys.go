package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// TagSize is the fixed width of category, country and compliance-kind tags.
const TagSize = 4

var (
	ErrInvalidTag     = errors.New("invalid tag")
	ErrInvalidAddress = errors.New("invalid token address")
)

// EIN is the stable numeric identity assigned by the identity directory.
type EIN uint64

// String renders the EIN in decimal.
func (e EIN) String() string {
	return strconv.FormatUint(uint64(e), 10)
}

// MaxKey bounds EINs and service ids to what a BIGINT column holds.
const MaxKey = math.MaxInt64

// ParseEIN parses a decimal EIN. Zero is reserved and rejected.
func ParseEIN(s string) (EIN, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil || v == 0 {
		return 0, fmt.Errorf("invalid identity %q", s)
	}
	return EIN(v), nil
}

// ServiceID identifies a service assignment within a token.
type ServiceID uint64

// ParseServiceID parses a decimal service id no larger than MaxKey.
func ParseServiceID(s string) (ServiceID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil {
		return 0, fmt.Errorf("invalid service id %q", s)
	}
	return ServiceID(v), nil
}

// Address identifies a security token instance.
type Address = common.Address

// ParseAddress parses a 0x-prefixed hex token address.
func ParseAddress(s string) (Address, error) {
	if !common.IsHexAddress(s) {
		return Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// Tag is a fixed-width, zero-padded ASCII key.
type Tag [TagSize]byte

// Well-known compliance categories. They carry no implicit registration.
var (
	TagMLA = MustTag("MLA")
	TagKYC = MustTag("KYC")
	TagAML = MustTag("AML")
	TagCFT = MustTag("CFT")
)

// ParseTag encodes 1 to TagSize printable ASCII characters as a Tag.
func ParseTag(s string) (Tag, error) {
	var t Tag
	if len(s) == 0 || len(s) > TagSize {
		return t, fmt.Errorf("%w: %q must be 1-%d characters", ErrInvalidTag, s, TagSize)
	}
	for i := 0; i < len(s); i++ {
		if s[i] <= ' ' || s[i] > '~' {
			return t, fmt.Errorf("%w: %q contains non-printable characters", ErrInvalidTag, s)
		}
		t[i] = s[i]
	}
	return t, nil
}

// MustTag is ParseTag for constants.
func MustTag(s string) Tag {
	t, err := ParseTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String returns the ASCII form without padding. The zero tag renders as "".
func (t Tag) String() string {
	n := 0
	for n < TagSize && t[n] != 0 {
		n++
	}
	return string(t[:n])
}

// IsZero reports whether the tag is unset.
func (t Tag) IsZero() bool {
	return t == Tag{}
}

// MarshalText renders the tag as its ASCII form.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText accepts the ASCII form. An empty string yields the zero tag.
func (t *Tag) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*t = Tag{}
		return nil
	}
	parsed, err := ParseTag(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
