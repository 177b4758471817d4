package auth

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keycard/config"
)

var recordPattern = regexp.MustCompile(`^[0-9a-f]{16}\.[0-9a-f]{64}$`)

// Low-cost parameters keep the round-trip tests fast.
func newFastHasher() *scryptHasher {
	return NewScryptHasherWithParams(16, 1, 1).(*scryptHasher)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestScryptHasher_Hash(t *testing.T) {
	hasher := newFastHasher()

	record, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.Regexp(t, recordPattern, record)
	assert.NotContains(t, record, "secret123")
	assert.True(t, hasher.Verify("secret123", record))
}

func TestScryptHasher_HashUsesFreshSalt(t *testing.T) {
	hasher := newFastHasher()

	first, err := hasher.Hash("secret123")
	require.NoError(t, err)
	second, err := hasher.Hash("secret123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secret123", first))
	assert.True(t, hasher.Verify("secret123", second))
}

func TestScryptHasher_HashDeterministicSalt(t *testing.T) {
	hasher := newFastHasher()
	hasher.rand = bytes.NewReader([]byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef})

	record, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.Equal(t, "0123456789abcdef.ef0da5e0d0c74e1e7d9c8368bc339e650165d2a9513d7043a3b9fb7b9f4bb4b4", record)
}

func TestScryptHasher_HashRandomFailure(t *testing.T) {
	hasher := newFastHasher()
	hasher.rand = failingReader{}

	record, err := hasher.Hash("secret123")
	assert.Error(t, err)
	assert.Empty(t, record)
}

func TestScryptHasher_HashInvalidParams(t *testing.T) {
	// N must be a power of two.
	hasher := NewScryptHasherWithParams(15, 1, 1)

	_, err := hasher.Hash("secret123")
	assert.Error(t, err)
}

func TestScryptHasher_EmptyPassword(t *testing.T) {
	hasher := newFastHasher()

	record, err := hasher.Hash("")
	require.NoError(t, err)
	assert.Regexp(t, recordPattern, record)
	assert.True(t, hasher.Verify("", record))
	assert.False(t, hasher.Verify(" ", record))
}

func TestScryptHasher_VerifyKnownRecords(t *testing.T) {
	hasher := NewScryptHasherWithParams(DefaultScryptN, DefaultScryptR, DefaultScryptP)

	tests := []struct {
		name     string
		password string
		record   string
	}{
		{
			name:     "regular password",
			password: "secret123",
			record:   "0123456789abcdef.7610d92ee8e41d83d658f92ac5e9b7192ab1a2fa3371d964d870510009d73d8d",
		},
		{
			name:     "empty password",
			password: "",
			record:   "a1b2c3d4e5f60718.30f9a349437ad310b4528462cbb6cb63cc394e08deceb79d2e59fb1038897a1c",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, hasher.Verify(tt.password, tt.record))
			assert.False(t, hasher.Verify(tt.password+"x", tt.record))
		})
	}
}

func TestScryptHasher_VerifyMalformed(t *testing.T) {
	hasher := newFastHasher()
	valid, err := hasher.Hash("secret123")
	require.NoError(t, err)
	salt, hash, _ := strings.Cut(valid, ".")

	tests := []struct {
		name   string
		record string
	}{
		{"empty", ""},
		{"no separator", salt + hash},
		{"separator only", "."},
		{"empty salt", "." + hash},
		{"empty hash", salt + "."},
		{"short salt", salt[:15] + "." + hash},
		{"long salt", salt + "0." + hash},
		{"short hash", salt + "." + hash[:63]},
		{"non-hex salt", "zz" + salt[2:] + "." + hash},
		{"non-hex hash", salt + "." + "zz" + hash[2:]},
		{"extra separator", salt + "." + hash[:32] + "." + hash[33:]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, hasher.Verify("secret123", tt.record))
		})
	}
}

func TestScryptHasher_VerifyWrongParams(t *testing.T) {
	record, err := newFastHasher().Hash("secret123")
	require.NoError(t, err)

	assert.False(t, NewScryptHasherWithParams(32, 1, 1).Verify("secret123", record))
	assert.False(t, NewScryptHasherWithParams(15, 1, 1).Verify("secret123", record))
}

func TestNewScryptHasher_Config(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.Config
		n, r, p int
	}{
		{name: "nil config", cfg: nil, n: DefaultScryptN, r: DefaultScryptR, p: DefaultScryptP},
		{name: "no auth section", cfg: &config.Config{}, n: DefaultScryptN, r: DefaultScryptR, p: DefaultScryptP},
		{
			name: "partial override",
			cfg:  &config.Config{Auth: &config.AuthConfig{Scrypt: &config.ScryptConfig{N: 1024}}},
			n:    1024,
			r:    DefaultScryptR,
			p:    DefaultScryptP,
		},
		{
			name: "full override",
			cfg:  &config.Config{Auth: &config.AuthConfig{Scrypt: &config.ScryptConfig{N: 32, R: 2, P: 3}}},
			n:    32,
			r:    2,
			p:    3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewScryptHasher(tt.cfg).(*scryptHasher)
			assert.Equal(t, tt.n, hasher.n)
			assert.Equal(t, tt.r, hasher.r)
			assert.Equal(t, tt.p, hasher.p)
		})
	}
}
