package auth

import (
	"testing"

	"yap/config"
	domainerrors "yap/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHasherForTest() *bcryptHasher {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 4}}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_CostFloor(t *testing.T) {
	h := newHasherForTest()

	// A cost below bcrypt's default is raised to the default.
	assert.GreaterOrEqual(t, h.cost, 10)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	h := newHasherForTest()

	hash, err := h.Hash("Sup3rSecret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Sup3rSecret", hash)

	assert.NoError(t, h.Check("Sup3rSecret", hash))

	err = h.Check("WrongPassword1", hash)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestBcryptHasher_ValidateStrength(t *testing.T) {
	h := newHasherForTest()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Sup3rSecret", false},
		{"too short", "Ab1", true},
		{"too long", "A1" + string(make([]byte, 70)), true},
		{"no uppercase", "sup3rsecret", true},
		{"no digit", "SuperSecret", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.ValidateStrength(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
