package session

import (
	"context"
	"testing"

	"storefront/config"
	"storefront/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSignedToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{name: "plain token", raw: "abc.def.ghi", expected: "abc.def.ghi"},
		{name: "bearer prefix", raw: "Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "padded", raw: "  Bearer abc.def.ghi", expected: "abc.def.ghi"},
		{name: "empty", raw: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeToken(tt.raw))
		})
	}
}

func TestParser_ParseBearer_ReadsClaims(t *testing.T) {
	parser := NewParser(&config.Config{})
	token := createSignedToken(t, "any-secret", jwt.MapClaims{
		"fullName": "測試管理員",
		"roleName": "ADMIN",
	})

	sess, err := parser.ParseBearer(token)
	require.NoError(t, err)

	assert.Equal(t, token, sess.Token)
	assert.Equal(t, "測試管理員", sess.FullName)
	assert.Equal(t, entity.RoleAdmin, sess.Role)
	assert.True(t, sess.Authenticated())
	assert.True(t, sess.IsAdmin())
}

func TestParser_ParseBearer_StripsBearerPrefix(t *testing.T) {
	parser := NewParser(&config.Config{})
	token := createSignedToken(t, "any-secret", jwt.MapClaims{"fullName": "客戶"})

	sess, err := parser.ParseBearer("Bearer " + token)
	require.NoError(t, err)

	// The stored credential never keeps the prefix.
	assert.Equal(t, token, sess.Token)
}

func TestParser_ParseBearer_MissingClaimsStayEmpty(t *testing.T) {
	parser := NewParser(&config.Config{})
	token := createSignedToken(t, "any-secret", jwt.MapClaims{"sub": "42"})

	sess, err := parser.ParseBearer(token)
	require.NoError(t, err)

	assert.Empty(t, sess.FullName)
	assert.Empty(t, sess.Role)
	assert.False(t, sess.IsAdmin())
}

func TestParser_ParseBearer_EmptyCredential(t *testing.T) {
	parser := NewParser(&config.Config{})

	_, err := parser.ParseBearer("   ")
	assert.Error(t, err)
}

func TestParser_ParseBearer_MalformedCredential(t *testing.T) {
	parser := NewParser(&config.Config{})

	_, err := parser.ParseBearer("not-a-jwt")
	assert.Error(t, err)
}

func TestParser_ParseBearer_VerifiesSignatureWhenEnabled(t *testing.T) {
	cfg := &config.Config{
		Session: &config.SessionConfig{
			VerifySignature: true,
			Secret:          "right-secret",
		},
	}
	parser := NewParser(cfg)

	valid := createSignedToken(t, "right-secret", jwt.MapClaims{"roleName": "CUSTOMER"})
	sess, err := parser.ParseBearer(valid)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, sess.Role)

	forged := createSignedToken(t, "wrong-secret", jwt.MapClaims{"roleName": "ADMIN"})
	_, err = parser.ParseBearer(forged)
	assert.Error(t, err)
}

func TestTokenFromContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TokenFromContext(ctx))

	ctx = WithSession(ctx, &entity.Session{})
	assert.Empty(t, TokenFromContext(ctx))

	ctx = WithSession(context.Background(), &entity.Session{Token: "abc"})
	assert.Equal(t, "abc", TokenFromContext(ctx))
}
