package session_test

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/session"
)

func signToken(t *testing.T, secret string, role int, matricula int64) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"ID_ROL":    role,
		"MATRICULA": matricula,
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestTokenProviderResolvesSession(t *testing.T) {
	tok := signToken(t, "secret", session.RoleMedico, 1001)
	p := session.NewTokenProvider("secret", tok)

	sess, ok := p.Current()
	require.True(t, ok)
	assert.Equal(t, session.RoleMedico, sess.Role)
	assert.Equal(t, int64(1001), sess.Matricula)
	assert.True(t, sess.Restricted())
}

func TestEmptyTokenIsAbsent(t *testing.T) {
	p := session.NewTokenProvider("secret", "")
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestWrongSecretIsAbsent(t *testing.T) {
	tok := signToken(t, "secret", session.RoleAdmin, 9)
	p := session.NewTokenProvider("other", tok)
	_, ok := p.Current()
	assert.False(t, ok)
}

func TestRestrictedRoles(t *testing.T) {
	assert.True(t, session.Session{Role: session.RoleMedico}.Restricted())
	assert.True(t, session.Session{Role: session.RoleEnfermeria}.Restricted())
	assert.False(t, session.Session{Role: session.RoleAdmin}.Restricted())
	assert.False(t, session.Session{}.Restricted())
}
