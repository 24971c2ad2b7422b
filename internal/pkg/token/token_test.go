package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newManager(t *testing.T, alg string) *Manager {
	t.Helper()
	m, err := NewManager("test-secret", alg, time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewManager_RejectsNonHMAC(t *testing.T) {
	_, err := NewManager("secret", "RS256", time.Hour)
	require.Error(t, err)

	_, err = NewManager("secret", "none", time.Hour)
	require.Error(t, err)

	_, err = NewManager("", "HS256", time.Hour)
	require.Error(t, err)
}

func TestIssueAndParse(t *testing.T) {
	for _, alg := range []string{"HS256", "HS384", "HS512"} {
		t.Run(alg, func(t *testing.T) {
			m := newManager(t, alg)
			tok, err := m.IssueAccessToken("u@example.com")
			require.NoError(t, err)

			claims, err := m.Parse(tok)
			require.NoError(t, err)
			require.Equal(t, "u@example.com", claims.Email())
			require.Equal(t, time.Hour, m.TTL())
			require.WithinDuration(t, time.Now().Add(m.TTL()), claims.ExpiresAt.Time, 5*time.Second)
		})
	}
}

func TestParse_Expired(t *testing.T) {
	m := newManager(t, "HS256")
	tok, err := m.Issue("u@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = m.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_TamperedAndForeignKey(t *testing.T) {
	m := newManager(t, "HS256")
	tok, err := m.IssueAccessToken("u@example.com")
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))
	_, err = m.Parse(tampered)
	require.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewManager("other-secret", "HS256", time.Hour)
	require.NoError(t, err)
	_, err = other.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_RejectsOtherAlgorithm(t *testing.T) {
	m256 := newManager(t, "HS256")
	m512 := newManager(t, "HS512")

	tok, err := m512.IssueAccessToken("u@example.com")
	require.NoError(t, err)

	_, err = m256.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParse_MissingSubject(t *testing.T) {
	m := newManager(t, "HS256")
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	tok, err := raw.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.Parse(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestHashPassword(t *testing.T) {
	hashCost = bcrypt.MinCost
	t.Cleanup(func() { hashCost = bcrypt.DefaultCost })

	h1, err := HashPassword("s3cret!")
	require.NoError(t, err)
	h2, err := HashPassword("s3cret!")
	require.NoError(t, err)

	require.NotEqual(t, h1, h2, "salt must vary between calls")
	require.True(t, VerifyPassword("s3cret!", h1))
	require.True(t, VerifyPassword("s3cret!", h2))
	require.False(t, VerifyPassword("wrong", h1))
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	require.False(t, VerifyPassword("anything", ""))
	require.False(t, VerifyPassword("anything", "not-a-bcrypt-hash"))
}
