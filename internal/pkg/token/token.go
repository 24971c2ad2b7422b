// ================== internal/pkg/token/token.go ==================
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims carries the account email in the standard "sub" claim.
type Claims struct {
	jwt.RegisteredClaims
}

// Email returns the authenticated account email.
func (c *Claims) Email() string {
	return c.Subject
}

// Manager signs and verifies access tokens with a process-wide HMAC key.
type Manager struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewManager validates the algorithm name and returns a Manager. Only HMAC
// algorithms are accepted.
func NewManager(secret, algorithm string, ttl time.Duration) (*Manager, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	method := jwt.GetSigningMethod(algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Manager{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// TTL is the default lifetime used by IssueAccessToken.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue signs a token for subject that expires after ttl.
func (m *Manager) Issue(subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(m.method, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *Manager) IssueAccessToken(subject string) (string, error) {
	return m.Issue(subject, m.ttl)
}

// Parse verifies signature, algorithm and expiry and returns the claims.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
