// Package httpapi is a thin HTTP/websocket wrapper around internal/sim for
// the companion process (the companion's own UI/client is out of
// SPEC_FULL.md's scope — only the server side lives here). Grounded on the
// teacher's cmd/server/main.go (gorilla/mux + rs/cors wiring),
// internal/auth (JWTManager/Middleware), pkg/validation (request
// validation), and internal/websocket (the broadcast hub, adapted into
// this package's stream subpackage).
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken covers every bearer-token rejection reason
	// (malformed, bad signature, wrong claims) the companion should treat
	// identically: re-authenticate.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")
)

// operatorClaims is this API's bearer-token payload. Unlike the teacher's
// Claims (userID/username/email/role, a multi-user login system) there is
// no user-account concept here (DESIGN.md: the Runtime API is a single
// embedding-process handle, not a multi-tenant web app) — a token just
// proves the bearer was handed one out-of-band (e.g. `sim token` at the
// CLI), scoped by an arbitrary operator label for audit logging.
type operatorClaims struct {
	jwt.RegisteredClaims
	Operator string `json:"operator"`
}

// TokenManager mints and validates the single bearer-token kind this API
// accepts, trimmed from the teacher's JWTManager (which issues paired
// access/refresh tokens for a login flow this domain has no use for).
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a TokenManager signing/verifying with secret.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Mint issues a token for operator, valid for the manager's configured ttl.
func (m *TokenManager) Mint(operator string) (string, error) {
	claims := operatorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
		},
		Operator: operator,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Validate parses and verifies tokenString, returning the operator label
// it was minted for.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &operatorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*operatorClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}
	return claims.Operator, nil
}

// extractBearer pulls the token out of an `Authorization: Bearer <token>`
// header, matching the teacher's auth.ExtractTokenFromHeader.
func extractBearer(header string) (string, error) {
	const prefix = "Bearer "
	if header == "" {
		return "", errors.New("authorization header is required")
	}
	if len(header) < len(prefix) || header[:len(prefix)] != prefix {
		return "", errors.New("invalid authorization header format")
	}
	return header[len(prefix):], nil
}

type contextKey string

const operatorContextKey contextKey = "httpapi_operator"

// RequireBearer guards state-mutating routes (advance, restore) per
// SPEC_FULL.md's domain-stack table. Read-only routes (snapshot,
// queryEvents, the websocket stream) are left unauthenticated, matching
// the teacher's OptionalAuthenticate vs. Authenticate split.
func (m *TokenManager) RequireBearer(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearer(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}
		operator, err := m.Validate(token)
		if err != nil {
			http.Error(w, "unauthorized: "+err.Error(), http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), operatorContextKey, operator)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// OperatorFromContext returns the bearer token's operator label, if any.
func OperatorFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(operatorContextKey).(string)
	return v, ok
}

// normalizeAuthHeader exists only so tests can build a well-formed header
// without duplicating the "Bearer " literal everywhere.
func normalizeAuthHeader(token string) string {
	return "Bearer " + strings.TrimSpace(token)
}
