package auth

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// signingAlgorithms is the fixed set of algorithm names the configuration
// surface accepts.
var signingAlgorithms = map[string]bool{
	"HS256": true,
	"HS384": true,
	"HS512": true,
	"RS256": true,
	"RS384": true,
	"RS512": true,
}

type TokenOptions struct {
	Secret    string
	Expires   time.Duration
	Algorithm string
}

// TokenProcessor issues and verifies bearer tokens bound to a user id.
// It holds no state beyond its configuration and is safe to share.
type TokenProcessor struct {
	secret  []byte
	expires time.Duration
	method  jwt.SigningMethod
}

func NewTokenProcessor(options TokenOptions) (*TokenProcessor, error) {
	name := strings.TrimSpace(options.Algorithm)
	if !signingAlgorithms[name] {
		return nil, fmt.Errorf("unknown signing algorithm %q", name)
	}

	method := jwt.GetSigningMethod(name)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		// The RS* names are in the accepted set but need PEM key material,
		// which a single shared-secret string cannot carry. Failing here
		// beats failing on the first sign.
		return nil, fmt.Errorf("signing algorithm %q requires key material beyond a shared secret", name)
	}

	return &TokenProcessor{
		secret:  []byte(options.Secret),
		expires: options.Expires,
		method:  method,
	}, nil
}

// GenerateToken signs a token whose subject is the decimal form of userID,
// valid from now until now plus the configured lifetime.
func (p *TokenProcessor) GenerateToken(userID int) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(p.expires)),
	}

	encoded, err := jwt.NewWithClaims(p.method, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return encoded, nil
}

// ValidateToken verifies signature, expiry, and subject, and returns the
// user id the token was issued for. Every failure mode collapses into the
// same generic unauthenticated error so callers cannot tell a bad signature
// from an expired token or an unknown subject.
func (p *TokenProcessor) ValidateToken(raw string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{p.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return 0, UnauthenticatedError{Message: "Invalid credentials"}
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return 0, UnauthenticatedError{Message: "Invalid credentials"}
	}

	return userID, nil
}
