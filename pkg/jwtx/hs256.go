package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// MinSecretLength is the minimum accepted HMAC secret size in bytes.
// Anything shorter than the hash output weakens HS256 below its design
// strength.
const MinSecretLength = 32

var (
	ErrMissingSecret = errors.New("jwtx: signing secret missing or too short")

	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
)

// HS256 signs and verifies tokens with a process-wide shared secret. Every
// service that should accept each other's tokens must be provisioned with
// the same secret; a token signed with a different secret is
// indistinguishable from a tampered one.
type HS256 struct {
	secret []byte
	issuer string
}

// NewHS256 builds a signer/verifier from the configured secret.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, ErrMissingSecret
	}
	return &HS256{secret: secret, issuer: issuer}, nil
}

// Alg returns the JOSE algorithm identifier.
func (h *HS256) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign produces a compact serialized JWT for the given claims.
func (h *HS256) Sign(c Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)

	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify validates the JWT string and returns its parsed Claims.
// Signature, issuer and expiry are all checked; an alg header other than
// HS256 is rejected before the signature is even looked at.
func (h *HS256) Verify(tokenStr string) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		// Claim checks run below so failures map onto our sentinel errors.
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return Claims{}, ErrMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrInvalidSig
		default:
			return Claims{}, fmt.Errorf("%w: %w", ErrMalformed, err)
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return Claims{}, ErrMalformed
	}

	if err := claims.ValidateIssuer(h.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(); err != nil {
		return Claims{}, err
	}

	return *claims, nil
}
