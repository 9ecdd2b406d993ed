package service

import (
	"time"

	"github.com/petpalhq/petpal/internal/user/domain"
	"github.com/petpalhq/petpal/pkg/jwtx"
)

type TokenService struct {
	Signer    *jwtx.HS256
	Issuer    string
	AccessTTL time.Duration
}

// IssuedToken is a freshly signed access token plus its lifetime.
type IssuedToken struct {
	Token     string
	TokenType string
	ExpiresIn int // seconds
}

// Issue signs a stateless access token for the given user. There is no
// server-side token record: possession of a validly signed token is the
// whole session.
func (s *TokenService) Issue(user domain.User) (IssuedToken, error) {
	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Username, s.Issuer, ttl, time.Now())

	token, err := s.Signer.Sign(claims)
	if err != nil {
		return IssuedToken{}, err
	}

	return IssuedToken{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int(ttl.Seconds()),
	}, nil
}
