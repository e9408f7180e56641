package jwt

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are issued by the account service; only the subject is used here.
type Claims struct {
	jwt.RegisteredClaims
	IsAdmin bool `json:"is_admin"`
}

var (
	ErrMissingToken = errors.New("missing token")
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrWrongIssuer  = errors.New("invalid token issuer")
	ErrBadSubject   = errors.New("token subject is not a user id")
)

// Verifier checks HS256 tokens signed with a shared secret.
type Verifier struct {
	secret []byte
	issuer string
}

func NewVerifier(secret, issuer string) *Verifier {
	return &Verifier{secret: []byte(secret), issuer: issuer}
}

// Verify parses an Authorization header value ("Bearer <JWT>" or "<JWT>") and
// returns the candidate id carried in the subject.
func (v *Verifier) Verify(header string) (uuid.UUID, *Claims, error) {
	tokenStr := bearerToken(header)
	if tokenStr == "" {
		return uuid.Nil, nil, ErrMissingToken
	}
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return uuid.Nil, nil, ErrInvalidToken
	}
	if v.issuer != "" && claims.Issuer != v.issuer {
		return uuid.Nil, nil, ErrWrongIssuer
	}
	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, nil, ErrBadSubject
	}
	return id, claims, nil
}

func bearerToken(header string) string {
	header = strings.TrimSpace(header)
	if scheme, rest, ok := strings.Cut(header, " "); ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(rest)
	}
	return header
}
