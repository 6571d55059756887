package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the fixed lifetime of issued auth tokens.
const TokenTTL = time.Hour

// Claims is the auth token payload. The token carries only the user's email;
// everything else is looked up server-side.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues an HS256 token for email, signed with the given secret.
// The signing secret is supplied per caller rather than held server-side; see
// the login flow for the implications.
func GenerateToken(email, secret string) (string, time.Time, error) {
	exp := time.Now().Add(TokenTTL)
	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString([]byte(secret))
	return s, exp, err
}

// ParseToken verifies the token signature with the given secret and returns
// the claims.
func ParseToken(tokenStr, secret string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// UnverifiedEmail extracts the email claim without verifying the signature.
// Used to locate the user whose stored secret then verifies the token proper.
func UnverifiedEmail(tokenStr string) (string, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		return "", err
	}
	if claims.Email == "" {
		return "", errors.New("token carries no email")
	}
	return claims.Email, nil
}
