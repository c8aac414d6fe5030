package auth

import (
	"errors"
	"fmt"
	"time"

	"Espuma/internal/formulation"

	"github.com/golang-jwt/jwt/v5"
)

const shareTTL = 30 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid share token")

// ShareClaims carry a calculation request: which formulation and the raw inputs.
// Nothing is stored server side; the result is recomputed from the claims.
type ShareClaims struct {
	Formulation formulation.ID    `json:"formulation"`
	Inputs      map[string]string `json:"inputs"`
	jwt.RegisteredClaims
}

// Sharer signs and verifies share tokens with an HMAC key.
type Sharer struct {
	key []byte
	now func() time.Time
}

func NewSharer(key []byte) *Sharer {
	return &Sharer{key: key, now: time.Now}
}

// Sign returns a token for the calculation, valid for 30 days.
func (s *Sharer) Sign(id formulation.ID, inputs map[string]string) (string, error) {
	now := s.now()
	claims := ShareClaims{
		Formulation: id,
		Inputs:      inputs,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(shareTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("signing share token: %w", err)
	}
	return token, nil
}

// Parse verifies the token and returns its claims.
func (s *Sharer) Parse(tokenString string) (*ShareClaims, error) {
	claims := &ShareClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.key, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Formulation == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
