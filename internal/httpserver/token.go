// internal/httpserver/token.go
//
// Signed session tokens.
//
// A token carries a game's full guess history, budget and vocabulary
// fingerprint, HS256-signed. Because partitioning is deterministic, replaying
// the guesses rebuilds the exact candidate set, so a game survives a server
// restart or a store miss without any server-side persistence.

package httpserver

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/robalobadob/absurdle/internal/game"
)

var errBadToken = errors.New("invalid token")

// gameClaims is the token payload. Subject is the game ID.
type gameClaims struct {
	Guesses    []string `json:"guesses"`
	MaxGuesses int      `json:"max"`
	Vocabulary string   `json:"vocab"`
	jwt.RegisteredClaims
}

// tokenIssuer signs and verifies session tokens.
type tokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func newTokenIssuer(secret string, ttl time.Duration) *tokenIssuer {
	return &tokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// issue signs the current state of g.
func (ti *tokenIssuer) issue(g *game.Game) (string, error) {
	now := ti.now()
	claims := gameClaims{
		Guesses:    g.Guesses(),
		MaxGuesses: g.MaxGuesses,
		Vocabulary: g.Vocabulary,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   g.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ti.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(ti.secret)
}

// parse verifies a token's signature and expiry and returns its claims.
func (ti *tokenIssuer) parse(tokenStr string) (*gameClaims, error) {
	claims := &gameClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return ti.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(ti.now))
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("%w: %v", errBadToken, err)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", errBadToken)
	}
	return claims, nil
}

// parseFor parses a token and checks that it was issued for gameID.
func (ti *tokenIssuer) parseFor(tokenStr, gameID string) (*gameClaims, error) {
	if tokenStr == "" {
		return nil, fmt.Errorf("%w: missing token", errBadToken)
	}
	claims, err := ti.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	if claims.Subject != gameID {
		return nil, fmt.Errorf("%w: issued for another game", errBadToken)
	}
	return claims, nil
}
