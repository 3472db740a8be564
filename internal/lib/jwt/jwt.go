package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openvote/election-backend/internal/entity"
)

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

var ErrInvalidToken = errors.New("invalid token")

// NewTokenPair issues an access/refresh pair for the given identity. Voter
// tokens carry the election the credentials belong to.
func NewTokenPair(identity entity.Identity, secret string, accessTTL, refreshTTL time.Duration) (*TokenPair, error) {
	accessToken, err := newToken(identity, secret, "access", accessTTL)
	if err != nil {
		return nil, err
	}

	refreshToken, err := newToken(identity, secret, "refresh", refreshTTL)
	if err != nil {
		return nil, err
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func newToken(identity entity.Identity, secret, typ string, ttl time.Duration) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)

	claims["uid"] = identity.ID
	claims["role"] = string(identity.Role)
	claims["typ"] = typ
	claims["exp"] = time.Now().Add(ttl).Unix()
	if identity.Role == entity.RoleVoter {
		claims["election_id"] = identity.ElectionID
	}

	return token.SignedString([]byte(secret))
}

// ParseIdentity validates a token of the wanted type and returns the identity
// it encodes.
func ParseIdentity(tokenString, secret, wantTyp string) (entity.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, jwt.MapClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return entity.Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return entity.Identity{}, fmt.Errorf("%w: invalid claims", ErrInvalidToken)
	}

	if typ, ok := claims["typ"].(string); !ok || typ != wantTyp {
		return entity.Identity{}, fmt.Errorf("%w: expected %s token, got %v", ErrInvalidToken, wantTyp, claims["typ"])
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return entity.Identity{}, fmt.Errorf("%w: exp claim is missing or invalid", ErrInvalidToken)
	}
	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return entity.Identity{}, fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}

	uid, ok := claims["uid"].(float64)
	if !ok {
		return entity.Identity{}, fmt.Errorf("%w: uid claim is missing or invalid", ErrInvalidToken)
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return entity.Identity{}, fmt.Errorf("%w: role claim is missing or invalid", ErrInvalidToken)
	}

	identity := entity.Identity{ID: int64(uid)}
	switch entity.Role(roleStr) {
	case entity.RoleAdmin:
		identity.Role = entity.RoleAdmin
	case entity.RoleVoter:
		identity.Role = entity.RoleVoter
		electionID, ok := claims["election_id"].(float64)
		if !ok {
			return entity.Identity{}, fmt.Errorf("%w: election_id claim is missing for voter", ErrInvalidToken)
		}
		identity.ElectionID = int64(electionID)
	default:
		return entity.Identity{}, fmt.Errorf("%w: unknown role %q", ErrInvalidToken, roleStr)
	}

	return identity, nil
}
