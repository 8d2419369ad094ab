package infrastructure

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"task-service/internal/domain/apperr"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// TokenClaims is the signed payload: subject (user id as a decimal string),
// expiry, and the token type that keeps access and refresh tokens from being
// used interchangeably.
type TokenClaims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256-signed tokens. It is stateless: a
// token is valid iff its signature checks out and its expiry has not passed.
// There is no revocation list and refresh tokens are not rotated on use.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewJWTService(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (j *JWTService) IssueAccessToken(userID uint) (string, error) {
	return j.issue(userID, TokenTypeAccess, j.accessTTL)
}

func (j *JWTService) IssueRefreshToken(userID uint) (string, error) {
	return j.issue(userID, TokenTypeRefresh, j.refreshTTL)
}

func (j *JWTService) issue(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.NewString(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
}

// VerifyToken checks signature, expiry and token type, in that order, and
// returns the subject user id. Expiry failures are reported as
// apperr.ErrExpiredToken; every structural or signature failure, including a
// non-numeric subject, is apperr.ErrMalformedToken.
func (j *JWTService) VerifyToken(tokenString, expectedType string) (uint, error) {
	claims := &TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenExpired):
		return 0, apperr.ErrExpiredToken
	default:
		return 0, apperr.ErrMalformedToken
	}

	if claims.TokenType != expectedType {
		return 0, apperr.ErrWrongTokenType
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, apperr.ErrMalformedToken
	}

	return uint(userID), nil
}
