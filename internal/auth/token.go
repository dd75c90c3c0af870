package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"flightbooking/internal/model"
)

// Claims are the validated contents of an access token.
type Claims struct {
	UserID int64
	Role   model.Role
}

// NewAccessToken signs an HS256 JWT carrying the user id as subject and the
// role as a custom claim.
func NewAccessToken(secret string, user *model.User, ttl time.Duration) (string, time.Time, error) {
	exp := time.Now().UTC().Add(ttl)
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(user.UserID, 10),
		"role": string(user.Role),
		"exp":  exp.Unix(),
		"iat":  time.Now().UTC().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

// ParseAccessToken validates the signature and expiry and extracts claims.
func ParseAccessToken(secret, raw string) (*Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := mapClaims["sub"].(string)
	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return nil, errors.New("invalid subject claim")
	}

	role, _ := mapClaims["role"].(string)
	if !model.Role(role).Valid() {
		return nil, errors.New("invalid role claim")
	}

	return &Claims{UserID: userID, Role: model.Role(role)}, nil
}
