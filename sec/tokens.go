package sec

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// UserTokenTTL - session tokens expire after one day.
const UserTokenTTL = 24 * time.Hour

// SignUserToken issues the HS256 JWT handed out on login.
// Claims: id (user id), role (role name), iat, exp.
func SignUserToken(secret []byte, userID string, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":   userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(UserTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseUserToken verifies a signed token and returns its identity claims.
func ParseUserToken(secret []byte, signedToken string) (userID string, role string, err error) {
	parsed, err := jwt.Parse(signedToken, func(token *jwt.Token) (interface{}, error) {
		// ensure alg is HS256
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", "", err
	}
	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return "", "", errors.New("invalid token")
	}
	userID, _ = claims["id"].(string)
	role, _ = claims["role"].(string)
	if userID == "" {
		return "", "", errors.New("token missing identity claims")
	}
	return userID, role, nil
}
