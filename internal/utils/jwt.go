package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned when an empty token string is passed for parsing.
var ErrEmptyToken = errors.New("empty token")

// TokenSubject extracts the "sub" claim from a JWT access token without
// verifying its signature or expiry.
//
// The result is for display only (e.g. "signed in as ..."). The client never
// decides whether a session is valid from the token contents: the server's
// response code is the only source of truth.
//
// Returns an error if the token is empty, is not a JWT, or has no subject.
//
// Example usage:
//
//	sub, err := utils.TokenSubject(token)
//	if err != nil {
//	    sub = "unknown"
//	}
func TokenSubject(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", fmt.Errorf("error parsing token: %w", err)
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error reading token subject: %w", err)
	}
	if sub == "" {
		return "", errors.New("token has no subject")
	}

	return sub, nil
}
