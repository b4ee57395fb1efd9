// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidToken = errors.New("invalid voter token")

// GenerateID creates a random hex ID of the specified byte length
func GenerateID(byteLen int) (string, error) {
	b := make([]byte, byteLen)
	_, err := rand.Read(b)
	if err != nil {
		return "", fmt.Errorf("failed to generate random ID: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// MintPrincipalToken creates the bearer token for a principal: the principal
// ID joined with an HMAC signature over it. The registry only ever sees the
// ID; the signature makes the token self-authenticating against the salt.
func MintPrincipalToken(principalID, salt string) string {
	return principalID + "." + sign(principalID, salt)
}

// VerifyPrincipalToken checks a bearer token and returns the principal ID it
// carries, or ErrInvalidToken.
func VerifyPrincipalToken(token, salt string) (string, error) {
	id, sig, found := strings.Cut(token, ".")
	if !found || id == "" {
		return "", ErrInvalidToken
	}
	if !hmac.Equal([]byte(sig), []byte(sign(id, salt))) {
		return "", ErrInvalidToken
	}
	return id, nil
}

func sign(principalID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(principalID))
	sum := h.Sum(nil)
	// URL-safe base64 without padding for cleaner tokens
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}
