// Copyright (c) 2026 elecTrust Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth implements principal token generation and validation.

# Tokens

A principal token is the principal's random ID joined with an HMAC-SHA256
signature over it, keyed by the server's token salt:

	id, _ := auth.GenerateID(12)
	token := auth.MintPrincipalToken(id, salt)   // "<id>.<signature>"

	principalID, err := auth.VerifyPrincipalToken(token, salt)

Verification uses a constant-time comparison and returns ErrInvalidToken
for anything malformed, tampered with, or signed under a different salt.

The registry core never sees tokens: handlers verify the token and pass
the extracted principal ID in explicitly.
*/
package auth
