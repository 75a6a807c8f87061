// Package auth builds the Authorization header the drops API expects.
//
// The backend reuses the HTTP Basic scheme to carry a wallet signature
// rather than a username and password. The credential is
//
//	base64(address ":" message ":" network ":" chain ":" signature)
//
// using standard, padded base64. Nothing here verifies the signature;
// that happens server side.
package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/inscrib3/drops-go/config"
)

// Scheme is the authorization scheme prefix.
const Scheme = "Basic"

// ErrMalformedToken is returned by Parse for values that don't decode
// into the five expected fields.
var ErrMalformedToken = errors.New("malformed authorization token")

// Credentials identify the caller for a single request. They are
// supplied fresh on every call and never cached.
type Credentials struct {
	Address   string
	Message   string
	Signature string
}

// Token is a decoded authorization credential.
type Token struct {
	Address   string
	Message   string
	Network   config.Network
	Chain     config.Chain
	Signature string
}

// Encode returns the base64 credential for creds on network and chain.
func Encode(creds Credentials, network config.Network, chain config.Chain) string {
	raw := strings.Join([]string{
		creds.Address,
		creds.Message,
		string(network),
		string(chain),
		creds.Signature,
	}, ":")

	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// Header returns the full Authorization header value.
func Header(creds Credentials, network config.Network, chain config.Chain) string {
	return Scheme + " " + Encode(creds, network, chain)
}

// Parse decodes an Authorization header value, with or without the
// scheme prefix. Signed messages may themselves contain colons, so the
// address is taken from the front, network, chain and signature from
// the back, and everything in between is the message.
func Parse(value string) (Token, error) {
	value = strings.TrimSpace(value)
	if scheme, rest, ok := strings.Cut(value, " "); ok {
		if !strings.EqualFold(scheme, Scheme) {
			return Token{}, fmt.Errorf("%w: unsupported scheme %q", ErrMalformedToken, scheme)
		}
		value = strings.TrimSpace(rest)
	}

	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return Token{}, fmt.Errorf("%w: %w", ErrMalformedToken, err)
	}

	fields := strings.Split(string(raw), ":")
	n := len(fields)
	if n < 5 {
		return Token{}, fmt.Errorf("%w: expected at least 5 fields, got %d", ErrMalformedToken, n)
	}

	return Token{
		Address:   fields[0],
		Message:   strings.Join(fields[1:n-3], ":"),
		Network:   config.Network(fields[n-3]),
		Chain:     config.Chain(fields[n-2]),
		Signature: fields[n-1],
	}, nil
}

// Credentials returns the caller-supplied part of t.
func (t Token) Credentials() Credentials {
	return Credentials{
		Address:   t.Address,
		Message:   t.Message,
		Signature: t.Signature,
	}
}
