package service

import (
	"errors"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
)

var ErrInvalidIDToken = errors.New("invalid Google ID token")

// GoogleIdentity is what sign-in needs from a verified ID token.
type GoogleIdentity struct {
	Subject string
	Email   string
	Name    string
}

// IDTokenVerifier checks a Google ID token and returns its identity.
type IDTokenVerifier interface {
	Verify(idToken string) (*GoogleIdentity, error)
}

// GoogleVerifier validates signature and audience against Google's certs.
type GoogleVerifier struct {
	ClientID string
}

func (g GoogleVerifier) Verify(idToken string) (*GoogleIdentity, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" || g.ClientID == "" {
		return nil, ErrInvalidIDToken
	}
	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(idToken, []string{g.ClientID}); err != nil {
		return nil, ErrInvalidIDToken
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(idToken)
	if err != nil {
		return nil, ErrInvalidIDToken
	}
	return &GoogleIdentity{
		Subject: claimSet.Sub,
		Email:   claimSet.Email,
		Name:    claimSet.Name,
	}, nil
}
