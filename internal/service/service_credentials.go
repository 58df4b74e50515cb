package service

import (
	"context"
)

// Fixed development credential pair accepted by the demo verifier.
const (
	demoEmail    = "test@example.com"
	demoPassword = "myTestPassword"
)

// demoCredentialVerifier accepts exactly one fixed development pair.
//
// This is a stand-in for a real credential-verification system. Production
// deployments must wire a [CredentialVerifier] backed by an identity
// provider instead.
type demoCredentialVerifier struct{}

// NewDemoCredentialVerifier returns the development-only verifier.
func NewDemoCredentialVerifier() CredentialVerifier {
	return &demoCredentialVerifier{}
}

func (v *demoCredentialVerifier) Verify(_ context.Context, email, password string) (string, error) {
	if email != demoEmail || password != demoPassword {
		return "", ErrInvalidCredentials
	}

	return email, nil
}
