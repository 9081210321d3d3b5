package service

import (
	"context"

	"github.com/curavet/clinic-admin-service/internal/infrastructure/identity"
	"github.com/curavet/clinic-admin-service/pkg/errs"
	"github.com/curavet/clinic-admin-service/pkg/utils"
)

type AuthServiceImpl struct {
	verifier  identity.Verifier
	jwtSecret string
}

func CreateAuthService(verifier identity.Verifier, jwtSecret string) AuthService {
	return &AuthServiceImpl{verifier: verifier, jwtSecret: jwtSecret}
}

// Login exchanges a verified external identity assertion for a stateless
// admin session token.
func (s *AuthServiceImpl) Login(ctx context.Context, idToken string) (token string, err error) {
	if idToken == "" {
		return "", errs.ErrIDTokenRequired
	}

	if !s.verifier.VerifyIDToken(ctx, idToken) {
		return "", errs.ErrInvalidCredentials
	}

	token, err = utils.CreateSessionToken(s.jwtSecret)
	if err != nil {
		return "", errs.ErrInternalServer
	}

	return token, nil
}

func (s *AuthServiceImpl) VerifySession(token string) bool {
	return utils.VerifySessionToken(token, s.jwtSecret)
}
