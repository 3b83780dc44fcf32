package admin

import (
	"fmt"

	"go.uber.org/zap"
)

// Login checks the submitted values against the configured admin credentials
// and returns a signed session token. The comparison is plain string equality.
func (s *DefaultAdminService) Login(email, password string) (string, error) {
	if email != s.Credentials.Email || password != s.Credentials.Password {
		s.Logger.Warn("Admin login rejected", zap.String("email", email))
		return "", validationError(MsgInvalidCredentials)
	}

	token, err := s.Tokens.Sign(s.Credentials.Subject())
	if err != nil {
		return "", fmt.Errorf("failed to sign admin token: %w", err)
	}
	s.Logger.Info("Admin logged in")
	return token, nil
}
