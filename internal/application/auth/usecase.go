// Package auth issues bearer tokens for the single configured admin account.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/moonhub/inventory-hub/internal/application/dto"
	"github.com/moonhub/inventory-hub/internal/domain"
	pkgjwt "github.com/moonhub/inventory-hub/pkg/jwt"
)

// Config holds the admin credentials and token settings.
type Config struct {
	AdminUser         string
	AdminPasswordHash string // bcrypt hash
	JWTSecret         string
	JWTIssuer         string
	JWTExpMinutes     int
}

// AuthUseCase validates admin credentials and issues JWTs.
type AuthUseCase struct {
	cfg Config
}

// NewAuthUseCase builds the use case.
func NewAuthUseCase(cfg Config) *AuthUseCase {
	return &AuthUseCase{cfg: cfg}
}

// Login checks the credentials against the configured admin account and
// returns a signed token. Wrong user or password both map to
// domain.ErrUnauthorized; the caller cannot tell which failed.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	if in.Username == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Username != uc.cfg.AdminUser {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.AdminPasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.cfg.JWTSecret, in.Username, uc.cfg.JWTIssuer, uc.cfg.JWTExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresIn: uc.cfg.JWTExpMinutes * 60}, nil
}
